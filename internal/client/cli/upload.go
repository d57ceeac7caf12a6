package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/handoff"
	"github.com/dmitrijs2005/skillfit/internal/client/resume"
	"github.com/dmitrijs2005/skillfit/internal/client/router"
	"github.com/dmitrijs2005/skillfit/internal/client/workflow"
)

const previewLength = 300

var getMultiline = GetMultiline

// uploadWorkflow returns the workflow of the upload screen, or nil with a
// hint when the user is elsewhere.
func (a *App) uploadWorkflow() *workflow.Workflow {
	if a.workflow == nil {
		a.println("Open the upload screen first: type 'upload'.")
	}
	return a.workflow
}

func (a *App) SelectFile(ctx context.Context, path string) error {
	w := a.uploadWorkflow()
	if w == nil {
		return nil
	}
	if path == "" {
		a.println("Usage: file <path>")
		return nil
	}

	f, err := resume.Load(strings.Trim(path, `"'`))
	if err != nil {
		a.println(err.Error())
		return err
	}
	if err := w.SelectFile(f); err != nil {
		a.println(workflowMessage(err))
		return err
	}

	a.printf("Selected %s\n", f.Name)
	if p, err := resume.MakePreview(f, previewLength); err == nil {
		if p.Pages > 0 {
			a.printf("Pages: %d\n", p.Pages)
		}
		if p.Excerpt != "" {
			a.println(p.Excerpt)
		}
	} else {
		a.logger.Debug(ctx, "no preview", "file", f.Name, "error", err)
	}
	a.printWorkflow(w.Snapshot())
	return nil
}

func (a *App) ListJobs() {
	for i, j := range workflow.PredefinedJobs {
		a.printf("%d. %s\n", i+1, j)
	}
	a.println("Type 'job <number>' to pick one.")
}

func (a *App) SelectJob(arg string) error {
	w := a.uploadWorkflow()
	if w == nil {
		return nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(workflow.PredefinedJobs) {
		a.printf("Usage: job <1-%d>\n", len(workflow.PredefinedJobs))
		return nil
	}
	if err := w.SelectPredefinedJob(n - 1); err != nil {
		a.println(workflowMessage(err))
		return err
	}
	a.printWorkflow(w.Snapshot())
	return nil
}

func (a *App) EnterJobDescription() error {
	w := a.uploadWorkflow()
	if w == nil {
		return nil
	}
	text, err := getMultiline(a.reader, "Paste the job description, finish with an empty line", a.out)
	if err != nil {
		return err
	}
	if err := w.SetJobDescription(text); err != nil {
		a.println(workflowMessage(err))
		return err
	}
	a.printWorkflow(w.Snapshot())
	return nil
}

func (a *App) Analyze(ctx context.Context) error {
	w := a.uploadWorkflow()
	if w == nil {
		return nil
	}
	a.println("Analyzing...")
	return a.afterRun(ctx, w, w.Start(ctx))
}

func (a *App) Retry(ctx context.Context) error {
	w := a.uploadWorkflow()
	if w == nil {
		return nil
	}
	a.println("Analyzing...")
	return a.afterRun(ctx, w, w.Retry(ctx))
}

func (a *App) afterRun(ctx context.Context, w *workflow.Workflow, err error) error {
	switch {
	case err == nil, errors.Is(err, workflow.ErrDiscarded):
		return nil
	case errors.Is(err, workflow.ErrNoCredential):
		a.println("Your session has expired. Please sign in again.")
		return a.enter(ctx, router.PathSignIn, router.State{})
	case errors.Is(err, client.ErrUnauthorized):
		a.logger.Warn(ctx, "credential rejected, signing out", "op", "analyze resume")
		if cerr := a.session.ClearCredential(ctx); cerr != nil {
			a.logger.Error(ctx, "clear credential failed", "error", cerr)
		}
		a.board.Drop()
		a.println("Your session has expired. Please sign in again.")
		return a.enter(ctx, router.PathSignIn, router.State{})
	}

	s := w.Snapshot()
	if s.Step == workflow.Failed {
		a.printWorkflow(s)
	} else {
		a.println(workflowMessage(err))
	}
	return err
}

// Status reprints the upload screen.
func (a *App) Status() {
	if w := a.uploadWorkflow(); w != nil {
		a.printWorkflow(w.Snapshot())
	}
}

func (a *App) onAnalysisComplete(ctx context.Context, h handoff.Handle) {
	_ = a.enter(ctx, router.PathAnalysis, router.State{Result: h})
	// redirected elsewhere, so nobody will read it
	if route, _ := a.nav.Current(); route.Path != router.PathAnalysis {
		a.board.Consume(h)
	}
}

func workflowMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, workflow.ErrInvalidTransition) {
		msg = "that is not possible right now"
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
