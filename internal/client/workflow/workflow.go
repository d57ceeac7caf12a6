// Package workflow drives the resume upload journey: pick a file, supply a
// job description, run one analysis and hand the result to the results
// screen.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/handoff"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

const FallbackErrorMessage = "Error analyzing resume. Please try again."

var (
	ErrMissingFile           = errors.New("please upload a resume")
	ErrMissingJobDescription = errors.New("please enter a job description")
	ErrMissingInput          = errors.New("please upload a resume and enter a job description")
	ErrAnalysisInFlight      = errors.New("analysis already in progress")
	ErrNoCredential          = errors.New("not signed in")
	ErrDiscarded             = errors.New("workflow discarded")
	ErrInvalidTransition     = errors.New("invalid workflow transition")
)

type Analyzer interface {
	AnalyzeResume(ctx context.Context, credential string, file models.FileHandle, jobDescription string) (models.AnalysisResult, error)
}

type CredentialSource interface {
	Credential() (string, bool)
}

type Publisher interface {
	Publish(result models.AnalysisResult) handoff.Handle
}

// CompleteFunc receives the handle of a published result, typically to
// navigate to the results screen.
type CompleteFunc func(ctx context.Context, h handoff.Handle)

// Workflow is one upload journey. A discarded workflow rejects every
// further transition.
type Workflow struct {
	analyzer    Analyzer
	credentials CredentialSource
	publisher   Publisher
	onComplete  CompleteFunc
	logger      logging.Logger

	mu        sync.Mutex
	state     State
	cancel    context.CancelFunc
	discarded bool
}

func New(a Analyzer, c CredentialSource, p Publisher, onComplete CompleteFunc, logger logging.Logger) *Workflow {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Workflow{
		analyzer:    a,
		credentials: c,
		publisher:   p,
		onComplete:  onComplete,
		logger:      logger.With("component", "workflow"),
	}
}

func (w *Workflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.clone()
}

// editableLocked reports whether inputs may change in the current step.
func (w *Workflow) editableLocked() error {
	if w.discarded {
		return ErrDiscarded
	}
	switch w.state.Step {
	case Analyzing:
		return ErrAnalysisInFlight
	case Complete:
		return ErrInvalidTransition
	}
	return nil
}

// settleLocked derives the step from the inputs. Editing after a failure
// clears the error and returns the request to idle.
func (w *Workflow) settleLocked() {
	switch {
	case w.state.File == nil:
		w.state.Step = AwaitingFile
	case w.state.JobDescription == "":
		w.state.Step = AwaitingJobDescription
	default:
		w.state.Step = ReadyToAnalyze
	}
	if w.state.Status == StatusFailed {
		w.state.Status = StatusIdle
		w.state.ErrorMessage = ""
	}
}

func (w *Workflow) SelectFile(f models.FileHandle) error {
	if f.Empty() {
		return ErrMissingFile
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked(); err != nil {
		return err
	}

	f.Data = append([]byte(nil), f.Data...)
	w.state.File = &f
	w.settleLocked()
	return nil
}

// SetJobDescription replaces the job description. Free text and predefined
// selections share the same field.
func (w *Workflow) SetJobDescription(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrMissingJobDescription
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editableLocked(); err != nil {
		return err
	}

	w.state.JobDescription = text
	w.settleLocked()
	return nil
}

func (w *Workflow) SelectPredefinedJob(index int) error {
	if index < 0 || index >= len(PredefinedJobs) {
		return fmt.Errorf("%w: no predefined job %d", ErrInvalidTransition, index+1)
	}
	return w.SetJobDescription(PredefinedJobs[index])
}

// Start runs the analysis. It blocks until the response arrives or the
// workflow is discarded. Validation refusals leave the state untouched and
// make no request.
func (w *Workflow) Start(ctx context.Context) error {
	w.mu.Lock()
	if err := w.startableLocked(); err != nil {
		w.mu.Unlock()
		return err
	}
	return w.runLocked(ctx)
}

// Retry resubmits the inputs of a failed analysis.
func (w *Workflow) Retry(ctx context.Context) error {
	w.mu.Lock()
	if w.discarded {
		w.mu.Unlock()
		return ErrDiscarded
	}
	if w.state.Step != Failed {
		w.mu.Unlock()
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, w.state.Step)
	}
	// keep the failure on screen when there is nobody to retry as
	if _, ok := w.credentials.Credential(); !ok {
		w.mu.Unlock()
		return ErrNoCredential
	}
	w.settleLocked()
	if err := w.startableLocked(); err != nil {
		w.mu.Unlock()
		return err
	}
	return w.runLocked(ctx)
}

func (w *Workflow) startableLocked() error {
	if w.discarded {
		return ErrDiscarded
	}
	switch w.state.Step {
	case Analyzing:
		return ErrAnalysisInFlight
	case Complete, Failed:
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, w.state.Step)
	}

	noFile, noJD := w.state.File == nil, w.state.JobDescription == ""
	switch {
	case noFile && noJD:
		return ErrMissingInput
	case noFile:
		return ErrMissingFile
	case noJD:
		return ErrMissingJobDescription
	}
	return nil
}

// runLocked is entered holding mu and releases it for the duration of the
// request.
func (w *Workflow) runLocked(ctx context.Context) error {
	credential, ok := w.credentials.Credential()
	if !ok {
		w.mu.Unlock()
		return ErrNoCredential
	}

	reqCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.state.Step = Analyzing
	w.state.Status = StatusInFlight
	w.state.ErrorMessage = ""
	file := *w.state.File
	jd := w.state.JobDescription
	w.mu.Unlock()

	w.logger.Info(ctx, "analysis started", "file", file.Name, "size", len(file.Data))
	result, err := w.analyzer.AnalyzeResume(reqCtx, credential, file, jd)
	cancel()

	w.mu.Lock()
	w.cancel = nil
	if w.discarded {
		w.mu.Unlock()
		w.logger.Debug(ctx, "late analysis response dropped")
		return ErrDiscarded
	}

	if err != nil {
		w.state.Step = Failed
		w.state.Status = StatusFailed
		w.state.ErrorMessage = client.ErrorMessage(err, FallbackErrorMessage)
		w.mu.Unlock()
		w.logger.Warn(ctx, "analysis failed", "error", err)
		return fmt.Errorf("analyze resume: %w", err)
	}

	h := w.publisher.Publish(result)
	stored := result.Clone()
	w.state.Step = Complete
	w.state.Status = StatusSucceeded
	w.state.Result = &stored
	w.state.Handle = h
	w.mu.Unlock()

	w.logger.Info(ctx, "analysis complete", "handle", h.String())
	if w.onComplete != nil {
		w.onComplete(ctx, h)
	}
	return nil
}

// Discard abandons the workflow. An in-flight request is cancelled and its
// response, if it still arrives, is ignored.
func (w *Workflow) Discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.discarded {
		return
	}
	w.discarded = true
	if w.cancel != nil {
		w.cancel()
	}
	w.state = State{}
}

func (w *Workflow) Discarded() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.discarded
}
