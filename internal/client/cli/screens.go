package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/router"
	"github.com/dmitrijs2005/skillfit/internal/client/services"
	"github.com/dmitrijs2005/skillfit/internal/client/workflow"
)

const NoAnalysisMessage = "No analysis data available. Please try scanning your resume again."

// Go navigates to a typed path.
func (a *App) Go(ctx context.Context, path string) error {
	if path == "" {
		a.println("Usage: go <path>")
		return nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.enter(ctx, router.Path(path), router.State{})
}

// enter navigates and renders whatever screen the guard let us onto.
func (a *App) enter(ctx context.Context, p router.Path, st router.State) error {
	route, _ := a.nav.Navigate(ctx, p, st)
	a.printf("== %s ==\n", route.Title)
	return a.render(ctx, route)
}

func (a *App) render(ctx context.Context, route router.Route) error {
	_, st := a.nav.Current()

	switch route.Path {
	case router.PathLanding:
		a.println("Match your resume against a job description and see what to improve.")
		if !a.isSignedIn() {
			a.println("Type 'signin' to sign in or 'signup' to create an account.")
		}
	case router.PathSignIn:
		a.println("Type 'signin' to sign in. Forgot your password? Type 'forgot'.")
	case router.PathSignUp:
		a.println("Type 'signup' to create an account.")
	case router.PathResetPassword:
		a.println("Type 'reset <token>' with the token from the reset email.")
	case router.PathUpload:
		return a.renderUpload()
	case router.PathAnalysis:
		return a.renderAnalysis(st)
	case router.PathScanHistory:
		return a.renderScanHistory(ctx)
	case router.PathCourseRecommendation, router.PathCourses:
		return a.renderCourses(ctx)
	case router.PathAdminDashboard:
		return a.renderDashboard(ctx)
	case router.PathStudentDetails:
		return a.renderStudents(ctx)
	default:
		a.println("Page not found. Type 'help' for commands.")
	}
	return nil
}

func (a *App) renderUpload() error {
	if a.workflow == nil {
		a.workflow = workflow.New(a.api, a.session, a.board, a.onAnalysisComplete, a.logger)
	}
	a.printWorkflow(a.workflow.Snapshot())
	return nil
}

func (a *App) renderAnalysis(st router.State) error {
	result, ok := a.board.Consume(st.Result)
	if !ok {
		a.println(NoAnalysisMessage)
		return nil
	}
	writeAnalysis(a.out, result)
	return nil
}

func (a *App) renderScanHistory(ctx context.Context) error {
	records, err := a.catalog.ScanHistory(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to fetch scan history. Please try again.")
	}
	writeScanHistory(a.out, records)
	return nil
}

func (a *App) renderCourses(ctx context.Context) error {
	page, err := a.catalog.Courses(ctx, a.courseFilter)
	if err != nil {
		return a.fail(ctx, err, "Failed to fetch courses. Please try again.")
	}
	writeCourses(a.out, page, a.courseFilter, a.isAdmin())
	return nil
}

func (a *App) renderDashboard(ctx context.Context) error {
	stats, err := a.catalog.DashboardStats(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load dashboard. Please try again.")
	}
	writeDashboard(a.out, stats)
	return nil
}

func (a *App) renderStudents(ctx context.Context) error {
	students, err := a.catalog.Students(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to fetch students. Please try again.")
	}
	writeStudents(a.out, students)
	return nil
}

// fail reports err to the user. A rejected credential has already ended the
// session, so the user is sent to sign in again.
func (a *App) fail(ctx context.Context, err error, fallback string) error {
	a.println(userMessage(err, fallback))
	if errors.Is(err, client.ErrUnauthorized) && !a.isSignedIn() {
		_ = a.enter(ctx, router.PathSignIn, router.State{})
	}
	return err
}

// userMessage picks the text shown for err: the validation message, the
// backend's detail, or fallback.
func userMessage(err error, fallback string) string {
	if errors.Is(err, services.ErrInvalidInput) {
		msg := strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
		if msg == "" {
			return fallback
		}
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	}
	if errors.Is(err, services.ErrNotSignedIn) {
		return "Please sign in to continue."
	}
	return client.ErrorMessage(err, fallback)
}
