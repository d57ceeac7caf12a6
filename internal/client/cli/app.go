package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
	"github.com/dmitrijs2005/skillfit/internal/client/client"
	"github.com/dmitrijs2005/skillfit/internal/client/config"
	"github.com/dmitrijs2005/skillfit/internal/client/handoff"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/skillfit/internal/client/router"
	"github.com/dmitrijs2005/skillfit/internal/client/services"
	"github.com/dmitrijs2005/skillfit/internal/client/session"
	"github.com/dmitrijs2005/skillfit/internal/client/workflow"
	"github.com/dmitrijs2005/skillfit/internal/filex"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

// coursePageSize matches the catalogue page size of the web client.
const coursePageSize = 6

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	session *session.Store
	auth    services.AuthService
	catalog services.CatalogService
	api     client.Client
	board   *handoff.Board
	nav     *router.Navigator

	// workflow is the upload journey of the current visit to the upload
	// screen, nil elsewhere.
	workflow     *workflow.Workflow
	courseFilter models.CourseFilter

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, restores the persisted session and wires
// the services.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	db, err := metadata.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db))
	if err := store.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	api := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)

	app := newApp(cfg, logger, store, api, bufio.NewReader(os.Stdin), os.Stdout)
	app.db = db
	return app, nil
}

func newApp(cfg *config.Config, logger logging.Logger, store *session.Store, api client.Client, reader *bufio.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &App{
		config:       cfg,
		logger:       logger,
		session:      store,
		api:          api,
		auth:         services.NewAuthService(api, store, logger),
		catalog:      services.NewCatalogService(api, store, logger),
		board:        handoff.NewBoard(),
		nav:          router.NewNavigator(router.DefaultTable(), router.NewGuard(store), logger),
		courseFilter: models.CourseFilter{Page: 1, Limit: coursePageSize},
		reader:       reader,
		out:          out,
	}
	a.nav.OnLeave(router.PathUpload, a.discardWorkflow)
	return a
}

// Run shows the starting screen and runs the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to SkillFit (type 'help' for commands)")
	start := router.PathLanding
	if c, ok := a.session.CurrentClaims(); ok {
		start = router.LandingFor(c.Role)
	}
	_ = a.enter(ctx, start, router.State{})

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	a.discardWorkflow()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "close database", "error", err)
		}
	}
}

func (a *App) isSignedIn() bool {
	_, ok := a.session.CurrentClaims()
	return ok
}

func (a *App) isAdmin() bool {
	c, ok := a.session.CurrentClaims()
	return ok && c.Role == auth.RoleAdmin
}

// status is the prompt decoration: who is signed in and where they are.
func (a *App) status() string {
	route, _ := a.nav.Current()
	s := string(route.Path)
	if c, ok := a.session.CurrentClaims(); ok {
		s = fmt.Sprintf("%s %s %s", a.session.DisplayName(), c.Role, s)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) discardWorkflow() {
	if a.workflow != nil {
		a.workflow.Discard()
		a.workflow = nil
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
