package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"github.com/navbug/compintel-cli/internal/client/config"
	"github.com/navbug/compintel-cli/internal/client/gateway"
	"github.com/navbug/compintel-cli/internal/client/repositories/credential"
	"github.com/navbug/compintel-cli/internal/client/services"
	"github.com/navbug/compintel-cli/internal/client/session"
	"github.com/navbug/compintel-cli/internal/client/storage"
	"github.com/navbug/compintel-cli/internal/logging"
)

// App wires the whole client together and hosts the REPL command handlers.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Store

	competitors   *services.CompetitorService
	updates       *services.UpdateService
	trends        *services.TrendService
	notifications *services.NotificationService
	dashboard     *services.DashboardService
	comparison    *services.ComparisonService

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp opens the local database and builds the service graph. The revoked
// credential hook is wired here: any 401 anywhere flows back into
// handleSessionExpired, which resets the session and tells the user.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{
		config: cfg,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}

	creds := credential.NewSQLiteStore(db)

	gw := gateway.New(cfg.APIBaseURL, creds,
		gateway.WithLogger(log),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		gateway.WithOnUnauthorized(app.handleSessionExpired),
	)

	app.session = session.New(gw, creds, log)
	app.competitors = services.NewCompetitorService(gw)
	app.updates = services.NewUpdateService(gw)
	app.trends = services.NewTrendService(gw)
	app.notifications = services.NewNotificationService(gw)
	app.dashboard = services.NewDashboardService(app.competitors, app.updates, app.trends)
	app.comparison = services.NewComparisonService(app.competitors, app.updates)

	return app, nil
}

// Run restores the session and enters the REPL. It blocks until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.log.Error(ctx, "error closing database", "error", err)
		}
	}()

	a.session.Bootstrap(ctx)

	if st := a.session.Snapshot(); st.Authenticated {
		printlnFn("Welcome back,", st.User.Name)
	} else {
		printlnFn("Not logged in. Use 'login' or 'register' to get started.")
	}

	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.statusLine, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

// statusLine feeds the REPL prompt.
func (a *App) statusLine() string {
	st := a.session.Snapshot()
	if st.Authenticated && st.User != nil {
		return st.User.Email
	}
	return "anonymous"
}

// handleSessionExpired runs whenever the backend rejects our credential. The
// persisted token is already gone by the time this fires; here the in-memory
// session is reset and the user is told to log in again. Rejected login
// attempts also arrive here, but the session is anonymous then and there is
// nothing to announce.
func (a *App) handleSessionExpired() {
	if !a.session.Snapshot().Authenticated {
		return
	}
	a.session.Logout()
	printlnFn("Session expired. Please login again.")
}
