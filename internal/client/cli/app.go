package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lotterich/cli/internal/client/api"
	"github.com/lotterich/cli/internal/client/collection"
	"github.com/lotterich/cli/internal/client/config"
	"github.com/lotterich/cli/internal/client/services"
	"github.com/lotterich/cli/internal/client/session"
	"github.com/lotterich/cli/internal/logging"
)

// App holds everything the interactive client needs: wired services, the
// persisted session, the list-view state and the input reader.
type App struct {
	config  *config.Config
	log     logging.Logger
	sess    *session.Session
	auth    services.AuthService
	tickets services.TicketService
	draws   services.DrawService
	view    *collection.View
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the application from configuration. A valid token on disk
// restores the previous session; a stale one is cleared silently.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.NewStore(c.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	sess := session.New(store)
	if err := sess.Restore(); err != nil {
		log.Warn(context.Background(), "session restore failed", "error", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sess.Token)

	return &App{
		config:  c,
		log:     log,
		sess:    sess,
		auth:    services.NewAuthService(apiClient, sess),
		tickets: services.NewTicketService(apiClient),
		draws:   services.NewDrawService(apiClient),
		view:    collection.NewView(c.PageSize),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.sess.IsAdmin()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.sess.User().Name
	if a.isAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to LotteRich CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Signed in as %s", a.sess.User().Name))
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
