package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/foorum/internal/client/config"
	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/filex"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// KeyRememberMe is the storage key the sign-in form owns.
const KeyRememberMe = "remember_me"

// pendingTick is how often a dot is printed while an auth task runs.
const pendingTick = 100 * time.Millisecond

// keyLister is implemented by stores that can report their contents.
type keyLister interface {
	Keys(ctx context.Context) map[string]int
}

type App struct {
	config      *config.Config
	db          *sql.DB
	logger      logging.Logger
	sync        func() error
	store       storage.Store
	authService services.AuthService
	feedService services.FeedService
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local database and builds the services. The stored
// session, if any, is restored here.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewConsoleLogger(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := storage.NewAdapter(db, logger)

	return &App{
		config:      c,
		db:          db,
		logger:      logger,
		sync:        logger.Sync,
		store:       store,
		authService: services.NewAuthService(ctx, store, c.AuthDelay, logger),
		feedService: services.NewFeedService(store, logger),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	if a.sync != nil {
		_ = a.sync()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Run shows the feed and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.feedService.Initialize(ctx)

	a.println(renderTitle() + " " + mutedStyle.Render("(type 'help' for commands)"))
	_ = a.Feed(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

func (a *App) getStatus() string {
	if s := a.authService.Current(); s != nil {
		return "Welcome, " + s.DisplayName
	}
	return "guest"
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(_ context.Context) error {
	a.println(renderSession(a.authService.Current()))
	return nil
}

// Storage prints what the local store holds.
func (a *App) Storage(ctx context.Context) error {
	l, ok := a.store.(keyLister)
	if !ok {
		a.println(mutedStyle.Render("Storage contents are not available."))
		return nil
	}
	a.println(renderStorage(l.Keys(ctx)))
	return nil
}
