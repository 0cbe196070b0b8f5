package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/foorum/internal/client/config"
	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires real services over a fresh SQLite file with no auth delay.
// input feeds the multi-line editor and the REPL.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "foorum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.NewNopLogger()
	store := storage.NewAdapter(db, logger)

	var out bytes.Buffer
	a := &App{
		db:          db,
		logger:      logger,
		store:       store,
		authService: services.NewAuthService(ctx, store, 0, logger),
		feedService: services.NewFeedService(store, logger),
		reader:      rdr(input),
		out:         &out,
	}
	a.feedService.Initialize(ctx)
	return a, &out
}

// stubInputs answers text prompts and password prompts in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestNewApp_OpensAndCloses(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "data", "foorum.db"),
		LogLevel:     "error",
	}

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "guest", a.getStatus())
	require.NoError(t, a.Close())
}

func TestNewApp_BadLogLevel(t *testing.T) {
	_, err := NewApp(context.Background(), &config.Config{DatabasePath: ":memory:", LogLevel: "loud"})
	require.Error(t, err)
}

func TestRun_ShowsFeedAndExits(t *testing.T) {
	capturePrintln(t)
	a, out := newTestApp(t, "exit\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "foo-rum")
	assert.Contains(t, out.String(), "Theresa Webb")
	assert.Contains(t, out.String(), "Jane Doe")
}

func TestWhoAmIAndStatus(t *testing.T) {
	a, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Not signed in.")

	stubInputs(t, []string{"test@user.com", "n"}, []string{"testpass"})
	require.NoError(t, a.SignIn(ctx))

	out.Reset()
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Test User")
	assert.Contains(t, out.String(), "TU")
	assert.Equal(t, "Welcome, Test User", a.getStatus())
}

func TestStorageCommand(t *testing.T) {
	a, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.Storage(ctx))
	assert.Contains(t, out.String(), "Nothing stored.")

	stubInputs(t, []string{"demo@example.com", "y"}, []string{"password123"})
	require.NoError(t, a.SignIn(ctx))

	out.Reset()
	require.NoError(t, a.Storage(ctx))
	assert.Contains(t, out.String(), services.KeyAuthUser)
	assert.Contains(t, out.String(), services.KeyAuthToken)
	assert.Contains(t, out.String(), KeyRememberMe)
}
