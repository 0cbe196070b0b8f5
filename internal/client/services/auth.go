// Package services holds the client's application services. AuthService
// owns the current session and FeedService owns the posts; both keep their
// state in memory and write it through to a storage.Store.
package services

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/common"
	"github.com/dmitrijs2005/foorum/internal/logging"
	"github.com/google/uuid"
)

// Storage keys owned by the auth service.
const (
	KeyAuthUser  = "auth_user"
	KeyAuthToken = "auth_token"
)

// TokenPrefix is prepended to the session id to form the stored token.
const TokenPrefix = "mock-token-"

// DefaultAuthDelay is the simulated network round trip.
const DefaultAuthDelay = 500 * time.Millisecond

// accounts is the sign-in table. Sign-up never adds to it.
var accounts = []models.Account{
	{Email: "demo@example.com", Password: "password123", DisplayName: "Demo User"},
	{Email: "test@user.com", Password: "testpass", DisplayName: "Test User"},
}

// Accounts returns a copy of the sign-in table.
func Accounts() []models.Account {
	return append([]models.Account(nil), accounts...)
}

// AuthService defines authentication operations for the client.
//
// Contract:
//   - SignIn: match email and password exactly against the account table,
//     after the simulated delay. Fails only with ErrInvalidCredentials.
//   - SignUp: fabricate a session for any name/email after the same delay.
//     Never fails and never checks the table.
//   - Restore: trust whatever well-formed session is stored.
//   - SignOut: forget the session and its stored keys. Idempotent.
//   - Current, IsAuthenticated, Loading: in-memory reads.
//
// Sessions handed out are copies; the service is the only writer.
type AuthService interface {
	SignIn(ctx context.Context, email string, password []byte) *AuthTask
	SignUp(ctx context.Context, name, email string, password []byte) *AuthTask
	Restore(ctx context.Context) *models.Session
	SignOut(ctx context.Context)
	Current() *models.Session
	IsAuthenticated() bool
	Loading() bool
}

// AuthOption customises an auth service, mostly for tests.
type AuthOption func(*authService)

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString for session ids.
func WithIDGenerator(newID func() string) AuthOption {
	return func(s *authService) { s.newID = newID }
}

type authService struct {
	store  storage.Store
	logger logging.Logger
	delay  time.Duration
	now    func() time.Time
	newID  func() string

	mu       sync.RWMutex
	current  *models.Session
	inflight int
}

// NewAuthService builds the service and restores any stored session.
func NewAuthService(ctx context.Context, store storage.Store, delay time.Duration, logger logging.Logger, opts ...AuthOption) AuthService {
	s := &authService{
		store:  store,
		logger: logger.With("component", "auth"),
		delay:  delay,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restore(ctx)
	return s
}

func (s *authService) SignIn(ctx context.Context, email string, password []byte) *AuthTask {
	pw := append([]byte(nil), password...)

	return s.run(ctx, "sign-in", email, func() (*models.Session, error) {
		defer common.WipeByteArray(pw)

		account, ok := findAccount(email, pw)
		if !ok {
			return nil, ErrInvalidCredentials
		}
		return s.newSession(account.DisplayName, account.Email), nil
	})
}

// SignUp ignores the password: the new account lives only as this
// client's session.
func (s *authService) SignUp(ctx context.Context, name, email string, _ []byte) *AuthTask {
	return s.run(ctx, "sign-up", email, func() (*models.Session, error) {
		return s.newSession(name, email), nil
	})
}

// run starts the delayed operation. The caller's cancellation is detached:
// once started, the operation always completes.
func (s *authService) run(ctx context.Context, op, email string, resolve func() (*models.Session, error)) *AuthTask {
	ctx = context.WithoutCancel(ctx)
	task := newAuthTask()

	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()

	go func() {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		<-timer.C

		session, err := resolve()
		if err == nil {
			s.establish(ctx, session)
			s.logger.Info(ctx, op+" succeeded", "email", email, "session_id", session.ID)
		} else {
			s.logger.Info(ctx, op+" failed", "email", email, "error", err)
		}

		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()

		task.resolve(AuthResult{Session: session.Clone(), Err: err})
	}()

	return task
}

func (s *authService) newSession(name, email string) *models.Session {
	return &models.Session{
		ID:          s.newID(),
		Email:       email,
		DisplayName: name,
		CreatedAt:   s.now().UTC(),
	}
}

// establish makes session current and writes it with its token in one go.
func (s *authService) establish(ctx context.Context, session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = session
	s.store.Write(ctx,
		storage.Entry{Key: KeyAuthUser, Value: session},
		storage.Entry{Key: KeyAuthToken, Value: TokenPrefix + session.ID},
	)
}

func (s *authService) Restore(ctx context.Context) *models.Session {
	session := storage.Get[*models.Session](ctx, s.store, KeyAuthUser, nil)
	if session != nil && !session.Valid() {
		s.logger.Warn(ctx, "stored session is incomplete, ignoring it")
		session = nil
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	if session != nil {
		s.logger.Debug(ctx, "session restored", "session_id", session.ID)
	}
	return session.Clone()
}

func (s *authService) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.store.Remove(ctx, KeyAuthUser, KeyAuthToken)
}

func (s *authService) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *authService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *authService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// findAccount compares both fields byte for byte.
func findAccount(email string, password []byte) (models.Account, bool) {
	for _, acc := range accounts {
		emailOK := subtle.ConstantTimeCompare([]byte(acc.Email), []byte(email)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(acc.Password), password) == 1
		if emailOK && passOK {
			return acc, true
		}
	}
	return models.Account{}, false
}
