package services

import (
	"context"

	"github.com/dmitrijs2005/foorum/internal/client/models"
)

// AuthResult is the outcome of a sign-in or sign-up: either a session or
// the reason there is none.
type AuthResult struct {
	Session *models.Session
	Err     error
}

// AuthTask is a sign-in or sign-up in flight. It starts pending and
// resolves exactly once after the simulated round trip. There is no way to
// cancel it.
type AuthTask struct {
	done   chan struct{}
	result AuthResult
}

func newAuthTask() *AuthTask {
	return &AuthTask{done: make(chan struct{})}
}

func (t *AuthTask) resolve(r AuthResult) {
	t.result = r
	close(t.done)
}

// Done is closed once the task has resolved.
func (t *AuthTask) Done() <-chan struct{} {
	return t.done
}

// Pending reports whether the task is still waiting on its delay.
func (t *AuthTask) Pending() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Result returns the outcome and true once resolved, or a zero value and
// false while pending.
func (t *AuthTask) Result() (AuthResult, bool) {
	if t.Pending() {
		return AuthResult{}, false
	}
	return t.result, true
}

// Wait blocks until the task resolves or ctx is done. Giving up on ctx does
// not stop the task; it still completes and updates the session.
func (t *AuthTask) Wait(ctx context.Context) (*models.Session, error) {
	select {
	case <-t.done:
		return t.result.Session, t.result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
