package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/services"
)

// Post opens the editor. A session is required; without one the sign-in
// modal is offered first.
func (a *App) Post(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return services.ErrAuthRequired
	}

	content, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}

	post, ok := a.feedService.Publish(ctx, models.Draft{Content: content}, a.authService.Current())
	if !ok {
		a.println(mutedStyle.Render("Nothing to publish."))
		return nil
	}

	a.println(renderPost(*post))
	return nil
}

// Feed prints every post, newest first.
func (a *App) Feed(_ context.Context) error {
	a.println(renderFeed(a.feedService.Posts()))
	return nil
}

// Interact runs one of the placeholder controls. Without a session it only
// offers the sign-in modal; the action itself is not replayed.
func (a *App) Interact(ctx context.Context, action services.Action) error {
	err := a.feedService.Interact(ctx, action, a.authService.Current())
	if errors.Is(err, services.ErrAuthRequired) {
		a.requireAuth(ctx)
		return err
	}
	if err != nil {
		return err
	}

	a.println(actionLabel(action) + " - function not implemented")
	return nil
}

// actionLabel upper-cases the first letter: "emoji picker" -> "Emoji picker".
func actionLabel(action services.Action) string {
	s := string(action)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
