package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_CancelledAuthLeavesFeed(t *testing.T) {
	a, out := newTestApp(t, "Hello\n\n")

	stubInputs(t, []string{""}, nil)
	err := a.Post(context.Background())

	require.ErrorIs(t, err, services.ErrAuthRequired)
	assert.Contains(t, out.String(), "Please sign in to continue.")
	assert.Len(t, a.feedService.Posts(), 3)
}

func TestPost_SignInThenPublish(t *testing.T) {
	a, out := newTestApp(t, "Hello <b>world</b>\n\n")

	stubInputs(t, []string{"i", "demo@example.com", "n"}, []string{"password123"})
	require.NoError(t, a.Post(context.Background()))

	posts := a.feedService.Posts()
	require.Len(t, posts, 4)
	assert.Equal(t, "Demo User", posts[0].AuthorName)
	assert.Equal(t, "Hello &lt;b&gt;world&lt;/b&gt;", posts[0].Content)
	assert.Contains(t, out.String(), "Hello <b>world</b>")
}

func TestPost_SignUpFromModal(t *testing.T) {
	a, _ := newTestApp(t, "first post\n\n")

	stubInputs(t, []string{"up", "New Person", "new@person.io", "y"}, []string{"Password1", "Password1"})
	require.NoError(t, a.Post(context.Background()))

	assert.Equal(t, "New Person", a.feedService.Posts()[0].AuthorName)
}

func TestPost_BlankContent(t *testing.T) {
	a, out := newTestApp(t, "   \n\n")

	stubInputs(t, []string{"demo@example.com", "n"}, []string{"password123"})
	require.NoError(t, a.SignIn(context.Background()))

	require.NoError(t, a.Post(context.Background()))
	assert.Contains(t, out.String(), "Nothing to publish.")
	assert.Len(t, a.feedService.Posts(), 3)
}

func TestFeed_NewestFirst(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, a.Feed(context.Background()))
	assert.Contains(t, out.String(), "Theresa Webb")
	assert.Contains(t, out.String(), "5 mins ago")
}

func TestInteract(t *testing.T) {
	a, out := newTestApp(t, "")
	ctx := context.Background()

	t.Run("without session offers sign-in only", func(t *testing.T) {
		stubInputs(t, []string{"i", "demo@example.com", "n"}, []string{"password123"})

		err := a.Interact(ctx, services.ActionLike)
		require.ErrorIs(t, err, services.ErrAuthRequired)
		assert.True(t, a.isLoggedIn())
		assert.NotContains(t, out.String(), "function not implemented")
	})

	t.Run("with session", func(t *testing.T) {
		out.Reset()
		require.NoError(t, a.Interact(ctx, services.ActionEmojiPicker))
		assert.Contains(t, out.String(), "Emoji picker - function not implemented")
	})
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Like", actionLabel(services.ActionLike))
	assert.Equal(t, "Attach image", actionLabel(services.ActionAttachImage))
	assert.Equal(t, "", actionLabel(""))
}
