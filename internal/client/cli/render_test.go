package cli

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Demo User", "DU"},
		{"Theresa Webb", "TW"},
		{"jane doe", "JD"},
		{"Anonymous", "A"},
		{"Mary Ann Smith", "MA"},
		{"  spaced   out  ", "SO"},
		{"émile zola", "ÉZ"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestRenderPost(t *testing.T) {
	out := renderPost(models.Post{
		ID:             "42",
		AuthorName:     "Demo User",
		Content:        "&lt;b&gt;hi&lt;/b&gt;",
		Emoji:          "🤙",
		TimestampLabel: "Just now",
		Likes:          3,
	})

	assert.Contains(t, out, "DU")
	assert.Contains(t, out, "Demo User")
	assert.Contains(t, out, "Just now")
	assert.Contains(t, out, "<b>hi</b>")
	assert.Contains(t, out, "🤙")
	assert.Contains(t, out, "#42")
}

func TestRenderFeed_Order(t *testing.T) {
	out := renderFeed([]models.Post{
		{ID: "2", AuthorName: "B", Content: "newer"},
		{ID: "1", AuthorName: "A", Content: "older"},
	})
	assert.Less(t, strings.Index(out, "newer"), strings.Index(out, "older"))

	assert.Contains(t, renderFeed(nil), "No posts yet.")
}

func TestRenderSession(t *testing.T) {
	assert.Contains(t, renderSession(nil), "Not signed in.")

	out := renderSession(&models.Session{DisplayName: "Test User", Email: "test@user.com"})
	assert.Contains(t, out, "TU")
	assert.Contains(t, out, "<test@user.com>")
}

func TestRenderFieldErrors_FollowsFieldOrder(t *testing.T) {
	out := renderFieldErrors(map[string]string{
		"password": "second",
		"email":    "first",
		"zzz":      "last",
	}, "email", "password")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
	assert.Contains(t, lines[2], "last")
}

func TestRenderStorage(t *testing.T) {
	assert.Contains(t, renderStorage(nil), "Nothing stored.")

	out := renderStorage(map[string]int{"posts": 120, "auth_token": 20})
	assert.Less(t, strings.Index(out, "auth_token"), strings.Index(out, "posts"))
}
