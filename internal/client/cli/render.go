package cli

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/foorum/internal/client/models"
)

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorMuted   = lipgloss.Color("#6b7280")
	colorBorder  = lipgloss.Color("#dce0e5")
	colorError   = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#8BC34A")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1).Width(64)
	avatarStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary).Padding(0, 1)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// Initials takes the first letter of each word, upper-cased, at most two.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		if n == 2 {
			break
		}
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

func renderTitle() string {
	return titleStyle.Render("foo-rum")
}

// renderPost draws one feed card. Stored content is HTML-escaped; it is
// shown as the author typed it since the terminal does not interpret markup.
func renderPost(p models.Post) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatarStyle.Render(Initials(p.AuthorName)),
		" ",
		nameStyle.Render(p.AuthorName),
		" ",
		mutedStyle.Render(p.TimestampLabel),
	)

	body := html.UnescapeString(p.Content)
	if p.Emoji != "" {
		body = p.Emoji + " " + body
	}

	footer := mutedStyle.Render(fmt.Sprintf("#%s  ♥ %d  💬 %d", p.ID, p.Likes, p.Comments))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}

func renderFeed(posts []models.Post) string {
	if len(posts) == 0 {
		return mutedStyle.Render("No posts yet.")
	}
	cards := make([]string, len(posts))
	for i, p := range posts {
		cards[i] = renderPost(p)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderSession(s *models.Session) string {
	if s == nil {
		return mutedStyle.Render("Not signed in.")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		avatarStyle.Render(Initials(s.DisplayName)),
		" ",
		nameStyle.Render(s.DisplayName),
		" ",
		mutedStyle.Render("<"+s.Email+">"),
	)
}

// renderFieldErrors lists form errors in the order the fields were asked.
func renderFieldErrors(errs map[string]string, order ...string) string {
	lines := make([]string, 0, len(errs))
	seen := make(map[string]bool, len(order))
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			lines = append(lines, errorStyle.Render("• "+msg))
			seen[f] = true
		}
	}

	var rest []string
	for f := range errs {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		lines = append(lines, errorStyle.Render("• "+errs[f]))
	}

	return strings.Join(lines, "\n")
}

func renderStorage(sizes map[string]int) string {
	if len(sizes) == 0 {
		return mutedStyle.Render("Nothing stored.")
	}
	keys := make([]string, 0, len(sizes))
	for k := range sizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%-12s %6d bytes", k, sizes[k])
	}
	return strings.Join(lines, "\n")
}
