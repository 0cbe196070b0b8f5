package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/sanitize"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/logging"
)

// KeyPosts is the storage key owned by the feed service.
const KeyPosts = "posts"

// Author and label used for posts published without a session.
const (
	AnonymousID    = "anonymous"
	AnonymousName  = "Anonymous"
	JustNowLabel   = "Just now"
	seedPostLabel  = "5 mins ago"
	seedPostLipsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."
)

// Action is a post or editor control that is not implemented yet.
type Action string

const (
	ActionLike         Action = "like"
	ActionComment      Action = "comment"
	ActionShare        Action = "share"
	ActionEmojiPicker  Action = "emoji picker"
	ActionBold         Action = "bold"
	ActionItalic       Action = "italic"
	ActionUnderline    Action = "underline"
	ActionBulletList   Action = "bullet list"
	ActionNumberedList Action = "numbered list"
	ActionQuote        Action = "quote"
	ActionCodeSnippet  Action = "code snippet"
	ActionDeleteDraft  Action = "delete draft"
	ActionAttachImage  Action = "attach image"
	ActionAttachVideo  Action = "attach video"
	ActionAttachLink   Action = "attach link"
)

// Actions lists every placeholder action in toolbar order.
var Actions = []Action{
	ActionLike, ActionComment, ActionShare,
	ActionEmojiPicker, ActionBold, ActionItalic, ActionUnderline,
	ActionBulletList, ActionNumberedList, ActionQuote, ActionCodeSnippet,
	ActionDeleteDraft, ActionAttachImage, ActionAttachVideo, ActionAttachLink,
}

// ParseAction maps user input to a known action.
func ParseAction(s string) (Action, bool) {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Actions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// SeedPosts returns the starter feed shown when nothing is stored.
func SeedPosts() []models.Post {
	return []models.Post{
		{ID: "1", AuthorID: "user1", AuthorName: "Theresa Webb", Content: seedPostLipsum, Emoji: "😊", TimestampLabel: seedPostLabel},
		{ID: "2", AuthorID: "user2", AuthorName: "John Doe", Content: seedPostLipsum, Emoji: "🤙", TimestampLabel: seedPostLabel},
		{ID: "3", AuthorID: "user3", AuthorName: "Jane Doe", Content: seedPostLipsum, Emoji: "💀", TimestampLabel: seedPostLabel},
	}
}

// FeedService owns the ordered list of posts.
//
// Initialize loads the stored feed, or the seed set when there is none,
// exactly once. Publish prepends a sanitised post and writes the whole feed
// through. Posts returns a copy, newest first. Interact gates the
// placeholder controls on a session.
type FeedService interface {
	Initialize(ctx context.Context) []models.Post
	Publish(ctx context.Context, draft models.Draft, session *models.Session) (*models.Post, bool)
	Posts() []models.Post
	Interact(ctx context.Context, action Action, session *models.Session) error
}

// FeedOption customises a feed service.
type FeedOption func(*feedService)

// WithFeedClock replaces time.Now for post ids.
func WithFeedClock(now func() time.Time) FeedOption {
	return func(s *feedService) { s.now = now }
}

type feedService struct {
	store  storage.Store
	logger logging.Logger
	now    func() time.Time

	mu          sync.Mutex
	posts       []models.Post
	initialized bool
	lastID      int64
}

func NewFeedService(store storage.Store, logger logging.Logger, opts ...FeedOption) FeedService {
	s := &feedService{
		store:  store,
		logger: logger.With("component", "feed"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *feedService) Initialize(ctx context.Context) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initLocked(ctx)
	return clonePosts(s.posts)
}

func (s *feedService) initLocked(ctx context.Context) {
	if s.initialized {
		return
	}
	s.initialized = true

	stored := storage.Get[[]models.Post](ctx, s.store, KeyPosts, nil)
	if len(stored) > 0 {
		s.posts = stored
		s.logger.Debug(ctx, "feed restored", "posts", len(stored))
	} else {
		s.posts = SeedPosts()
		s.logger.Debug(ctx, "feed seeded", "posts", len(s.posts))
	}

	for _, p := range s.posts {
		if n, err := strconv.ParseInt(p.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
}

func (s *feedService) Publish(ctx context.Context, draft models.Draft, session *models.Session) (*models.Post, bool) {
	content := strings.TrimSpace(draft.Content)
	if content == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.initLocked(ctx)

	post := models.Post{
		ID:             strconv.FormatInt(s.nextID(), 10),
		AuthorID:       AnonymousID,
		AuthorName:     AnonymousName,
		Content:        sanitize.Text(content),
		Emoji:          draft.Emoji,
		TimestampLabel: JustNowLabel,
	}
	if session != nil {
		post.AuthorID = session.ID
		post.AuthorName = session.DisplayName
		post.AuthorAvatar = session.Avatar
	}

	s.posts = append([]models.Post{post}, s.posts...)
	storage.Set(ctx, s.store, KeyPosts, s.posts)

	s.logger.Info(ctx, "post published", "post_id", post.ID, "author_id", post.AuthorID)
	return &post, true
}

// nextID is the current Unix millisecond, bumped past the last id handed
// out or restored.
func (s *feedService) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *feedService) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.posts)
}

func (s *feedService) Interact(ctx context.Context, action Action, session *models.Session) error {
	if session == nil {
		return ErrAuthRequired
	}
	s.logger.Info(ctx, "function not implemented", "action", string(action), "session_id", session.ID)
	return nil
}

func clonePosts(posts []models.Post) []models.Post {
	if posts == nil {
		return []models.Post{}
	}
	return append([]models.Post(nil), posts...)
}
