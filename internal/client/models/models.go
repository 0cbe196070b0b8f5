// Package models defines the client-side data shapes: the compiled-in
// account record, the active session and the feed's posts.
package models

import "time"

// Account is one entry of the fixed sign-in table.
type Account struct {
	Email       string
	Password    string
	DisplayName string
}

// Session is the identity currently signed in on this client.
// The JSON layout is what gets persisted under auth_user.
type Session struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	Avatar      string    `json:"avatar,omitempty"`
}

// Valid reports whether a decoded session carries the fields a restored
// identity needs.
func (s *Session) Valid() bool {
	return s != nil && s.ID != "" && s.Email != ""
}

// Clone returns a copy the caller may keep; nil stays nil.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Post is one feed item. Posts are never edited after they are created.
type Post struct {
	ID             string `json:"id"`
	AuthorID       string `json:"userId"`
	AuthorName     string `json:"userName"`
	AuthorAvatar   string `json:"userAvatar,omitempty"`
	Content        string `json:"content"`
	Emoji          string `json:"emoji,omitempty"`
	TimestampLabel string `json:"timestamp"`
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
}

// Draft is what the editor hands to the feed on publish.
type Draft struct {
	Content string
	Emoji   string
}
