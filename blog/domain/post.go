package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPostNotFound is returned when no post matches the requested slug.
// It is a normal outcome callers are expected to branch on, not a failure.
var ErrPostNotFound = errors.New("post not found")

// Status is the publication state of a post.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post represents a blog post as persisted in the store.
// PublishedAt is set iff the post is published; it survives edits but is
// cleared when the post returns to draft.
type Post struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// NewPost carries the caller-supplied fields for creating a post.
// Slug is optional; when empty the slug is derived from Title.
type NewPost struct {
	Title   string
	Summary string
	Content string
	Status  Status
	Slug    string
}

// PostChanges carries a partial update. Nil fields are left untouched.
// Slug and CreatedAt are immutable and therefore not represented.
type PostChanges struct {
	Title   *string
	Summary *string
	Content *string
	Status  *Status
}

type PostRepository interface {
	// List returns posts sorted most-recent-first by publishedAt,
	// falling back to updatedAt for drafts. Drafts are excluded
	// unless includeDrafts is set.
	List(ctx context.Context, includeDrafts bool) ([]*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Create(ctx context.Context, input NewPost) (*Post, error)
	Update(ctx context.Context, slug string, changes PostChanges) (*Post, error)
}

// ValidationError describes caller input that fails the create/update
// contract. Handlers surface it as a 400.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
