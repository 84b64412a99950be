package application

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/discostamp/discostamp/blog/domain"
	"github.com/discostamp/discostamp/blog/persistence"
)

func newTestService(t *testing.T) *PostService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blog-posts.json")
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	repo := persistence.NewFilePostRepository(path, clock)

	return NewPostService(repo, NewMarkdownRenderer())
}

func TestPostService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.NewPost
		wantField string
	}{
		{
			name:      "Missing title",
			input:     domain.NewPost{Summary: "s", Content: "c", Status: domain.StatusDraft},
			wantField: "title",
		},
		{
			name:      "Missing summary",
			input:     domain.NewPost{Title: "t", Content: "c", Status: domain.StatusDraft},
			wantField: "summary",
		},
		{
			name:      "Missing content",
			input:     domain.NewPost{Title: "t", Summary: "s", Status: domain.StatusDraft},
			wantField: "content",
		},
		{
			name:      "Missing status",
			input:     domain.NewPost{Title: "t", Summary: "s", Content: "c"},
			wantField: "status",
		},
		{
			name:      "Status out of domain",
			input:     domain.NewPost{Title: "t", Summary: "s", Content: "c", Status: "archived"},
			wantField: "status",
		},
	}

	svc := newTestService(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tt.input)

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("CreatePost error = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestPostService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, domain.NewPost{
		Title:   "Hello World",
		Summary: "s",
		Content: "Some **bold** text.",
		Status:  domain.StatusDraft,
	})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if created.Slug != "hello-world" {
		t.Errorf("Slug = %q, want %q", created.Slug, "hello-world")
	}

	post, html, err := svc.GetPost(ctx, "hello-world")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if post.Title != "Hello World" {
		t.Errorf("Title = %q, want %q", post.Title, "Hello World")
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("rendered HTML missing markdown conversion: %q", html)
	}
}

func TestPostService_GetNotFound(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.GetPost(context.Background(), "missing")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("GetPost error = %v, want ErrPostNotFound", err)
	}
}

func TestPostService_UpdateValidation(t *testing.T) {
	svc := newTestService(t)

	bogus := domain.Status("archived")
	_, err := svc.UpdatePost(context.Background(), "any", domain.PostChanges{Status: &bogus})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("UpdatePost error = %v, want ValidationError", err)
	}
	if validationErr.Field != "status" {
		t.Errorf("ValidationError.Field = %q, want %q", validationErr.Field, "status")
	}
}

func TestPostService_UpdateNotFound(t *testing.T) {
	svc := newTestService(t)

	newTitle := "whatever"
	_, err := svc.UpdatePost(context.Background(), "missing", domain.PostChanges{Title: &newTitle})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("UpdatePost error = %v, want ErrPostNotFound", err)
	}
}
