package application

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/discostamp/discostamp/blog/domain"
)

// MarkdownRenderer turns post markdown content into HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// PostService validates caller input and orchestrates the post
// repository. Timestamps and slug bookkeeping live in the repository;
// the service owns the create/update contract.
type PostService struct {
	repo     domain.PostRepository
	markdown MarkdownRenderer
}

func NewPostService(repo domain.PostRepository, markdown MarkdownRenderer) *PostService {
	return &PostService{
		repo:     repo,
		markdown: markdown,
	}
}

// ListPosts returns posts most-recent-first, drafts included only when
// requested.
func (s *PostService) ListPosts(ctx context.Context, includeDrafts bool) ([]*domain.Post, error) {
	return s.repo.List(ctx, includeDrafts)
}

// GetPost returns the post with the given slug along with its content
// rendered to HTML.
func (s *PostService) GetPost(ctx context.Context, slug string) (*domain.Post, string, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}

	html, err := s.markdown.Render(post.Content)
	if err != nil {
		// The stored post is still usable; rendering is best effort.
		log.Error().Err(err).Str("slug", slug).Msg("failed to render post content")
		html = ""
	}

	return post, html, nil
}

// CreatePost validates the input and stores a new post. All four of
// title, summary, content and status are required; status must be in
// domain.
func (s *PostService) CreatePost(ctx context.Context, input domain.NewPost) (*domain.Post, error) {
	if input.Title == "" {
		return nil, &domain.ValidationError{Field: "title", Msg: "required"}
	}
	if input.Summary == "" {
		return nil, &domain.ValidationError{Field: "summary", Msg: "required"}
	}
	if input.Content == "" {
		return nil, &domain.ValidationError{Field: "content", Msg: "required"}
	}
	if input.Status == "" {
		return nil, &domain.ValidationError{Field: "status", Msg: "required"}
	}
	if !input.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Msg: "must be draft or published"}
	}

	return s.repo.Create(ctx, input)
}

// UpdatePost validates and applies a partial update to the post with
// the given slug. A status, when supplied, must be in domain.
func (s *PostService) UpdatePost(ctx context.Context, slug string, changes domain.PostChanges) (*domain.Post, error) {
	if changes.Status != nil && !changes.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Msg: "must be draft or published"}
	}

	return s.repo.Update(ctx, slug, changes)
}
