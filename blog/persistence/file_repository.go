package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/discostamp/discostamp/blog/domain"
)

var _ domain.PostRepository = (*FilePostRepository)(nil)

// FilePostRepository implements domain.PostRepository over a single
// JSON file holding an array of posts. Every operation reads the whole
// array, mutates it in memory and rewrites the file. The mutex
// serializes operations so concurrent writers cannot lose updates;
// construct one repository per file path.
type FilePostRepository struct {
	path  string
	clock clockwork.Clock
	mu    sync.Mutex
}

// NewFilePostRepository creates a repository backed by the JSON file at
// path. The file and its parent directory are created lazily on first
// access.
func NewFilePostRepository(path string, clock clockwork.Clock) *FilePostRepository {
	return &FilePostRepository{
		path:  path,
		clock: clock,
	}
}

// List returns posts sorted descending by publishedAt, falling back to
// updatedAt for unpublished posts. Drafts are filtered out unless
// includeDrafts is set.
func (r *FilePostRepository) List(ctx context.Context, includeDrafts bool) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Post, 0, len(posts))
	for _, p := range posts {
		if includeDrafts || p.Status == domain.StatusPublished {
			filtered = append(filtered, p)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return sortKey(filtered[i]).After(sortKey(filtered[j]))
	})

	return filtered, nil
}

// GetBySlug returns the post with the exact slug, drafts included.
func (r *FilePostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}

	return nil, domain.ErrPostNotFound
}

// Create appends a new post and rewrites the store. The slug is derived
// from the explicit slug if supplied, otherwise from the title; slugs
// that collide with an existing post get a -1, -2, ... suffix until
// unique.
func (r *FilePostRepository) Create(ctx context.Context, input domain.NewPost) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	base := input.Slug
	if base == "" {
		base = input.Title
	}
	baseSlug := domain.Slugify(base)
	if baseSlug == "" {
		baseSlug = domain.FallbackSlug()
	}

	slug := baseSlug
	for counter := 1; slugTaken(posts, slug); counter++ {
		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}

	now := r.clock.Now().UTC()
	post := &domain.Post{
		Slug:        slug,
		Title:       input.Title,
		Summary:     input.Summary,
		Content:     input.Content,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		PublishedAt: publishedAt(input.Status, nil, now),
	}

	posts = append(posts, post)
	if err := r.persist(posts); err != nil {
		return nil, err
	}

	log.Debug().Str("slug", post.Slug).Msg("post created")

	return post, nil
}

// Update merges the supplied changes over the stored post and rewrites
// the store. Slug and createdAt are immutable; updatedAt is refreshed
// and publishedAt follows the publish rule: kept while the post stays
// published, stamped on the transition into published, cleared
// otherwise.
func (r *FilePostRepository) Update(ctx context.Context, slug string, changes domain.PostChanges) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	var post *domain.Post
	for _, p := range posts {
		if p.Slug == slug {
			post = p
			break
		}
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if changes.Title != nil {
		post.Title = *changes.Title
	}
	if changes.Summary != nil {
		post.Summary = *changes.Summary
	}
	if changes.Content != nil {
		post.Content = *changes.Content
	}
	if changes.Status != nil {
		post.Status = *changes.Status
	}

	now := r.clock.Now().UTC()
	post.UpdatedAt = now
	post.PublishedAt = publishedAt(post.Status, post.PublishedAt, now)

	if err := r.persist(posts); err != nil {
		return nil, err
	}

	log.Debug().Str("slug", post.Slug).Str("status", string(post.Status)).Msg("post updated")

	return post, nil
}

// load reads the full post array, creating an empty store file first if
// none exists. A malformed file fails the operation; it is never
// auto-repaired.
func (r *FilePostRepository) load() ([]*domain.Post, error) {
	if err := r.ensureStore(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read post store: %w", err)
	}

	var posts []*domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode post store %s: %w", r.path, err)
	}

	return posts, nil
}

func (r *FilePostRepository) persist(posts []*domain.Post) error {
	raw, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode post store: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0644); err != nil {
		return fmt.Errorf("write post store: %w", err)
	}

	return nil
}

func (r *FilePostRepository) ensureStore() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat post store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create post store directory: %w", err)
	}

	if err := os.WriteFile(r.path, []byte("[]"), 0644); err != nil {
		return fmt.Errorf("create post store: %w", err)
	}

	log.Debug().Str("path", r.path).Msg("created empty post store")

	return nil
}

// publishedAt applies the publish rule: a published post keeps its
// existing timestamp or gains one now; any other status clears it.
func publishedAt(status domain.Status, current *time.Time, now time.Time) *time.Time {
	if status != domain.StatusPublished {
		return nil
	}
	if current != nil {
		return current
	}
	return &now
}

func slugTaken(posts []*domain.Post, slug string) bool {
	for _, p := range posts {
		if p.Slug == slug {
			return true
		}
	}
	return false
}

// sortKey orders the listing: publishedAt when present, else updatedAt.
func sortKey(p *domain.Post) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.UpdatedAt
}
