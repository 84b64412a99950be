package api

import "github.com/discostamp/discostamp/blog/domain"

type CreatePostRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Slug    string `json:"slug,omitempty"`
}

// UpdatePostRequest is a partial update; absent fields stay untouched.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type PostsResponse struct {
	Posts []*domain.Post `json:"posts"`
}

type PostResponse struct {
	Post *domain.Post `json:"post"`
	HTML string       `json:"html,omitempty"`
}
