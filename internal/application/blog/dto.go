package blog

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// CreatePostInput contains input for creating a draft post
type CreatePostInput struct {
	AuthorID uuid.UUID
	Title    string
	Excerpt  string
	Content  string
	CoverURL string
}

// UpdatePostInput contains input for editing a post
type UpdatePostInput struct {
	PostID   uuid.UUID
	Title    string
	Excerpt  string
	Content  string
	CoverURL string
}

// AddCommentInput contains input for commenting on a post
type AddCommentInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

// UpdateCommentInput contains input for editing a comment
type UpdateCommentInput struct {
	CommentID uuid.UUID
	EditorID  uuid.UUID
	Content   string
}

// PostInfo is the public projection of a blog post
type PostInfo struct {
	ID          uuid.UUID  `json:"id"`
	PublicID    string     `json:"public_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	CoverURL    string     `json:"cover_url,omitempty"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToPostInfo maps a post aggregate to its projection
func ToPostInfo(p *blog.Post) PostInfo {
	return PostInfo{
		ID:          p.ID,
		PublicID:    p.PublicID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		CoverURL:    p.CoverURL,
		AuthorID:    p.AuthorID,
		Status:      string(p.Status),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CommentInfo is the projection of a post comment
type CommentInfo struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCommentInfo maps a comment to its projection
func ToCommentInfo(c *blog.Comment) CommentInfo {
	return CommentInfo{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// postCursor builds the keyset cursor for a post row
func postCursor(p blog.Post) shared.Cursor {
	return shared.EncodeCursor(p.CreatedAt, p.ID)
}
