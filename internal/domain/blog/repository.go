package blog

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// PostRepository defines the interface for blog post persistence
type PostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// FindByPublicID resolves the id recovered from a URL slug
	FindByPublicID(ctx context.Context, publicID string) (*Post, error)

	// FindPage returns one cursor page of published posts ordered by
	// published_at DESC, id DESC. Search matches title and excerpt.
	FindPage(ctx context.Context, req shared.PageRequest) ([]Post, error)

	// FindPageForEditors behaves like FindPage but includes drafts and
	// archived posts, ordered by created_at DESC, id DESC
	FindPageForEditors(ctx context.Context, req shared.PageRequest) ([]Post, error)

	Save(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// FindByPost returns visible comments on a post, oldest first
	FindByPost(ctx context.Context, postID uuid.UUID) ([]Comment, error)

	Save(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
