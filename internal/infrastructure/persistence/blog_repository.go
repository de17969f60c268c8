package persistence

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPostRepository implements PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// FindByID finds a post by its ID
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	var post blog.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindByPublicID finds a post by the id recovered from a URL slug
func (r *GormPostRepository) FindByPublicID(ctx context.Context, publicID string) (*blog.Post, error) {
	var post blog.Post
	if err := r.db.WithContext(ctx).First(&post, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindPage returns one cursor page of published posts, newest publication
// first. The cursor still encodes created_at so one codec serves every
// listing.
func (r *GormPostRepository) FindPage(ctx context.Context, req shared.PageRequest) ([]blog.Post, error) {
	q := r.db.WithContext(ctx).Model(&blog.Post{}).
		Where("status = ?", blog.PostStatusPublished)

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var posts []blog.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPageForEditors returns one cursor page including drafts and archived
// posts
func (r *GormPostRepository) FindPageForEditors(ctx context.Context, req shared.PageRequest) ([]blog.Post, error) {
	q := r.db.WithContext(ctx).Model(&blog.Post{})

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		q = q.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var posts []blog.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save creates or updates a post
func (r *GormPostRepository) Save(ctx context.Context, post *blog.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a post
func (r *GormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&blog.Post{}, "id = ?", id).Error
}

// GormCommentRepository implements CommentRepository using GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByID finds a comment by its ID
func (r *GormCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Comment, error) {
	var comment blog.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// FindByPost returns visible comments on a post, oldest first
func (r *GormCommentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]blog.Comment, error) {
	var comments []blog.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, blog.CommentStatusVisible).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Save creates or updates a comment
func (r *GormCommentRepository) Save(ctx context.Context, comment *blog.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete removes a comment
func (r *GormCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&blog.Comment{}, "id = ?", id).Error
}
