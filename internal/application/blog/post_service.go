package blog

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostService handles the editorial blog lifecycle. Writing is gated to
// administrators at the transport layer; reading is public.
type PostService struct {
	postRepo    blog.PostRepository
	commentRepo blog.CommentRepository
	logger      *zap.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo blog.PostRepository, commentRepo blog.CommentRepository, logger *zap.Logger) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo, logger: logger}
}

// Create adds a new draft post
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*PostInfo, error) {
	post, err := blog.NewPost(input.AuthorID, input.Title, input.Excerpt, input.Content)
	if err != nil {
		return nil, err
	}
	if input.CoverURL != "" {
		post.SetCover(input.CoverURL)
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		s.logger.Error("Failed to save post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create post")
	}

	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("slug", post.Slug))

	info := ToPostInfo(post)
	return &info, nil
}

// Update edits a post's title, excerpt, content and cover
func (s *PostService) Update(ctx context.Context, input UpdatePostInput) (*PostInfo, error) {
	post, err := s.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := post.Update(input.Title, input.Excerpt, input.Content); err != nil {
		return nil, err
	}
	if input.CoverURL != post.CoverURL {
		post.SetCover(input.CoverURL)
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		s.logger.Error("Failed to save post update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update post")
	}

	info := ToPostInfo(post)
	return &info, nil
}

// Publish makes a draft or archived post publicly visible
func (s *PostService) Publish(ctx context.Context, postID uuid.UUID) (*PostInfo, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Publish(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		s.logger.Error("Failed to save published post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to publish post")
	}

	s.logger.Info("Post published", zap.String("post_id", post.ID.String()))

	info := ToPostInfo(post)
	return &info, nil
}

// Archive takes a post offline
func (s *PostService) Archive(ctx context.Context, postID uuid.UUID) (*PostInfo, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Archive(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		s.logger.Error("Failed to save archived post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to archive post")
	}

	s.logger.Info("Post archived", zap.String("post_id", post.ID.String()))

	info := ToPostInfo(post)
	return &info, nil
}

// GetBySlug resolves a post from its URL slug. Drafts and archived
// posts are only visible to editors.
func (s *PostService) GetBySlug(ctx context.Context, slug string, editor bool) (*PostInfo, error) {
	publicID := shared.SlugID(slug)
	if publicID == "" {
		return nil, shared.ErrNotFound
	}

	post, err := s.postRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() && !editor {
		return nil, shared.ErrNotFound
	}

	info := ToPostInfo(post)
	return &info, nil
}

// List returns one cursor page of published posts
func (s *PostService) List(ctx context.Context, req shared.PageRequest) (*shared.Page[PostInfo], error) {
	req = req.Normalize()

	posts, err := s.postRepo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(posts, req.PageSize), nil
}

// ListForEditors returns one cursor page including drafts and archived
// posts (admin)
func (s *PostService) ListForEditors(ctx context.Context, req shared.PageRequest) (*shared.Page[PostInfo], error) {
	req = req.Normalize()

	posts, err := s.postRepo.FindPageForEditors(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(posts, req.PageSize), nil
}

// Delete removes a post and its comments are cascaded by the schema
func (s *PostService) Delete(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		s.logger.Error("Failed to delete post", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete post")
	}

	s.logger.Info("Post deleted", zap.String("post_id", postID.String()))
	return nil
}

func (s *PostService) toPage(posts []blog.Post, pageSize int) *shared.Page[PostInfo] {
	page := shared.NewPage(posts, pageSize, postCursor)
	infos := make([]PostInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToPostInfo(&page.Items[i])
	}
	return &shared.Page[PostInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}
