package blog

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/blog"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommentService handles reader comments on published posts
type CommentService struct {
	commentRepo blog.CommentRepository
	postRepo    blog.PostRepository
	logger      *zap.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo blog.CommentRepository, postRepo blog.PostRepository, logger *zap.Logger) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo, logger: logger}
}

// Add comments on a published post
func (s *CommentService) Add(ctx context.Context, input AddCommentInput) (*CommentInfo, error) {
	post, err := s.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		return nil, shared.NewDomainError("NOT_PUBLISHED", "Comments are only allowed on published posts")
	}

	comment, err := blog.NewComment(input.PostID, input.AuthorID, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		s.logger.Error("Failed to save comment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to post comment")
	}

	info := ToCommentInfo(comment)
	return &info, nil
}

// Update edits a comment. Only the author may edit.
func (s *CommentService) Update(ctx context.Context, input UpdateCommentInput) (*CommentInfo, error) {
	comment, err := s.commentRepo.FindByID(ctx, input.CommentID)
	if err != nil {
		return nil, err
	}
	if !comment.IsAuthor(input.EditorID) {
		return nil, shared.ErrForbidden
	}

	if err := comment.Update(input.Content); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		s.logger.Error("Failed to save comment update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update comment")
	}

	info := ToCommentInfo(comment)
	return &info, nil
}

// ListByPost returns the visible comments on a post, oldest first
func (s *CommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]CommentInfo, error) {
	comments, err := s.commentRepo.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	infos := make([]CommentInfo, len(comments))
	for i := range comments {
		infos[i] = ToCommentInfo(&comments[i])
	}
	return infos, nil
}

// Hide removes a comment from display (moderation)
func (s *CommentService) Hide(ctx context.Context, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := comment.Hide(); err != nil {
		return err
	}

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		s.logger.Error("Failed to save hidden comment", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hide comment")
	}

	s.logger.Info("Comment hidden", zap.String("comment_id", commentID.String()))
	return nil
}
