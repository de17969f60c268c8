package library

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/library"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService handles document ratings. A user has at most one review
// per document; submitting again replaces the previous one.
type ReviewService struct {
	reviewRepo library.ReviewRepository
	docRepo    library.DocumentRepository
	logger     *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo library.ReviewRepository,
	docRepo library.DocumentRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, docRepo: docRepo, logger: logger}
}

// Submit creates or replaces the author's review of a document and
// keeps the document's rating aggregates in step
func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*ReviewInfo, error) {
	doc, err := s.docRepo.FindByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsPublished() {
		return nil, shared.NewDomainError("NOT_PUBLISHED", "Only published documents can be reviewed")
	}

	existing, err := s.reviewRepo.FindByDocumentAndAuthor(ctx, input.DocumentID, input.AuthorID)
	switch {
	case err == nil:
		previousScore := existing.Score
		if err := existing.Update(input.Score, input.Comment); err != nil {
			return nil, err
		}
		if err := s.reviewRepo.Save(ctx, existing); err != nil {
			s.logger.Error("Failed to save review update", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
		}

		// Replace the old score's contribution instead of adding a second one
		doc.RatingSum += int64(input.Score - previousScore)
		if err := s.docRepo.Save(ctx, doc); err != nil {
			s.logger.Warn("Failed to persist rating aggregates", zap.Error(err))
		}

		info := ToReviewInfo(existing)
		return &info, nil

	case errors.Is(err, shared.ErrNotFound):
		review, err := library.NewReview(input.DocumentID, input.AuthorID, input.Score, input.Comment)
		if err != nil {
			return nil, err
		}
		if err := s.reviewRepo.Save(ctx, review); err != nil {
			s.logger.Error("Failed to save review", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save review")
		}

		doc.RecordRating(input.Score)
		if err := s.docRepo.Save(ctx, doc); err != nil {
			s.logger.Warn("Failed to persist rating aggregates", zap.Error(err))
		}

		info := ToReviewInfo(review)
		return &info, nil

	default:
		return nil, err
	}
}

// ListByDocument returns all reviews on a document, newest first
func (s *ReviewService) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]ReviewInfo, error) {
	reviews, err := s.reviewRepo.FindByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	infos := make([]ReviewInfo, len(reviews))
	for i := range reviews {
		infos[i] = ToReviewInfo(&reviews[i])
	}
	return infos, nil
}
