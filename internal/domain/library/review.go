package library

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

const maxReviewLength = 2000

// Review is a member's star rating and optional comment on a document.
// One review per user per document; repeat submissions update in place.
type Review struct {
	shared.BaseAggregateRoot
	DocumentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_doc_user"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_doc_user"`
	Score      int       `gorm:"not null"`
	Comment    string    `gorm:"type:varchar(2000)"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review with a 1-5 star score
func NewReview(documentID, authorID uuid.UUID, score int, comment string) (*Review, error) {
	if err := validateScore(score); err != nil {
		return nil, err
	}
	if len(comment) > maxReviewLength {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Review comment cannot exceed 2000 characters")
	}

	return &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DocumentID:        documentID,
		AuthorID:          authorID,
		Score:             score,
		Comment:           strings.TrimSpace(comment),
	}, nil
}

// Update replaces the score and comment
func (r *Review) Update(score int, comment string) error {
	if err := validateScore(score); err != nil {
		return err
	}
	if len(comment) > maxReviewLength {
		return shared.NewDomainError("INVALID_COMMENT", "Review comment cannot exceed 2000 characters")
	}

	r.Score = score
	r.Comment = strings.TrimSpace(comment)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

func validateScore(score int) error {
	if score < 1 || score > 5 {
		return shared.NewDomainError("INVALID_SCORE", "Review score must be between 1 and 5")
	}
	return nil
}
