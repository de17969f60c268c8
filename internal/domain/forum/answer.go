package forum

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// AnswerStatus represents the visibility of an answer
type AnswerStatus string

const (
	AnswerStatusVisible AnswerStatus = "visible"
	AnswerStatusHidden  AnswerStatus = "hidden"
)

// Answer is a reply to a question. Rows are keyed by question id; the API
// returns them nested under their question.
type Answer struct {
	shared.BaseAggregateRoot
	QuestionID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	AuthorID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	Content        string       `gorm:"type:text;not null"`
	ExpertVerified bool         `gorm:"not null;default:false"`
	VerifiedBy     *uuid.UUID   `gorm:"type:uuid"`
	Status         AnswerStatus `gorm:"type:varchar(20);not null;default:'visible'"`
}

// TableName returns the table name for GORM
func (Answer) TableName() string {
	return "answers"
}

// NewAnswer creates a visible answer to a question
func NewAnswer(questionID, authorID uuid.UUID, content string) (*Answer, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	answer := &Answer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QuestionID:        questionID,
		AuthorID:          authorID,
		Content:           content,
		Status:            AnswerStatusVisible,
	}

	answer.AddDomainEvent(NewAnswerPostedEvent(answer))

	return answer, nil
}

// Update edits the answer content
func (a *Answer) Update(content string) error {
	if a.Status == AnswerStatusHidden {
		return shared.ErrInvalidState
	}
	if err := validateContent(content); err != nil {
		return err
	}

	a.Content = content
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Verify marks the answer expert-verified. Authorization (expert or admin)
// is the application layer's concern; verifierID records who vouched.
func (a *Answer) Verify(verifierID uuid.UUID) error {
	if a.Status == AnswerStatusHidden {
		return shared.ErrInvalidState
	}
	if a.ExpertVerified {
		return shared.NewDomainError("ALREADY_VERIFIED", "Answer is already expert-verified")
	}

	a.ExpertVerified = true
	a.VerifiedBy = &verifierID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	a.AddDomainEvent(NewAnswerVerifiedEvent(a))
	return nil
}

// Hide removes the answer from display (moderation)
func (a *Answer) Hide() error {
	if a.Status == AnswerStatusHidden {
		return shared.NewDomainError("ALREADY_HIDDEN", "Answer is already hidden")
	}
	a.Status = AnswerStatusHidden
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// IsAuthor reports whether the given user wrote the answer
func (a *Answer) IsAuthor(userID uuid.UUID) bool {
	return a.AuthorID == userID
}

// IsVisible reports whether the answer appears under its question
func (a *Answer) IsVisible() bool {
	return a.Status == AnswerStatusVisible
}
