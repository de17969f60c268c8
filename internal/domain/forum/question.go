package forum

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// QuestionStatus represents the lifecycle state of a question
type QuestionStatus string

const (
	QuestionStatusOpen     QuestionStatus = "open"
	QuestionStatusResolved QuestionStatus = "resolved"
	QuestionStatusHidden   QuestionStatus = "hidden"
)

const (
	maxTitleLength   = 200
	maxContentLength = 20000
)

// Question is a member's question to the community. Its URL slug is never
// stored; it is computed from the title and the hyphen-free public id.
type Question struct {
	shared.BaseAggregateRoot
	PublicID    string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Content     string         `gorm:"type:text;not null"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index"`
	Status      QuestionStatus `gorm:"type:varchar(20);not null;default:'open'"`
	AnswerCount int            `gorm:"not null;default:0"`
	ViewCount   int64          `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// NewQuestion creates a new open question
func NewQuestion(authorID uuid.UUID, title, content string, categoryID *uuid.UUID) (*Question, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	publicID := shared.NewPublicID()
	if err := shared.ValidatePublicID(publicID); err != nil {
		return nil, err
	}

	question := &Question{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PublicID:          publicID,
		Title:             strings.TrimSpace(title),
		Content:           content,
		AuthorID:          authorID,
		CategoryID:        categoryID,
		Status:            QuestionStatusOpen,
	}

	question.AddDomainEvent(NewQuestionAskedEvent(question))

	return question, nil
}

// Slug returns the question's URL path segment
func (q *Question) Slug() string {
	return shared.SlugWithID(q.Title, q.PublicID)
}

// Update edits title and content; only meaningful while the question is visible
func (q *Question) Update(title, content string) error {
	if q.Status == QuestionStatusHidden {
		return shared.ErrInvalidState
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateContent(content); err != nil {
		return err
	}

	q.Title = strings.TrimSpace(title)
	q.Content = content
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// Resolve marks the question answered to the asker's satisfaction
func (q *Question) Resolve() error {
	if q.Status != QuestionStatusOpen {
		return shared.ErrInvalidState
	}
	q.Status = QuestionStatusResolved
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// Hide removes the question from all listings (moderation)
func (q *Question) Hide() error {
	if q.Status == QuestionStatusHidden {
		return shared.NewDomainError("ALREADY_HIDDEN", "Question is already hidden")
	}
	q.Status = QuestionStatusHidden
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	q.AddDomainEvent(NewQuestionHiddenEvent(q))
	return nil
}

// Restore makes a hidden question visible again as open
func (q *Question) Restore() error {
	if q.Status != QuestionStatusHidden {
		return shared.ErrInvalidState
	}
	q.Status = QuestionStatusOpen
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// RecordAnswer increments the denormalized answer counter
func (q *Question) RecordAnswer() {
	q.AnswerCount++
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
}

// RemoveAnswer decrements the denormalized answer counter
func (q *Question) RemoveAnswer() {
	if q.AnswerCount > 0 {
		q.AnswerCount--
		q.UpdatedAt = time.Now()
		q.IncrementVersion()
	}
}

// IsVisible reports whether the question appears in listings
func (q *Question) IsVisible() bool {
	return q.Status != QuestionStatusHidden
}

// IsAuthor reports whether the given user asked the question
func (q *Question) IsAuthor(userID uuid.UUID) bool {
	return q.AuthorID == userID
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Content cannot be empty")
	}
	if len(content) > maxContentLength {
		return shared.NewDomainError("INVALID_CONTENT", "Content cannot exceed 20000 characters")
	}
	return nil
}
