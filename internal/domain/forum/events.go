package forum

import (
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeQuestion = "Question"
	AggregateTypeAnswer   = "Answer"
)

// Event type constants
const (
	EventTypeQuestionAsked  = "QuestionAsked"
	EventTypeQuestionHidden = "QuestionHidden"
	EventTypeAnswerPosted   = "AnswerPosted"
	EventTypeAnswerVerified = "AnswerVerified"
)

// QuestionAskedEvent is published when a new question is created
type QuestionAskedEvent struct {
	shared.BaseDomainEvent
	QuestionID uuid.UUID  `json:"question_id"`
	PublicID   string     `json:"public_id"`
	Title      string     `json:"title"`
	AuthorID   uuid.UUID  `json:"author_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

// NewQuestionAskedEvent creates a new QuestionAskedEvent
func NewQuestionAskedEvent(q *Question) *QuestionAskedEvent {
	return &QuestionAskedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuestionAsked, AggregateTypeQuestion, q.ID),
		QuestionID:      q.ID,
		PublicID:        q.PublicID,
		Title:           q.Title,
		AuthorID:        q.AuthorID,
		CategoryID:      q.CategoryID,
	}
}

// QuestionHiddenEvent is published when moderation hides a question
type QuestionHiddenEvent struct {
	shared.BaseDomainEvent
	QuestionID uuid.UUID `json:"question_id"`
}

// NewQuestionHiddenEvent creates a new QuestionHiddenEvent
func NewQuestionHiddenEvent(q *Question) *QuestionHiddenEvent {
	return &QuestionHiddenEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuestionHidden, AggregateTypeQuestion, q.ID),
		QuestionID:      q.ID,
	}
}

// AnswerPostedEvent is published when a new answer is created
type AnswerPostedEvent struct {
	shared.BaseDomainEvent
	AnswerID   uuid.UUID `json:"answer_id"`
	QuestionID uuid.UUID `json:"question_id"`
	AuthorID   uuid.UUID `json:"author_id"`
}

// NewAnswerPostedEvent creates a new AnswerPostedEvent
func NewAnswerPostedEvent(a *Answer) *AnswerPostedEvent {
	return &AnswerPostedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAnswerPosted, AggregateTypeAnswer, a.ID),
		AnswerID:        a.ID,
		QuestionID:      a.QuestionID,
		AuthorID:        a.AuthorID,
	}
}

// AnswerVerifiedEvent is published when an answer gains expert verification
type AnswerVerifiedEvent struct {
	shared.BaseDomainEvent
	AnswerID   uuid.UUID  `json:"answer_id"`
	QuestionID uuid.UUID  `json:"question_id"`
	VerifiedBy *uuid.UUID `json:"verified_by,omitempty"`
}

// NewAnswerVerifiedEvent creates a new AnswerVerifiedEvent
func NewAnswerVerifiedEvent(a *Answer) *AnswerVerifiedEvent {
	return &AnswerVerifiedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAnswerVerified, AggregateTypeAnswer, a.ID),
		AnswerID:        a.ID,
		QuestionID:      a.QuestionID,
		VerifiedBy:      a.VerifiedBy,
	}
}
