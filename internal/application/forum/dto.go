package forum

import (
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// AskQuestionInput contains input for posting a question
type AskQuestionInput struct {
	AuthorID   uuid.UUID
	Title      string
	Content    string
	CategoryID *uuid.UUID
}

// UpdateQuestionInput contains input for editing a question
type UpdateQuestionInput struct {
	QuestionID uuid.UUID
	EditorID   uuid.UUID
	Title      string
	Content    string
}

// PostAnswerInput contains input for answering a question
type PostAnswerInput struct {
	QuestionID uuid.UUID
	AuthorID   uuid.UUID
	Content    string
}

// UpdateAnswerInput contains input for editing an answer
type UpdateAnswerInput struct {
	AnswerID uuid.UUID
	EditorID uuid.UUID
	Content  string
}

// VerifyAnswerInput contains input for expert verification of an answer
type VerifyAnswerInput struct {
	AnswerID   uuid.UUID
	VerifierID uuid.UUID
}

// CategoryInput contains input for creating or updating a category
type CategoryInput struct {
	Name        string
	Description string
	SortOrder   int
}

// CreateReportInput contains input for flagging content
type CreateReportInput struct {
	TargetKind forum.ReportTarget
	TargetID   uuid.UUID
	ReporterID uuid.UUID
	Reason     string
}

// ResolveReportInput contains input for closing a report
type ResolveReportInput struct {
	ReportID   uuid.UUID
	ResolverID uuid.UUID

	// Action hides the reported content before closing the report
	Action bool
}

// QuestionInfo is the listing projection of a question
type QuestionInfo struct {
	ID          uuid.UUID  `json:"id"`
	PublicID    string     `json:"public_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Status      string     `json:"status"`
	AnswerCount int        `json:"answer_count"`
	ViewCount   int64      `json:"view_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToQuestionInfo maps a question aggregate to its projection
func ToQuestionInfo(q *forum.Question) QuestionInfo {
	return QuestionInfo{
		ID:          q.ID,
		PublicID:    q.PublicID,
		Slug:        q.Slug(),
		Title:       q.Title,
		Content:     q.Content,
		AuthorID:    q.AuthorID,
		CategoryID:  q.CategoryID,
		Status:      string(q.Status),
		AnswerCount: q.AnswerCount,
		ViewCount:   q.ViewCount,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// AnswerInfo is the projection of an answer
type AnswerInfo struct {
	ID             uuid.UUID  `json:"id"`
	QuestionID     uuid.UUID  `json:"question_id"`
	AuthorID       uuid.UUID  `json:"author_id"`
	Content        string     `json:"content"`
	ExpertVerified bool       `json:"expert_verified"`
	VerifiedBy     *uuid.UUID `json:"verified_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToAnswerInfo maps an answer to its projection
func ToAnswerInfo(a *forum.Answer) AnswerInfo {
	return AnswerInfo{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		AuthorID:       a.AuthorID,
		Content:        a.Content,
		ExpertVerified: a.ExpertVerified,
		VerifiedBy:     a.VerifiedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// QuestionDetail is a question with its visible answers
type QuestionDetail struct {
	Question QuestionInfo `json:"question"`
	Answers  []AnswerInfo `json:"answers"`
}

// CategoryInfo is the projection of a category
type CategoryInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
}

// ToCategoryInfo maps a category to its projection
func ToCategoryInfo(c *forum.Category) CategoryInfo {
	return CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		Active:      c.Active,
	}
}

// ReportInfo is the projection of a content report
type ReportInfo struct {
	ID         uuid.UUID  `json:"id"`
	TargetKind string     `json:"target_kind"`
	TargetID   uuid.UUID  `json:"target_id"`
	ReporterID uuid.UUID  `json:"reporter_id"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ResolverID *uuid.UUID `json:"resolver_id,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToReportInfo maps a report to its projection
func ToReportInfo(r *forum.Report) ReportInfo {
	return ReportInfo{
		ID:         r.ID,
		TargetKind: string(r.TargetKind),
		TargetID:   r.TargetID,
		ReporterID: r.ReporterID,
		Reason:     r.Reason,
		Status:     string(r.Status),
		ResolverID: r.ResolverID,
		ResolvedAt: r.ResolvedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// questionCursor builds the keyset cursor for a question row
func questionCursor(q forum.Question) shared.Cursor {
	return shared.EncodeCursor(q.CreatedAt, q.ID)
}

// reportCursor builds the keyset cursor for a report row
func reportCursor(r forum.Report) shared.Cursor {
	return shared.EncodeCursor(r.CreatedAt, r.ID)
}
