package forum

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Question, error)

	// FindByPublicID resolves the id recovered from a URL slug
	FindByPublicID(ctx context.Context, publicID string) (*Question, error)

	// FindPage returns one cursor page of visible questions ordered by
	// created_at DESC, id DESC. Search matches title and content;
	// categoryID narrows to one category when non-nil.
	FindPage(ctx context.Context, req shared.PageRequest, categoryID *uuid.UUID) ([]Question, error)

	// FindPageForModeration behaves like FindPage but includes hidden
	// questions, for the admin dashboard
	FindPageForModeration(ctx context.Context, req shared.PageRequest) ([]Question, error)

	// IncrementViewCount bumps the view counter without a full save
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	Save(ctx context.Context, question *Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnswerRepository defines the interface for answer persistence
type AnswerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Answer, error)

	// FindByQuestion returns visible answers oldest-first, verified ones first
	FindByQuestion(ctx context.Context, questionID uuid.UUID) ([]Answer, error)

	Save(ctx context.Context, answer *Answer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll returns all categories ordered by sort order; activeOnly
	// filters out deactivated ones
	FindAll(ctx context.Context, activeOnly bool) ([]Category, error)

	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportRepository defines the interface for report persistence
type ReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)

	// FindPage returns one cursor page of reports, optionally filtered by status
	FindPage(ctx context.Context, req shared.PageRequest, status ReportStatus) ([]Report, error)

	Save(ctx context.Context, report *Report) error
}
