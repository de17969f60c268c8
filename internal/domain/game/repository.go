package game

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// GameRepository defines the interface for quiz persistence
type GameRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Game, error)

	// FindByPublicID resolves the id recovered from a URL slug
	FindByPublicID(ctx context.Context, publicID string) (*Game, error)

	// FindPage returns one cursor page of published games ordered by
	// created_at DESC, id DESC. Search matches title.
	FindPage(ctx context.Context, req shared.PageRequest) ([]Game, error)

	// FindPageForEditors behaves like FindPage but includes drafts
	FindPageForEditors(ctx context.Context, req shared.PageRequest) ([]Game, error)

	// IncrementPlayCount bumps the play counter without a full save
	IncrementPlayCount(ctx context.Context, id uuid.UUID) error

	Save(ctx context.Context, game *Game) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuestionRepository defines the interface for quiz question persistence
type QuestionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Question, error)

	// FindByGame returns a game's questions ordered by position
	FindByGame(ctx context.Context, gameID uuid.UUID) ([]Question, error)

	Save(ctx context.Context, question *Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}
