package game

import (
	"strings"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
)

// GameStatus represents the publication state of a quiz game
type GameStatus string

const (
	GameStatusDraft     GameStatus = "draft"
	GameStatusPublished GameStatus = "published"
)

const maxGameTitleLength = 200

// Game is a quiz players work through question by question. Questions are
// separate rows ordered by Position.
type Game struct {
	shared.BaseAggregateRoot
	PublicID      string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Slug          string     `gorm:"type:varchar(250);uniqueIndex;not null"`
	Description   string     `gorm:"type:text"`
	CoverURL      string     `gorm:"type:varchar(500)"`
	Status        GameStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	QuestionCount int        `gorm:"not null;default:0"`
	PlayCount     int64      `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Game) TableName() string {
	return "games"
}

// NewGame creates a draft quiz
func NewGame(title, description string) (*Game, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Game title cannot be empty")
	}
	if len(trimmed) > maxGameTitleLength {
		return nil, shared.NewDomainError("INVALID_TITLE", "Game title cannot exceed 200 characters")
	}

	publicID := shared.NewPublicID()
	return &Game{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PublicID:          publicID,
		Title:             trimmed,
		Slug:              shared.SlugWithID(trimmed, publicID),
		Description:       strings.TrimSpace(description),
		Status:            GameStatusDraft,
	}, nil
}

// Update edits title and description
func (g *Game) Update(title, description string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_TITLE", "Game title cannot be empty")
	}
	if len(trimmed) > maxGameTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Game title cannot exceed 200 characters")
	}

	g.Title = trimmed
	g.Slug = shared.SlugWithID(trimmed, g.PublicID)
	g.Description = strings.TrimSpace(description)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Publish makes the quiz playable. At least one question is required.
func (g *Game) Publish() error {
	if g.Status == GameStatusPublished {
		return shared.NewDomainError("ALREADY_PUBLISHED", "Game is already published")
	}
	if g.QuestionCount == 0 {
		return shared.NewDomainError("NO_QUESTIONS", "Game needs at least one question before publishing")
	}
	g.Status = GameStatusPublished
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Unpublish takes the quiz offline for editing
func (g *Game) Unpublish() error {
	if g.Status == GameStatusDraft {
		return shared.NewDomainError("NOT_PUBLISHED", "Game is not published")
	}
	g.Status = GameStatusDraft
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// RecordQuestionAdded bumps the question counter
func (g *Game) RecordQuestionAdded() {
	g.QuestionCount++
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// RecordQuestionRemoved drops the question counter, never below zero
func (g *Game) RecordQuestionRemoved() {
	if g.QuestionCount > 0 {
		g.QuestionCount--
	}
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// RecordPlay bumps the play counter
func (g *Game) RecordPlay() {
	g.PlayCount++
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// IsPublished reports whether the quiz is playable
func (g *Game) IsPublished() bool {
	return g.Status == GameStatusPublished
}

// IsPlayable is kept separate from IsPublished so future gating (age
// brackets, scheduling) lands in one place
func (g *Game) IsPlayable() bool {
	return g.IsPublished() && g.QuestionCount > 0
}
