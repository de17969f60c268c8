package persistence

import (
	"context"
	"errors"

	"github.com/kenhgt247/me-be-sub001/internal/domain/game"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGameRepository implements GameRepository using GORM
type GormGameRepository struct {
	db *gorm.DB
}

// NewGormGameRepository creates a new GormGameRepository
func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// FindByID finds a game by its ID
func (r *GormGameRepository) FindByID(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	var g game.Game
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// FindByPublicID finds a game by the id recovered from a URL slug
func (r *GormGameRepository) FindByPublicID(ctx context.Context, publicID string) (*game.Game, error) {
	var g game.Game
	if err := r.db.WithContext(ctx).First(&g, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// FindPage returns one cursor page of published games
func (r *GormGameRepository) FindPage(ctx context.Context, req shared.PageRequest) ([]game.Game, error) {
	return r.findPage(ctx, req, true)
}

// FindPageForEditors returns one cursor page including drafts
func (r *GormGameRepository) FindPageForEditors(ctx context.Context, req shared.PageRequest) ([]game.Game, error) {
	return r.findPage(ctx, req, false)
}

func (r *GormGameRepository) findPage(ctx context.Context, req shared.PageRequest, publishedOnly bool) ([]game.Game, error) {
	q := r.db.WithContext(ctx).Model(&game.Game{})

	if publishedOnly {
		q = q.Where("status = ?", game.GameStatusPublished)
	}
	if req.Search != "" {
		q = q.Where("title ILIKE ?", "%"+req.Search+"%")
	}

	q, err := pageScope(q, req)
	if err != nil {
		return nil, err
	}

	var games []game.Game
	if err := q.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// IncrementPlayCount bumps the play counter without loading the row
func (r *GormGameRepository) IncrementPlayCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&game.Game{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + 1")).Error
}

// Save creates or updates a game
func (r *GormGameRepository) Save(ctx context.Context, g *game.Game) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes a game
func (r *GormGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&game.Game{}, "id = ?", id).Error
}

// GormGameQuestionRepository implements QuestionRepository using GORM
type GormGameQuestionRepository struct {
	db *gorm.DB
}

// NewGormGameQuestionRepository creates a new GormGameQuestionRepository
func NewGormGameQuestionRepository(db *gorm.DB) *GormGameQuestionRepository {
	return &GormGameQuestionRepository{db: db}
}

// FindByID finds a quiz question by its ID
func (r *GormGameQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*game.Question, error) {
	var q game.Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// FindByGame returns a game's questions ordered by position
func (r *GormGameQuestionRepository) FindByGame(ctx context.Context, gameID uuid.UUID) ([]game.Question, error) {
	var questions []game.Question
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("position ASC, created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Save creates or updates a quiz question
func (r *GormGameQuestionRepository) Save(ctx context.Context, question *game.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

// Delete removes a quiz question
func (r *GormGameQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&game.Question{}, "id = ?", id).Error
}
