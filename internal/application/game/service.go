package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/game"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles quiz authoring and play
type Service struct {
	gameRepo     game.GameRepository
	questionRepo game.QuestionRepository
	logger       *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a game Service with a clock-seeded shuffle source
func NewService(gameRepo game.GameRepository, questionRepo game.QuestionRepository, logger *zap.Logger) *Service {
	return NewServiceWithSource(gameRepo, questionRepo, logger, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithSource creates a game Service over the given generator.
// Tests pass a fixed seed for a reproducible question order.
func NewServiceWithSource(gameRepo game.GameRepository, questionRepo game.QuestionRepository, logger *zap.Logger, rng *rand.Rand) *Service {
	return &Service{gameRepo: gameRepo, questionRepo: questionRepo, logger: logger, rng: rng}
}

// Create adds a new draft quiz (admin)
func (s *Service) Create(ctx context.Context, input GameInput) (*GameInfo, error) {
	g, err := game.NewGame(input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, g); err != nil {
		s.logger.Error("Failed to save game", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create game")
	}

	s.logger.Info("Game created", zap.String("game_id", g.ID.String()), zap.String("slug", g.Slug))

	info := ToGameInfo(g)
	return &info, nil
}

// Update edits a quiz's title and description (admin)
func (s *Service) Update(ctx context.Context, gameID uuid.UUID, input GameInput) (*GameInfo, error) {
	g, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := g.Update(input.Title, input.Description); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, g); err != nil {
		s.logger.Error("Failed to save game update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update game")
	}

	info := ToGameInfo(g)
	return &info, nil
}

// Publish makes a quiz playable (admin)
func (s *Service) Publish(ctx context.Context, gameID uuid.UUID) (*GameInfo, error) {
	g, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := g.Publish(); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, g); err != nil {
		s.logger.Error("Failed to save published game", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to publish game")
	}

	s.logger.Info("Game published", zap.String("game_id", g.ID.String()))

	info := ToGameInfo(g)
	return &info, nil
}

// Unpublish takes a quiz offline for editing (admin)
func (s *Service) Unpublish(ctx context.Context, gameID uuid.UUID) (*GameInfo, error) {
	g, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := g.Unpublish(); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Save(ctx, g); err != nil {
		s.logger.Error("Failed to save unpublished game", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to unpublish game")
	}

	info := ToGameInfo(g)
	return &info, nil
}

// List returns one cursor page of published games
func (s *Service) List(ctx context.Context, req shared.PageRequest) (*shared.Page[GameInfo], error) {
	req = req.Normalize()

	games, err := s.gameRepo.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(games, req.PageSize), nil
}

// ListForEditors returns one cursor page including drafts (admin)
func (s *Service) ListForEditors(ctx context.Context, req shared.PageRequest) (*shared.Page[GameInfo], error) {
	req = req.Normalize()

	games, err := s.gameRepo.FindPageForEditors(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(games, req.PageSize), nil
}

// Play resolves a quiz from its URL slug for a play session. The correct
// answers stay server-side; the play counter is bumped per session start.
func (s *Service) Play(ctx context.Context, slug string) (*PlayView, error) {
	publicID := shared.SlugID(slug)
	if publicID == "" {
		return nil, shared.ErrNotFound
	}

	g, err := s.gameRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if !g.IsPlayable() {
		return nil, shared.ErrNotFound
	}

	questions, err := s.questionRepo.FindByGame(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.IncrementPlayCount(ctx, g.ID); err != nil {
		s.logger.Warn("Failed to bump play count", zap.Error(err), zap.String("game_id", g.ID.String()))
	}

	plays := make([]PlayQuestion, len(questions))
	for i := range questions {
		plays[i] = ToPlayQuestion(&questions[i])
	}

	// Each play session sees the questions in a fresh order
	s.mu.Lock()
	s.rng.Shuffle(len(plays), func(i, j int) {
		plays[i], plays[j] = plays[j], plays[i]
	})
	s.mu.Unlock()

	return &PlayView{Game: ToGameInfo(g), Questions: plays}, nil
}

// Answer checks a player's choice and reveals the explanation
func (s *Service) Answer(ctx context.Context, input AnswerInput) (*AnswerResult, error) {
	question, err := s.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if input.Choice < 0 || input.Choice >= game.OptionCount {
		return nil, shared.NewDomainError("INVALID_ANSWER", "Choice must be between 0 and 3")
	}

	g, err := s.gameRepo.FindByID(ctx, question.GameID)
	if err != nil {
		return nil, err
	}
	if !g.IsPlayable() {
		return nil, shared.ErrNotFound
	}

	return &AnswerResult{
		Correct:      question.IsCorrect(input.Choice),
		CorrectIndex: question.CorrectIndex,
		Explanation:  question.Explanation,
	}, nil
}

// AddQuestion appends a question to a quiz (admin)
func (s *Service) AddQuestion(ctx context.Context, gameID uuid.UUID, input QuestionInput) (*EditorQuestion, error) {
	g, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	question, err := game.NewQuestion(gameID, g.QuestionCount, input.Prompt, input.Options, input.CorrectIndex, input.Explanation)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save game question", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to add question")
	}

	g.RecordQuestionAdded()
	if err := s.gameRepo.Save(ctx, g); err != nil {
		s.logger.Warn("Failed to persist question counter", zap.Error(err))
	}

	info := ToEditorQuestion(question)
	return &info, nil
}

// UpdateQuestion edits a quiz question (admin)
func (s *Service) UpdateQuestion(ctx context.Context, questionID uuid.UUID, input QuestionInput) (*EditorQuestion, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if err := question.Update(input.Prompt, input.Options, input.CorrectIndex, input.Explanation); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save question update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update question")
	}

	info := ToEditorQuestion(question)
	return &info, nil
}

// RemoveQuestion deletes a quiz question and drops the counter (admin)
func (s *Service) RemoveQuestion(ctx context.Context, questionID uuid.UUID) error {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}

	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		s.logger.Error("Failed to delete question", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove question")
	}

	g, err := s.gameRepo.FindByID(ctx, question.GameID)
	if err == nil {
		g.RecordQuestionRemoved()
		if err := s.gameRepo.Save(ctx, g); err != nil {
			s.logger.Warn("Failed to persist question counter", zap.Error(err))
		}
	}
	return nil
}

// ListQuestions returns a quiz's questions for the editor, answers
// included (admin)
func (s *Service) ListQuestions(ctx context.Context, gameID uuid.UUID) ([]EditorQuestion, error) {
	questions, err := s.questionRepo.FindByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	infos := make([]EditorQuestion, len(questions))
	for i := range questions {
		infos[i] = ToEditorQuestion(&questions[i])
	}
	return infos, nil
}

func (s *Service) toPage(games []game.Game, pageSize int) *shared.Page[GameInfo] {
	page := shared.NewPage(games, pageSize, gameCursor)
	infos := make([]GameInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToGameInfo(&page.Items[i])
	}
	return &shared.Page[GameInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}
