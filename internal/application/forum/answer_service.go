package forum

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnswerService handles posting, verifying and moderating answers
type AnswerService struct {
	answerRepo   forum.AnswerRepository
	questionRepo forum.QuestionRepository
	userRepo     identity.UserRepository
	logger       *zap.Logger
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerRepo forum.AnswerRepository,
	questionRepo forum.QuestionRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Post adds an answer to a visible question and bumps its answer counter
func (s *AnswerService) Post(ctx context.Context, input PostAnswerInput) (*AnswerInfo, error) {
	question, err := s.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if !question.IsVisible() {
		return nil, shared.ErrNotFound
	}

	answer, err := forum.NewAnswer(input.QuestionID, input.AuthorID, input.Content)
	if err != nil {
		return nil, err
	}

	if err := s.answerRepo.Save(ctx, answer); err != nil {
		s.logger.Error("Failed to save answer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to post answer")
	}

	question.RecordAnswer()
	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Warn("Failed to persist answer counter", zap.Error(err))
	}

	s.logger.Info("Answer posted",
		zap.String("answer_id", answer.ID.String()),
		zap.String("question_id", input.QuestionID.String()))

	info := ToAnswerInfo(answer)
	return &info, nil
}

// Update edits an answer. Only the author may edit.
func (s *AnswerService) Update(ctx context.Context, input UpdateAnswerInput) (*AnswerInfo, error) {
	answer, err := s.answerRepo.FindByID(ctx, input.AnswerID)
	if err != nil {
		return nil, err
	}
	if !answer.IsAuthor(input.EditorID) {
		return nil, shared.ErrForbidden
	}

	if err := answer.Update(input.Content); err != nil {
		return nil, err
	}

	if err := s.answerRepo.Save(ctx, answer); err != nil {
		s.logger.Error("Failed to save answer update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update answer")
	}

	info := ToAnswerInfo(answer)
	return &info, nil
}

// Verify marks an answer expert-verified. The verifier must hold the
// expert or admin role, and cannot verify their own answer.
func (s *AnswerService) Verify(ctx context.Context, input VerifyAnswerInput) (*AnswerInfo, error) {
	verifier, err := s.userRepo.FindByID(ctx, input.VerifierID)
	if err != nil {
		return nil, err
	}
	if !verifier.CanVerifyAnswers() {
		return nil, shared.ErrForbidden
	}

	answer, err := s.answerRepo.FindByID(ctx, input.AnswerID)
	if err != nil {
		return nil, err
	}
	if answer.IsAuthor(input.VerifierID) {
		return nil, shared.NewDomainError("SELF_VERIFY", "You cannot verify your own answer")
	}

	if err := answer.Verify(input.VerifierID); err != nil {
		return nil, err
	}

	if err := s.answerRepo.Save(ctx, answer); err != nil {
		s.logger.Error("Failed to save verification", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify answer")
	}

	s.logger.Info("Answer verified",
		zap.String("answer_id", answer.ID.String()),
		zap.String("verifier_id", input.VerifierID.String()))

	info := ToAnswerInfo(answer)
	return &info, nil
}

// Hide removes an answer from display and decrements the question's
// answer counter (moderation)
func (s *AnswerService) Hide(ctx context.Context, answerID uuid.UUID) error {
	answer, err := s.answerRepo.FindByID(ctx, answerID)
	if err != nil {
		return err
	}

	if err := answer.Hide(); err != nil {
		return err
	}

	if err := s.answerRepo.Save(ctx, answer); err != nil {
		s.logger.Error("Failed to save hidden answer", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hide answer")
	}

	question, err := s.questionRepo.FindByID(ctx, answer.QuestionID)
	if err == nil {
		question.RemoveAnswer()
		if err := s.questionRepo.Save(ctx, question); err != nil {
			s.logger.Warn("Failed to persist answer counter", zap.Error(err))
		}
	}

	s.logger.Info("Answer hidden", zap.String("answer_id", answerID.String()))
	return nil
}
