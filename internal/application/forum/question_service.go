package forum

import (
	"context"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionService handles asking, browsing and moderating questions
type QuestionService struct {
	questionRepo forum.QuestionRepository
	answerRepo   forum.AnswerRepository
	categoryRepo forum.CategoryRepository
	logger       *zap.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionRepo forum.QuestionRepository,
	answerRepo forum.AnswerRepository,
	categoryRepo forum.CategoryRepository,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Ask posts a new question
func (s *QuestionService) Ask(ctx context.Context, input AskQuestionInput) (*QuestionInfo, error) {
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category does not exist")
		}
	}

	question, err := forum.NewQuestion(input.AuthorID, input.Title, input.Content, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save question", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to post question")
	}

	s.logger.Info("Question asked",
		zap.String("question_id", question.ID.String()),
		zap.String("slug", question.Slug()))

	info := ToQuestionInfo(question)
	return &info, nil
}

// GetBySlug resolves a question from its URL slug, returns it with its
// visible answers, and bumps the view counter. Hidden questions resolve
// only for their author.
func (s *QuestionService) GetBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (*QuestionDetail, error) {
	publicID := shared.SlugID(slug)
	if publicID == "" {
		return nil, shared.ErrNotFound
	}

	question, err := s.questionRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if !question.IsVisible() && !question.IsAuthor(viewerID) {
		return nil, shared.ErrNotFound
	}

	if err := s.questionRepo.IncrementViewCount(ctx, question.ID); err != nil {
		s.logger.Warn("Failed to bump view count", zap.Error(err), zap.String("question_id", question.ID.String()))
	}

	answers, err := s.answerRepo.FindByQuestion(ctx, question.ID)
	if err != nil {
		return nil, err
	}

	infos := make([]AnswerInfo, len(answers))
	for i := range answers {
		infos[i] = ToAnswerInfo(&answers[i])
	}

	return &QuestionDetail{
		Question: ToQuestionInfo(question),
		Answers:  infos,
	}, nil
}

// Update edits a question. Only the author may edit.
func (s *QuestionService) Update(ctx context.Context, input UpdateQuestionInput) (*QuestionInfo, error) {
	question, err := s.questionRepo.FindByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if !question.IsAuthor(input.EditorID) {
		return nil, shared.ErrForbidden
	}

	if err := question.Update(input.Title, input.Content); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save question update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update question")
	}

	info := ToQuestionInfo(question)
	return &info, nil
}

// Resolve marks the question answered. Only the author may resolve.
func (s *QuestionService) Resolve(ctx context.Context, questionID, requesterID uuid.UUID) (*QuestionInfo, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !question.IsAuthor(requesterID) {
		return nil, shared.ErrForbidden
	}

	if err := question.Resolve(); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save resolution", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to resolve question")
	}

	info := ToQuestionInfo(question)
	return &info, nil
}

// Hide removes a question from listings (moderation)
func (s *QuestionService) Hide(ctx context.Context, questionID uuid.UUID) error {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}

	if err := question.Hide(); err != nil {
		return err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save hidden question", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to hide question")
	}

	s.logger.Info("Question hidden", zap.String("question_id", questionID.String()))
	return nil
}

// Restore makes a hidden question visible again (moderation)
func (s *QuestionService) Restore(ctx context.Context, questionID uuid.UUID) error {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}

	if err := question.Restore(); err != nil {
		return err
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		s.logger.Error("Failed to save restored question", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to restore question")
	}

	s.logger.Info("Question restored", zap.String("question_id", questionID.String()))
	return nil
}

// List returns one cursor page of visible questions, optionally narrowed
// to a category and a search term
func (s *QuestionService) List(ctx context.Context, req shared.PageRequest, categoryID *uuid.UUID) (*shared.Page[QuestionInfo], error) {
	req = req.Normalize()

	questions, err := s.questionRepo.FindPage(ctx, req, categoryID)
	if err != nil {
		return nil, err
	}

	return s.toPage(questions, req.PageSize), nil
}

// ListForModeration returns one cursor page including hidden questions (admin)
func (s *QuestionService) ListForModeration(ctx context.Context, req shared.PageRequest) (*shared.Page[QuestionInfo], error) {
	req = req.Normalize()

	questions, err := s.questionRepo.FindPageForModeration(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.toPage(questions, req.PageSize), nil
}

func (s *QuestionService) toPage(questions []forum.Question, pageSize int) *shared.Page[QuestionInfo] {
	page := shared.NewPage(questions, pageSize, questionCursor)
	infos := make([]QuestionInfo, len(page.Items))
	for i := range page.Items {
		infos[i] = ToQuestionInfo(&page.Items[i])
	}
	return &shared.Page[QuestionInfo]{
		Items:      infos,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}
