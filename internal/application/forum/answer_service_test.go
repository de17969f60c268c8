package forum

import (
	"context"
	"sync"
	"testing"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryQuestionRepo struct {
	mu        sync.Mutex
	questions map[uuid.UUID]*forum.Question
}

func newMemoryQuestionRepo() *memoryQuestionRepo {
	return &memoryQuestionRepo{questions: make(map[uuid.UUID]*forum.Question)}
}

func (r *memoryQuestionRepo) FindByID(_ context.Context, id uuid.UUID) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[id]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryQuestionRepo) FindByPublicID(_ context.Context, publicID string) (*forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.questions {
		if q.PublicID == publicID {
			copied := *q
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryQuestionRepo) FindPage(_ context.Context, req shared.PageRequest, _ *uuid.UUID) ([]forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []forum.Question
	for _, q := range r.questions {
		if q.IsVisible() {
			out = append(out, *q)
		}
		if len(out) == req.PageSize {
			break
		}
	}
	return out, nil
}

func (r *memoryQuestionRepo) FindPageForModeration(_ context.Context, req shared.PageRequest) ([]forum.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []forum.Question
	for _, q := range r.questions {
		out = append(out, *q)
		if len(out) == req.PageSize {
			break
		}
	}
	return out, nil
}

func (r *memoryQuestionRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[id]; ok {
		q.ViewCount++
		return nil
	}
	return shared.ErrNotFound
}

func (r *memoryQuestionRepo) Save(_ context.Context, question *forum.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *question
	r.questions[question.ID] = &copied
	return nil
}

func (r *memoryQuestionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.questions, id)
	return nil
}

type memoryAnswerRepo struct {
	mu      sync.Mutex
	answers map[uuid.UUID]*forum.Answer
}

func newMemoryAnswerRepo() *memoryAnswerRepo {
	return &memoryAnswerRepo{answers: make(map[uuid.UUID]*forum.Answer)}
}

func (r *memoryAnswerRepo) FindByID(_ context.Context, id uuid.UUID) (*forum.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.answers[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryAnswerRepo) FindByQuestion(_ context.Context, questionID uuid.UUID) ([]forum.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []forum.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID && a.IsVisible() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memoryAnswerRepo) Save(_ context.Context, answer *forum.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *answer
	r.answers[answer.ID] = &copied
	return nil
}

func (r *memoryAnswerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.answers, id)
	return nil
}

type stubUserRepo struct {
	identity.UserRepository
	users map[uuid.UUID]*identity.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func newTestUsers(t *testing.T) (member, expert *identity.User) {
	t.Helper()
	member, err := identity.NewUser("parent@example.com", "S3curePass!", "Parent")
	require.NoError(t, err)
	expert, err = identity.NewUser("doctor@example.com", "S3curePass!", "Doctor")
	require.NoError(t, err)
	require.NoError(t, expert.PromoteToExpert())
	return member, expert
}

func newTestAnswerService(t *testing.T, users ...*identity.User) (*AnswerService, *memoryQuestionRepo, *memoryAnswerRepo) {
	t.Helper()
	questionRepo := newMemoryQuestionRepo()
	answerRepo := newMemoryAnswerRepo()
	userRepo := &stubUserRepo{users: make(map[uuid.UUID]*identity.User)}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	svc := NewAnswerService(answerRepo, questionRepo, userRepo, zap.NewNop())
	return svc, questionRepo, answerRepo
}

func TestAnswerService_Post(t *testing.T) {
	member, expert := newTestUsers(t)
	svc, questionRepo, _ := newTestAnswerService(t, member, expert)

	question, err := forum.NewQuestion(member.ID, "Bé hay ốm vặt", "Nên bổ sung gì cho bé?", nil)
	require.NoError(t, err)
	require.NoError(t, questionRepo.Save(context.Background(), question))

	t.Run("posting bumps the answer counter", func(t *testing.T) {
		info, err := svc.Post(context.Background(), PostAnswerInput{
			QuestionID: question.ID,
			AuthorID:   expert.ID,
			Content:    "Bổ sung vitamin D và kẽm theo chỉ định.",
		})
		require.NoError(t, err)
		assert.False(t, info.ExpertVerified)

		stored, err := questionRepo.FindByID(context.Background(), question.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.AnswerCount)
	})

	t.Run("hidden question cannot be answered", func(t *testing.T) {
		hidden, err := forum.NewQuestion(member.ID, "Câu hỏi bị ẩn", "nội dung", nil)
		require.NoError(t, err)
		require.NoError(t, hidden.Hide())
		require.NoError(t, questionRepo.Save(context.Background(), hidden))

		_, err = svc.Post(context.Background(), PostAnswerInput{
			QuestionID: hidden.ID,
			AuthorID:   expert.ID,
			Content:    "trả lời",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAnswerService_Verify(t *testing.T) {
	member, expert := newTestUsers(t)
	svc, questionRepo, answerRepo := newTestAnswerService(t, member, expert)

	question, err := forum.NewQuestion(member.ID, "Bé ngủ hay giật mình", "Có sao không?", nil)
	require.NoError(t, err)
	require.NoError(t, questionRepo.Save(context.Background(), question))

	answer, err := forum.NewAnswer(question.ID, member.ID, "Thường là bình thường ở trẻ nhỏ.")
	require.NoError(t, err)
	require.NoError(t, answerRepo.Save(context.Background(), answer))

	t.Run("expert can verify", func(t *testing.T) {
		info, err := svc.Verify(context.Background(), VerifyAnswerInput{
			AnswerID:   answer.ID,
			VerifierID: expert.ID,
		})
		require.NoError(t, err)
		assert.True(t, info.ExpertVerified)
		require.NotNil(t, info.VerifiedBy)
		assert.Equal(t, expert.ID, *info.VerifiedBy)
	})

	t.Run("member cannot verify", func(t *testing.T) {
		other, err := forum.NewAnswer(question.ID, expert.ID, "Một câu trả lời khác.")
		require.NoError(t, err)
		require.NoError(t, answerRepo.Save(context.Background(), other))

		_, err = svc.Verify(context.Background(), VerifyAnswerInput{
			AnswerID:   other.ID,
			VerifierID: member.ID,
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("experts cannot verify their own answer", func(t *testing.T) {
		own, err := forum.NewAnswer(question.ID, expert.ID, "Câu trả lời của chính chuyên gia.")
		require.NoError(t, err)
		require.NoError(t, answerRepo.Save(context.Background(), own))

		_, err = svc.Verify(context.Background(), VerifyAnswerInput{
			AnswerID:   own.ID,
			VerifierID: expert.ID,
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SELF_VERIFY", domainErr.Code)
	})
}

func TestAnswerService_Hide(t *testing.T) {
	member, expert := newTestUsers(t)
	svc, questionRepo, answerRepo := newTestAnswerService(t, member, expert)

	question, err := forum.NewQuestion(member.ID, "Câu hỏi", "nội dung câu hỏi", nil)
	require.NoError(t, err)
	question.RecordAnswer()
	require.NoError(t, questionRepo.Save(context.Background(), question))

	answer, err := forum.NewAnswer(question.ID, member.ID, "nội dung trả lời")
	require.NoError(t, err)
	require.NoError(t, answerRepo.Save(context.Background(), answer))

	require.NoError(t, svc.Hide(context.Background(), answer.ID))

	stored, err := answerRepo.FindByID(context.Background(), answer.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsVisible())

	q, err := questionRepo.FindByID(context.Background(), question.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, q.AnswerCount)
}
