package forum

import (
	"context"
	"sync"
	"testing"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingQuestionRepo lets a test hold a fetch open while another
// search starts, to exercise the stale-response discard
type queryGate struct {
	entered chan struct{}
	release chan struct{}
}

type blockingQuestionRepo struct {
	*memoryQuestionRepo
	mu    sync.Mutex
	gates map[string]queryGate
}

func newBlockingQuestionRepo() *blockingQuestionRepo {
	return &blockingQuestionRepo{
		memoryQuestionRepo: newMemoryQuestionRepo(),
		gates:              make(map[string]queryGate),
	}
}

func (r *blockingQuestionRepo) holdQuery(search string) queryGate {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := queryGate{entered: make(chan struct{}), release: make(chan struct{})}
	r.gates[search] = gate
	return gate
}

func (r *blockingQuestionRepo) FindPage(ctx context.Context, req shared.PageRequest, categoryID *uuid.UUID) ([]forum.Question, error) {
	r.mu.Lock()
	gate, held := r.gates[req.Search]
	r.mu.Unlock()
	if held {
		close(gate.entered)
		<-gate.release
	}
	return r.memoryQuestionRepo.FindPage(ctx, req, categoryID)
}

func TestLiveSearchService(t *testing.T) {
	t.Run("current search delivers results", func(t *testing.T) {
		repo := newMemoryQuestionRepo()
		question, err := forum.NewQuestion(uuid.New(), "Bé biếng ăn", "nội dung", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), question))

		svc := NewLiveSearchService(repo, zap.NewNop())
		result := svc.Search(context.Background(), "client-a", "biếng ăn", 10)

		assert.False(t, result.Stale)
		assert.Len(t, result.Items, 1)
	})

	t.Run("hidden questions stay out of search results", func(t *testing.T) {
		repo := newMemoryQuestionRepo()

		visible, err := forum.NewQuestion(uuid.New(), "Bé ngủ không sâu giấc", "nội dung hiển thị", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), visible))

		hidden, err := forum.NewQuestion(uuid.New(), "Nội dung nhạy cảm", "nội dung đã bị ẩn bởi quản trị viên", nil)
		require.NoError(t, err)
		require.NoError(t, hidden.Hide())
		require.NoError(t, repo.Save(context.Background(), hidden))

		svc := NewLiveSearchService(repo, zap.NewNop())
		result := svc.Search(context.Background(), "client-a", "nội dung", 10)

		require.Len(t, result.Items, 1)
		assert.Equal(t, visible.PublicID, result.Items[0].PublicID)
	})

	t.Run("slow earlier search is discarded once a newer one starts", func(t *testing.T) {
		repo := newBlockingQuestionRepo()
		svc := NewLiveSearchService(repo, zap.NewNop())

		gate := repo.holdQuery("old query")

		done := make(chan LiveSearchResult, 1)
		go func() {
			done <- svc.Search(context.Background(), "client-a", "old query", 10)
		}()

		// The newer search starts only after the older fetch is in flight
		<-gate.entered
		fresh := svc.Search(context.Background(), "client-a", "new query", 10)
		assert.False(t, fresh.Stale)

		close(gate.release)
		old := <-done
		assert.True(t, old.Stale)
		assert.Empty(t, old.Items)
	})

	t.Run("searches from other clients never mark a search stale", func(t *testing.T) {
		repo := newBlockingQuestionRepo()
		svc := NewLiveSearchService(repo, zap.NewNop())

		gate := repo.holdQuery("slow query")

		done := make(chan LiveSearchResult, 1)
		go func() {
			done <- svc.Search(context.Background(), "client-a", "slow query", 10)
		}()

		// A second client searches while the first fetch is in flight
		<-gate.entered
		other := svc.Search(context.Background(), "client-b", "unrelated", 10)
		assert.False(t, other.Stale)

		close(gate.release)
		first := <-done
		assert.False(t, first.Stale)
	})

	t.Run("fetch failure degrades to an empty current result", func(t *testing.T) {
		svc := NewLiveSearchService(failingQuestionRepo{}, zap.NewNop())

		result := svc.Search(context.Background(), "client-a", "anything", 10)

		assert.False(t, result.Stale)
		assert.Empty(t, result.Items)
	})
}

type failingQuestionRepo struct {
	forum.QuestionRepository
}

func (failingQuestionRepo) FindPage(context.Context, shared.PageRequest, *uuid.UUID) ([]forum.Question, error) {
	return nil, assert.AnError
}
