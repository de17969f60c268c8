package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/kenhgt247/me-be-sub001/internal/domain/forum"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newSQLiteDB opens an in-memory database for keyset pagination tests.
// sqlmock cannot exercise real ordering, so these run against sqlite.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&forum.Question{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, n int) []forum.Question {
	t.Helper()
	authorID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	questions := make([]forum.Question, 0, n)
	for i := 0; i < n; i++ {
		q, err := forum.NewQuestion(authorID, "Bé nhà mình biếng ăn quá", "Các mẹ có kinh nghiệm gì chia sẻ với mình không?", nil)
		require.NoError(t, err)
		q.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		q.UpdatedAt = q.CreatedAt
		require.NoError(t, db.Create(q).Error)
		questions = append(questions, *q)
	}
	return questions
}

func TestGormQuestionRepository_FindPage_Keyset(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormQuestionRepository(db)
	seeded := seedQuestions(t, db, 5)

	t.Run("first page is newest first", func(t *testing.T) {
		req := shared.PageRequest{PageSize: 2}

		page, err := repo.FindPage(context.Background(), req, nil)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, seeded[4].ID, page[0].ID)
		assert.Equal(t, seeded[3].ID, page[1].ID)
	})

	t.Run("cursor continues without overlap", func(t *testing.T) {
		first, err := repo.FindPage(context.Background(), shared.PageRequest{PageSize: 2}, nil)
		require.NoError(t, err)
		require.Len(t, first, 2)

		last := first[len(first)-1]
		req := shared.PageRequest{
			After:    shared.EncodeCursor(last.CreatedAt, last.ID),
			PageSize: 2,
		}

		second, err := repo.FindPage(context.Background(), req, nil)
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Equal(t, seeded[2].ID, second[0].ID)
		assert.Equal(t, seeded[1].ID, second[1].ID)

		for _, q := range second {
			assert.NotEqual(t, first[0].ID, q.ID)
			assert.NotEqual(t, first[1].ID, q.ID)
		}
	})

	t.Run("final page is short", func(t *testing.T) {
		req := shared.PageRequest{
			After:    shared.EncodeCursor(seeded[1].CreatedAt, seeded[1].ID),
			PageSize: 2,
		}

		page, err := repo.FindPage(context.Background(), req, nil)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, seeded[0].ID, page[0].ID)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		req := shared.PageRequest{After: shared.Cursor("not-base64!!"), PageSize: 2}

		_, err := repo.FindPage(context.Background(), req, nil)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CURSOR", domainErr.Code)
	})

	t.Run("hidden questions are excluded", func(t *testing.T) {
		hidden := seeded[4]
		require.NoError(t, db.Model(&forum.Question{}).
			Where("id = ?", hidden.ID).
			Update("status", forum.QuestionStatusHidden).Error)

		page, err := repo.FindPage(context.Background(), shared.PageRequest{PageSize: 10}, nil)
		require.NoError(t, err)
		require.Len(t, page, 4)
		for _, q := range page {
			assert.NotEqual(t, hidden.ID, q.ID)
		}
	})
}
