package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormQuestionRepository_FindByPublicID(t *testing.T) {
	t.Run("finds existing question", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		questionID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "public_id", "title", "content", "author_id", "status"}).
			AddRow(questionID, "k2j4h5g6f7", "Bé biếng ăn", "Nội dung", uuid.New(), "open")

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE public_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("k2j4h5g6f7", 1).
			WillReturnRows(rows)

		question, err := repo.FindByPublicID(context.Background(), "k2j4h5g6f7")

		require.NoError(t, err)
		assert.Equal(t, questionID, question.ID)
		assert.Equal(t, "k2j4h5g6f7", question.PublicID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not-found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE public_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("missing0id", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByPublicID(context.Background(), "missing0id")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormQuestionRepository_FindPage(t *testing.T) {
	t.Run("first page excludes hidden questions", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		rows := sqlmock.NewRows([]string{"id", "public_id", "title", "content", "author_id", "status"}).
			AddRow(uuid.New(), "aaaaaaaaaa", "T1", "C1", uuid.New(), "open").
			AddRow(uuid.New(), "bbbbbbbbbb", "T2", "C2", uuid.New(), "resolved")

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE status <> \$1 ORDER BY created_at DESC, id DESC LIMIT .*`).
			WithArgs("hidden", 20).
			WillReturnRows(rows)

		req := shared.PageRequest{PageSize: 20}
		req = req.Normalize()

		questions, err := repo.FindPage(context.Background(), req, nil)

		require.NoError(t, err)
		assert.Len(t, questions, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search matches against title and content", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		rows := sqlmock.NewRows([]string{"id", "public_id", "title", "content", "author_id", "status"}).
			AddRow(uuid.New(), "cccccccccc", "Bé không chịu uống sữa", "Nội dung", uuid.New(), "open")

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE status <> \$1 AND \(title ILIKE \$2 OR content ILIKE \$3\) ORDER BY created_at DESC, id DESC LIMIT .*`).
			WithArgs("hidden", "%sữa%", "%sữa%", 20).
			WillReturnRows(rows)

		req := shared.PageRequest{Search: "sữa", PageSize: 20}
		req = req.Normalize()

		questions, err := repo.FindPage(context.Background(), req, nil)

		require.NoError(t, err)
		assert.Len(t, questions, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cursor narrows to strictly older rows", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		cursorAt := time.Now().Add(-time.Hour)
		cursorID := uuid.New()
		cursor := shared.EncodeCursor(cursorAt, cursorID)

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE status <> \$1 AND \(created_at, id\) < \(\$2, \$3\) ORDER BY created_at DESC, id DESC LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		req := shared.PageRequest{After: cursor, PageSize: 20}
		req = req.Normalize()

		questions, err := repo.FindPage(context.Background(), req, nil)

		require.NoError(t, err)
		assert.Empty(t, questions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("garbage cursor fails before touching the database", func(t *testing.T) {
		gormDB, _, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		req := shared.PageRequest{After: shared.Cursor("not base64!!"), PageSize: 20}
		req = req.Normalize()

		_, err := repo.FindPage(context.Background(), req, nil)
		require.Error(t, err)
	})
}

func TestGormQuestionRepository_FindPageForModeration(t *testing.T) {
	t.Run("search includes hidden questions", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormQuestionRepository(gormDB)

		rows := sqlmock.NewRows([]string{"id", "public_id", "title", "content", "author_id", "status"}).
			AddRow(uuid.New(), "dddddddddd", "Câu hỏi bị ẩn", "Nội dung", uuid.New(), "hidden")

		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE title ILIKE \$1 OR content ILIKE \$2 ORDER BY created_at DESC, id DESC LIMIT .*`).
			WithArgs("%ẩn%", "%ẩn%", 20).
			WillReturnRows(rows)

		req := shared.PageRequest{Search: "ẩn", PageSize: 20}
		req = req.Normalize()

		questions, err := repo.FindPageForModeration(context.Background(), req)

		require.NoError(t, err)
		assert.Len(t, questions, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormQuestionRepository_IncrementViewCount(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormQuestionRepository(gormDB)

	questionID := uuid.New()
	mock.ExpectExec(`UPDATE "questions" SET "view_count"=view_count \+ 1 WHERE id = \$1`).
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementViewCount(context.Background(), questionID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
