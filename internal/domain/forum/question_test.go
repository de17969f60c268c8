package forum

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	authorID := uuid.New()

	t.Run("creates open question with computed slug", func(t *testing.T) {
		q, err := NewQuestion(authorID, "Bé 2 tuổi biếng ăn phải làm sao?", "Nội dung câu hỏi", nil)
		require.NoError(t, err)
		require.NotNil(t, q)

		assert.Equal(t, QuestionStatusOpen, q.Status)
		assert.Zero(t, q.AnswerCount)
		assert.NotEmpty(t, q.PublicID)

		slug := q.Slug()
		assert.True(t, strings.HasPrefix(slug, "be-2-tuoi-bieng-an-phai-lam-sao-"))
		assert.True(t, strings.HasSuffix(slug, q.PublicID))
	})

	t.Run("publishes QuestionAsked event", func(t *testing.T) {
		q, err := NewQuestion(authorID, "Title", "Content", nil)
		require.NoError(t, err)

		events := q.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeQuestionAsked, events[0].EventType())
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewQuestion(authorID, "  ", "Content", nil)
		require.Error(t, err)
	})

	t.Run("fails with oversized title", func(t *testing.T) {
		_, err := NewQuestion(authorID, strings.Repeat("a", maxTitleLength+1), "Content", nil)
		require.Error(t, err)
	})

	t.Run("fails with empty content", func(t *testing.T) {
		_, err := NewQuestion(authorID, "Title", "   ", nil)
		require.Error(t, err)
	})
}

func TestQuestionLifecycle(t *testing.T) {
	newQuestion := func(t *testing.T) *Question {
		t.Helper()
		q, err := NewQuestion(uuid.New(), "Title", "Content", nil)
		require.NoError(t, err)
		return q
	}

	t.Run("resolve open question", func(t *testing.T) {
		q := newQuestion(t)
		require.NoError(t, q.Resolve())
		assert.Equal(t, QuestionStatusResolved, q.Status)

		require.Error(t, q.Resolve())
	})

	t.Run("hide and restore", func(t *testing.T) {
		q := newQuestion(t)
		require.NoError(t, q.Hide())
		assert.False(t, q.IsVisible())

		require.Error(t, q.Hide())
		require.Error(t, q.Update("New", "Content"))

		require.NoError(t, q.Restore())
		assert.Equal(t, QuestionStatusOpen, q.Status)
	})

	t.Run("answer counter", func(t *testing.T) {
		q := newQuestion(t)
		q.RecordAnswer()
		q.RecordAnswer()
		assert.Equal(t, 2, q.AnswerCount)

		q.RemoveAnswer()
		assert.Equal(t, 1, q.AnswerCount)

		q.RemoveAnswer()
		q.RemoveAnswer() // never negative
		assert.Zero(t, q.AnswerCount)
	})

	t.Run("update keeps slug in sync with title", func(t *testing.T) {
		q := newQuestion(t)
		require.NoError(t, q.Update("Tiêu đề mới", "Nội dung mới"))
		assert.True(t, strings.HasPrefix(q.Slug(), "tieu-de-moi-"))
	})
}

func TestAnswer(t *testing.T) {
	questionID := uuid.New()
	authorID := uuid.New()
	verifierID := uuid.New()

	t.Run("create and verify", func(t *testing.T) {
		a, err := NewAnswer(questionID, authorID, "Thử chia nhỏ bữa ăn")
		require.NoError(t, err)
		assert.True(t, a.IsVisible())
		assert.False(t, a.ExpertVerified)

		require.NoError(t, a.Verify(verifierID))
		assert.True(t, a.ExpertVerified)
		assert.Equal(t, &verifierID, a.VerifiedBy)

		require.Error(t, a.Verify(verifierID))
	})

	t.Run("hidden answers cannot be verified or edited", func(t *testing.T) {
		a, err := NewAnswer(questionID, authorID, "Content")
		require.NoError(t, err)

		require.NoError(t, a.Hide())
		require.Error(t, a.Verify(verifierID))
		require.Error(t, a.Update("New content"))
	})

	t.Run("fails with empty content", func(t *testing.T) {
		_, err := NewAnswer(questionID, authorID, " ")
		require.Error(t, err)
	})
}

func TestCategory(t *testing.T) {
	t.Run("slug derives from name", func(t *testing.T) {
		c, err := NewCategory("Dinh dưỡng", "Ăn dặm, sữa, vitamin")
		require.NoError(t, err)
		assert.Equal(t, "dinh-duong", c.Slug)
		assert.True(t, c.Active)
	})

	t.Run("update refreshes slug", func(t *testing.T) {
		c, err := NewCategory("Giấc ngủ", "")
		require.NoError(t, err)
		require.NoError(t, c.Update("Sức khỏe", ""))
		assert.Equal(t, "suc-khoe", c.Slug)
	})

	t.Run("all-symbol name rejected", func(t *testing.T) {
		_, err := NewCategory("!!!", "")
		require.Error(t, err)
	})

	t.Run("activate and deactivate", func(t *testing.T) {
		c, err := NewCategory("Tâm lý", "")
		require.NoError(t, err)

		require.NoError(t, c.Deactivate())
		require.Error(t, c.Deactivate())
		require.NoError(t, c.Activate())
		require.Error(t, c.Activate())
	})
}

func TestReport(t *testing.T) {
	reporterID := uuid.New()
	adminID := uuid.New()

	t.Run("open report resolves once", func(t *testing.T) {
		r, err := NewReport(ReportTargetAnswer, uuid.New(), reporterID, "spam link")
		require.NoError(t, err)
		assert.Equal(t, ReportStatusOpen, r.Status)

		require.NoError(t, r.MarkActioned(adminID))
		assert.Equal(t, ReportStatusActioned, r.Status)
		assert.NotNil(t, r.ResolvedAt)

		require.Error(t, r.Dismiss(adminID))
	})

	t.Run("rejects unknown target kind", func(t *testing.T) {
		_, err := NewReport(ReportTarget("post"), uuid.New(), reporterID, "reason")
		require.Error(t, err)
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		_, err := NewReport(ReportTargetQuestion, uuid.New(), reporterID, "  ")
		require.Error(t, err)
	})
}
