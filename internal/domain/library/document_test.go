package library

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingDocument(t *testing.T) *Document {
	t.Helper()
	d, err := NewDocument(uuid.New(), "Thực đơn ăn dặm 30 ngày", "PDF tổng hợp", "documents/abc.pdf", "application/pdf", 1024)
	require.NoError(t, err)
	d.ClearDomainEvents()
	return d
}

func TestNewDocument(t *testing.T) {
	uploaderID := uuid.New()

	t.Run("registers pending upload with slug", func(t *testing.T) {
		d, err := NewDocument(uploaderID, "Thực đơn ăn dặm 30 ngày", "", "documents/abc.pdf", "application/pdf", 2048)
		require.NoError(t, err)

		assert.Equal(t, DocumentStatusPending, d.Status)
		assert.True(t, strings.HasPrefix(d.Slug, "thuc-don-an-dam-30-ngay-"))
		assert.True(t, strings.HasSuffix(d.Slug, d.PublicID))

		events := d.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeDocumentUploaded, events[0].EventType())
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		_, err := NewDocument(uploaderID, "Title", "", "documents/x.exe", "application/octet-stream", 1024)
		require.Error(t, err)
	})

	t.Run("rejects invalid size", func(t *testing.T) {
		_, err := NewDocument(uploaderID, "Title", "", "documents/x.pdf", "application/pdf", 0)
		require.Error(t, err)

		_, err = NewDocument(uploaderID, "Title", "", "documents/x.pdf", "application/pdf", maxFileSizeBytes+1)
		require.Error(t, err)
	})

	t.Run("rejects empty storage key", func(t *testing.T) {
		_, err := NewDocument(uploaderID, "Title", "", "  ", "application/pdf", 1024)
		require.Error(t, err)
	})
}

func TestDocumentModeration(t *testing.T) {
	t.Run("publish pending document", func(t *testing.T) {
		d := newPendingDocument(t)
		require.NoError(t, d.Publish())
		assert.True(t, d.IsPublished())

		events := d.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeDocumentPublished, events[0].EventType())

		require.Error(t, d.Publish())
		require.Error(t, d.Reject())
	})

	t.Run("rejected document cannot be edited", func(t *testing.T) {
		d := newPendingDocument(t)
		require.NoError(t, d.Reject())
		require.Error(t, d.Update("New title", ""))
		require.Error(t, d.Publish())
	})
}

func TestDocumentRatings(t *testing.T) {
	t.Run("average over recorded scores", func(t *testing.T) {
		d := newPendingDocument(t)
		assert.Zero(t, d.AverageRating())

		d.RecordRating(5)
		d.RecordRating(4)
		d.RecordRating(3)
		assert.InDelta(t, 4.0, d.AverageRating(), 0.001)
		assert.Equal(t, int64(3), d.RatingCount)
	})

	t.Run("download counter", func(t *testing.T) {
		d := newPendingDocument(t)
		d.RecordDownload()
		d.RecordDownload()
		assert.Equal(t, int64(2), d.Downloads)
	})
}

func TestReview(t *testing.T) {
	documentID := uuid.New()
	authorID := uuid.New()

	t.Run("create and update", func(t *testing.T) {
		r, err := NewReview(documentID, authorID, 5, "  Rất hữu ích  ")
		require.NoError(t, err)
		assert.Equal(t, 5, r.Score)
		assert.Equal(t, "Rất hữu ích", r.Comment)

		require.NoError(t, r.Update(3, ""))
		assert.Equal(t, 3, r.Score)
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		_, err := NewReview(documentID, authorID, 0, "")
		require.Error(t, err)

		_, err = NewReview(documentID, authorID, 6, "")
		require.Error(t, err)
	})

	t.Run("rejects oversized comment", func(t *testing.T) {
		_, err := NewReview(documentID, authorID, 4, strings.Repeat("a", maxReviewLength+1))
		require.Error(t, err)
	})
}
