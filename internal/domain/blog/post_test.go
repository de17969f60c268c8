package blog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	authorID := uuid.New()

	t.Run("creates draft with slug derived from title", func(t *testing.T) {
		p, err := NewPost(authorID, "Mẹo giúp bé ngủ xuyên đêm", "Tóm tắt", "Nội dung bài viết")
		require.NoError(t, err)

		assert.Equal(t, PostStatusDraft, p.Status)
		assert.Nil(t, p.PublishedAt)
		assert.True(t, strings.HasPrefix(p.Slug, "meo-giup-be-ngu-xuyen-dem-"))
		assert.True(t, strings.HasSuffix(p.Slug, p.PublicID))

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePostCreated, events[0].EventType())
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewPost(authorID, " ", "", "Content")
		require.Error(t, err)
	})

	t.Run("fails with oversized excerpt", func(t *testing.T) {
		_, err := NewPost(authorID, "Title", strings.Repeat("a", maxExcerptLength+1), "Content")
		require.Error(t, err)
	})
}

func TestPostLifecycle(t *testing.T) {
	newDraft := func(t *testing.T) *Post {
		t.Helper()
		p, err := NewPost(uuid.New(), "Title", "", "Content")
		require.NoError(t, err)
		p.ClearDomainEvents()
		return p
	}

	t.Run("publish sets timestamp once", func(t *testing.T) {
		p := newDraft(t)
		require.NoError(t, p.Publish())
		require.NotNil(t, p.PublishedAt)
		first := *p.PublishedAt

		require.Error(t, p.Publish())

		require.NoError(t, p.Archive())
		require.NoError(t, p.Publish())
		assert.Equal(t, first, *p.PublishedAt)
	})

	t.Run("publish emits event", func(t *testing.T) {
		p := newDraft(t)
		require.NoError(t, p.Publish())

		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePostPublished, events[0].EventType())
	})

	t.Run("archived post rejects edits", func(t *testing.T) {
		p := newDraft(t)
		require.NoError(t, p.Archive())
		require.Error(t, p.Archive())
		require.Error(t, p.Update("New", "", "Content"))
	})

	t.Run("update follows title in slug", func(t *testing.T) {
		p := newDraft(t)
		require.NoError(t, p.Update("Ăn dặm kiểu Nhật", "", "Content"))
		assert.True(t, strings.HasPrefix(p.Slug, "an-dam-kieu-nhat-"))
		assert.True(t, strings.HasSuffix(p.Slug, p.PublicID))
	})
}

func TestComment(t *testing.T) {
	postID := uuid.New()
	authorID := uuid.New()

	t.Run("create and edit", func(t *testing.T) {
		c, err := NewComment(postID, authorID, "  Bài viết hữu ích quá!  ")
		require.NoError(t, err)
		assert.Equal(t, "Bài viết hữu ích quá!", c.Content)
		assert.True(t, c.IsVisible())
		assert.True(t, c.IsAuthor(authorID))

		require.NoError(t, c.Update("Đã sửa"))
		assert.Equal(t, "Đã sửa", c.Content)
	})

	t.Run("hidden comment rejects edits", func(t *testing.T) {
		c, err := NewComment(postID, authorID, "Content")
		require.NoError(t, err)

		require.NoError(t, c.Hide())
		require.Error(t, c.Hide())
		require.Error(t, c.Update("New"))
		assert.False(t, c.IsVisible())
	})

	t.Run("rejects empty and oversized content", func(t *testing.T) {
		_, err := NewComment(postID, authorID, "   ")
		require.Error(t, err)

		_, err = NewComment(postID, authorID, strings.Repeat("a", maxCommentLength+1))
		require.Error(t, err)
	})
}
