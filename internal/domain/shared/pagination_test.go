package shared

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	id := uuid.New()

	cursor := EncodeCursor(createdAt, id)
	require.False(t, cursor.IsZero())

	gotTime, gotID, err := cursor.Decode()
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestCursorDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Cursor("not base64 at all!!").Decode()
	require.Error(t, err)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CURSOR", domainErr.Code)
}

func TestPageRequestNormalize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, PageRequest{}.Normalize().PageSize)
	assert.Equal(t, MaxPageSize, PageRequest{PageSize: 5000}.Normalize().PageSize)
	assert.Equal(t, 15, PageRequest{PageSize: 15}.Normalize().PageSize)
}

type pageRow struct {
	id        uuid.UUID
	createdAt time.Time
}

func rowCursor(r pageRow) Cursor {
	return EncodeCursor(r.createdAt, r.id)
}

func makeRows(n int) []pageRow {
	rows := make([]pageRow, n)
	base := time.Now()
	for i := range rows {
		rows[i] = pageRow{id: uuid.New(), createdAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	return rows
}

func TestNewPage(t *testing.T) {
	t.Run("full page implies more", func(t *testing.T) {
		rows := makeRows(15)
		page := NewPage(rows, 15, rowCursor)
		assert.True(t, page.HasMore)
		assert.Equal(t, rowCursor(rows[14]), page.NextCursor)
	})

	t.Run("short page implies exhaustion", func(t *testing.T) {
		rows := makeRows(7)
		page := NewPage(rows, 15, rowCursor)
		assert.False(t, page.HasMore)
		assert.Equal(t, rowCursor(rows[6]), page.NextCursor)
	})

	t.Run("empty page keeps empty cursor", func(t *testing.T) {
		page := NewPage([]pageRow{}, 15, rowCursor)
		assert.False(t, page.HasMore)
		assert.True(t, page.NextCursor.IsZero())
	})

	t.Run("exact multiple requires one extra empty call", func(t *testing.T) {
		// A collection of exactly 2*pageSize rows: both pages come back
		// full, so HasMore stays true after the second page and only the
		// third, empty fetch reports exhaustion.
		const pageSize = 15
		all := makeRows(2 * pageSize)

		first := NewPage(all[:pageSize], pageSize, rowCursor)
		assert.True(t, first.HasMore)

		second := NewPage(all[pageSize:], pageSize, rowCursor)
		assert.True(t, second.HasMore)

		third := NewPage([]pageRow{}, pageSize, rowCursor)
		assert.False(t, third.HasMore)
		assert.True(t, third.NextCursor.IsZero())
	})
}

func TestSearchGuard(t *testing.T) {
	t.Run("older ticket is rejected once a newer search starts", func(t *testing.T) {
		var guard SearchGuard

		ticketA := guard.Begin()  // search "a"
		ticketAB := guard.Begin() // search "ab" issued before "a" resolves

		// "a" resolves late: its results must be discarded.
		assert.False(t, guard.Accept(ticketA))
		assert.True(t, guard.Accept(ticketAB))
	})

	t.Run("tickets are strictly increasing under concurrency", func(t *testing.T) {
		var guard SearchGuard
		var mu sync.Mutex
		seen := make(map[uint64]bool)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ticket := guard.Begin()
				mu.Lock()
				defer mu.Unlock()
				assert.False(t, seen[ticket])
				seen[ticket] = true
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 50)
	})
}
