package shared

import (
	"encoding/base64"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Pagination defaults shared by all listing endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Cursor is an opaque position in an ordered result set. Callers round-trip
// it between page fetches and never inspect its contents.
type Cursor string

// EmptyCursor requests the first page.
const EmptyCursor Cursor = ""

type cursorPayload struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uuid.UUID `json:"id"`
}

// EncodeCursor builds the cursor for a row identified by its stable
// (created_at, id) ordering key.
func EncodeCursor(createdAt time.Time, id uuid.UUID) Cursor {
	raw, _ := json.Marshal(cursorPayload{CreatedAt: createdAt, ID: id})
	return Cursor(base64.RawURLEncoding.EncodeToString(raw))
}

// Decode recovers the ordering key from a cursor.
func (c Cursor) Decode() (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return time.Time{}, uuid.Nil, NewDomainError("INVALID_CURSOR", "Malformed page cursor")
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, uuid.Nil, NewDomainError("INVALID_CURSOR", "Malformed page cursor")
	}
	return p.CreatedAt, p.ID, nil
}

// IsZero reports whether the cursor requests the first page.
func (c Cursor) IsZero() bool {
	return c == EmptyCursor
}

// PageRequest carries the uniform "load next page" parameters used by the
// admin and content listings.
type PageRequest struct {
	After    Cursor
	PageSize int
	Search   string
}

// Normalize clamps the page size into the allowed range.
func (r PageRequest) Normalize() PageRequest {
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
	return r
}

// Page is one page of an ordered listing.
//
// HasMore is a heuristic, not a guarantee: a full page implies there may be
// more, so when the collection size is an exact multiple of the page size
// one extra empty fetch is needed to confirm exhaustion. This matches the
// listing contract exactly and is kept deliberately.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor Cursor `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// NewPage derives the page envelope from the rows a repository returned for
// a fetch of pageSize items. cursorOf yields the cursor of a row.
func NewPage[T any](items []T, pageSize int, cursorOf func(T) Cursor) Page[T] {
	page := Page[T]{
		Items:   items,
		HasMore: pageSize > 0 && len(items) == pageSize,
	}
	if len(items) > 0 {
		page.NextCursor = cursorOf(items[len(items)-1])
	}
	return page
}

// EmptyPage is the failure-path result for listing operations: backend
// errors surface as no items and no further pages, never as a crash of the
// navigation path.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}, HasMore: false}
}

// SearchGuard discards stale responses when rapid successive searches race.
// Begin issues a ticket for a new request; Accept reports whether that
// ticket still belongs to the newest request, so a slower, older fetch can
// never overwrite a newer search's results.
type SearchGuard struct {
	seq atomic.Uint64
}

// Begin registers a new in-flight search and returns its ticket.
func (g *SearchGuard) Begin() uint64 {
	return g.seq.Add(1)
}

// Accept reports whether the ticket is still the most recent one.
func (g *SearchGuard) Accept(ticket uint64) bool {
	return g.seq.Load() == ticket
}
