package persistence

import (
	"github.com/kenhgt247/me-be-sub001/internal/domain/shared"
	"gorm.io/gorm"
)

// applyCursor narrows a query to rows strictly older than the cursor
// position. Rows are keyed by (created_at, id) so ties on the timestamp
// stay deterministic; the row-value comparison uses the matching composite
// index on Postgres.
func applyCursor(q *gorm.DB, c shared.Cursor) (*gorm.DB, error) {
	if c.IsZero() {
		return q, nil
	}
	createdAt, id, err := c.Decode()
	if err != nil {
		return nil, err
	}
	return q.Where("(created_at, id) < (?, ?)", createdAt, id), nil
}

// pageScope applies cursor, ordering and limit for one keyset page
func pageScope(q *gorm.DB, req shared.PageRequest) (*gorm.DB, error) {
	q, err := applyCursor(q, req.After)
	if err != nil {
		return nil, err
	}
	return q.Order("created_at DESC, id DESC").Limit(req.PageSize), nil
}
