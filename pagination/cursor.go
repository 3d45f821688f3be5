// Package pagination walks a filtered table in fixed-size windows.
package pagination

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/table"
)

const (
	DefaultPageSize = 5
	// DefaultStartOffset the first window starts after the first page, so rows
	// [0, 5) are never shown. Kept to match the raw data view users are used to.
	DefaultStartOffset = 5
)

// Cursor is scoped to one table and one session. It is not safe for concurrent use.
type Cursor struct {
	table    *table.Table
	pageSize int
	offset   int
}

// NewCursor returns a Cursor over t. Non-positive page sizes fall back to
// DefaultPageSize and negative offsets to zero.
func NewCursor(t *table.Table, pageSize int, startOffset int) *Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if startOffset < 0 {
		startOffset = 0
	}
	return &Cursor{
		table:    t,
		pageSize: pageSize,
		offset:   startOffset,
	}
}

// Next returns up to pageSize rows starting at the next unseen offset and advances
// the cursor. Past the end of the table it returns an empty slice.
func (c *Cursor) Next() []*trip.TripData {
	rows := c.table.Slice(c.offset, c.offset+c.pageSize)
	c.offset += c.pageSize
	return rows
}

// Offset returns the position of the next window
func (c *Cursor) Offset() int {
	return c.offset
}

// Exhausted reports whether Next can only return empty slices from now on
func (c *Cursor) Exhausted() bool {
	return c.offset >= c.table.Len()
}
