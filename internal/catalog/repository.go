package catalog

import (
	"sync"
)

// Repository loads an uncleaned catalog from some source. Callers pass the
// result through Clean before building a Table.
type Repository interface {
	Load() (RawTable, error)
}

// InMemoryRepository serves a fixed raw table, useful for tests and local
// scenarios without a data file.
type InMemoryRepository struct {
	mu    sync.RWMutex
	table RawTable
}

func NewInMemoryRepository(table RawTable) *InMemoryRepository {
	return &InMemoryRepository{table: table}
}

func (r *InMemoryRepository) Load() (RawTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cols := make(map[string]bool, len(r.table.Columns))
	for k, v := range r.table.Columns {
		cols[k] = v
	}
	rows := make([]RawProduct, len(r.table.Rows))
	copy(rows, r.table.Rows)
	return RawTable{Columns: cols, Rows: rows}, nil
}

// Reset replaces the stored raw table (used for dev / seeding).
func (r *InMemoryRepository) Reset(table RawTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = table
}
