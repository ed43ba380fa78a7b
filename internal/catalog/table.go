package catalog

import "sync"

// Table is the canonical, cleaned product set shared by every recommender.
// It is immutable after construction, so concurrent readers need no locking.
type Table struct {
	rows   []Product
	byName map[string][]int
	byUser map[int64][]int
	byProd map[int64]int // first row index per ProdID
}

// NewTable builds a table plus lookup indexes from cleaned rows.
func NewTable(rows []Product) *Table {
	t := &Table{
		rows:   rows,
		byName: make(map[string][]int),
		byUser: make(map[int64][]int),
		byProd: make(map[int64]int, len(rows)),
	}
	for i, p := range rows {
		t.byName[p.Name] = append(t.byName[p.Name], i)
		t.byUser[p.UserID] = append(t.byUser[p.UserID], i)
		if _, ok := t.byProd[p.ProdID]; !ok {
			t.byProd[p.ProdID] = i
		}
	}
	return t
}

// Rows returns the underlying rows. Callers must treat them as read-only.
func (t *Table) Rows() []Product {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// RowsByName returns the indexes of every row whose Name matches exactly,
// in table order.
func (t *Table) RowsByName(name string) []int {
	return t.byName[name]
}

// UserRows returns the indexes of a user's interaction rows in table order.
func (t *Table) UserRows(userID int64) []int {
	return t.byUser[userID]
}

// HasUser reports whether the user has any interaction rows.
func (t *Table) HasUser(userID int64) bool {
	return len(t.byUser[userID]) > 0
}

// ProductRow returns the representative (first) row for a product id.
func (t *Table) ProductRow(prodID int64) (Product, bool) {
	i, ok := t.byProd[prodID]
	if !ok {
		return Product{}, false
	}
	return t.rows[i], true
}

// Store holds the current canonical table. Reload swaps the whole table at
// once; readers always see a complete snapshot.
type Store struct {
	mu    sync.RWMutex
	table *Table
}

func NewStore(t *Table) *Store {
	return &Store{table: t}
}

// Table returns the current snapshot.
func (s *Store) Table() *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Reload replaces the current snapshot.
func (s *Store) Reload(t *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}
