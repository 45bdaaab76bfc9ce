package menurepo

import "slices"

// Table holds the menu rows in insertion order.
type Table struct {
	rows []ItemDTO
}

func NewTable() *Table {
	return &Table{rows: make([]ItemDTO, 0)}
}

// Snapshot returns a copy of the rows for later Restore.
func (t *Table) Snapshot() []ItemDTO {
	return slices.Clone(t.rows)
}

func (t *Table) Restore(rows []ItemDTO) {
	t.rows = slices.Clone(rows)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) indexOf(id int64) int {
	return slices.IndexFunc(t.rows, func(row ItemDTO) bool { return row.ID == id })
}
