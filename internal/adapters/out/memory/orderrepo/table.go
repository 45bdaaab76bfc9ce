package orderrepo

import "slices"

// Table holds the order rows in insertion order.
type Table struct {
	rows []OrderDTO
}

func NewTable() *Table {
	return &Table{rows: make([]OrderDTO, 0)}
}

// Snapshot returns a deep copy of the rows for later Restore.
func (t *Table) Snapshot() []OrderDTO {
	rows := make([]OrderDTO, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.clone()
	}
	return rows
}

func (t *Table) Restore(rows []OrderDTO) {
	t.rows = make([]OrderDTO, len(rows))
	for i, row := range rows {
		t.rows[i] = row.clone()
	}
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) indexOf(id int64) int {
	return slices.IndexFunc(t.rows, func(row OrderDTO) bool { return row.ID == id })
}
