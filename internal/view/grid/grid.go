// Package grid models an editable data table without knowing what the
// rows mean. Callers supply rows as flat column maps plus callbacks for
// cell edits, row removal and row insertion; the grid tracks per-row
// edit and collapse state and renders display values.
package grid

import (
	"strconv"
)

// Callbacks connect the grid's mutating gestures to whatever owns the
// row data. Nil callbacks turn the gesture into a no-op.
type Callbacks struct {
	UpdateCell func(rowID, column, value string)
	RemoveRow  func(rowID string)
	AddRow     func()
}

// Config describes one table. Columns is the full ordered column set;
// IgnoredColumns hides bookkeeping columns from rendering without
// removing them from the row data. HeaderName and CellReplace customize
// display text, RowEditable gates which rows accept edits.
type Config struct {
	Columns        []string
	IgnoredColumns []string
	HeaderName     func(column string) string
	CellReplace    func(value string) string
	RowEditable    func(rowID string) bool
	Callbacks      Callbacks
}

// Row is one rendered table row keyed by its id column value.
type Row struct {
	ID    string
	Cells map[string]any
}

type Table struct {
	cfg       Config
	rows      []Row
	editing   map[string]bool
	collapsed map[string]bool
}

func New(cfg Config) *Table {
	return &Table{
		cfg:       cfg,
		editing:   make(map[string]bool),
		collapsed: make(map[string]bool),
	}
}

// SetRows replaces the table contents. Edit and collapse state is kept
// for row ids that survive the swap.
func (t *Table) SetRows(rows []map[string]any) {
	t.rows = t.rows[:0]
	alive := make(map[string]bool, len(rows))
	for _, cells := range rows {
		id := FormatValue(cells["id"])
		t.rows = append(t.rows, Row{ID: id, Cells: cells})
		alive[id] = true
	}
	for id := range t.editing {
		if !alive[id] {
			delete(t.editing, id)
		}
	}
	for id := range t.collapsed {
		if !alive[id] {
			delete(t.collapsed, id)
		}
	}
}

// VisibleColumns is the configured column order minus the ignored set.
func (t *Table) VisibleColumns() []string {
	ignored := make(map[string]bool, len(t.cfg.IgnoredColumns))
	for _, col := range t.cfg.IgnoredColumns {
		ignored[col] = true
	}
	cols := make([]string, 0, len(t.cfg.Columns))
	for _, col := range t.cfg.Columns {
		if !ignored[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

// Header renders the display label for every visible column.
func (t *Table) Header() []string {
	cols := t.VisibleColumns()
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		if t.cfg.HeaderName != nil {
			out = append(out, t.cfg.HeaderName(col))
		} else {
			out = append(out, col)
		}
	}
	return out
}

// Render produces the display cells for every row, visible columns
// only. Rows in edit mode show raw values so the edit round trips;
// view mode values go through CellReplace.
func (t *Table) Render() [][]string {
	out := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		editing := t.editing[row.ID]
		cells := make([]string, 0, len(t.cfg.Columns))
		for _, col := range t.VisibleColumns() {
			value := FormatValue(row.Cells[col])
			if !editing && t.cfg.CellReplace != nil {
				value = t.cfg.CellReplace(value)
			}
			cells = append(cells, value)
		}
		out = append(out, cells)
	}
	return out
}

// RowIDs lists the current rows in render order.
func (t *Table) RowIDs() []string {
	ids := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		ids = append(ids, row.ID)
	}
	return ids
}

// ToggleEdit flips a row in or out of edit mode. Rows the editable gate
// rejects never enter edit mode.
func (t *Table) ToggleEdit(rowID string) {
	if t.editing[rowID] {
		delete(t.editing, rowID)
		return
	}
	if t.cfg.RowEditable != nil && !t.cfg.RowEditable(rowID) {
		return
	}
	t.editing[rowID] = true
}

func (t *Table) IsEditing(rowID string) bool {
	return t.editing[rowID]
}

// ToggleCollapse flips a row's collapsed state; collapse carries no
// data meaning, it only hides the row body in rendering surfaces that
// support it.
func (t *Table) ToggleCollapse(rowID string) {
	if t.collapsed[rowID] {
		delete(t.collapsed, rowID)
	} else {
		t.collapsed[rowID] = true
	}
}

func (t *Table) IsCollapsed(rowID string) bool {
	return t.collapsed[rowID]
}

// SetCell forwards a cell edit to the owner. Only rows currently in
// edit mode accept edits.
func (t *Table) SetCell(rowID, column, value string) bool {
	if !t.editing[rowID] || t.cfg.Callbacks.UpdateCell == nil {
		return false
	}
	t.cfg.Callbacks.UpdateCell(rowID, column, value)
	return true
}

// Remove forwards a row removal gesture to the owner.
func (t *Table) Remove(rowID string) bool {
	if t.cfg.Callbacks.RemoveRow == nil {
		return false
	}
	t.cfg.Callbacks.RemoveRow(rowID)
	return true
}

// Add forwards the footer add-row gesture to the owner.
func (t *Table) Add() bool {
	if t.cfg.Callbacks.AddRow == nil {
		return false
	}
	t.cfg.Callbacks.AddRow()
	return true
}

// FormatValue renders a cell value as display text. Numbers drop
// trailing zeros so quantities read naturally.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
