package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []map[string]any {
	return []map[string]any{
		{"id": int64(1), "buyer": "Chen", "1": float64(5), "deleted": false},
		{"id": int64(2), "buyer": "LOSS", "1": float64(0), "deleted": false},
	}
}

func TestVisibleColumnsAndHeader(t *testing.T) {
	table := New(Config{
		Columns:        []string{"id", "buyer", "1", "deleted"},
		IgnoredColumns: []string{"id", "deleted"},
		HeaderName: func(col string) string {
			if col == "buyer" {
				return "客戶"
			}
			return col
		},
	})

	assert.Equal(t, []string{"buyer", "1"}, table.VisibleColumns())
	assert.Equal(t, []string{"客戶", "1"}, table.Header())
}

func TestRender(t *testing.T) {
	table := New(Config{
		Columns:        []string{"id", "buyer", "1"},
		IgnoredColumns: []string{"id"},
		CellReplace: func(value string) string {
			if value == "LOSS" {
				return "損耗"
			}
			return value
		},
	})
	table.SetRows(testRows())

	rendered := table.Render()

	require.Len(t, rendered, 2)
	assert.Equal(t, []string{"Chen", "5"}, rendered[0])
	assert.Equal(t, []string{"損耗", "0"}, rendered[1], "view mode replaces sentinel values")

	table.ToggleEdit("2")
	assert.Equal(t, []string{"LOSS", "0"}, table.Render()[1], "edit mode shows the raw value")
}

func TestEditLifecycle(t *testing.T) {
	var gotRow, gotColumn, gotValue string
	table := New(Config{
		Columns:     []string{"id", "buyer"},
		RowEditable: func(rowID string) bool { return rowID != "2" },
		Callbacks: Callbacks{
			UpdateCell: func(rowID, column, value string) {
				gotRow, gotColumn, gotValue = rowID, column, value
			},
		},
	})
	table.SetRows(testRows())

	assert.False(t, table.SetCell("1", "buyer", "Wu"), "edits need edit mode first")

	table.ToggleEdit("1")
	require.True(t, table.IsEditing("1"))
	require.True(t, table.SetCell("1", "buyer", "Wu"))
	assert.Equal(t, "1", gotRow)
	assert.Equal(t, "buyer", gotColumn)
	assert.Equal(t, "Wu", gotValue)

	table.ToggleEdit("1")
	assert.False(t, table.IsEditing("1"))

	table.ToggleEdit("2")
	assert.False(t, table.IsEditing("2"), "gated rows never enter edit mode")
}

func TestEditStateSurvivesRefresh(t *testing.T) {
	table := New(Config{Columns: []string{"id"}})
	table.SetRows(testRows())
	table.ToggleEdit("1")
	table.ToggleCollapse("2")

	table.SetRows(testRows()[:1])

	assert.True(t, table.IsEditing("1"))
	assert.False(t, table.IsCollapsed("2"), "state drops with the row")
}

func TestRowGestures(t *testing.T) {
	var removed string
	var added bool
	table := New(Config{
		Columns: []string{"id"},
		Callbacks: Callbacks{
			RemoveRow: func(rowID string) { removed = rowID },
			AddRow:    func() { added = true },
		},
	})
	table.SetRows(testRows())

	require.True(t, table.Remove("2"))
	require.True(t, table.Add())
	assert.Equal(t, "2", removed)
	assert.True(t, added)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "3.5", FormatValue(3.5))
	assert.Equal(t, "3", FormatValue(float64(3)))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "7", FormatValue(int64(7)))
	assert.Equal(t, "x", FormatValue("x"))
}
