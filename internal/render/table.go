package render

import (
	"fmt"
	"strings"
)

type align int

const (
	left align = iota
	right
)

// column is one fixed-width column. A zero width leaves the cell unpadded.
type column struct {
	title string
	width int
	align align
}

// table writes fixed-width rows separated by single spaces.
type table struct {
	columns []column
	b       strings.Builder
}

func newTable(columns ...column) *table {
	return &table{columns: columns}
}

// header writes the column titles followed by a rule of width dashes.
func (t *table) header(rule int) {
	titles := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.title
	}
	t.row(titles...)
	t.b.WriteString(strings.Repeat("-", rule))
	t.b.WriteByte('\n')
}

func (t *table) row(cells ...string) {
	for i, cell := range cells {
		if i > 0 {
			t.b.WriteByte(' ')
		}
		c := t.columns[i]
		switch {
		case c.width == 0:
			t.b.WriteString(cell)
		case c.align == right:
			fmt.Fprintf(&t.b, "%*s", c.width, cell)
		default:
			fmt.Fprintf(&t.b, "%-*s", c.width, cell)
		}
	}
	t.b.WriteByte('\n')
}

func (t *table) line(s string) {
	t.b.WriteString(s)
	t.b.WriteByte('\n')
}

func (t *table) String() string {
	return t.b.String()
}
