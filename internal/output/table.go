package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tjsl-project/tjslctl/internal/client/api"
)

// Table renders resource listings as a borderless left-aligned table.
type Table struct {
	table  *tablewriter.Table
	w      io.Writer
	header []string
	rows   [][]string
}

// NewTable creates a table writing to w with the given column headers.
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, w: w, header: headers}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table followed by an optional pagination footer.
func (t *Table) Render() {
	t.table.Header(t.header)
	t.table.Bulk(t.rows)
	t.table.Render()
}

// RenderPaged writes the table and a "page X of Y (N total)" footer taken
// from the listing's pagination metadata.
func (t *Table) RenderPaged(meta api.PageMeta) {
	t.Render()
	if meta.LastPage > 1 || meta.Total > 0 {
		fmt.Fprintf(t.w, "page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
	}
}
