package render

import (
	"fmt"
	"io"
	"strings"

	"tableskim/pkg/skim"
	"tableskim/pkg/types"
)

// Print writes a styled, human-readable rendering of a summary result: a
// metadata header followed by one wide table per column type, in first-seen
// type order. Error cells print as the !ERR sentinel, NA cells as NA.
func Print(w io.Writer, res *skim.Result) {
	fmt.Fprintln(w, titleStyle.Render("── Data Summary ──"))
	fmt.Fprintf(w, "%s %d\n", metaKeyStyle.Render("rows:"), res.SourceRows())
	fmt.Fprintf(w, "%s %d\n", metaKeyStyle.Render("columns:"), res.SourceColumns())
	if gc := res.GroupColumns(); len(gc) > 0 {
		fmt.Fprintf(w, "%s %s\n", metaKeyStyle.Render("groups:"), strings.Join(gc, ", "))
	}
	for _, t := range res.Types() {
		fmt.Fprintf(w, "%s %d\n",
			metaKeyStyle.Render(fmt.Sprintf("%s columns:", t)), res.TypeFrequency(t))
	}

	tables := res.Partition()
	for _, t := range res.Types() {
		printTypeTable(w, tables[t])
	}
}

func printTypeTable(w io.Writer, table *skim.TypeTable) {
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("── Variable type: %s ──", table.Type)))

	grouped := len(table.Entries) > 0 && !table.Entries[0].Group.IsZero()

	headers := make([]string, 0, len(table.Statistics)+2)
	if grouped {
		headers = append(headers, "group")
	}
	headers = append(headers, "variable")
	headers = append(headers, table.Statistics...)

	rows := make([][]string, len(table.Entries))
	styled := make([][]string, len(table.Entries))
	for i := range table.Entries {
		e := &table.Entries[i]
		plain := make([]string, 0, len(headers))
		pretty := make([]string, 0, len(headers))
		if grouped {
			plain = append(plain, e.Group.String())
			pretty = append(pretty, e.Group.String())
		}
		plain = append(plain, e.Variable)
		pretty = append(pretty, e.Variable)
		for _, st := range table.Statistics {
			p, s := renderCell(e, st)
			plain = append(plain, p)
			pretty = append(pretty, s)
		}
		rows[i] = plain
		styled[i] = pretty
	}

	widths := columnWidths(headers, rows)

	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = pad(h, widths[i])
	}
	fmt.Fprintln(w, headerStyle.Render(strings.Join(parts, "  ")))

	for i := range rows {
		for j := range headers {
			padding := strings.Repeat(" ", widths[j]-cellWidth(rows[i][j]))
			fmt.Fprint(w, styled[i][j], padding)
			if j < len(headers)-1 {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

// renderCell returns the plain text (for width accounting) and the styled
// text of one cell.
func renderCell(e *skim.TypeEntry, statistic string) (string, string) {
	d, ok := e.Cell(statistic)
	if !ok {
		return "", ""
	}
	plain := d.String()
	switch {
	case d.IsError():
		return plain, errCellStyle.Render(plain)
	case d.Kind() == types.DatumNA:
		return plain, naCellStyle.Render(plain)
	default:
		return plain, plain
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := cellWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

// cellWidth counts runes, not bytes, so sparkline glyphs align.
func cellWidth(s string) int {
	return len([]rune(s))
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-cellWidth(s))
}
