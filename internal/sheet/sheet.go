// Package sheet reads xlsx workbooks into column-name-indexed rows. The
// first row of every sheet is treated as the header; cell access is
// null-safe so ingestion code never has to bounds-check the source data.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row indexed by column name. Values are trimmed;
// columns absent from the sheet's header simply read as null.
type Row struct {
	cells map[string]string
}

// Get returns the trimmed cell value for a column, or "" when the column
// is absent or blank.
func (r Row) Get(column string) string {
	return r.cells[column]
}

// IsNull reports whether a column is absent from the row or blank.
func (r Row) IsNull(column string) bool {
	v, ok := r.cells[column]
	return !ok || v == ""
}

// First returns the value of the first listed column that is non-blank.
func (r Row) First(columns ...string) string {
	for _, c := range columns {
		if v := r.cells[c]; v != "" {
			return v
		}
	}
	return ""
}

// Table is the contents of one workbook: the union of all non-empty
// sheets, in sheet order, each sheet headed by its own first row.
type Table struct {
	Path    string
	Columns []string
	Rows    []Row
}

// Require returns an error naming every listed column missing from the
// workbook's headers. Callers treat a failure as fatal for the run.
func (t *Table) Require(columns ...string) error {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}

	var missing []string
	for _, c := range columns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing required columns: %s", t.Path, strings.Join(missing, ", "))
	}
	return nil
}

// Read loads a workbook from path. Every non-empty sheet contributes its
// rows; a workbook with no data rows at all is an error.
func Read(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	table := &Table{Path: path}
	seen := make(map[string]bool)

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q of %s: %w", name, path, err)
		}
		if len(rows) < 2 {
			continue // header only, or empty
		}

		header := make([]string, len(rows[0]))
		for i, h := range rows[0] {
			header[i] = strings.TrimSpace(h)
		}
		for _, h := range header {
			if h != "" && !seen[h] {
				seen[h] = true
				table.Columns = append(table.Columns, h)
			}
		}

		for _, raw := range rows[1:] {
			cells := make(map[string]string, len(header))
			empty := true
			for i, h := range header {
				if h == "" {
					continue
				}
				var v string
				if i < len(raw) {
					v = strings.TrimSpace(raw[i])
				}
				cells[h] = v
				if v != "" {
					empty = false
				}
			}
			if empty {
				continue
			}
			table.Rows = append(table.Rows, Row{cells: cells})
		}
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no data rows", path)
	}
	return table, nil
}

// NewRow builds a row from explicit cells. Intended for tests and for
// callers that synthesize rows outside a workbook.
func NewRow(cells map[string]string) Row {
	trimmed := make(map[string]string, len(cells))
	for k, v := range cells {
		trimmed[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return Row{cells: trimmed}
}
