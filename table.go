package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// ColumnKind distinguishes numeric columns (plottable) from text columns.
type ColumnKind int

const (
	TextColumn ColumnKind = iota
	NumericColumn
)

// Column is one named column of the loaded dataset. Numeric columns keep
// their values in Floats (NaN for blank cells); text columns use Strings.
type Column struct {
	Name    string
	Kind    ColumnKind
	Floats  []float64
	Strings []string
}

// Table is the dataset loaded from the CSV. It is built once at startup
// and never mutated afterwards; filters only produce Views over it.
type Table struct {
	columns []Column
	byName  map[string]int
	nrows   int
}

func (t *Table) NumRows() int { return t.nrows }

func (t *Table) HasCol(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Col returns the named column, or nil if absent.
func (t *Table) Col(name string) *Column {
	i, ok := t.byName[name]
	if !ok {
		return nil
	}
	return &t.columns[i]
}

func (t *Table) ColNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

func (t *Table) NumericColNames() []string {
	var names []string
	for _, c := range t.columns {
		if c.Kind == NumericColumn {
			names = append(names, c.Name)
		}
	}
	return names
}

// DistinctStrings returns the sorted distinct values of a text column,
// or nil if the column is absent or numeric.
func (t *Table) DistinctStrings(name string) []string {
	col := t.Col(name)
	if col == nil || col.Kind != TextColumn {
		return nil
	}
	seen := make(map[string]bool, len(col.Strings))
	var out []string
	for _, v := range col.Strings {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// View is a subset of a Table's rows. Filter stages never copy column
// data; they only narrow the row index.
type View struct {
	Table *Table
	Rows  []int
}

// FullView covers every row of the table.
func (t *Table) FullView() View {
	rows := make([]int, t.nrows)
	for i := range rows {
		rows[i] = i
	}
	return View{Table: t, Rows: rows}
}

// Where returns a new View keeping only rows for which keep returns true.
func (v View) Where(keep func(row int) bool) View {
	out := make([]int, 0, len(v.Rows))
	for _, r := range v.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return View{Table: v.Table, Rows: out}
}

func (v View) NumRows() int { return len(v.Rows) }

// LoadCSV reads the dataset. The first record is the header; a column is
// numeric when every non-blank cell parses as a float, text otherwise.
// A missing file is reported with the resolved absolute path so the
// operator can see exactly what was looked for.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		resolved := path
		if abs, aerr := filepath.Abs(path); aerr == nil {
			resolved = abs
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("CSV not found: %s: %w", resolved, err)
		}
		return nil, fmt.Errorf("open CSV %s: %w", resolved, err)
	}
	defer f.Close()
	return readTable(f)
}

func readTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	byName := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate column %q in CSV header", name)
		}
		byName[name] = i
	}

	raw := make([][]string, len(header))
	nrows := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", nrows+2, err)
		}
		for i := range header {
			raw[i] = append(raw[i], rec[i])
		}
		nrows++
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = buildColumn(name, raw[i])
	}
	return &Table{columns: columns, byName: byName, nrows: nrows}, nil
}

// buildColumn infers the column kind from its cells. Blank cells don't
// count against numeric inference; they become NaN.
func buildColumn(name string, cells []string) Column {
	numeric := false
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
		numeric = true
	}
	if !numeric {
		return Column{Name: name, Kind: TextColumn, Strings: cells}
	}
	floats := make([]float64, len(cells))
	for i, cell := range cells {
		if cell == "" {
			floats[i] = math.NaN()
			continue
		}
		floats[i], _ = strconv.ParseFloat(cell, 64)
	}
	return Column{Name: name, Kind: NumericColumn, Floats: floats}
}

// IsNotFound reports whether err came from a missing CSV file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
