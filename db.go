package main

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"sync"

	_ "github.com/glebarez/go-sqlite"
)

var db *sql.DB

// initDB mirrors the loaded table into an in-memory SQLite database.
// Nothing is ever written after startup; the mirror only serves the
// dropdown option lists and the summary aggregates.
func initDB(t *Table) {
	var err error
	db, err = sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(err)
	}

	names := t.ColNames()
	cols := make([]string, 0, len(names))
	for _, name := range names {
		typ := "TEXT"
		if t.Col(name).Kind == NumericColumn {
			typ = "REAL"
		}
		cols = append(cols, quoteIdent(name)+" "+typ)
	}
	if _, err := db.Exec("CREATE TABLE pitching (" + strings.Join(cols, ", ") + ")"); err != nil {
		panic(err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	tx, err := db.Begin()
	if err != nil {
		panic(err)
	}
	stmt, err := tx.Prepare("INSERT INTO pitching VALUES (" + placeholders + ")")
	if err != nil {
		panic(err)
	}
	for row := 0; row < t.NumRows(); row++ {
		args := make([]any, 0, len(names))
		for _, name := range names {
			col := t.Col(name)
			if col.Kind == NumericColumn {
				if v := col.Floats[row]; math.IsNaN(v) {
					args = append(args, nil)
				} else {
					args = append(args, v)
				}
			} else {
				args = append(args, col.Strings[row])
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			panic(err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		panic(err)
	}
}

// distinctValues returns the sorted distinct non-blank values of a
// column, for populating the team and player dropdowns.
func distinctValues(column string) ([]string, error) {
	id := quoteIdent(column)
	q := fmt.Sprintf("SELECT DISTINCT %s FROM pitching WHERE %s IS NOT NULL AND %s != '' ORDER BY %s", id, id, id, id)
	rows, err := db.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ColumnSummary is one numeric column's aggregate stats.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// The table never changes after load, so summaries are computed once
// and cached.
var summaryCache = struct {
	mu   sync.Mutex
	data []ColumnSummary
}{}

func columnSummaries(t *Table) ([]ColumnSummary, error) {
	summaryCache.mu.Lock()
	defer summaryCache.mu.Unlock()

	if summaryCache.data != nil {
		return summaryCache.data, nil
	}

	var out []ColumnSummary
	for _, name := range t.NumericColNames() {
		id := quoteIdent(name)
		q := fmt.Sprintf("SELECT COUNT(%s), MIN(%s), MAX(%s), AVG(%s) FROM pitching", id, id, id, id)
		var s ColumnSummary
		var minV, maxV, mean sql.NullFloat64
		if err := db.QueryRow(q).Scan(&s.Count, &minV, &maxV, &mean); err != nil {
			return nil, err
		}
		s.Column = name
		s.Min = minV.Float64
		s.Max = maxV.Float64
		s.Mean = mean.Float64
		out = append(out, s)
	}
	summaryCache.data = out
	return out, nil
}

// quoteIdent makes a stat column name safe as a SQL identifier;
// pitching exports use names like "K%" and "HR/9".
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
