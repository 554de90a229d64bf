package main

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

func loadMirror(t *testing.T) *Table {
	t.Helper()
	tbl, err := LoadCSV(filepath.Join("testdata", "pitching_sample.csv"))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	initDB(tbl)
	return tbl
}

func TestDistinctValues(t *testing.T) {
	loadMirror(t)

	teams, err := distinctValues("Team")
	if err != nil {
		t.Fatalf("distinctValues: %v", err)
	}
	want := []string{"Birmingham", "Erie", "Hartford", "Indianapolis", "Memphis", "San Antonio"}
	if !reflect.DeepEqual(teams, want) {
		t.Errorf("teams = %v, want %v", teams, want)
	}

	if _, err := distinctValues("NoSuchColumn"); err == nil {
		t.Error("expected an error for a column the mirror does not have")
	}
}

func TestColumnSummaries(t *testing.T) {
	tbl := loadMirror(t)
	summaryCache.mu.Lock()
	summaryCache.data = nil
	summaryCache.mu.Unlock()

	summaries, err := columnSummaries(tbl)
	if err != nil {
		t.Fatalf("columnSummaries: %v", err)
	}

	byName := make(map[string]ColumnSummary, len(summaries))
	for _, s := range summaries {
		byName[s.Column] = s
	}

	era, ok := byName["ERA"]
	if !ok {
		t.Fatal("no ERA summary")
	}
	if era.Count != 6 || era.Min != 1.48 || era.Max != 4.48 {
		t.Errorf("ERA summary = %+v", era)
	}
	wantMean := (2.36 + 3.08 + 2.76 + 4.48 + 1.48 + 3.85) / 6
	if math.Abs(era.Mean-wantMean) > 1e-9 {
		t.Errorf("ERA mean = %v, want %v", era.Mean, wantMean)
	}

	// The blank IP cell is a NULL in the mirror and stays out of COUNT.
	ip := byName["IP"]
	if ip.Count != 5 {
		t.Errorf("IP count = %d, want 5", ip.Count)
	}

	// Text columns get no summary.
	if _, ok := byName["Team"]; ok {
		t.Error("Team should not be summarized")
	}
}
