package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"pitchscope/templates"

	"github.com/a-h/templ"
)

const (
	defaultCSVPath = "pitching_advanced_20IPmin.csv"
	listenAddr     = "127.0.0.1:8053"
)

// App holds the immutable per-process state: the dataset and the
// dropdown option lists derived from it. Built once at startup and
// shared by every request without locking, since nothing mutates it.
type App struct {
	Table   *Table
	Teams   []string
	Players []string
}

func newApp(t *Table) *App {
	app := &App{Table: t}

	teams, err := distinctValues("Team")
	if err != nil {
		fmt.Printf("⚠️ Team options query failed (%v), falling back to table scan\n", err)
		teams = t.DistinctStrings("Team")
	}
	players, err := distinctValues("Name")
	if err != nil {
		fmt.Printf("⚠️ Player options query failed (%v), falling back to table scan\n", err)
		players = t.DistinctStrings("Name")
	}
	app.Teams = teams
	app.Players = players
	return app
}

func (a *App) homeHandler(w http.ResponseWriter, r *http.Request) {
	numeric := a.Table.NumericColNames()
	data := templates.DashboardData{
		NumericCols: numeric,
		AllCols:     a.Table.ColNames(),
		Teams:       a.Teams,
		Players:     a.Players,
	}
	if len(numeric) > 0 {
		data.DefaultX = numeric[0]
	}
	if len(numeric) > 1 {
		data.DefaultY = numeric[1]
	}

	component := templates.Dashboard(data)
	templ.Handler(component).ServeHTTP(w, r)
}

// plotHandler runs one pipeline evaluation against the current control
// values and returns the Vega-Lite spec for the filtered data.
func (a *App) plotHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sel := Selections{
		XCol:         q.Get("x"),
		YCol:         q.Get("y"),
		ColorCol:     q.Get("color"),
		SizeCol:      q.Get("size"),
		TeamFilter:   q["team"],
		PlayerFilter: q["player"],
		HoverCols:    q["hover"],
		ParamCol:     q.Get("param_col"),
		ParamOp:      ParseOp(q.Get("param_op")),
	}
	// A blank or non-numeric value means the parameter filter is off.
	if raw := q.Get("param_value"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			sel.ParamValue = &v
		}
	}

	res := Evaluate(a.Table, sel)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vegaLiteSpec(res))
}

func (a *App) summaryHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := columnSummaries(a.Table)
	if err != nil {
		http.Error(w, "Summary computation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func main() {
	csvPath := defaultCSVPath
	if p := os.Getenv("PITCHSCOPE_CSV"); p != "" {
		csvPath = p
	}

	table, err := LoadCSV(csvPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📊 Loaded %d rows, %d columns from %s\n", table.NumRows(), len(table.ColNames()), csvPath)

	initDB(table)
	app := newApp(table)

	http.HandleFunc("/", app.homeHandler)
	http.HandleFunc("/api/plot", app.plotHandler)
	http.HandleFunc("/api/summary", app.summaryHandler)

	fmt.Printf("⚾ PitchScope is running on http://%s\n", listenAddr)
	http.ListenAndServe(listenAddr, nil)
}
