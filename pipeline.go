package main

import (
	"fmt"
	"math"
)

// Op is a comparison operator for the parameter filter. The zero value
// OpNone means "no recognized operator"; the filter is skipped for it,
// matching how the dashboard treats anything outside the five operators.
type Op int

const (
	OpNone Op = iota
	OpGt
	OpGte
	OpLt
	OpLte
	OpEq
)

// ParseOp maps the operator string coming from the UI onto the closed
// enumeration. Unknown strings map to OpNone rather than an error.
func ParseOp(s string) Op {
	switch s {
	case ">":
		return OpGt
	case ">=":
		return OpGte
	case "<":
		return OpLt
	case "<=":
		return OpLte
	case "=":
		return OpEq
	}
	return OpNone
}

func (op Op) String() string {
	switch op {
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpEq:
		return "="
	}
	return ""
}

func (op Op) apply(v, threshold float64) bool {
	switch op {
	case OpGt:
		return v > threshold
	case OpGte:
		return v >= threshold
	case OpLt:
		return v < threshold
	case OpLte:
		return v <= threshold
	case OpEq:
		return v == threshold
	}
	return true
}

// Selections carries the current value of every dashboard control. A new
// Selections is built from the request on each change event; nothing is
// remembered between evaluations.
type Selections struct {
	XCol         string
	YCol         string
	ColorCol     string
	SizeCol      string
	TeamFilter   []string
	PlayerFilter []string
	HoverCols    []string
	ParamCol     string
	ParamOp      Op
	ParamValue   *float64
}

// PlotSpec is the resolved set of plot parameters handed to rendering.
// Empty marks the placeholder state shown before both axes are chosen.
type PlotSpec struct {
	X     string
	Y     string
	Color string
	Size  string
	Hover []string
	Title string
	Empty bool
}

// Result is one pipeline evaluation: the filtered rows plus the plot
// parameters resolved against them.
type Result struct {
	View View
	Spec PlotSpec
}

const placeholderTitle = "Select X and Y columns"

// Evaluate runs the filter/selection pipeline: team filter, then player
// filter, then parameter filter, each narrowing the previous stage's
// rows; then hover and color/size resolution against what survived.
// It never fails — unresolvable selections degrade to unset — and it
// never touches the source table.
func Evaluate(t *Table, sel Selections) Result {
	if sel.XCol == "" || sel.YCol == "" {
		return Result{
			View: View{Table: t},
			Spec: PlotSpec{Title: placeholderTitle, Empty: true},
		}
	}

	view := t.FullView()

	if len(sel.TeamFilter) > 0 {
		view = filterByMembership(view, "Team", sel.TeamFilter)
	}
	if len(sel.PlayerFilter) > 0 {
		view = filterByMembership(view, "Name", sel.PlayerFilter)
	}
	if sel.ParamCol != "" && sel.ParamValue != nil && sel.ParamOp != OpNone {
		view = filterByComparison(view, sel.ParamCol, sel.ParamOp, *sel.ParamValue)
	}

	spec := PlotSpec{
		X:     sel.XCol,
		Y:     sel.YCol,
		Hover: hoverList(view.Table, sel.HoverCols),
	}
	if view.Table.HasCol(sel.ColorCol) {
		spec.Color = sel.ColorCol
	}
	if view.Table.HasCol(sel.SizeCol) {
		spec.Size = sel.SizeCol
	}
	spec.Title = plotTitle(spec)

	return Result{View: view, Spec: spec}
}

// filterByMembership keeps rows whose value in col is one of accepted.
// An absent or numeric col keeps the view as-is (degraded selection).
func filterByMembership(v View, col string, accepted []string) View {
	c := v.Table.Col(col)
	if c == nil || c.Kind != TextColumn {
		return v
	}
	set := make(map[string]bool, len(accepted))
	for _, a := range accepted {
		set[a] = true
	}
	return v.Where(func(row int) bool { return set[c.Strings[row]] })
}

// filterByComparison keeps rows whose numeric value in col satisfies
// op against threshold. NaN cells never satisfy any operator.
func filterByComparison(v View, col string, op Op, threshold float64) View {
	c := v.Table.Col(col)
	if c == nil || c.Kind != NumericColumn {
		return v
	}
	return v.Where(func(row int) bool {
		val := c.Floats[row]
		return !math.IsNaN(val) && op.apply(val, threshold)
	})
}

// hoverList builds the tooltip field list: "Name" leads when the table
// has it, then each selected column that exists and is not "Name".
// Duplicates other than "Name" pass through as selected.
func hoverList(t *Table, selected []string) []string {
	var out []string
	if t.HasCol("Name") {
		out = append(out, "Name")
	}
	for _, col := range selected {
		if col != "Name" && t.HasCol(col) {
			out = append(out, col)
		}
	}
	return out
}

func plotTitle(spec PlotSpec) string {
	title := fmt.Sprintf("%s vs %s", spec.X, spec.Y)
	if spec.Color != "" {
		title += fmt.Sprintf(", colored by %s", spec.Color)
	}
	if spec.Size != "" {
		title += fmt.Sprintf(", sized by %s", spec.Size)
	}
	return title
}
