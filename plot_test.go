package main

import (
	"encoding/json"
	"testing"
)

func TestVegaLiteSpecScatter(t *testing.T) {
	tbl := mustTable(t, "Name,Team,ERA,FIP,IP\nA,X,3.0,3.2,90\nB,Y,4.5,4.0,75\n")
	res := Evaluate(tbl, Selections{
		XCol: "ERA", YCol: "FIP",
		ColorCol: "Team", SizeCol: "IP",
		HoverCols: []string{"Team"},
	})
	spec := vegaLiteSpec(res)

	if spec["title"] != "ERA vs FIP, colored by Team, sized by IP" {
		t.Errorf("title = %v", spec["title"])
	}

	enc := spec["encoding"].(map[string]any)
	x := enc["x"].(map[string]any)
	if x["field"] != "ERA" || x["type"] != "quantitative" {
		t.Errorf("x encoding = %v", x)
	}
	color := enc["color"].(map[string]any)
	if color["field"] != "Team" || color["type"] != "nominal" {
		t.Errorf("color encoding = %v", color)
	}
	size := enc["size"].(map[string]any)
	if size["field"] != "IP" || size["type"] != "quantitative" {
		t.Errorf("size encoding = %v", size)
	}
	tooltips := enc["tooltip"].([]map[string]any)
	if len(tooltips) != 2 || tooltips[0]["field"] != "Name" || tooltips[1]["field"] != "Team" {
		t.Errorf("tooltip encoding = %v", tooltips)
	}

	values := spec["data"].(map[string]any)["values"].([]map[string]any)
	if len(values) != 2 {
		t.Fatalf("values = %d rows, want 2", len(values))
	}
	if values[0]["ERA"] != 3.0 || values[0]["Team"] != "X" {
		t.Errorf("row 0 = %v", values[0])
	}

	// The whole thing must serialize cleanly for the browser.
	if _, err := json.Marshal(spec); err != nil {
		t.Errorf("spec does not marshal: %v", err)
	}
}

func TestVegaLiteSpecOmitsUnsetChannels(t *testing.T) {
	tbl := mustTable(t, "Team,ERA,FIP\nX,3.0,3.2\n")
	res := Evaluate(tbl, Selections{XCol: "ERA", YCol: "FIP"})
	spec := vegaLiteSpec(res)

	enc := spec["encoding"].(map[string]any)
	for _, channel := range []string{"color", "size", "tooltip"} {
		if _, ok := enc[channel]; ok {
			t.Errorf("unset %s channel present in encoding", channel)
		}
	}
}

func TestVegaLiteSpecEmpty(t *testing.T) {
	tbl := mustTable(t, "Name,ERA\nA,3.0\n")
	spec := vegaLiteSpec(Evaluate(tbl, Selections{}))

	if spec["title"] != "Select X and Y columns" {
		t.Errorf("title = %v", spec["title"])
	}
	values := spec["data"].(map[string]any)["values"].([]map[string]any)
	if len(values) != 0 {
		t.Errorf("empty spec carries %d data rows", len(values))
	}
}

func TestVegaLiteSpecNaNBecomesNull(t *testing.T) {
	tbl := mustTable(t, "Name,ERA,IP\nA,3.0,\n")
	res := Evaluate(tbl, Selections{XCol: "ERA", YCol: "IP"})
	spec := vegaLiteSpec(res)

	values := spec["data"].(map[string]any)["values"].([]map[string]any)
	if values[0]["IP"] != nil {
		t.Errorf("blank cell serialized as %v, want nil", values[0]["IP"])
	}
	if _, err := json.Marshal(spec); err != nil {
		t.Errorf("spec with blank cells does not marshal: %v", err)
	}
}
