package main

import "math"

// vegaLiteSpec turns a pipeline result into a Vega-Lite v5 scatter spec.
// The filtered rows are inlined as data values; the browser renders the
// spec with vega-embed. Only the columns the plot actually uses are
// serialized per row.
func vegaLiteSpec(res Result) map[string]any {
	spec := map[string]any{
		"$schema": "https://vega.github.io/schema/vega-lite/v5.json",
		"title":   res.Spec.Title,
		"width":   "container",
		"height":  "container",
		"mark":    map[string]any{"type": "point", "filled": true, "opacity": 0.75},
	}
	if res.Spec.Empty {
		spec["data"] = map[string]any{"values": []map[string]any{}}
		spec["encoding"] = map[string]any{}
		return spec
	}

	t := res.View.Table
	fields := plotFields(res.Spec)

	values := make([]map[string]any, 0, res.View.NumRows())
	for _, row := range res.View.Rows {
		rec := make(map[string]any, len(fields))
		for _, name := range fields {
			col := t.Col(name)
			if col == nil {
				continue
			}
			if col.Kind == NumericColumn {
				v := col.Floats[row]
				if math.IsNaN(v) {
					rec[name] = nil
				} else {
					rec[name] = v
				}
			} else {
				rec[name] = col.Strings[row]
			}
		}
		values = append(values, rec)
	}
	spec["data"] = map[string]any{"values": values}

	encoding := map[string]any{
		"x": map[string]any{"field": res.Spec.X, "type": "quantitative", "scale": map[string]any{"zero": false}},
		"y": map[string]any{"field": res.Spec.Y, "type": "quantitative", "scale": map[string]any{"zero": false}},
	}
	if res.Spec.Color != "" {
		encoding["color"] = map[string]any{"field": res.Spec.Color, "type": vegaFieldType(t, res.Spec.Color)}
	}
	if res.Spec.Size != "" {
		encoding["size"] = map[string]any{"field": res.Spec.Size, "type": "quantitative"}
	}
	if len(res.Spec.Hover) > 0 {
		tooltips := make([]map[string]any, len(res.Spec.Hover))
		for i, name := range res.Spec.Hover {
			tooltips[i] = map[string]any{"field": name, "type": vegaFieldType(t, name)}
		}
		encoding["tooltip"] = tooltips
	}
	spec["encoding"] = encoding
	return spec
}

// plotFields lists every column the spec references, deduplicated, so
// each row record carries exactly what the encodings need.
func plotFields(spec PlotSpec) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	add(spec.X)
	add(spec.Y)
	add(spec.Color)
	add(spec.Size)
	for _, h := range spec.Hover {
		add(h)
	}
	return out
}

func vegaFieldType(t *Table, name string) string {
	if col := t.Col(name); col != nil && col.Kind == NumericColumn {
		return "quantitative"
	}
	return "nominal"
}
