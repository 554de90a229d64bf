package templates

import (
	"bytes"
	"context"
	tpl "html/template"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Dashboard renders the scatter-plot page. All controls are populated
// from the loaded dataset; the inline script re-fetches /api/plot on
// every control change and hands the returned Vega-Lite spec to
// vega-embed.
func Dashboard(d DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!doctype html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>PitchScope</title>`)
		buf.WriteString(`<script src="https://cdn.tailwindcss.com"></script>`)
		buf.WriteString(`<script src="https://cdn.jsdelivr.net/npm/vega@5"></script>`)
		buf.WriteString(`<script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>`)
		buf.WriteString(`<script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>`)
		buf.WriteString(`</head><body class="bg-[#F7F0E6] font-sans text-stone-800"><div class="max-w-6xl mx-auto p-6"><div class="bg-white/90 rounded-3xl p-6 shadow-2xl">`)

		buf.WriteString(`<h2 class="text-3xl font-black mb-2">2025 Minor League Pitching Interactive Scatter Plot</h2>`)
		buf.WriteString(`<h4 class="text-lg mb-3">This app allows you to create scatter plots from minor league pitching data.</h4>`)
		buf.WriteString(`<ul class="list-disc ml-6 mb-4 text-sm">`)
		buf.WriteString(`<li>Select X and Y axes from the dropdowns.</li>`)
		buf.WriteString(`<li>Optionally select color and size dimensions.</li>`)
		buf.WriteString(`<li>Filter data by team, player, or parameter values.</li>`)
		buf.WriteString(`<li>Select additional columns to display on hover.</li>`)
		buf.WriteString(`</ul>`)

		buf.WriteString(`<div class="grid grid-cols-2 gap-4 mb-3">`)
		writeSelect(&buf, "x-col", "X axis", d.NumericCols, d.DefaultX, false, false)
		writeSelect(&buf, "y-col", "Y axis", d.NumericCols, d.DefaultY, false, false)
		writeSelect(&buf, "color-col", "Color by (optional)", d.AllCols, "", false, true)
		writeSelect(&buf, "size-col", "Size by (optional)", d.NumericCols, "", false, true)
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="grid grid-cols-2 gap-4 mb-3">`)
		writeSelect(&buf, "team-filter", "Filter by Team (optional)", d.Teams, "", true, false)
		writeSelect(&buf, "player-filter", "Filter by Player (optional)", d.Players, "", true, false)
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="mb-3">`)
		writeSelect(&buf, "hover-cols", "Hover Info (optional)", d.AllCols, "", true, false)
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="grid grid-cols-3 gap-4 mb-3">`)
		writeSelect(&buf, "param-col", "Parameter Filter (optional)", d.NumericCols, "", false, true)
		writeSelect(&buf, "param-op", "Operator", []string{">", ">=", "<", "<=", "="}, ">", false, false)
		buf.WriteString(`<div><label class="block text-sm font-semibold mb-1">Value</label>`)
		buf.WriteString(`<input id="param-value" type="number" placeholder="Enter value" class="w-full p-2 border rounded-md"></div>`)
		buf.WriteString(`</div>`)

		buf.WriteString(`<hr class="my-4">`)
		buf.WriteString(`<div id="scatter" class="w-full" style="height:70vh"></div>`)

		buf.WriteString(`<script>
            function selected(id){
                var el = document.getElementById(id);
                if (el.multiple) {
                    return Array.from(el.selectedOptions).map(function(o){ return o.value; });
                }
                return el.value ? [el.value] : [];
            }
            async function refresh(){
                var params = new URLSearchParams();
                var single = ['x-col','y-col','color-col','size-col','param-col','param-op'];
                var keys = {'x-col':'x','y-col':'y','color-col':'color','size-col':'size','param-col':'param_col','param-op':'param_op'};
                single.forEach(function(id){
                    var v = document.getElementById(id).value;
                    if (v) { params.set(keys[id], v); }
                });
                selected('team-filter').forEach(function(v){ params.append('team', v); });
                selected('player-filter').forEach(function(v){ params.append('player', v); });
                selected('hover-cols').forEach(function(v){ params.append('hover', v); });
                var pv = document.getElementById('param-value').value;
                if (pv !== '') { params.set('param_value', pv); }
                var resp = await fetch('/api/plot?' + params.toString());
                if (!resp.ok) { return; }
                var spec = await resp.json();
                vegaEmbed('#scatter', spec, {actions: false});
            }
            ['x-col','y-col','color-col','size-col','team-filter','player-filter','hover-cols','param-col','param-op','param-value'].forEach(function(id){
                document.getElementById(id).addEventListener('change', refresh);
            });
            refresh();
        </script>`)

		buf.WriteString(`</div></div></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// writeSelect emits one labeled dropdown. Clearable selects get a blank
// first option so the user can unset them again.
func writeSelect(buf *bytes.Buffer, id, label string, options []string, selectedValue string, multi, clearable bool) {
	buf.WriteString(`<div><label class="block text-sm font-semibold mb-1">`)
	buf.WriteString(tpl.HTMLEscapeString(label))
	buf.WriteString(`</label><select id="`)
	buf.WriteString(tpl.HTMLEscapeString(id))
	buf.WriteString(`" class="w-full p-2 border rounded-md"`)
	if multi {
		buf.WriteString(` multiple size="` + strconv.Itoa(max(2, min(len(options), 6))) + `"`)
	}
	buf.WriteString(`>`)
	if clearable {
		buf.WriteString(`<option value=""></option>`)
	}
	for _, opt := range options {
		buf.WriteString(`<option value="`)
		buf.WriteString(tpl.HTMLEscapeString(opt))
		buf.WriteString(`"`)
		if opt == selectedValue {
			buf.WriteString(` selected`)
		}
		buf.WriteString(`>`)
		buf.WriteString(tpl.HTMLEscapeString(opt))
		buf.WriteString(`</option>`)
	}
	buf.WriteString(`</select></div>`)
}
