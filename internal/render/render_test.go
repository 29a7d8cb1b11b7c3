package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/es-cli/internal/render"
)

func TestFormatPassThroughWhenNotHuman(t *testing.T) {
	body := `{"hits":{"total":{"value":3}}}`
	require.Equal(t, body, render.Format(body, false))
}

func TestFormatFallsBackToRawText(t *testing.T) {
	tests := []string{"not json", `{"a":`, `{"a":1} trailing`, ""}
	for _, body := range tests {
		require.Equal(t, body, render.Format(body, true))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want render.Shape
	}{
		{name: "esql", body: `{"columns":[],"values":[]}`, want: render.ShapeESQL},
		{name: "columns beats hits", body: `{"columns":[],"hits":{}}`, want: render.ShapeESQL},
		{name: "hits", body: `{"took":1,"hits":{"hits":[]}}`, want: render.ShapeHits},
		{name: "list", body: `[{"index":"a"}]`, want: render.ShapeIndexList},
		{name: "generic object", body: `{"acknowledged":true}`, want: render.ShapeGeneric},
		{name: "scalar", body: `42`, want: render.ShapeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			require.NoError(t, json.Unmarshal([]byte(tt.body), &v))
			require.Equal(t, tt.want, render.Classify(v))
		})
	}
}

func TestFormatSearchHits(t *testing.T) {
	body := `{"hits":{"total":{"value":3,"relation":"eq"},"hits":[{"_id":"1","_source":{"a":1}}]}}`
	out := render.Format(body, true)

	lines := strings.Split(out, "\n")
	require.Equal(t, "Total: 3 hits", lines[0])
	require.Equal(t, "", lines[1])
	require.Equal(t, "--- [1] 1 ---", lines[2])
	require.Equal(t, "a: 1", lines[3])
}

func TestFormatSearchHitsNestedSource(t *testing.T) {
	body := `{"hits":{"total":{"value":10000,"relation":"gte"},"hits":[
		{"_id":"x","_source":{"user":{"name":"ann","geo":{"city":"Oslo"}},"tags":["a","b"],"n":null,"ok":true}},
		{"_id":"y","_source":{"v":2.5}}
	]}}`

	want := strings.Join([]string{
		"Total: ≥10000 hits",
		"",
		"--- [1] x ---",
		"n: -",
		"ok: true",
		"tags: [a, b]",
		"user:",
		"  geo:",
		"    city: Oslo",
		"  name: ann",
		"",
		"--- [2] y ---",
		"v: 2.50",
		"",
		"",
	}, "\n")
	require.Equal(t, want, render.Format(body, true))
}

func TestFormatSearchHitsLegacyTotalAndFields(t *testing.T) {
	body := `{"hits":{"total":7,"hits":[{"_id":"f","fields":{"host":["web-1"]}}]}}`
	out := render.Format(body, true)
	require.Contains(t, out, "Total: 7 hits\n")
	require.Contains(t, out, "--- [1] f ---\nhost: [web-1]\n")
}

func TestFormatESQL(t *testing.T) {
	body := `{"columns":[{"name":"host","type":"keyword"},{"name":"n","type":"long"}],
		"values":[["web-1",3],["web-2",null]]}`

	want := "host\tn\n" + strings.Repeat("-", 40) + "\n" +
		"web-1\t3\n" +
		"web-2\t-\n"
	require.Equal(t, want, render.Format(body, true))
}

func TestFormatIndexList(t *testing.T) {
	long := strings.Repeat("a", 53)
	body := `[
		{"index":"logs","docs.count":"12","store.size":"3kb","health":"green"},
		{"index":"` + long + `"},
		{"health":"red"}
	]`

	lines := strings.Split(render.Format(body, true), "\n")
	require.Equal(t, "INDEX                                                      DOCS         SIZE     STATUS", lines[0])
	require.Equal(t, strings.Repeat("-", 90), lines[1])
	require.Equal(t, "logs                                                         12          3kb      green", lines[2])

	truncated := strings.Repeat("a", 47) + "..."
	require.True(t, strings.HasPrefix(lines[3], truncated+" "))
	require.Equal(t, truncated+"            -            -          -", lines[3])
	require.True(t, strings.HasPrefix(lines[4], "-"+strings.Repeat(" ", 49)+" "))
	require.True(t, strings.HasSuffix(lines[4], "red"))
}

func TestFormatGenericPrettyPrints(t *testing.T) {
	body := `{"b":{"x":"<tag>"},"a":12345678901234567890}`
	want := "{\n  \"a\": 12345678901234567890,\n  \"b\": {\n    \"x\": \"<tag>\"\n  }\n}"
	require.Equal(t, want, render.Format(body, true))
}
