package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/es-cli/internal/query"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		token string
		want  query.SortField
	}{
		{token: "-@timestamp", want: query.SortField{Field: "@timestamp", Order: query.Desc}},
		{token: "+status", want: query.SortField{Field: "status", Order: query.Asc}},
		{token: "status", want: query.SortField{Field: "status", Order: query.Desc}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, query.ParseSort(tt.token))
		})
	}
}

func TestParseFields(t *testing.T) {
	require.Equal(t, []string{"a", "b.c", "d"}, query.ParseFields("a, b.c ,d"))
	require.Equal(t, []string{"single"}, query.ParseFields("single"))
}

func TestTimeRangeBounds(t *testing.T) {
	tests := []struct {
		name string
		tr   query.TimeRange
		want query.Range
	}{
		{
			name: "since only",
			tr:   query.TimeRange{Field: "@timestamp", Since: "1h"},
			want: query.Range{Field: "@timestamp", GTE: "now-1h"},
		},
		{
			name: "from overrides since",
			tr:   query.TimeRange{Field: "@timestamp", Since: "1h", From: "2024-01-01"},
			want: query.Range{Field: "@timestamp", GTE: "2024-01-01"},
		},
		{
			name: "to only",
			tr:   query.TimeRange{Field: "ts", To: "2024-02-01T00:00:00Z"},
			want: query.Range{Field: "ts", LTE: "2024-02-01T00:00:00Z"},
		},
		{
			name: "both bounds",
			tr:   query.TimeRange{Field: "ts", From: "2024-01-01", To: "2024-01-31"},
			want: query.Range{Field: "ts", GTE: "2024-01-01", LTE: "2024-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.tr.IsZero())
			require.Equal(t, tt.want, tt.tr.Range())
		})
	}
}

func TestTimeRangeApply(t *testing.T) {
	text := query.SimpleQueryString{Query: "error", DefaultOperator: "AND"}

	empty := query.TimeRange{Field: "@timestamp"}
	require.True(t, empty.IsZero())
	require.Equal(t, text, empty.Apply(text))

	since := query.TimeRange{Field: "@timestamp", Since: "15m"}
	require.Equal(t, query.Filtered{
		Must:  text,
		Range: query.Range{Field: "@timestamp", GTE: "now-15m"},
	}, since.Apply(text))

	require.Equal(t, map[string]any{
		"bool": map[string]any{
			"must": []map[string]any{
				{"simple_query_string": map[string]any{"query": "error", "default_operator": "AND"}},
			},
			"filter": []map[string]any{
				{"range": map[string]any{"@timestamp": map[string]any{"gte": "now-15m"}}},
			},
		},
	}, query.Source(since.Apply(text)))
}
