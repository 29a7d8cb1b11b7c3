package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DeafMist/es-cli/internal/models"
)

// ErrInvalidQuery is returned when user supplied query text is not well-formed JSON.
var ErrInvalidQuery = errors.New("invalid JSON query")

// DefaultTimestampField is the field used for time filters and tail ordering.
const DefaultTimestampField = "@timestamp"

// ParseRaw checks that raw is well-formed JSON and returns it as a passthrough body.
func ParseRaw(raw string) (Passthrough, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return Passthrough(raw), nil
}

// Search builds the body of a search command: the user's DSL, unchanged.
func Search(raw string) (Body, error) {
	body, err := ParseRaw(raw)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Count builds the body of a count command from the user's DSL. Unlike an
// omitted query, an empty one is rejected.
func Count(raw string) (Body, error) {
	return Search(raw)
}

// CountAll builds the body of a count command given no query.
func CountAll() Body {
	return countRequest{}
}

// countRequest is {"query":{"match_all":{}}}; _count rejects a "size" key.
type countRequest struct{}

func (countRequest) Encode() ([]byte, error) {
	return json.Marshal(map[string]any{"query": MatchAll{}.source()})
}

// KQLOptions are the options of the simplified-syntax search command.
type KQLOptions struct {
	Index  string
	Query  string
	Size   int
	Sort   string
	Fields string
	Time   TimeRange
}

// KQL builds a simple_query_string search. Terms are joined with AND, the
// optional time range is applied as a non-scoring filter.
func KQL(opts KQLOptions) *SearchRequest {
	tr := opts.Time
	if tr.Field == "" {
		tr.Field = DefaultTimestampField
	}

	req := &SearchRequest{
		Index: opts.Index,
		Query: tr.Apply(SimpleQueryString{Query: opts.Query, DefaultOperator: "AND"}),
		Size:  opts.Size,
	}
	if opts.Sort != "" {
		req.Sort = []SortField{ParseSort(opts.Sort)}
	}
	if opts.Fields != "" {
		req.Source = ParseFields(opts.Fields)
	}
	return req
}

// Histogram builds a zero-hit date histogram request.
func Histogram(index, field, interval string) *SearchRequest {
	return &SearchRequest{
		Index: index,
		Aggs: map[string]Aggregation{
			models.AggHistogram: DateHistogram{Field: field, FixedInterval: interval},
		},
	}
}

// Values builds a zero-hit terms request capped at size buckets.
func Values(index, field string, size int) *SearchRequest {
	return &SearchRequest{
		Index: index,
		Aggs: map[string]Aggregation{
			models.AggValues: Terms{Field: field, Size: size},
		},
	}
}

// Stats builds a zero-hit extended statistics request over field.
func Stats(index, field string) *SearchRequest {
	return &SearchRequest{
		Index: index,
		Aggs: map[string]Aggregation{
			models.AggStats: ExtendedStats{Field: field},
		},
	}
}

// Tail builds a request for the newest size documents. Indices that do not map
// the timestamp field sort their documents as the minimum date instead of failing.
func Tail(index string, size int) *SearchRequest {
	return &SearchRequest{
		Index: index,
		Query: MatchAll{},
		Size:  size,
		Sort: []SortField{{
			Field:        DefaultTimestampField,
			Order:        Desc,
			UnmappedType: "date",
		}},
	}
}
