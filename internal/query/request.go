package query

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Body is a serializable request payload.
type Body interface {
	Encode() ([]byte, error)
}

// Passthrough is a complete request body supplied by the user. It has already
// been checked to be well-formed JSON and is sent byte for byte.
type Passthrough []byte

// Encode returns the body unchanged.
func (p Passthrough) Encode() ([]byte, error) {
	return []byte(p), nil
}

// Aggregation is a named sub-aggregation of a search request. The set of
// implementations is closed: DateHistogram, Terms and ExtendedStats.
type Aggregation interface {
	source() map[string]any
}

// DateHistogram buckets documents by a fixed interval ("1h", "5m"). Fixed
// intervals are exact durations and never follow calendar boundaries.
type DateHistogram struct {
	Field         string
	FixedInterval string
}

func (a DateHistogram) source() map[string]any {
	return map[string]any{
		"date_histogram": map[string]any{
			"field":          a.Field,
			"fixed_interval": a.FixedInterval,
		},
	}
}

// Terms groups documents by distinct values of Field, keeping at most Size buckets.
type Terms struct {
	Field string
	Size  int
}

func (a Terms) source() map[string]any {
	return map[string]any{
		"terms": map[string]any{
			"field": a.Field,
			"size":  a.Size,
		},
	}
}

// ExtendedStats computes count, min, max, avg, sum and standard deviation of a
// numeric field.
type ExtendedStats struct {
	Field string
}

func (a ExtendedStats) source() map[string]any {
	return map[string]any{
		"extended_stats": map[string]any{
			"field": a.Field,
		},
	}
}

// SearchRequest is a search or aggregation request against Index.
type SearchRequest struct {
	Index  string
	Query  Clause
	Size   int
	Sort   []SortField
	Source []string
	Aggs   map[string]Aggregation
}

// Map returns the request body as a generic DSL tree.
func (r *SearchRequest) Map() map[string]any {
	body := map[string]any{"size": r.Size}
	if r.Query != nil {
		body["query"] = Source(r.Query)
	}
	if len(r.Sort) > 0 {
		sorts := make([]map[string]any, 0, len(r.Sort))
		for _, s := range r.Sort {
			sorts = append(sorts, s.source())
		}
		body["sort"] = sorts
	}
	if r.Source != nil {
		body["_source"] = r.Source
	}
	if len(r.Aggs) > 0 {
		aggs := make(map[string]any, len(r.Aggs))
		for name, agg := range r.Aggs {
			aggs[name] = agg.source()
		}
		body["aggs"] = aggs
	}
	return body
}

// Encode serializes the request body.
func (r *SearchRequest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Map()); err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
