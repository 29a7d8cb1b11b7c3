package query

// Clause is a query clause placed under the request's "query" key. The set of
// implementations is closed: MatchAll, SimpleQueryString and Filtered.
type Clause interface {
	source() map[string]any
}

// MatchAll matches every document.
type MatchAll struct{}

func (MatchAll) source() map[string]any {
	return map[string]any{"match_all": map[string]any{}}
}

// SimpleQueryString is a permissive free-text clause. Bare terms are joined
// with DefaultOperator.
type SimpleQueryString struct {
	Query           string
	DefaultOperator string
}

func (q SimpleQueryString) source() map[string]any {
	body := map[string]any{"query": q.Query}
	if q.DefaultOperator != "" {
		body["default_operator"] = q.DefaultOperator
	}
	return map[string]any{"simple_query_string": body}
}

// Filtered scores on Must and restricts results with Range, which does not
// contribute to relevance.
type Filtered struct {
	Must  Clause
	Range Range
}

func (f Filtered) source() map[string]any {
	return map[string]any{
		"bool": map[string]any{
			"must":   []map[string]any{f.Must.source()},
			"filter": []map[string]any{f.Range.source()},
		},
	}
}

// Range bounds Field. Empty bounds are omitted.
type Range struct {
	Field string
	GTE   string
	LTE   string
}

func (r Range) source() map[string]any {
	bounds := map[string]any{}
	if r.GTE != "" {
		bounds["gte"] = r.GTE
	}
	if r.LTE != "" {
		bounds["lte"] = r.LTE
	}
	return map[string]any{
		"range": map[string]any{r.Field: bounds},
	}
}

// Source returns the clause as a generic DSL tree.
func Source(c Clause) map[string]any {
	return c.source()
}
