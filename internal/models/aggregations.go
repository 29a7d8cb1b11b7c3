package models

// Aggregation names shared by the request builders and the renderers.
const (
	AggHistogram = "histogram"
	AggValues    = "values"
	AggStats     = "stats"
)

// Bucket is a single histogram or terms bucket. Key keeps the engine's
// representation: a string, or a json.Number when decoded with UseNumber.
type Bucket struct {
	Key         any    `json:"key"`
	KeyAsString string `json:"key_as_string,omitempty"`
	DocCount    uint64 `json:"doc_count"`
}

// BucketAggregation covers date_histogram and terms results.
type BucketAggregation struct {
	Buckets          []Bucket `json:"buckets"`
	SumOtherDocCount uint64   `json:"sum_other_doc_count"`
}

// ExtendedStats mirrors the extended_stats aggregation result. Statistics the
// engine reports as null (empty result set) stay nil.
type ExtendedStats struct {
	Count        uint64   `json:"count"`
	Min          *float64 `json:"min"`
	Max          *float64 `json:"max"`
	Avg          *float64 `json:"avg"`
	Sum          *float64 `json:"sum"`
	StdDeviation *float64 `json:"std_deviation"`
}

// CountResponse is the body returned by the _count endpoint.
type CountResponse struct {
	Count *uint64 `json:"count"`
}
