package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/DeafMist/es-cli/internal/models"
)

const (
	barWidth = 30
	barChar  = "█"
)

// aggregation decodes the aggregation called name into dst. It reports false
// when the body is not JSON, and found=false when the aggregation is absent.
func aggregation(body, name string, dst any) (found bool, ok bool) {
	var resp struct {
		Aggregations map[string]json.RawMessage `json:"aggregations"`
	}
	if err := decode([]byte(body), &resp); err != nil {
		return false, false
	}
	raw, exists := resp.Aggregations[name]
	if !exists {
		return false, true
	}
	if err := decode(raw, dst); err != nil {
		return false, false
	}
	return true, true
}

// barLength scales count linearly so that max fills width.
func barLength(count, max uint64, width int) int {
	if max == 0 {
		return 0
	}
	return int(float64(count) / float64(max) * float64(width))
}

// Histogram renders a date_histogram response as TIMESTAMP/COUNT rows with a
// bar proportional to the largest bucket.
func Histogram(body string) string {
	var agg models.BucketAggregation
	found, ok := aggregation(body, models.AggHistogram, &agg)
	if !ok {
		return body
	}

	t := newTable(
		column{title: "TIMESTAMP", width: 30},
		column{title: "COUNT", width: 15, align: right},
		column{title: "BAR"},
	)
	t.header(80)
	if !found {
		return t.String()
	}

	var max uint64 = 1
	if len(agg.Buckets) > 0 {
		max = 0
		for _, bucket := range agg.Buckets {
			if bucket.DocCount > max {
				max = bucket.DocCount
			}
		}
	}

	for _, bucket := range agg.Buckets {
		key := bucket.KeyAsString
		if key == "" {
			key = missing
		}
		bar := strings.Repeat(barChar, barLength(bucket.DocCount, max, barWidth))
		t.row(key, strconv.FormatUint(bucket.DocCount, 10), bar)
	}
	return t.String()
}

// Values renders a terms response as VALUE/COUNT rows followed by the number of
// documents that fell outside the returned buckets.
func Values(body string) string {
	var agg models.BucketAggregation
	found, ok := aggregation(body, models.AggValues, &agg)
	if !ok {
		return body
	}

	t := newTable(
		column{title: "VALUE", width: 60},
		column{title: "COUNT", width: 15, align: right},
	)
	t.header(77)
	if !found {
		return t.String()
	}

	for _, bucket := range agg.Buckets {
		t.row(truncate(bucketKey(bucket.Key), 60), strconv.FormatUint(bucket.DocCount, 10))
	}
	if agg.SumOtherDocCount > 0 {
		t.line(fmt.Sprintf("\n(%d other documents not shown)", agg.SumOtherDocCount))
	}
	return t.String()
}

// bucketKey prints string keys as is and any other key in its JSON form.
func bucketKey(key any) string {
	switch k := key.(type) {
	case nil:
		return missing
	case string:
		return k
	case json.Number:
		return k.String()
	default:
		b, err := json.Marshal(k)
		if err != nil {
			return missing
		}
		return string(b)
	}
}

// Stats renders an extended_stats response as a label/value block.
func Stats(body string) string {
	var stats models.ExtendedStats
	found, ok := aggregation(body, models.AggStats, &stats)
	if !ok {
		return body
	}
	if !found {
		return ""
	}

	var b strings.Builder
	lines := []struct {
		label string
		value string
	}{
		{"Count:", strconv.FormatUint(stats.Count, 10)},
		{"Min:", optional(stats.Min)},
		{"Max:", optional(stats.Max)},
		{"Average:", optional(stats.Avg)},
		{"Sum:", optional(stats.Sum)},
		{"Std Deviation:", optional(stats.StdDeviation)},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%-20s %s\n", l.label, l.value)
	}
	return b.String()
}

func optional(f *float64) string {
	if f == nil {
		return missing
	}
	return FormatFloat(*f)
}

// Count prints only the document count of a _count response when human is
// set, and the raw body otherwise or when the count cannot be found.
func Count(body string, human bool) string {
	if !human {
		return body
	}
	var resp models.CountResponse
	if err := decode([]byte(body), &resp); err != nil || resp.Count == nil {
		return body
	}
	return strconv.FormatUint(*resp.Count, 10)
}
