package render

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	missing        = "-"
	objectMarker   = "{...}"
	ellipsis       = "..."
	integerCeiling = 1e15
)

var errTrailingData = errors.New("unexpected data after top-level value")

// decode parses data into dst keeping numbers as json.Number so that integers
// and bucket keys survive without float rounding.
func decode(data []byte, dst any) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func parse(body string) (any, error) {
	var v any
	if err := decode([]byte(body), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// FormatValue renders a single JSON value as a table cell. Objects are not
// expanded; only the document tree renderer descends into them.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return missing
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return formatNumber(val)
	case float64:
		return FormatFloat(val)
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, FormatValue(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		return objectMarker
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return missing
		}
		return string(b)
	}
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return FormatFloat(f)
}

// FormatFloat prints whole numbers below 1e15 in integer form and everything
// else with two decimals.
func FormatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < integerCeiling {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// truncate shortens s to max characters, replacing the tail with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

// asUint reads a non-negative integer count; anything else is reported as absent.
func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}
