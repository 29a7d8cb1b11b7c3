// Package render turns Elasticsearch response bodies into terminal output.
// Rendering never fails: input that cannot be interpreted is pretty printed,
// and input that is not JSON at all is returned as is.
package render

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Shape identifies which renderer handles a parsed response.
type Shape int

const (
	ShapeGeneric Shape = iota
	ShapeESQL
	ShapeHits
	ShapeIndexList
)

// Classify probes a parsed response for sentinel keys, in priority order.
func Classify(v any) Shape {
	switch val := v.(type) {
	case map[string]any:
		if _, ok := val["columns"]; ok {
			return ShapeESQL
		}
		if _, ok := val["hits"]; ok {
			return ShapeHits
		}
	case []any:
		return ShapeIndexList
	}
	return ShapeGeneric
}

// Format returns body unchanged unless human is set, in which case it renders
// the response according to its shape.
func Format(body string, human bool) string {
	if !human {
		return body
	}

	v, err := parse(body)
	if err != nil {
		return body
	}

	switch Classify(v) {
	case ShapeESQL:
		return esql(v.(map[string]any))
	case ShapeHits:
		return searchHits(v.(map[string]any)["hits"])
	case ShapeIndexList:
		return indexList(v.([]any))
	default:
		return pretty(v, body)
	}
}

// pretty indents v with two spaces, falling back to raw.
func pretty(v any, raw string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return raw
	}
	return strings.TrimRight(buf.String(), "\n")
}
