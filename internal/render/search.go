package render

import (
	"fmt"
	"sort"
	"strings"
)

const indentUnit = "  "

func esql(resp map[string]any) string {
	var b strings.Builder

	var names []string
	if columns, ok := resp["columns"].([]any); ok {
		for _, c := range columns {
			col, ok := c.(map[string]any)
			if !ok {
				continue
			}
			if name, ok := col["name"].(string); ok {
				names = append(names, name)
			}
		}
	}

	b.WriteString(strings.Join(names, "\t"))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(names)*20))
	b.WriteByte('\n')

	rows, _ := resp["values"].([]any)
	for _, r := range rows {
		cells, ok := r.([]any)
		if !ok {
			continue
		}
		formatted := make([]string, 0, len(cells))
		for _, cell := range cells {
			formatted = append(formatted, FormatValue(cell))
		}
		b.WriteString(strings.Join(formatted, "\t"))
		b.WriteByte('\n')
	}

	return b.String()
}

func searchHits(v any) string {
	var b strings.Builder
	hits, _ := v.(map[string]any)

	if total, ok := hits["total"]; ok {
		count, relation := hitTotal(total)
		prefix := ""
		if relation == "gte" {
			prefix = "≥"
		}
		fmt.Fprintf(&b, "Total: %s%d hits\n\n", prefix, count)
	}

	docs, _ := hits["hits"].([]any)
	for i, d := range docs {
		doc, _ := d.(map[string]any)
		fmt.Fprintf(&b, "--- [%d] ", i+1)
		if id, ok := doc["_id"].(string); ok {
			b.WriteString(id)
		}
		b.WriteString(" ---\n")

		if source, ok := doc["_source"]; ok {
			writeTree(&b, source, 0)
		} else if fields, ok := doc["fields"]; ok {
			writeTree(&b, fields, 0)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// hitTotal accepts both {"value":N,"relation":"eq|gte"} and a bare number.
func hitTotal(v any) (uint64, string) {
	if obj, ok := v.(map[string]any); ok {
		count, _ := asUint(obj["value"])
		relation, ok := obj["relation"].(string)
		if !ok {
			relation = "eq"
		}
		return count, relation
	}
	count, _ := asUint(v)
	return count, "eq"
}

// writeTree prints v as indented key/value lines. Nested objects print their key
// on its own line and their children one level deeper.
func writeTree(b *strings.Builder, v any, depth int) {
	prefix := strings.Repeat(indentUnit, depth)

	obj, ok := v.(map[string]any)
	if !ok {
		fmt.Fprintf(b, "%s%s\n", prefix, FormatValue(v))
		return
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if child, ok := obj[k].(map[string]any); ok {
			fmt.Fprintf(b, "%s%s:\n", prefix, k)
			writeTree(b, child, depth+1)
			continue
		}
		fmt.Fprintf(b, "%s%s: %s\n", prefix, k, FormatValue(obj[k]))
	}
}

func indexList(indices []any) string {
	t := newTable(
		column{title: "INDEX", width: 50},
		column{title: "DOCS", width: 12, align: right},
		column{title: "SIZE", width: 12, align: right},
		column{title: "STATUS", width: 10, align: right},
	)
	t.header(90)

	for _, item := range indices {
		idx, _ := item.(map[string]any)
		t.row(
			truncate(cell(idx, "index"), 50),
			cell(idx, "docs.count"),
			cell(idx, "store.size"),
			cell(idx, "health"),
		)
	}

	return t.String()
}

// cell reads key from obj, using "-" when it is absent.
func cell(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return missing
	}
	return FormatValue(v)
}
