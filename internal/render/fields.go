package render

import (
	"sort"

	"github.com/DeafMist/es-cli/internal/dedupe"
)

// Field is one flattened mapping entry.
type Field struct {
	Path string
	Type string
}

// FlattenMapping walks the "properties" tree of a mapping depth first. Object
// fields contribute their children under dotted paths and multi-fields appear
// as parent.subfield. The result is sorted by path with duplicates removed.
func FlattenMapping(mapping map[string]any) []Field {
	set := dedupe.NewSet[Field](0)
	collectFields(mapping["properties"], "", set)
	return sortFields(set.Items())
}

func collectFields(properties any, prefix string, set *dedupe.Set[Field]) {
	props, ok := properties.(map[string]any)
	if !ok {
		return
	}

	for name, raw := range props {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		field, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if typ, ok := field["type"].(string); ok {
			set.Add(Field{Path: path, Type: typ})
		}

		if nested, ok := field["properties"]; ok {
			collectFields(nested, path, set)
		}

		multi, _ := field["fields"].(map[string]any)
		for sub, subRaw := range multi {
			subField, ok := subRaw.(map[string]any)
			if !ok {
				continue
			}
			if typ, ok := subField["type"].(string); ok {
				set.Add(Field{Path: path + "." + sub, Type: typ})
			}
		}
	}
}

func sortFields(fields []Field) []Field {
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Path == fields[j].Path {
			return fields[i].Type < fields[j].Type
		}
		return fields[i].Path < fields[j].Path
	})
	return fields
}

// Fields renders a _mapping response as a FIELD/TYPE table covering every
// index in the response.
func Fields(body string) string {
	v, err := parse(body)
	if err != nil {
		return body
	}

	set := dedupe.NewSet[Field](0)
	indices, _ := v.(map[string]any)
	for _, data := range indices {
		index, _ := data.(map[string]any)
		mappings, _ := index["mappings"].(map[string]any)
		for _, f := range FlattenMapping(mappings) {
			set.Add(f)
		}
	}

	t := newTable(
		column{title: "FIELD", width: 60},
		column{title: "TYPE", width: 20},
	)
	t.header(82)
	for _, f := range sortFields(set.Items()) {
		t.row(truncate(f.Path, 60), f.Type)
	}
	return t.String()
}
