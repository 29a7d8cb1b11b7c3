package query

import "strings"

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// SortField sorts on a single field. UnmappedType tells the engine which type
// to assume on indices that do not map Field.
type SortField struct {
	Field        string
	Order        Order
	UnmappedType string
}

// ParseSort reads a sort token: "-field" is descending, "+field" ascending and
// a bare field defaults to descending so the most recent documents come first.
func ParseSort(token string) SortField {
	token = strings.TrimSpace(token)
	switch {
	case strings.HasPrefix(token, "-"):
		return SortField{Field: token[1:], Order: Desc}
	case strings.HasPrefix(token, "+"):
		return SortField{Field: token[1:], Order: Asc}
	default:
		return SortField{Field: token, Order: Desc}
	}
}

func (s SortField) source() map[string]any {
	if s.UnmappedType == "" {
		return map[string]any{s.Field: string(s.Order)}
	}
	return map[string]any{
		s.Field: map[string]any{
			"order":         string(s.Order),
			"unmapped_type": s.UnmappedType,
		},
	}
}

// ParseFields splits a comma separated field list and trims every entry.
func ParseFields(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
