package query

// TimeRange collects the user's time filter options. Since is a duration
// relative to now ("1h", "15m"); From and To are passed to the engine verbatim.
type TimeRange struct {
	Field string
	Since string
	From  string
	To    string
}

// IsZero reports whether no bound was given.
func (t TimeRange) IsZero() bool {
	return t.Since == "" && t.From == "" && t.To == ""
}

// Range resolves the lower and upper bounds. An absolute From takes priority
// over a relative Since.
func (t TimeRange) Range() Range {
	r := Range{Field: t.Field, LTE: t.To}
	switch {
	case t.From != "":
		r.GTE = t.From
	case t.Since != "":
		r.GTE = "now-" + t.Since
	}
	return r
}

// Apply wraps c in a Filtered clause when the range has any bound and returns c
// unchanged otherwise.
func (t TimeRange) Apply(c Clause) Clause {
	if t.IsZero() {
		return c
	}
	return Filtered{Must: c, Range: t.Range()}
}
