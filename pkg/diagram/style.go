package diagram

import "strings"

// Style is a named set of visual attributes rendered as a classDef line.
// Two styles with the same Name are the same style for aggregation purposes.
type Style struct {
	Name        string
	Fill        string
	Color       string
	FontWeight  string
	StrokeWidth string
	Stroke      string
	// Other is appended verbatim, e.g. "stroke:#333,stroke-width:4px".
	Other string
}

// String renders the classDef line. A style without attributes renders as
// "classDef <name> " with the trailing space kept.
func (s Style) String() string {
	attrs := make([]string, 0, 6)
	for _, kv := range [...]struct{ key, value string }{
		{"fill", s.Fill},
		{"color", s.Color},
		{"font-weight", s.FontWeight},
		{"stroke-width", s.StrokeWidth},
		{"stroke", s.Stroke},
	} {
		if kv.value != "" {
			attrs = append(attrs, kv.key+":"+kv.value)
		}
	}
	if s.Other != "" {
		attrs = append(attrs, s.Other)
	}
	return "classDef " + s.Name + " " + strings.Join(attrs, ",")
}

// UniqueStyles flattens groups of styles, keeping the first style seen for
// each name in first-seen order.
func UniqueStyles(groups ...[]Style) []Style {
	seen := make(map[string]struct{})
	var out []Style
	for _, group := range groups {
		for _, s := range group {
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
