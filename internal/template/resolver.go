package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dpshade/prompt-workbench/internal/errors"
)

// Resolver substitutes variable values into template text. In strict mode a
// placeholder without a value fails resolution; in lenient mode it is
// replaced with a visible marker so unresolved spots stay obvious in a
// preview.
type Resolver struct {
	parser *Parser
}

// NewResolver builds a resolver on top of an existing parser so both share
// one delimiter configuration.
func NewResolver(parser *Parser) *Resolver {
	return &Resolver{parser: parser}
}

// UnmappedMarker renders the placeholder left in lenient output for a
// variable with no supplied value.
func UnmappedMarker(name string) string {
	return fmt.Sprintf("{UNMAPPED: %s}", name)
}

// Resolve substitutes every placeholder occurrence in text. The template is
// validated first; an invalid template fails with the full violation list.
// In strict mode every required variable must have a value, and all missing
// names are reported at once.
func (r *Resolver) Resolve(text string, values map[string]string, strict bool) (string, error) {
	if ok, violations := r.parser.Validate(text); !ok {
		return "", errors.InvalidTemplate(violations)
	}

	if strict {
		if missing := r.MissingVariables(text, values); len(missing) > 0 {
			return "", errors.MissingVariables(missing)
		}
	}

	matches := r.parser.FindVariables(text)
	if len(matches) == 0 {
		return text, nil
	}

	// Single pass over the original text: substituted values are emitted
	// verbatim and never re-scanned for placeholders.
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		if value, ok := values[m.Name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(UnmappedMarker(m.Name))
		}
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// MissingVariables returns the names required by text but absent from
// values, in order of first appearance. Non-failing; used for live
// validation feedback while a template is edited.
func (r *Resolver) MissingVariables(text string, values map[string]string) []string {
	var missing []string
	for _, name := range r.parser.ExtractVariables(text) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// UnusedVariables returns the names present in values but never referenced
// by text, sorted alphabetically.
func (r *Resolver) UnusedVariables(text string, values map[string]string) []string {
	required := make(map[string]bool)
	for _, name := range r.parser.ExtractVariables(text) {
		required[name] = true
	}
	var unused []string
	for name := range values {
		if !required[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	return unused
}
