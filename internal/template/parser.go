package template

import (
	"fmt"
	"regexp"
	"strings"
)

// VariableMatch locates one placeholder occurrence within template text.
// Start and End are byte offsets covering the delimiters, suitable for
// editor highlighting.
type VariableMatch struct {
	Name  string
	Start int
	End   int
}

// Parser extracts and validates variable placeholders in template text for
// one delimiter configuration. Placeholder bodies are word characters only:
// letters, digits, underscore.
type Parser struct {
	delims  Delimiters
	varRe   *regexp.Regexp
	emptyRe *regexp.Regexp
	badRe   *regexp.Regexp
}

// NewParser builds a parser for the given delimiters.
func NewParser(delims Delimiters) *Parser {
	start := regexp.QuoteMeta(delims.Start)
	end := regexp.QuoteMeta(delims.End)
	return &Parser{
		delims:  delims,
		varRe:   regexp.MustCompile(start + `(\w+)` + end),
		emptyRe: regexp.MustCompile(start + end),
		badRe:   regexp.MustCompile(start + `([^\w]+)` + end),
	}
}

// NewParserWithPreset builds a parser from a named delimiter preset.
func NewParserWithPreset(name string) (*Parser, error) {
	d, ok := Preset(name)
	if !ok {
		return nil, fmt.Errorf("unknown delimiter preset %q (available: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	return NewParser(d), nil
}

// Delimiters returns the parser's delimiter configuration.
func (p *Parser) Delimiters() Delimiters {
	return p.delims
}

// ExtractVariables returns the unique variable names in text, in order of
// first appearance.
func (p *Parser) ExtractVariables(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range p.varRe.FindAllStringSubmatch(text, -1) {
		if name := m[1]; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// FindVariables returns every placeholder occurrence with its byte offsets.
func (p *Parser) FindVariables(text string) []VariableMatch {
	var matches []VariableMatch
	for _, idx := range p.varRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, VariableMatch{
			Name:  text[idx[2]:idx[3]],
			Start: idx[0],
			End:   idx[1],
		})
	}
	return matches
}

// Validate checks template syntax and reports every violation found, not
// just the first: mismatched delimiter counts, empty placeholders, and
// placeholder bodies containing non-word characters.
func (p *Parser) Validate(text string) (bool, []string) {
	var errs []string

	startCount := strings.Count(text, p.delims.Start)
	endCount := strings.Count(text, p.delims.End)
	if startCount != endCount {
		errs = append(errs, fmt.Sprintf("mismatched delimiters: %d opening, %d closing", startCount, endCount))
	}

	if p.emptyRe.MatchString(text) {
		errs = append(errs, "empty variable placeholder (no name)")
	}

	if bad := p.badRe.FindAllStringSubmatch(text, -1); len(bad) > 0 {
		names := make([]string, 0, len(bad))
		for _, m := range bad {
			names = append(names, m[1])
		}
		errs = append(errs, fmt.Sprintf("invalid variable names (must be alphanumeric or underscore): %s",
			strings.Join(names, ", ")))
	}

	return len(errs) == 0, errs
}

// HasVariables reports whether text contains at least one placeholder.
func (p *Parser) HasVariables(text string) bool {
	return p.varRe.MatchString(text)
}

// CountOccurrences returns the total number of placeholder occurrences,
// duplicates included.
func (p *Parser) CountOccurrences(text string) int {
	return len(p.varRe.FindAllString(text, -1))
}

// EscapeLiteral escapes delimiter characters in text so they read as
// literals rather than placeholder boundaries.
func (p *Parser) EscapeLiteral(text string) string {
	out := strings.ReplaceAll(text, p.delims.Start, `\`+p.delims.Start)
	return strings.ReplaceAll(out, p.delims.End, `\`+p.delims.End)
}
