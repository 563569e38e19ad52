package template

import "fmt"

// Delimiters is the start/end marker pair denoting a placeholder boundary.
// Both markers must be non-empty.
type Delimiters struct {
	Start string
	End   string
}

// DefaultDelimiters returns the conventional curly-brace pair.
func DefaultDelimiters() Delimiters {
	return Delimiters{Start: "{", End: "}"}
}

// NewDelimiters validates and builds a delimiter pair.
func NewDelimiters(start, end string) (Delimiters, error) {
	if start == "" || end == "" {
		return Delimiters{}, fmt.Errorf("delimiters cannot be empty")
	}
	return Delimiters{Start: start, End: end}, nil
}

// String renders the pair the way a placeholder is written, e.g. "{variable}".
func (d Delimiters) String() string {
	return d.Start + "variable" + d.End
}

// Presets for template systems commonly found in the wild.
var Presets = map[string]Delimiters{
	"curly":          {Start: "{", End: "}"},   // {var} - Python, Spring, Jinja2
	"dollar":         {Start: "$", End: "$"},   // $var$ - StringTemplate
	"angle":          {Start: "<", End: ">"},   // <var> - StringTemplate
	"double_bracket": {Start: "[[", End: "]]"}, // [[var]] - MediaWiki
	"shell":          {Start: "${", End: "}"},  // ${var} - Shell, Spring EL
}

// Preset looks up a named delimiter preset.
func Preset(name string) (Delimiters, bool) {
	d, ok := Presets[name]
	return d, ok
}

// PresetNames returns the available preset names.
func PresetNames() []string {
	return []string{"curly", "dollar", "angle", "double_bracket", "shell"}
}
