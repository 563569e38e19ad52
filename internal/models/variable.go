package models

// VariableType distinguishes variables whose value lives in a file from
// variables declared inline.
type VariableType string

const (
	VariableTypeFile  VariableType = "file"
	VariableTypeValue VariableType = "value"
)

// Variable is a single named value declared in a variable-config document.
// File-backed variables carry a path (relative to the workspace root unless
// absolute); value-backed variables carry their content verbatim.
type Variable struct {
	Type        VariableType `yaml:"type"`
	Path        string       `yaml:"path,omitempty"`
	Value       string       `yaml:"value,omitempty"`
	Description string       `yaml:"description,omitempty"`
}

// FileVariable builds a file-backed variable.
func FileVariable(path string) Variable {
	return Variable{Type: VariableTypeFile, Path: path}
}

// ValueVariable builds a value-backed variable.
func ValueVariable(value string) Variable {
	return Variable{Type: VariableTypeValue, Value: value}
}
