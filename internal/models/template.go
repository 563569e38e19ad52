package models

import "sort"

// Prompt is one role's template file within an assembled Template. FilePath
// is relative to the workspace root.
type Prompt struct {
	Role     Role
	FilePath string
	Name     string
}

// Template is the fully assembled view of a prompt set: the role-to-file
// mapping plus the variables its variable-config document declares. It is
// built on demand from filesystem state and never persisted on its own.
type Template struct {
	Name        string
	Description string
	Prompts     map[Role]Prompt
	Variables   map[string]Variable
}

// NewTemplate creates an empty template with the given name.
func NewTemplate(name string) *Template {
	return &Template{
		Name:      name,
		Prompts:   make(map[Role]Prompt),
		Variables: make(map[string]Variable),
	}
}

// AddPrompt registers a prompt under its role, replacing any previous entry.
func (t *Template) AddPrompt(p Prompt) {
	t.Prompts[p.Role] = p
}

// AddVariable registers a named variable, replacing any previous entry.
func (t *Template) AddVariable(name string, v Variable) {
	t.Variables[name] = v
}

// Roles returns the template's roles in message-assembly order.
func (t *Template) Roles() []Role {
	roles := make([]Role, 0, len(t.Prompts))
	for role := range t.Prompts {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Order() != roles[j].Order() {
			return roles[i].Order() < roles[j].Order()
		}
		return roles[i] < roles[j]
	})
	return roles
}

// VariableNames returns the declared variable names sorted alphabetically.
func (t *Template) VariableNames() []string {
	names := make([]string, 0, len(t.Variables))
	for name := range t.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
