package models

import "sort"

// TemplateFile is a discovered template file. Role is empty when the stem
// carries no recognized role prefix (a single-file template); Name is empty
// when the stem could not be parsed at all, which always orphans the file.
type TemplateFile struct {
	Path string
	Role string
	Name string
	Stem string
}

// VarConfigFile is a discovered variable-config document whose stem is the
// logical prompt name.
type VarConfigFile struct {
	Path string
	Name string
}

// PromptSet groups all template files that share a logical name, together
// with their matched variable-config file if one exists. Prompts is keyed by
// parsed role, SingleFileKey for role-less files, or UnknownKey for
// unparseable stems.
type PromptSet struct {
	Name       string
	VarFile    *VarConfigFile
	Prompts    map[string]TemplateFile
	IsOrphaned bool
}

// RoleKeys returns the set's prompt keys in deterministic order.
func (ps PromptSet) RoleKeys() []string {
	keys := make([]string, 0, len(ps.Prompts))
	for key := range ps.Prompts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FilterValue returns the string fuzzy matching runs against.
func (ps PromptSet) FilterValue() string {
	return ps.Name
}
