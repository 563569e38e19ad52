package discovery

import (
	"fmt"
	"sort"

	"github.com/dpshade/prompt-workbench/internal/models"
)

// Matcher groups discovered template files into prompt sets and
// cross-references each against a variable-config file of the same logical
// name. A set with no variable-config file is orphaned.
type Matcher struct {
	WarnOrphans bool
}

// NewMatcher creates a matcher. warnOrphans controls whether Warnings
// reports orphaned sets.
func NewMatcher(warnOrphans bool) *Matcher {
	return &Matcher{WarnOrphans: warnOrphans}
}

// Match builds prompt sets from raw file listings. Pure transform: no
// logging, no filesystem access.
//
// Template files are grouped by logical name; a file's key within the group
// is its parsed role, or models.SingleFileKey when the stem carries no role
// prefix. Files whose stem could not be parsed become their own orphaned
// singleton set keyed by models.UnknownKey. Output ordering is a contract:
// non-orphaned sets first, then orphaned, each partition ascending by name.
func (m *Matcher) Match(templates []models.TemplateFile, varFiles []models.VarConfigFile) []models.PromptSet {
	grouped := make(map[string]map[string]models.TemplateFile)
	var unparsed []models.TemplateFile

	for _, tf := range templates {
		if tf.Name == "" {
			unparsed = append(unparsed, tf)
			continue
		}
		key := tf.Role
		if key == "" {
			key = models.SingleFileKey
		}
		if grouped[tf.Name] == nil {
			grouped[tf.Name] = make(map[string]models.TemplateFile)
		}
		grouped[tf.Name][key] = tf
	}

	varsByName := make(map[string]models.VarConfigFile, len(varFiles))
	for _, vf := range varFiles {
		varsByName[vf.Name] = vf
	}

	sets := make([]models.PromptSet, 0, len(grouped)+len(unparsed))
	for name, prompts := range grouped {
		set := models.PromptSet{Name: name, Prompts: prompts}
		if vf, ok := varsByName[name]; ok {
			set.VarFile = &vf
		} else {
			set.IsOrphaned = true
		}
		sets = append(sets, set)
	}

	for _, tf := range unparsed {
		sets = append(sets, models.PromptSet{
			Name:       tf.Stem,
			Prompts:    map[string]models.TemplateFile{models.UnknownKey: tf},
			IsOrphaned: true,
		})
	}

	sort.Slice(sets, func(i, j int) bool {
		if sets[i].IsOrphaned != sets[j].IsOrphaned {
			return !sets[i].IsOrphaned
		}
		return sets[i].Name < sets[j].Name
	})

	return sets
}

// Orphaned filters the sets with no matching variable-config file.
func (m *Matcher) Orphaned(sets []models.PromptSet) []models.PromptSet {
	var orphaned []models.PromptSet
	for _, set := range sets {
		if set.IsOrphaned {
			orphaned = append(orphaned, set)
		}
	}
	return orphaned
}

// Matched filters the sets that have a variable-config file.
func (m *Matcher) Matched(sets []models.PromptSet) []models.PromptSet {
	var matched []models.PromptSet
	for _, set := range sets {
		if !set.IsOrphaned {
			matched = append(matched, set)
		}
	}
	return matched
}

// Warnings renders the orphan diagnostics for a match result. Empty when
// orphan warnings are disabled or nothing is orphaned.
func (m *Matcher) Warnings(sets []models.PromptSet) []string {
	if !m.WarnOrphans {
		return nil
	}
	orphaned := m.Orphaned(sets)
	if len(orphaned) == 0 {
		return nil
	}
	warnings := []string{
		fmt.Sprintf("found %d orphaned prompt(s) without matching variable files", len(orphaned)),
	}
	for _, set := range orphaned {
		warnings = append(warnings, "  - "+set.Name)
	}
	return warnings
}
