// Package service provides the business logic the CLI drives: listing and
// searching prompt sets, resolving templates end to end, and producing
// variable diagnostics. It consumes the workspace facade only and never
// reaches into scanner or matcher internals.
package service

import (
	"fmt"
	"sort"

	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/dpshade/prompt-workbench/internal/renderer"
	"github.com/dpshade/prompt-workbench/internal/workspace"
	"github.com/sahilm/fuzzy"
)

// Service wraps one open workspace.
type Service struct {
	ws *workspace.Workspace
}

// NewService creates a service over an open workspace.
func NewService(ws *workspace.Workspace) *Service {
	return &Service{ws: ws}
}

// Workspace exposes the underlying workspace for callers that need paths or
// config.
func (s *Service) Workspace() *workspace.Workspace {
	return s.ws
}

// ListPromptSets returns the discovered prompt sets, fuzzy-filtered by
// query when it is non-empty. The discovery ordering contract (matched
// before orphaned, names ascending) is preserved for an empty query; a
// fuzzy query reorders by match score.
func (s *Service) ListPromptSets(query string) []models.PromptSet {
	sets := s.ws.Discover(false)
	if query == "" {
		return sets
	}

	names := make([]string, len(sets))
	for i, set := range sets {
		names[i] = set.FilterValue()
	}

	matches := fuzzy.Find(query, names)
	results := make([]models.PromptSet, 0, len(matches))
	for _, match := range matches {
		results = append(results, sets[match.Index])
	}
	return results
}

// Refresh forces a re-discovery of the workspace.
func (s *Service) Refresh() []models.PromptSet {
	return s.ws.Discover(true)
}

// Warnings returns the diagnostics from the last discovery run.
func (s *Service) Warnings() []string {
	return s.ws.Warnings()
}

// GetPromptSet looks up one set by name. A miss is a normal empty result.
func (s *Service) GetPromptSet(name string) (models.PromptSet, bool) {
	return s.ws.GetPromptSet(name)
}

// OrphanReport returns the orphaned prompt sets.
func (s *Service) OrphanReport() []models.PromptSet {
	var orphaned []models.PromptSet
	for _, set := range s.ws.Discover(false) {
		if set.IsOrphaned {
			orphaned = append(orphaned, set)
		}
	}
	return orphaned
}

// RenderResult is a fully resolved template ready for a text-generation
// client: one message per role, in conversation order.
type RenderResult struct {
	Name     string
	Messages []renderer.Message
}

// RenderTemplate loads the named template, resolves its variables (any
// overrides win over declared variables), substitutes placeholders in every
// role's text, and assembles the result into messages. In strict mode a
// missing value for any placeholder fails with the full list of missing
// names; in lenient mode unresolved placeholders stay visibly marked.
func (s *Service) RenderTemplate(name string, overrides map[string]string, strict bool) (*RenderResult, error) {
	tmpl, err := s.ws.LoadTemplate(name)
	if err != nil {
		return nil, err
	}

	values, err := s.ws.VariableResolver().ResolveAll(tmpl.Variables)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		values[k] = v
	}

	resolved := make(map[models.Role]string, len(tmpl.Prompts))
	for role, prompt := range tmpl.Prompts {
		text, err := s.ws.ReadFile(prompt.FilePath)
		if err != nil {
			return nil, err
		}
		out, err := s.ws.Resolver().Resolve(text, values, strict)
		if err != nil {
			return nil, fmt.Errorf("resolving %s prompt: %w", role, err)
		}
		resolved[role] = out
	}

	return &RenderResult{
		Name:     name,
		Messages: renderer.BuildMessages(resolved),
	}, nil
}

// RoleDiagnostics is the live-validation feedback for one role's template
// file.
type RoleDiagnostics struct {
	Role      models.Role
	FilePath  string
	Valid     bool
	Errors    []string
	Required  []string
	Missing   []string
	Unused    []string
	Occurs    int
}

// VariableReport inspects every role file of a template against its
// declared variables without resolving anything: syntax violations,
// required names, missing names, and declared-but-unused names.
func (s *Service) VariableReport(name string) ([]RoleDiagnostics, error) {
	tmpl, err := s.ws.LoadTemplate(name)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]string, len(tmpl.Variables))
	for varName := range tmpl.Variables {
		declared[varName] = "" // presence is what matters here
	}

	var report []RoleDiagnostics
	for _, role := range tmpl.Roles() {
		prompt := tmpl.Prompts[role]
		text, err := s.ws.ReadFile(prompt.FilePath)
		if err != nil {
			return nil, err
		}
		valid, violations := s.ws.Parser().Validate(text)
		report = append(report, RoleDiagnostics{
			Role:     role,
			FilePath: prompt.FilePath,
			Valid:    valid,
			Errors:   violations,
			Required: s.ws.Parser().ExtractVariables(text),
			Missing:  s.ws.Resolver().MissingVariables(text, declared),
			Unused:   s.ws.Resolver().UnusedVariables(text, declared),
			Occurs:   s.ws.Parser().CountOccurrences(text),
		})
	}
	return report, nil
}

// ValidateText runs template syntax validation over arbitrary text with the
// workspace's delimiters.
func (s *Service) ValidateText(text string) (bool, []string) {
	return s.ws.Parser().Validate(text)
}

// UnusedAcrossTemplate returns declared variable names referenced by none
// of the template's role files.
func (s *Service) UnusedAcrossTemplate(name string) ([]string, error) {
	tmpl, err := s.ws.LoadTemplate(name)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, role := range tmpl.Roles() {
		text, err := s.ws.ReadFile(tmpl.Prompts[role].FilePath)
		if err != nil {
			return nil, err
		}
		for _, varName := range s.ws.Parser().ExtractVariables(text) {
			used[varName] = true
		}
	}

	var unused []string
	for varName := range tmpl.Variables {
		if !used[varName] {
			unused = append(unused, varName)
		}
	}
	sort.Strings(unused)
	return unused, nil
}
