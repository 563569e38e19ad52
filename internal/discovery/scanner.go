// Package discovery finds template and variable-config files in a workspace
// and groups them into prompt sets by naming convention. Everything here is
// a pure transform of filesystem state: no caching, no logging of warnings,
// no mutation. The workspace facade owns caching and surfaces diagnostics.
package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/rs/zerolog/log"
)

// NamingRule parses a filename stem into an optional role and a logical
// name. The stem splits on the first "-"; when the left part is a
// recognized role the rest is the name, otherwise the whole stem is the
// name and the file is a single-file template. Parsing is total.
type NamingRule struct {
	Pattern string
	roles   map[string]bool
}

// NewNamingRule builds a rule from a pattern string (documentation only,
// e.g. "{role}-{name}") and the set of recognized roles.
func NewNamingRule(pattern string, roles []string) NamingRule {
	set := make(map[string]bool, len(roles))
	for _, role := range roles {
		set[role] = true
	}
	return NamingRule{Pattern: pattern, roles: set}
}

// DefaultNamingRule recognizes the conventional conversational roles.
func DefaultNamingRule() NamingRule {
	return NewNamingRule("{role}-{name}", models.DefaultRoles())
}

// ParseStem splits a stem into (role, name). role is empty when the stem
// carries no recognized role prefix.
func (r NamingRule) ParseStem(stem string) (role, name string) {
	if left, rest, found := strings.Cut(stem, "-"); found && r.roles[left] {
		return left, rest
	}
	return "", stem
}

// legacy variable-config extensions still accepted alongside the configured
// one
var legacyVarExtensions = []string{".vars", ".yml"}

// Scanner walks the template and variable-config directories and produces
// raw file listings classified by the naming rule. Hidden files and files
// under hidden directories are excluded.
type Scanner struct {
	TemplateExt string
	VarExt      string
	Rule        NamingRule
}

// NewScanner creates a scanner for the given extensions and naming rule.
func NewScanner(templateExt, varExt string, rule NamingRule) *Scanner {
	return &Scanner{TemplateExt: templateExt, VarExt: varExt, Rule: rule}
}

// ScanTemplates recursively enumerates template files under dir. A missing
// directory yields an empty listing, not an error.
func (s *Scanner) ScanTemplates(dir string) []models.TemplateFile {
	var files []models.TemplateFile
	for _, path := range s.walk(dir, s.TemplateExt) {
		stem := stemOf(path)
		role, name := s.Rule.ParseStem(stem)
		files = append(files, models.TemplateFile{
			Path: path,
			Role: role,
			Name: name,
			Stem: stem,
		})
	}
	return files
}

// ScanVarConfigs enumerates variable-config files under dir. The configured
// extension is scanned first, then legacy aliases; the first file found for
// a logical name wins.
func (s *Scanner) ScanVarConfigs(dir string) []models.VarConfigFile {
	exts := []string{s.VarExt}
	for _, ext := range legacyVarExtensions {
		if ext != s.VarExt {
			exts = append(exts, ext)
		}
	}

	var files []models.VarConfigFile
	seen := make(map[string]bool)
	for _, ext := range exts {
		for _, path := range s.walk(dir, ext) {
			name := stemOf(path)
			if seen[name] {
				continue
			}
			seen[name] = true
			files = append(files, models.VarConfigFile{Path: path, Name: name})
		}
	}
	return files
}

// walk returns all non-hidden files under dir with the given extension, in
// the deterministic lexical order of filepath.WalkDir.
func (s *Scanner) walk(dir, ext string) []string {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return filepath.SkipAll // missing root: empty listing
			}
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if filepath.Ext(path) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		// Discovery is best-effort: report what was readable.
		log.Debug().Err(err).Str("dir", dir).Msg("scan aborted early")
	}
	return paths
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
