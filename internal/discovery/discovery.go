package discovery

import (
	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/rs/zerolog/log"
)

// Discovery combines the scanner and matcher into the single discovery
// entry point the workspace facade drives.
type Discovery struct {
	Scanner *Scanner
	Matcher *Matcher
}

// New wires a scanner and matcher together.
func New(scanner *Scanner, matcher *Matcher) *Discovery {
	return &Discovery{Scanner: scanner, Matcher: matcher}
}

// Discover scans both directories and matches the results into prompt sets,
// returning the sets plus any orphan warnings. Pure with respect to the
// caller: every invocation rescans the filesystem.
func (d *Discovery) Discover(templateDir, varDir string) ([]models.PromptSet, []string) {
	templates := d.Scanner.ScanTemplates(templateDir)
	varFiles := d.Scanner.ScanVarConfigs(varDir)

	sets := d.Matcher.Match(templates, varFiles)
	warnings := d.Matcher.Warnings(sets)

	log.Debug().
		Int("templates", len(templates)).
		Int("varFiles", len(varFiles)).
		Int("sets", len(sets)).
		Int("orphaned", len(d.Matcher.Orphaned(sets))).
		Msg("discovery complete")

	return sets, warnings
}
