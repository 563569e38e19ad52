package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dpshade/prompt-workbench/internal/discovery"
	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/dpshade/prompt-workbench/internal/logging"
	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/dpshade/prompt-workbench/internal/template"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Workspace is the facade over one project tree: it owns the config, builds
// the discovery and resolution components from it, and caches discovery
// results. The cache is explicit state: it fills on the first Discover call
// and refreshes only when Discover is forced, never behind the caller's
// back on filesystem change. A Workspace is not safe for concurrent use;
// callers serialize access themselves.
type Workspace struct {
	root        string
	cfg         *Config
	disc        *discovery.Discovery
	parser      *template.Parser
	resolver    *template.Resolver
	varResolver *template.VariableResolver

	// discovery cache; sets == nil means empty
	sets     []models.PromptSet
	warnings []string

	logger zerolog.Logger
}

// Open loads an existing workspace from its config document under root.
func Open(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.ConfigError("invalid workspace root", err).WithPath(root)
	}
	cfg, err := LoadConfig(ConfigPath(abs))
	if err != nil {
		return nil, err
	}
	return newWorkspace(abs, cfg)
}

// Create initializes a new workspace under root and persists its config.
// An explicit preset wins; otherwise the project type is auto-detected when
// autoDetect is set, and the plain default layout is used when it is not.
func Create(root, name, preset string, autoDetect bool) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.ConfigError("invalid workspace root", err).WithPath(root)
	}

	var cfg *Config
	switch {
	case preset != "":
		var ok bool
		if cfg, ok = Preset(preset, name); !ok {
			return nil, errors.ConfigError(fmt.Sprintf("unknown preset %q", preset), nil)
		}
	case autoDetect:
		pt := discovery.DetectProjectType(abs)
		cfg, _ = Preset(PresetForProject(pt), name)
		log.Debug().Str("projectType", string(pt)).Msg("auto-detected project type")
	default:
		cfg = DefaultConfig(name)
	}

	if err := cfg.Save(ConfigPath(abs)); err != nil {
		return nil, err
	}
	return newWorkspace(abs, cfg)
}

func newWorkspace(root string, cfg *Config) (*Workspace, error) {
	delims, err := template.NewDelimiters(cfg.Delimiters.Start, cfg.Delimiters.End)
	if err != nil {
		return nil, errors.ConfigError("invalid delimiter configuration", err)
	}
	parser := template.NewParser(delims)
	rule := discovery.NewNamingRule(cfg.Naming.Pattern, cfg.Naming.Roles)
	scanner := discovery.NewScanner(cfg.Layout.TemplateExtension, cfg.Layout.VarExtension, rule)
	matcher := discovery.NewMatcher(cfg.Matching.WarnOrphans)

	return &Workspace{
		root:        root,
		cfg:         cfg,
		disc:        discovery.New(scanner, matcher),
		parser:      parser,
		resolver:    template.NewResolver(parser),
		varResolver: template.NewVariableResolver(root),
		logger:      logging.GetLogger("workspace").With().Str("root", root).Logger(),
	}, nil
}

// Root returns the absolute workspace root.
func (w *Workspace) Root() string { return w.root }

// Config returns the loaded configuration.
func (w *Workspace) Config() *Config { return w.cfg }

// Parser returns the workspace's template parser.
func (w *Workspace) Parser() *template.Parser { return w.parser }

// Resolver returns the workspace's template resolver.
func (w *Workspace) Resolver() *template.Resolver { return w.resolver }

// VariableResolver returns the resolver for file- and value-backed
// variables, rooted at the workspace.
func (w *Workspace) VariableResolver() *template.VariableResolver { return w.varResolver }

// TemplateDir returns the absolute template directory.
func (w *Workspace) TemplateDir() string { return w.cfg.TemplateDir(w.root) }

// VarDir returns the absolute variable-config directory.
func (w *Workspace) VarDir() string { return w.cfg.VarDir(w.root) }

// Discover returns the workspace's prompt sets. The first call scans the
// filesystem and fills the cache; later calls return the cache unless force
// is set.
func (w *Workspace) Discover(force bool) []models.PromptSet {
	if w.sets != nil && !force {
		return w.sets
	}
	sets, warnings := w.disc.Discover(w.TemplateDir(), w.VarDir())
	if sets == nil {
		sets = []models.PromptSet{} // populated cache, even when empty
	}
	w.sets = sets
	w.warnings = warnings
	w.logger.Debug().Int("sets", len(sets)).Bool("force", force).Msg("discovery cache refreshed")
	return w.sets
}

// Warnings returns the diagnostics from the last discovery run.
func (w *Workspace) Warnings() []string {
	out := make([]string, len(w.warnings))
	copy(out, w.warnings)
	return out
}

// GetPromptSet looks up a prompt set by logical name, running discovery
// first if the cache is empty. A miss is a normal empty result, not an
// error.
func (w *Workspace) GetPromptSet(name string) (models.PromptSet, bool) {
	for _, set := range w.Discover(false) {
		if set.Name == name {
			return set, true
		}
	}
	return models.PromptSet{}, false
}

// varConfigDoc is the schema of a per-template variable-config document.
type varConfigDoc struct {
	Description string                     `yaml:"description"`
	Variables   map[string]models.Variable `yaml:"variables"`
	// Prompts optionally overrides the file used for a role.
	Prompts map[string]string `yaml:"prompts"`
}

// LoadTemplate assembles the full Template for a named prompt set. The set
// must have a variable-config file; its declared variables and any
// role-to-path overrides are folded in. This is the one place the
// single-file role token maps onto the user role.
func (w *Workspace) LoadTemplate(name string) (*models.Template, error) {
	set, ok := w.GetPromptSet(name)
	if !ok {
		return nil, errors.NotFound("template", name)
	}
	if set.VarFile == nil {
		return nil, errors.ConfigError(
			fmt.Sprintf("prompt set %q has no variable-config file", name), nil)
	}

	data, err := os.ReadFile(set.VarFile.Path)
	if err != nil {
		return nil, errors.ConfigError("failed to read variable-config file", err).WithPath(set.VarFile.Path)
	}
	var doc varConfigDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.ConfigError("invalid YAML in variable-config file", err).WithPath(set.VarFile.Path)
	}

	tmpl := models.NewTemplate(name)
	tmpl.Description = doc.Description

	for key, tf := range set.Prompts {
		role, ok := w.roleForKey(key)
		if !ok {
			continue
		}
		rel, err := filepath.Rel(w.root, tf.Path)
		if err != nil {
			rel = tf.Path
		}
		tmpl.AddPrompt(models.Prompt{Role: role, FilePath: rel, Name: name})
	}

	for key, override := range doc.Prompts {
		role, ok := w.roleForKey(key)
		if !ok {
			continue
		}
		tmpl.AddPrompt(models.Prompt{Role: role, FilePath: override, Name: name})
	}

	for varName, v := range doc.Variables {
		if v.Type == "" {
			v.Type = models.VariableTypeValue
		}
		tmpl.AddVariable(varName, v)
	}

	return tmpl, nil
}

// roleForKey maps a prompt-set role key onto a conversational role. The
// single-file token becomes the user role; unknown keys carry no role.
func (w *Workspace) roleForKey(key string) (models.Role, bool) {
	if key == models.SingleFileKey {
		return models.RoleUser, true
	}
	return models.ParseRole(key)
}

// SaveConfig persists the current configuration.
func (w *Workspace) SaveConfig() error {
	return w.cfg.Save(ConfigPath(w.root))
}
