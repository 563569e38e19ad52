// Package workspace owns the workspace configuration document and the
// facade that assembles discovery and resolution into the operations
// external surfaces call.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ConfigDirName is the dotted directory under the workspace root holding
// the config document.
const (
	ConfigDirName  = ".prompt-workbench"
	ConfigFileName = "workspace.yaml"
)

// Config is the persisted workspace configuration. Loading rejects
// structurally invalid documents up front instead of failing lazily at use
// time.
type Config struct {
	Name       string     `yaml:"name" validate:"required"`
	Version    string     `yaml:"version"`
	Layout     Layout     `yaml:"layout" validate:"required"`
	Naming     Naming     `yaml:"naming" validate:"required"`
	Delimiters Delimiters `yaml:"delimiters" validate:"required"`
	Matching   Matching   `yaml:"matching"`
}

// Layout locates template and variable-config files within the workspace.
type Layout struct {
	TemplateDir       string `yaml:"template_dir" validate:"required"`
	VarDir            string `yaml:"var_dir" validate:"required"`
	TemplateExtension string `yaml:"template_extension" validate:"required,startswith=."`
	VarExtension      string `yaml:"var_extension" validate:"required,startswith=."`
}

// Naming declares the filename convention for template files.
type Naming struct {
	Pattern string   `yaml:"pattern" validate:"required"`
	Roles   []string `yaml:"roles" validate:"required,min=1,dive,required"`
}

// Delimiters declares how placeholders are written in template text.
type Delimiters struct {
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

// Matching controls auto-matching diagnostics.
type Matching struct {
	WarnOrphans bool `yaml:"warn_orphans"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ConfigPath returns the config document's path under a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// LoadConfig reads and validates a config document. Any structural problem
// (unreadable file, bad YAML, failed validation) is a ConfigError.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("workspace config not found", err).WithPath(path)
		}
		return nil, errors.ConfigError("failed to read workspace config", err).WithPath(path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError("invalid YAML in workspace config", err).WithPath(path)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, errors.ConfigError("workspace config failed validation", err).WithPath(path)
	}
	return &cfg, nil
}

// Save writes the config document, creating the config directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigError("failed to create config directory", err).WithPath(path)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigError("failed to encode workspace config", err).WithPath(path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigError("failed to write workspace config", err).WithPath(path)
	}
	return nil
}

// TemplateDir returns the absolute template directory for a root.
func (c *Config) TemplateDir(root string) string {
	return filepath.Join(root, c.Layout.TemplateDir)
}

// VarDir returns the absolute variable-config directory for a root.
func (c *Config) VarDir(root string) string {
	return filepath.Join(root, c.Layout.VarDir)
}
