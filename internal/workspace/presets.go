package workspace

import (
	"sort"

	"github.com/dpshade/prompt-workbench/internal/discovery"
	"github.com/dpshade/prompt-workbench/internal/models"
)

func baseConfig(name string) *Config {
	return &Config{
		Name:    name,
		Version: "1.0",
		Naming: Naming{
			Pattern: "{role}-{name}",
			Roles:   models.DefaultRoles(),
		},
		Delimiters: Delimiters{Start: "{", End: "}"},
		Matching:   Matching{WarnOrphans: true},
	}
}

// DefaultConfig is the layout used when nothing better is known about the
// project.
func DefaultConfig(name string) *Config {
	cfg := baseConfig(name)
	cfg.Layout = Layout{
		TemplateDir:       "prompts",
		VarDir:            "prompts/vars",
		TemplateExtension: ".txt",
		VarExtension:      ".yaml",
	}
	return cfg
}

// presets maps preset names to config builders. Layouts follow the
// conventions of each ecosystem, e.g. Spring templates live under
// src/main/resources and use StringTemplate's .st extension.
var presets = map[string]func(name string) *Config{
	"springboot": func(name string) *Config {
		cfg := baseConfig(name)
		cfg.Layout = Layout{
			TemplateDir:       "src/main/resources/prompts",
			VarDir:            "src/test/resources/prompts/vars",
			TemplateExtension: ".st",
			VarExtension:      ".yaml",
		}
		return cfg
	},
	"python": func(name string) *Config {
		cfg := baseConfig(name)
		cfg.Layout = Layout{
			TemplateDir:       "app/prompts",
			VarDir:            "app/prompts/vars",
			TemplateExtension: ".txt",
			VarExtension:      ".yaml",
		}
		return cfg
	},
	"nodejs": func(name string) *Config {
		cfg := baseConfig(name)
		cfg.Layout = Layout{
			TemplateDir:       "src/prompts",
			VarDir:            "src/prompts/vars",
			TemplateExtension: ".txt",
			VarExtension:      ".yaml",
		}
		return cfg
	},
	"custom": DefaultConfig,
}

// Preset builds a named preset config. ok is false for unknown names.
func Preset(name, workspaceName string) (*Config, bool) {
	build, ok := presets[name]
	if !ok {
		return nil, false
	}
	return build(workspaceName), true
}

// PresetNames lists the available presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetForProject maps a detected project type onto a preset name.
func PresetForProject(pt discovery.ProjectType) string {
	switch pt {
	case discovery.ProjectMaven, discovery.ProjectGradle:
		return "springboot"
	case discovery.ProjectPython:
		return "python"
	case discovery.ProjectNodeJS:
		return "nodejs"
	default:
		return "custom"
	}
}
