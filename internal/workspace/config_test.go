package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dpshade/prompt-workbench/internal/discovery"
	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("demo")

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "prompts", cfg.Layout.TemplateDir)
	assert.Equal(t, "prompts/vars", cfg.Layout.VarDir)
	assert.Equal(t, ".txt", cfg.Layout.TemplateExtension)
	assert.Equal(t, ".yaml", cfg.Layout.VarExtension)
	assert.Equal(t, "{", cfg.Delimiters.Start)
	assert.Equal(t, "}", cfg.Delimiters.End)
	assert.True(t, cfg.Matching.WarnOrphans)
	assert.Contains(t, cfg.Naming.Roles, "system")
	assert.Contains(t, cfg.Naming.Roles, "user")
}

func TestPresets(t *testing.T) {
	spring, ok := Preset("springboot", "svc")
	require.True(t, ok)
	assert.Equal(t, "src/main/resources/prompts", spring.Layout.TemplateDir)
	assert.Equal(t, ".st", spring.Layout.TemplateExtension)

	node, ok := Preset("nodejs", "svc")
	require.True(t, ok)
	assert.Equal(t, "src/prompts", node.Layout.TemplateDir)

	_, ok = Preset("rails", "svc")
	assert.False(t, ok)
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"custom", "nodejs", "python", "springboot"}, PresetNames())
}

func TestPresetForProject(t *testing.T) {
	assert.Equal(t, "springboot", PresetForProject(discovery.ProjectMaven))
	assert.Equal(t, "springboot", PresetForProject(discovery.ProjectGradle))
	assert.Equal(t, "python", PresetForProject(discovery.ProjectPython))
	assert.Equal(t, "nodejs", PresetForProject(discovery.ProjectNodeJS))
	assert.Equal(t, "custom", PresetForProject(discovery.ProjectUnknown))
}

func TestConfigSaveLoadRoundtrip(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultConfig("roundtrip")
	path := ConfigPath(root)

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(ConfigPath(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConfig))
}

func TestLoadConfigBadYAML(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConfig))
}

func TestLoadConfigRejectsIncomplete(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	// missing layout, naming, delimiters
	require.NoError(t, os.WriteFile(path, []byte("name: partial\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeConfig),
		"structural problems fail at load time, not lazily at use time")
}

func TestConfigDirs(t *testing.T) {
	cfg := DefaultConfig("demo")
	assert.Equal(t, filepath.Join("/ws", "prompts"), cfg.TemplateDir("/ws"))
	assert.Equal(t, filepath.Join("/ws", "prompts/vars"), cfg.VarDir("/ws"))
}
