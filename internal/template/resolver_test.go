package template

import (
	"testing"

	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(NewParser(DefaultDelimiters()))
}

func TestResolveStrict(t *testing.T) {
	r := newTestResolver()

	out, err := r.Resolve("Hello {name}", map[string]string{"name": "World"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", out)
}

func TestResolveStrictMissing(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("Hello {name}", map[string]string{}, true)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingVariable))
	assert.Equal(t, []string{"name"}, errors.Get(err).Details)
}

func TestResolveStrictReportsAllMissing(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("{a} {b} {c}", map[string]string{"b": "x"}, true)
	require.Error(t, err)
	assert.Equal(t, []string{"a", "c"}, errors.Get(err).Details)
}

func TestResolveLenientMarksUnmapped(t *testing.T) {
	r := newTestResolver()

	out, err := r.Resolve("Hello {name} {age}", map[string]string{"name": "A"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello A {UNMAPPED: age}", out)
}

func TestResolveSubstitutesEveryOccurrence(t *testing.T) {
	r := newTestResolver()

	out, err := r.Resolve("{x}-{x}-{x}", map[string]string{"x": "y"}, true)
	require.NoError(t, err)
	assert.Equal(t, "y-y-y", out)
}

func TestResolveDoesNotRescanValues(t *testing.T) {
	r := newTestResolver()

	out, err := r.Resolve("{a}", map[string]string{"a": "{b}", "b": "nope"}, true)
	require.NoError(t, err)
	assert.Equal(t, "{b}", out, "substituted values are emitted verbatim")
}

func TestResolveInvalidTemplate(t *testing.T) {
	r := newTestResolver()

	_, err := r.Resolve("{broken", map[string]string{}, false)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTemplate))
	assert.NotEmpty(t, errors.Get(err).Details)
}

func TestResolveNoPlaceholders(t *testing.T) {
	r := newTestResolver()

	out, err := r.Resolve("static text", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "static text", out)
}

func TestMissingVariables(t *testing.T) {
	r := newTestResolver()

	missing := r.MissingVariables("Hello {name} {age}", map[string]string{"name": "A"})
	assert.Equal(t, []string{"age"}, missing)
}

func TestMissingVariablesNone(t *testing.T) {
	r := newTestResolver()
	assert.Empty(t, r.MissingVariables("{a}", map[string]string{"a": "1"}))
}

func TestUnusedVariables(t *testing.T) {
	r := newTestResolver()

	unused := r.UnusedVariables("{a}", map[string]string{"a": "1", "z": "2", "b": "3"})
	assert.Equal(t, []string{"b", "z"}, unused)
}

func TestUnmappedMarker(t *testing.T) {
	assert.Equal(t, "{UNMAPPED: code}", UnmappedMarker("code"))
}
