package template

import (
	"os"
	"path/filepath"

	"github.com/dpshade/prompt-workbench/internal/errors"
	"github.com/dpshade/prompt-workbench/internal/models"
	"github.com/rs/zerolog/log"
)

// VariableResolver turns declared variables into their string content.
// File-backed variables are read from disk, resolved against a base path
// when relative; value-backed variables never fail.
type VariableResolver struct {
	basePath string
}

// NewVariableResolver creates a resolver that resolves relative file paths
// against basePath (normally the workspace root).
func NewVariableResolver(basePath string) *VariableResolver {
	return &VariableResolver{basePath: basePath}
}

// Resolve returns the string content of a single variable.
func (r *VariableResolver) Resolve(v models.Variable) (string, error) {
	switch v.Type {
	case models.VariableTypeValue:
		return v.Value, nil
	case models.VariableTypeFile:
		path := v.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.basePath, path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.FileNotFound(path)
			}
			return "", errors.ReadError(path, err)
		}
		return string(content), nil
	default:
		return "", errors.New(errors.ErrCodeReadFailure, "unknown variable type: "+string(v.Type))
	}
}

// ResolveAll resolves every variable in the map. It does not stop at the
// first failure: all failing variables are collected into a single
// ResolveError so the caller can report every problem in one pass. On any
// failure no partial result is returned.
func (r *VariableResolver) ResolveAll(vars map[string]models.Variable) (map[string]string, error) {
	values := make(map[string]string, len(vars))
	failures := make(map[string]error)

	for name, v := range vars {
		content, err := r.Resolve(v)
		if err != nil {
			failures[name] = err
			continue
		}
		values[name] = content
	}

	if len(failures) > 0 {
		err := &errors.ResolveError{Failures: failures}
		log.Debug().Strs("variables", err.Names()).Msg("variable resolution failed")
		return nil, err
	}
	return values, nil
}
