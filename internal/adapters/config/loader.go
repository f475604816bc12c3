// Package config provides the configuration loader for dpms.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dpms/internal/core/domain"
	"go.trai.ch/dpms/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path.
// A missing file yields domain.DefaultConfig. A relative mirror path is resolved
// against the directory containing the file.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	if file.Mirror != "" {
		cfg.MirrorPath = resolveMirror(path, file.Mirror)
	}

	if file.Log.Format != "" {
		format := domain.LogFormat(file.Log.Format)
		switch format {
		case domain.LogFormatPretty, domain.LogFormatJSON:
			cfg.LogFormat = format
		default:
			msg := fmt.Sprintf("unknown log format %q", file.Log.Format)
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, msg), "format", file.Log.Format)
		}
	}

	return cfg, nil
}

func resolveMirror(configPath, mirror string) string {
	if filepath.IsAbs(mirror) {
		return filepath.Clean(mirror)
	}
	return filepath.Join(filepath.Dir(configPath), mirror)
}
