// Package config provides the structures used for configuration.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/thermo/log"
)

// Config contains the configuration for logging and the self-check.
// Config should be created with a call to [Default], [Read], or [Load].
type Config struct {
	Log     LogConfig `yaml:"log,omitempty"`
	Samples []Sample  `yaml:"samples,omitempty"`
}

// Default returns the Config used when no config file is provided.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: log.LevelInfo, Format: "text"},
		Samples: DefaultSamples(),
	}
}

// Read returns the Config parsed from the yaml encoded config from r. Any
// value not present in r keeps its default. An empty r yields the default
// config.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Load returns the Config parsed from the given yaml files, each file
// overlaying the ones before it. If the first file does not exist, the
// default config is returned. If any of the given paths are directories,
// all the yaml files in the directory are read in lexical order.
func Load(file ...string) (*Config, error) {
	cfg := Default()
	if len(file) == 0 {
		return cfg, nil
	}
	log.Info("Loading config", "path", file)
	if _, err := os.Stat(file[0]); errors.Is(err, os.ErrNotExist) {
		log.Warn("Config not found, using default", "path", file[0])
		return cfg, nil
	}
	paths, err := expandDirs(file)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := cfg.loadFile(p); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Debug("Reading config", "path", path)
	if err := cfg.decode(f); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}

func expandDirs(file []string) ([]string, error) {
	paths := make([]string, 0, len(file))
	for _, p := range file {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			paths = append(paths, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".yaml", ".yml":
				names = append(names, filepath.Join(p, e.Name()))
			}
		}
		slices.Sort(names)
		paths = append(paths, names...)
	}
	return paths, nil
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// Error is returned when a config file cannot be decoded.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
