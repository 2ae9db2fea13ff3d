package config

import "github.com/lone-faerie/thermo/log"

// LogConfig configures the default logger.
//
// Output is one of "stderr" (the default), "stdout", "discard", or a file path.
// Format is "text" or "json".
type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output,omitempty"`
	Format string    `yaml:"format,omitempty"`
}
