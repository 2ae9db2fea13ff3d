package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/lone-faerie/thermo/config"
	"github.com/lone-faerie/thermo/log"
	"github.com/lone-faerie/thermo/temperature"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestParseSample(t *testing.T) {
	var tests = []struct {
		in   string
		want config.Sample
		fail bool
	}{
		{"36.5C", config.Sample{36.5, temperature.UnitCelsius}, false},
		{"36.5°C", config.Sample{36.5, temperature.UnitCelsius}, false},
		{"79 F", config.Sample{79, temperature.UnitFahrenheit}, false},
		{" -40 fahrenheit ", config.Sample{-40, temperature.UnitFahrenheit}, false},
		{"1e2K", config.Sample{100, temperature.UnitKelvin}, false},
		{"100", config.Sample{}, true},
		{"warm C", config.Sample{}, true},
		{"12 R", config.Sample{}, true},
	}
	for _, tt := range tests {
		got, err := config.ParseSample(tt.in)
		if tt.fail {
			if !errors.Is(err, config.ErrInvalidSample) {
				t.Errorf("%q: Wanted ErrInvalidSample, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: Wanted %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestReadDefault(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Samples, config.DefaultSamples()) {
		t.Errorf("samples: Wanted %v, got %v", config.DefaultSamples(), cfg.Samples)
	}
	if cfg.Log.Level != log.LevelInfo {
		t.Errorf("log.level: Wanted %s, got %s", log.LevelInfo, cfg.Log.Level)
	}
}

func TestRead(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(`log:
  level: debug
  format: json
samples:
  - 20C
  - value: -40
    scale: fahrenheit
  - {value: 0, scale: K}
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []config.Sample{
		{20, temperature.UnitCelsius},
		{-40, temperature.UnitFahrenheit},
		{0, temperature.UnitKelvin},
	}
	if !slices.Equal(cfg.Samples, want) {
		t.Errorf("samples: Wanted %v, got %v", want, cfg.Samples)
	}
	if cfg.Log.Level != log.LevelDebug {
		t.Errorf("log.level: Wanted %s, got %s", log.LevelDebug, cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format: Wanted json, got %q", cfg.Log.Format)
	}
}

func TestReadInvalid(t *testing.T) {
	var tests = []string{
		"samples:\n  - hot\n",
		"samples:\n  - scale: C\n",
		"samples:\n  - {value: 1, scale: rankine}\n",
	}
	for _, in := range tests {
		_, err := config.Read(strings.NewReader(in))
		if !errors.Is(err, config.ErrInvalidSample) {
			t.Errorf("%q: Wanted ErrInvalidSample, got %v", in, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "base.yaml", "log:\n  level: warn\nsamples: [10C]\n")
	override := writeConfig(t, dir, "override.yaml", "samples: [50F, 300K]\n")

	cfg, err := config.Load(base, override)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != log.LevelWarn {
		t.Errorf("log.level: Wanted %s, got %s", log.LevelWarn, cfg.Log.Level)
	}
	want := []config.Sample{
		{50, temperature.UnitFahrenheit},
		{300, temperature.UnitKelvin},
	}
	if !slices.Equal(cfg.Samples, want) {
		t.Errorf("samples: Wanted %v, got %v", want, cfg.Samples)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "b.yml", "samples: [2K]\n")
	writeConfig(t, dir, "a.yaml", "samples: [1K]\n")
	writeConfig(t, dir, "notes.txt", "samples: [3K]\n")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []config.Sample{{2, temperature.UnitKelvin}}
	if !slices.Equal(cfg.Samples, want) {
		t.Errorf("samples: Wanted %v, got %v", want, cfg.Samples)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Samples, config.DefaultSamples()) {
		t.Errorf("samples: Wanted defaults, got %v", cfg.Samples)
	}
}

func TestLoadError(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "bad.yaml", "samples: [warm]\n")

	_, err := config.Load(p)
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Wanted *config.Error, got %v", err)
	}
	if cfgErr.Path != p {
		t.Errorf("path: Wanted %s, got %s", p, cfgErr.Path)
	}
}

func TestWrite(t *testing.T) {
	var b strings.Builder
	if err := config.Default().Write(&b); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("%s: %v", b.String(), err)
	}
	if !slices.Equal(cfg.Samples, config.DefaultSamples()) {
		t.Errorf("samples: Wanted defaults, got %v\n%s", cfg.Samples, b.String())
	}
}
