// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config loads named Environment presets for the trueskill demo
// CLI from a YAML file: built-in defaults first, then an optional file
// overlay, the same layering MikeSquared-Agency-Dispatch's internal/config
// uses for its own Config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corwinmath/trueskill"
)

// Preset is one named Environment configuration as it appears in
// environments.yaml.
type Preset struct {
	Mu              float64 `yaml:"mu"`
	Sigma           float64 `yaml:"sigma"`
	Beta            float64 `yaml:"beta"`
	Tau             float64 `yaml:"tau"`
	DrawProbability float64 `yaml:"draw_probability"`
	// Backend selects the Phi/phi/Phi^-1 provider: "internal" (default),
	// "gonum", or "prob".
	Backend string `yaml:"backend"`
}

// Config is the top-level environments.yaml document: a default preset
// name and a table of named presets.
type Config struct {
	Default string            `yaml:"default"`
	Presets map[string]Preset `yaml:"presets"`
}

// defaultConfig returns the built-in presets used when no file is given:
// "default" (the library's standard constants), "competitive-1v1" (a
// tighter beta for head-to-head ladders), and "large-ffa" (a zero draw
// probability, hence a zero draw margin, for many-team free-for-alls, on
// the gonum backend).
func defaultConfig() *Config {
	return &Config{
		Default: "default",
		Presets: map[string]Preset{
			"default": {
				Mu:              trueskill.DefaultMu,
				Sigma:           trueskill.DefaultSigma,
				Beta:            trueskill.DefaultBeta,
				Tau:             trueskill.DefaultTau,
				DrawProbability: trueskill.DefaultDrawProbability,
				Backend:         "internal",
			},
			"competitive-1v1": {
				Mu:              trueskill.DefaultMu,
				Sigma:           trueskill.DefaultSigma,
				Beta:            trueskill.DefaultBeta / 2,
				Tau:             trueskill.DefaultTau,
				DrawProbability: 0.02,
				Backend:         "internal",
			},
			"large-ffa": {
				Mu:              trueskill.DefaultMu,
				Sigma:           trueskill.DefaultSigma,
				Beta:            trueskill.DefaultBeta,
				Tau:             trueskill.DefaultTau,
				DrawProbability: 0.0,
				Backend:         "gonum",
			},
		},
	}
}

// Load reads environments.yaml from path, overlaying it on top of
// defaultConfig. An empty path returns the defaults unmodified.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if fileCfg.Default != "" {
		cfg.Default = fileCfg.Default
	}
	for name, preset := range fileCfg.Presets {
		cfg.Presets[name] = preset
	}
	return cfg, nil
}

// Environment resolves a named preset (or Config.Default when name is
// empty) into a trueskill.Environment.
func (c *Config) Environment(name string) (trueskill.Environment, error) {
	if name == "" {
		name = c.Default
	}
	preset, ok := c.Presets[name]
	if !ok {
		return trueskill.Environment{}, fmt.Errorf("config: no such environment preset %q", name)
	}
	backend, err := resolveBackend(preset.Backend)
	if err != nil {
		return trueskill.Environment{}, err
	}
	return trueskill.NewEnvironment(preset.Mu, preset.Sigma, preset.Beta, preset.Tau, preset.DrawProbability, backend)
}

// resolveBackend maps a preset's backend name to a trueskill.Backend.
// An empty name resolves to the internal backend.
func resolveBackend(name string) (trueskill.Backend, error) {
	switch name {
	case "", "internal":
		return trueskill.InternalBackend(), nil
	case "gonum":
		return trueskill.GonumBackend(), nil
	case "prob":
		return trueskill.ProbBackend(), nil
	default:
		return nil, fmt.Errorf("config: unknown backend %q (want internal, gonum, or prob)", name)
	}
}
