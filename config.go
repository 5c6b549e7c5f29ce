// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dacluster

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/gonum-community/dacluster/anneal"
)

// Hardcoded constants (spec.md §6) that are not exposed as tunable
// configuration: they are properties of the algorithm, not of a
// particular run.
const (
	maxIterations = 1000
	minTrkWeight  = 0.5
	zRangeMin     = 0.1
)

// Config holds every tunable option of the annealing clusterer (spec.md
// §6). Any field may be left out of a YAML file: LoadConfig starts from
// DefaultConfig, so an omitted field keeps its default. The diagnostics
// (Verbose, ZDumpCenter, ZDumpWidth) only affect logging.
type Config struct {
	Tmin   float64 `yaml:"tmin"`
	Tpurge float64 `yaml:"tpurge"`
	Tstop  float64 `yaml:"tstop"`

	VertexSize      float64 `yaml:"vertex_size"`
	CoolingFactor   float64 `yaml:"cooling_factor"`
	D0CutOff        float64 `yaml:"d0_cutoff"`
	DzCutOff        float64 `yaml:"dz_cutoff"`
	UniqueTrkWeight float64 `yaml:"unique_track_weight"`
	ZMerge          float64 `yaml:"zmerge"`
	ZRange          float64 `yaml:"zrange"`
	ConvergenceMode int     `yaml:"convergence_mode"`
	DeltaLowT       float64 `yaml:"delta_lowt"`
	DeltaHighT      float64 `yaml:"delta_hight"`

	Verbose     bool    `yaml:"verbose"`
	ZDumpCenter float64 `yaml:"zdumpcenter"`
	ZDumpWidth  float64 `yaml:"zdumpwidth"`

	// derived from Tmin/Tpurge/Tstop by Validate; not part of the YAML
	// surface.
	betamax   float64
	betapurge float64
	betastop  float64
}

// DefaultConfig returns the configuration used by the CMSSW primary
// vertex producer's default offline reconstruction tune.
func DefaultConfig() Config {
	return Config{
		Tmin:            4.0,
		Tpurge:          4.0,
		Tstop:           1.0,
		VertexSize:      0.006,
		CoolingFactor:   0.6,
		D0CutOff:        3.0,
		DzCutOff:        3.0,
		UniqueTrkWeight: 0.8,
		ZMerge:          0.01,
		ZRange:          4.0,
		ConvergenceMode: 0,
		DeltaLowT:       1e-3,
		DeltaHighT:      1e-2,
		ZDumpWidth:      20,
	}
}

// LoadConfig reads a YAML-encoded Config from path, starting from
// DefaultConfig so that a partial file only overrides what it mentions.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dacluster: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("dacluster: parsing config: %w", err)
	}
	return cfg, nil
}

// Validate clamps out-of-range options to the nearest sane value, logs a
// warning for each clamp via log (which may be nil to suppress logging),
// and derives the three inverse-temperature bounds the engine runs on.
// It never returns an error: spec.md §7 treats bad configuration as a
// recoverable, logged condition, not a failure.
func (c *Config) Validate(log *logrus.Entry) {
	warn := func(format string, args ...interface{}) {
		if log != nil {
			log.Warnf(format, args...)
		}
	}

	if c.ConvergenceMode > 1 || c.ConvergenceMode < 0 {
		warn("invalid convergence_mode %d, reset to default 0", c.ConvergenceMode)
		c.ConvergenceMode = 0
	}

	if c.Tmin == 0 {
		c.betamax = 1.0
		warn("invalid Tmin %v, reset to default %v", c.Tmin, 1/c.betamax)
		c.Tmin = 1 / c.betamax
	} else {
		c.betamax = 1 / c.Tmin
	}

	if c.Tpurge > c.Tmin || c.Tpurge == 0 {
		warn("invalid Tpurge %v, set to %v", c.Tpurge, c.Tmin)
		c.Tpurge = c.Tmin
	}
	c.betapurge = 1 / c.Tpurge

	floor := 1.0
	if c.Tpurge > floor {
		floor = c.Tpurge
	}
	if c.Tstop > c.Tpurge || c.Tstop == 0 {
		warn("invalid Tstop %v, set to %v", c.Tstop, floor)
		c.Tstop = floor
	}
	c.betastop = 1 / c.Tstop
}

// annealParams projects the subset of Config the anneal package needs.
func (c Config) annealParams() anneal.Params {
	return anneal.Params{
		SelZRange:       c.ZRange,
		ZRangeMin:       zRangeMin,
		DzCutOff:        c.DzCutOff,
		ZMerge:          c.ZMerge,
		UniqueTrkWeight: c.UniqueTrkWeight,
		ConvergenceMode: c.ConvergenceMode,
		DeltaLowT:       c.DeltaLowT,
		MaxIterations:   maxIterations,
	}
}
