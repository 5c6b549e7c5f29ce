// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dacluster

import "github.com/sirupsen/logrus"

// newLogger returns the structured logger a Clusterer narrates its
// cooling loop through. Verbose gates the per-phase Debug lines that
// mirror the CMSSW original's LogTrace/dump calls; clamp warnings from
// Config.Validate are always emitted regardless of Verbose.
func newLogger(cfg Config) *logrus.Entry {
	logger := logrus.New()
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logrus.NewEntry(logger).WithField("component", "dacluster")
}

// withinDump reports whether z falls inside the configured diagnostic
// dump window, mirroring the original's zdumpcenter_/zdumpwidth_ gate on
// its verbose per-vertex table.
func withinDump(cfg Config, z float64) bool {
	d := z - cfg.ZDumpCenter
	if d < 0 {
		d = -d
	}
	return d < cfg.ZDumpWidth
}
