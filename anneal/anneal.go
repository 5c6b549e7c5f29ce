// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anneal implements the deterministic-annealing cooling loop
// primitives shared by the vertex clusterer: active-window maintenance,
// the update/updateTc E-step/M-step kernel, thermalization, the initial
// critical-temperature estimate, and the merge/split/purge cluster-count
// decisions. Every exported function is a pure transformation of the
// track.Set/vertex.Set it is given: the package holds no state of its
// own, matching the single-threaded, synchronous contract of spec.md §5.
package anneal

// Params collects the configuration the annealing primitives need beyond
// the current temperature and outlier weight, i.e. the subset of
// dacluster.Config that the algorithm itself -- as opposed to its
// surrounding CLI or logging -- consumes.
type Params struct {
	// SelZRange scales each track's active-window half-width.
	SelZRange float64
	// ZRangeMin floors the active-window half-width and gates window
	// refresh during thermalization.
	ZRangeMin float64
	// DzCutOff is the background/outlier width; <= 0 disables outlier
	// rejection entirely.
	DzCutOff float64
	// ZMerge is the maximum z gap considered for a merge.
	ZMerge float64
	// UniqueTrkWeight is the threshold fraction of a vertex's own
	// p_max that defines a "unique" track for purge.
	UniqueTrkWeight float64
	// ConvergenceMode selects the delta_max policy used by Thermalize.
	ConvergenceMode int
	// DeltaLowT is the convergence tolerance used for low-temperature
	// thermalization and, in ConvergenceMode 1, as the base of every
	// thermalize call's tolerance, divided by sqrt(max(beta, 1)).
	DeltaLowT float64
	// MaxIterations bounds Thermalize's fixed-point loop.
	MaxIterations int
}
