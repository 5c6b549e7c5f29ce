// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastmath collects the handful of scalar numeric helpers shared
// by the track, vertex and anneal packages: finiteness checks and the
// exponential used in the annealing kernels' inner loops.
package fastmath

import "math"

// MinPositive is the smallest positive normal float64, used to detect
// sub-normal inverse variances (spec.md §4.1).
const MinPositive = 2.2250738585072014e-308

// Epsilon is the machine epsilon, used to reject near-zero track weights.
const Epsilon = 2.220446049250313e-16

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Exp is the exponential used throughout the annealing kernels. The
// CMSSW original calls into the vdt fast-math library for this; no
// comparable fast-exponential package appears anywhere in the example
// corpus, so this is one of the few places the implementation falls back
// to the standard library rather than a third-party routine.
func Exp(x float64) float64 {
	return math.Exp(x)
}
