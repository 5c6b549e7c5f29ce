// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dacluster

import "github.com/gonum-community/dacluster/track"

// InputTrack is the read-only view of a caller's track record that the
// clusterer consumes: validity, z-at-PCA, z-error, transverse momentum
// components, transverse impact parameter with its error, and the
// beam-spot projection terms (spec.md §6). It is an alias of
// track.Source so that callers never need to import the track package
// directly.
type InputTrack = track.Source

// VertexResult is one output cluster: a z position and the indices (into
// the slice of InputTrack passed to Vertices/Clusterize) of the tracks
// assigned to it.
type VertexResult struct {
	Z      float64
	Cov    PlaceholderCovariance
	Tracks []int
}

// PlaceholderCovariance is the fixed, non-fitted 3x3 symmetric covariance
// CMSSW attaches to every produced vertex position (spec.md §1
// Non-goals: "no error-matrix estimation beyond a fixed placeholder").
// Fields are the lower-triangular packing (xx, yx, yy, zx, zy, zz).
type PlaceholderCovariance [6]float64

var defaultPlaceholderCovariance = PlaceholderCovariance{0.01, 0, 0.01, 0, 0, 0.01}
