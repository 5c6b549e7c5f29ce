// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synthtrack generates synthetic track measurements for testing
// the annealing clusterer against known ground truth: tracks drawn from
// one or more Gaussian clusters along z, plus uniform background
// outliers, with a fixed per-track z resolution.
package synthtrack

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Track is a concrete dacluster.InputTrack implementation built entirely
// from synthetic values; transverse momentum and beam-spot terms are
// fixed so that a track's z variance reduces to dzerror²+vertexSize².
type Track struct {
	valid   bool
	z       float64
	dzerror float64
	ipvalue float64
	iperror float64
}

func (t Track) Valid() bool         { return t.valid }
func (t Track) ZPCA() float64       { return t.z }
func (t Track) DzError() float64    { return t.dzerror }
func (t Track) MomentumX() float64  { return 1 }
func (t Track) MomentumY() float64  { return 0 }
func (t Track) MomentumZ() float64  { return 0 }
func (t Track) BeamWidthX() float64 { return 0 }
func (t Track) BeamWidthY() float64 { return 0 }
func (t Track) IPValue() float64    { return t.ipvalue }
func (t Track) IPError() float64    { return t.iperror }

// Cluster describes one Gaussian group of tracks to generate.
type Cluster struct {
	Z       float64 // mean z position
	Sigma   float64 // intrinsic spread of the cluster itself
	N       int     // number of tracks
	DzError float64 // per-track z measurement error
}

// Generate draws tracks from each cluster in clusters plus nBackground
// uniformly distributed outliers over [zlo, zhi], using rng for all
// randomness so callers get deterministic, seedable test fixtures.
func Generate(rng *rand.Rand, clusters []Cluster, nBackground int, zlo, zhi float64) []Track {
	var tracks []Track
	for _, c := range clusters {
		for i := 0; i < c.N; i++ {
			z := c.Z + rng.NormFloat64()*c.Sigma + rng.NormFloat64()*c.DzError
			tracks = append(tracks, Track{
				valid: true, z: z, dzerror: c.DzError,
				ipvalue: rng.NormFloat64() * 0.01, iperror: 0.01,
			})
		}
	}
	for i := 0; i < nBackground; i++ {
		z := zlo + rng.Float64()*(zhi-zlo)
		tracks = append(tracks, Track{
			valid: true, z: z, dzerror: 1.0,
			ipvalue: rng.NormFloat64() * 0.01, iperror: 0.01,
		})
	}
	return tracks
}

// MeanZ returns the sample mean of the tracks' generated z positions,
// which include the per-track measurement smearing, so it sits near but
// not exactly at the generating cluster's c.Z.
func MeanZ(tracks []Track) float64 {
	zs := make([]float64, len(tracks))
	for i, t := range tracks {
		zs[i] = t.z
	}
	return stat.Mean(zs, nil)
}

// StdZ returns the sample standard deviation of the tracks' generated z
// positions.
func StdZ(tracks []Track) float64 {
	zs := make([]float64, len(tracks))
	for i, t := range tracks {
		zs[i] = t.z
	}
	_, variance := stat.MeanVariance(zs, nil)
	return math.Sqrt(variance)
}
