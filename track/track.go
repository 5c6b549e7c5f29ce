// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track provides the immutable-after-fill, struct-of-arrays
// storage for the tracks consumed by a deterministic-annealing vertex
// clusterer, along with the per-track scratch state mutated while
// annealing.
package track

import (
	"sort"

	"github.com/gonum-community/dacluster/internal/fastmath"
)

// Source is the minimal view of a caller-owned track record that Fill
// needs to build a Set. Implementations normally wrap a reconstructed
// track together with the beam-spot it was fit against.
type Source interface {
	// Valid reports whether the track carries a usable state at its
	// point of closest approach.
	Valid() bool
	// ZPCA returns the longitudinal coordinate at the point of closest
	// approach.
	ZPCA() float64
	// DzError returns the track's own estimate of its z uncertainty.
	DzError() float64
	// MomentumX, MomentumY and MomentumZ return the track momentum at
	// the point of closest approach.
	MomentumX() float64
	MomentumY() float64
	MomentumZ() float64
	// BeamWidthX and BeamWidthY return the beam-spot transverse widths
	// used to project beam-spot uncertainty onto z.
	BeamWidthX() float64
	BeamWidthY() float64
	// IPValue and IPError return the transverse impact parameter and
	// its error, used by the d0 significance cut.
	IPValue() float64
	IPError() float64
}

// FillParams carries the configuration Fill needs that isn't intrinsic
// to a track: the vertex-size resolution floor and the d0 significance
// cutoff.
type FillParams struct {
	// VertexSize is added in quadrature to every track's z variance as
	// an intrinsic resolution floor.
	VertexSize float64
	// D0CutOff disables the transverse-IP logistic weight cut when <= 0.
	D0CutOff float64
}

// Set is a struct-of-arrays store of tracks, ordered by ZPCA ascending,
// plus the per-track scratch state (ZSum, KMin, KMax) mutated by the
// annealing engine. The ordering is a class invariant: callers must use
// AddSorted rather than appending to the exported Raw view.
type Set struct {
	zpca   []float64
	dz2    []float64
	tkwt   []float64
	handle []int

	// ZSum is the partition-function sum for each track over its active
	// vertex window, recomputed by Update/UpdateTc.
	ZSum []float64
	// KMin and KMax bound the half-open range of vertex indices
	// currently considered close enough to influence each track.
	KMin []int
	KMax []int
}

// NewSet returns an empty track set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of tracks held.
func (s *Set) Len() int {
	return len(s.zpca)
}

// AddSorted appends a track, keeping the backing arrays ordered by zpca
// ascending. handle is an opaque index into the caller's own track slice,
// used only to populate output assignments (spec.md §9: prefer integer
// handles over raw pointers into foreign storage). Insertion is O(n);
// track counts in a single clustering call are small enough that this
// never dominates.
func (s *Set) AddSorted(zpca, dz2, tkwt float64, handle int) {
	i := sort.Search(len(s.zpca), func(i int) bool { return s.zpca[i] >= zpca })

	s.zpca = append(s.zpca, 0)
	s.dz2 = append(s.dz2, 0)
	s.tkwt = append(s.tkwt, 0)
	s.handle = append(s.handle, 0)
	s.ZSum = append(s.ZSum, 0)
	s.KMin = append(s.KMin, 0)
	s.KMax = append(s.KMax, 0)

	copy(s.zpca[i+1:], s.zpca[i:])
	copy(s.dz2[i+1:], s.dz2[i:])
	copy(s.tkwt[i+1:], s.tkwt[i:])
	copy(s.handle[i+1:], s.handle[i:])
	copy(s.ZSum[i+1:], s.ZSum[i:])
	copy(s.KMin[i+1:], s.KMin[i:])
	copy(s.KMax[i+1:], s.KMax[i:])

	s.zpca[i] = zpca
	s.dz2[i] = dz2
	s.tkwt[i] = tkwt
	s.handle[i] = handle
}

// Handle returns the caller-supplied handle of track i.
func (s *Set) Handle(i int) int { return s.handle[i] }

// ZPCA returns the z coordinate of track i.
func (s *Set) ZPCA(i int) float64 { return s.zpca[i] }

// Raw exposes the backing arrays directly for the annealing kernels,
// which are written as tight loops over parallel slices rather than
// per-track accessor calls. The teacher's C++ original re-seats raw
// restricted pointers after any reallocation; the equivalent discipline
// in Go is to never hold a Raw across a call that may grow the set and
// to re-fetch it via ExtractRaw afterward.
type Raw struct {
	Zpca, Dz2, Tkwt []float64
	Handle          []int
	ZSum            []float64
	KMin, KMax      []int
}

// ExtractRaw returns the current backing arrays.
func (s *Set) ExtractRaw() Raw {
	return Raw{
		Zpca:   s.zpca,
		Dz2:    s.dz2,
		Tkwt:   s.tkwt,
		Handle: s.handle,
		ZSum:   s.ZSum,
		KMin:   s.KMin,
		KMax:   s.KMax,
	}
}

// Fill builds a Set from a sequence of caller-owned track records,
// dropping invalid, malformed or clearly mismeasured entries. See
// spec.md §4.1 for the exact drop conditions; the ordering of checks
// (z range before dz2, dz2 before the d0 cut) follows the original
// CMSSW DAClusterizerInZ_vect::fill.
func Fill(sources []Source, p FillParams) *Set {
	set := NewSet()
	for idx, src := range sources {
		if !src.Valid() {
			continue
		}
		z := src.ZPCA()
		if fastmath.Abs(z) > 1000 {
			continue
		}

		momX, momY, momZ := src.MomentumX(), src.MomentumY(), src.MomentumZ()
		perp2 := momX*momX + momY*momY

		beamTerm := (sq(src.BeamWidthX()*momX) + sq(src.BeamWidthY()*momY)) * sq(momZ) / sq(perp2)
		variance := sq(src.DzError()) + beamTerm + sq(p.VertexSize)
		dz2 := 1 / variance
		if !fastmath.IsFinite(dz2) || dz2 < fastmath.MinPositive {
			continue
		}

		tkwt := 1.0
		if p.D0CutOff > 0 {
			significance := src.IPValue() / src.IPError()
			tkwt = 1 / (1 + fastmath.Exp(sq(significance)-sq(p.D0CutOff)))
			if !fastmath.IsFinite(tkwt) || tkwt < fastmath.Epsilon {
				continue
			}
		}

		set.AddSorted(z, dz2, tkwt, idx)
	}
	return set
}

func sq(x float64) float64 { return x * x }
