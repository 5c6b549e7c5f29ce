// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertex provides the ordered-by-z array of vertex prototypes
// used by a deterministic-annealing clusterer, and the scratch
// aggregates accumulated against each prototype during a single
// update/updateTc pass.
package vertex

import "github.com/gonum-community/dacluster/track"

// Set is an array of vertex prototypes kept ordered by Zvtx ascending --
// a class invariant every exported method preserves -- plus the scratch
// aggregates (ExpArg, Exp, SE, SW, SWZ, SWE) the annealing kernels
// accumulate into during a pass.
type Set struct {
	zvtx []float64
	rho  []float64

	ExpArg []float64
	Exp    []float64
	SE     []float64
	SW     []float64
	SWZ    []float64
	SWE    []float64
}

// NewSet returns an empty vertex set.
func NewSet() *Set {
	return &Set{}
}

// Len returns the number of vertex prototypes.
func (s *Set) Len() int {
	return len(s.zvtx)
}

// Z returns the position of prototype k.
func (s *Set) Z(k int) float64 { return s.zvtx[k] }

// Rho returns the mass of prototype k.
func (s *Set) Rho(k int) float64 { return s.rho[k] }

// SetZ sets the position of prototype k.
func (s *Set) SetZ(k int, z float64) { s.zvtx[k] = z }

// SetRho sets the mass of prototype k.
func (s *Set) SetRho(k int, rho float64) { s.rho[k] = rho }

// AddItem appends a prototype at the end of the ordered array. Callers
// are responsible for preserving the z-ascending invariant -- it is the
// caller's choice of z, not AddItem, that determines placement.
func (s *Set) AddItem(z, rho float64) {
	s.zvtx = append(s.zvtx, z)
	s.rho = append(s.rho, rho)
	s.ExpArg = append(s.ExpArg, 0)
	s.Exp = append(s.Exp, 0)
	s.SE = append(s.SE, 0)
	s.SW = append(s.SW, 0)
	s.SWZ = append(s.SWZ, 0)
	s.SWE = append(s.SWE, 0)
}

// InsertItem inserts a new prototype (z, rho) immediately before index k,
// shifting k and everything after it one position to the right. It
// updates tks.KMin/KMax so that every track's active window still covers
// the vertices it covered before the shift; a window that starts before
// k and ends after it also takes in the new prototype.
func (s *Set) InsertItem(k int, z, rho float64, tks *track.Set) {
	s.zvtx = insertAt(s.zvtx, k, z)
	s.rho = insertAt(s.rho, k, rho)
	s.ExpArg = insertAt(s.ExpArg, k, 0)
	s.Exp = insertAt(s.Exp, k, 0)
	s.SE = insertAt(s.SE, k, 0)
	s.SW = insertAt(s.SW, k, 0)
	s.SWZ = insertAt(s.SWZ, k, 0)
	s.SWE = insertAt(s.SWE, k, 0)

	raw := tks.ExtractRaw()
	for i := range raw.KMin {
		if raw.KMin[i] >= k {
			raw.KMin[i]++
		}
		if raw.KMax[i] > k {
			raw.KMax[i]++
		}
	}
}

// RemoveItem deletes the prototype at index k, shifting everything after
// it one position to the left, and adjusts tks.KMin/KMax accordingly.
func (s *Set) RemoveItem(k int, tks *track.Set) {
	s.zvtx = removeAt(s.zvtx, k)
	s.rho = removeAt(s.rho, k)
	s.ExpArg = removeAt(s.ExpArg, k)
	s.Exp = removeAt(s.Exp, k)
	s.SE = removeAt(s.SE, k)
	s.SW = removeAt(s.SW, k)
	s.SWZ = removeAt(s.SWZ, k)
	s.SWE = removeAt(s.SWE, k)

	nv := s.Len()
	raw := tks.ExtractRaw()
	for i := range raw.KMin {
		if raw.KMin[i] > k {
			raw.KMin[i]--
		}
		if raw.KMax[i] > k {
			raw.KMax[i]--
		}
		if raw.KMax[i] > nv {
			raw.KMax[i] = nv
		}
		if raw.KMin[i] >= raw.KMax[i] {
			if raw.KMax[i] == 0 {
				raw.KMax[i] = 1
			}
			raw.KMin[i] = raw.KMax[i] - 1
		}
	}
}

// Raw exposes the backing arrays directly for the annealing kernels. As
// with track.Set.Raw, never hold this across an Insert/Remove -- call
// ExtractRaw again afterward.
type Raw struct {
	Zvtx, Rho                  []float64
	ExpArg, Exp, SE, SW, SWZ, SWE []float64
}

// ExtractRaw returns the current backing arrays.
func (s *Set) ExtractRaw() Raw {
	return Raw{
		Zvtx:   s.zvtx,
		Rho:    s.rho,
		ExpArg: s.ExpArg,
		Exp:    s.Exp,
		SE:     s.SE,
		SW:     s.SW,
		SWZ:    s.SWZ,
		SWE:    s.SWE,
	}
}

func insertAt(s []float64, k int, v float64) []float64 {
	s = append(s, 0)
	copy(s[k+1:], s[k:])
	s[k] = v
	return s
}

func removeAt(s []float64, k int) []float64 {
	return append(s[:k], s[k+1:]...)
}
