// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"math"

	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// Beta0 estimates the starting inverse temperature of the annealing run
// from the critical temperature T0 of a single vertex at T=infinity
// (spec.md §4.6): if T0 is above 1/betamax it returns betamax times a
// power of coolingFactor whose temperature lies above T0, otherwise
// betamax*coolingFactor. It writes the single-vertex weighted-mean
// fit into vtx as a side effect -- this assumes, as the CMSSW original
// does, that vtx holds exactly one prototype when Beta0 is called; it is
// not meant to generalize to a multi-vertex starting state.
func Beta0(betamax, coolingFactor float64, tks *track.Set, vtx *vertex.Set) float64 {
	raw := tks.ExtractRaw()

	var t0 float64
	for k := 0; k < vtx.Len(); k++ {
		var sumwz, sumw float64
		for i := range raw.Zpca {
			w := raw.Tkwt[i] * raw.Dz2[i]
			sumwz += w * raw.Zpca[i]
			sumw += w
		}
		z := sumwz / sumw
		vtx.SetZ(k, z)

		var a, b float64
		for i := range raw.Zpca {
			dx := raw.Zpca[i] - z
			w := raw.Tkwt[i] * raw.Dz2[i]
			a += w * dx * dx * raw.Dz2[i]
			b += w
		}
		tc := 2 * a / b
		if tc > t0 {
			t0 = tc
		}
	}

	if t0 > 1/betamax {
		steps := 1 - int(math.Log(t0*betamax)/math.Log(coolingFactor))
		return betamax * math.Pow(coolingFactor, float64(steps))
	}
	return betamax * coolingFactor
}
