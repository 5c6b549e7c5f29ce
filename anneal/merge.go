// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"sort"

	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

type mergeCandidate struct {
	dz float64
	k  int
}

// Merge collapses at most one pair of adjacent vertices per call: among
// the adjacent pairs closer together than p.ZMerge, sorted nearest-first,
// it merges the first pair whose estimated merged critical temperature
// falls below the current temperature (spec.md §4.7), refreshes active
// windows, and reports whether a merge happened.
func Merge(beta float64, tks *track.Set, vtx *vertex.Set, p Params) bool {
	nv := vtx.Len()
	if nv < 2 {
		return false
	}

	var candidates []mergeCandidate
	for k := 0; k+1 < nv; k++ {
		dz := fastmath.Abs(vtx.Z(k+1) - vtx.Z(k))
		if dz < p.ZMerge {
			candidates = append(candidates, mergeCandidate{dz, k})
		}
	}
	if len(candidates) == 0 {
		return false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dz < candidates[j].dz })

	vraw := vtx.ExtractRaw()
	for _, c := range candidates {
		k := c.k
		rho := vraw.Rho[k] + vraw.Rho[k+1]
		dz := vraw.Zvtx[k+1] - vraw.Zvtx[k]
		swe := vraw.SWE[k] + vraw.SWE[k+1] - vraw.Rho[k]*vraw.Rho[k+1]/rho*(dz*dz)
		tc := 2 * swe / (vraw.SW[k] + vraw.SW[k+1])

		if tc*beta < 1 {
			if rho > 0 {
				vraw.Zvtx[k] = (vraw.Rho[k]*vraw.Zvtx[k] + vraw.Rho[k+1]*vraw.Zvtx[k+1]) / rho
			} else {
				vraw.Zvtx[k] = 0.5 * (vraw.Zvtx[k] + vraw.Zvtx[k+1])
			}
			vraw.Rho[k] = rho
			vraw.SW[k] += vraw.SW[k+1]
			vraw.SWE[k] = swe
			vtx.RemoveItem(k+1, tks)
			SetVtxRange(beta, tks, vtx, p)
			return true
		}
	}

	return false
}
