// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// Purge removes at most one vertex per call: the vertex supported by
// fewer than two unique tracks (spec.md §4.9, §9 open question) with the
// smallest total posterior mass among such vertices. It reports whether
// a vertex was removed.
//
// The initial threshold for "smallest total posterior mass" is the
// track count nt itself, so a vertex is eligible whenever its summed
// posterior is below nt -- true of essentially any candidate. This
// reproduces the CMSSW original's behavior exactly rather than
// generalizing it, per spec.md §9.
func Purge(beta float64, tks *track.Set, vtx *vertex.Set, rho0, dzCutOff, uniqueTrkWeight float64, p Params) bool {
	nv := vtx.Len()
	nt := tks.Len()
	if nv < 2 {
		return false
	}

	raw := tks.ExtractRaw()
	vraw := vtx.ExtractRaw()

	const eps = 1e-100
	inverseZsums := make([]float64, nt)
	for i := 0; i < nt; i++ {
		if raw.ZSum[i] > eps {
			inverseZsums[i] = 1 / raw.ZSum[i]
		}
	}

	rhoConst := rho0 * fastmath.Exp(-beta*dzCutOff*dzCutOff)
	pcut := make([]float64, nv)
	for k := 0; k < nv; k++ {
		pmax := vraw.Rho[k] / (vraw.Rho[k] + rhoConst)
		pcut[k] = uniqueTrkWeight * pmax
	}

	sumpmin := float64(nt)
	k0 := nv

	argCache := make([]float64, nt)
	for k := 0; k < nv; k++ {
		for i := 0; i < nt; i++ {
			d := raw.Zpca[i] - vraw.Zvtx[k]
			argCache[i] = -beta * raw.Dz2[i] * (d * d)
		}

		nUnique := 0
		var sump float64
		for i := 0; i < nt; i++ {
			eikExp := fastmath.Exp(argCache[i])
			prob := vraw.Rho[k] * eikExp * inverseZsums[i]
			sump += prob
			if prob > pcut[k] && raw.Tkwt[i] > 0 {
				nUnique++
			}
		}

		if nUnique < 2 && sump < sumpmin {
			sumpmin = sump
			k0 = k
		}
	}

	if k0 == nv {
		return false
	}

	vtx.RemoveItem(k0, tks)
	SetVtxRange(beta, tks, vtx, p)
	return true
}
