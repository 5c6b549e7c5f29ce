// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// Update runs one E-step/M-step pass at inverse temperature beta with
// outlier mass rho0, and returns the largest vertex-position change.
// It does not maintain the swE heat-capacity accumulator; use UpdateTc
// when the caller also needs vertex critical temperatures.
func Update(beta float64, tks *track.Set, vtx *vertex.Set, rho0, dzCutOff float64) float64 {
	return accumulate(beta, tks, vtx, rho0, dzCutOff, false)
}

// UpdateTc is Update plus the swE accumulation needed to estimate each
// vertex's critical temperature (spec.md §4.4 step 5, last bullet).
func UpdateTc(beta float64, tks *track.Set, vtx *vertex.Set, rho0, dzCutOff float64) float64 {
	return accumulate(beta, tks, vtx, rho0, dzCutOff, true)
}

// accumulate is the parameterized kernel both Update and UpdateTc share
// (spec.md §9 Design Notes): they differ only in whether SWE is
// maintained, and branching on that boolean is cheap relative to the
// memory-bound inner loop over each track's active window.
func accumulate(beta float64, tks *track.Set, vtx *vertex.Set, rho0, dzCutOff float64, trackTc bool) float64 {
	raw := tks.ExtractRaw()
	vraw := vtx.ExtractRaw()
	nv := vtx.Len()

	zInit := 0.0
	if rho0 > 0 {
		zInit = rho0 * fastmath.Exp(-beta*dzCutOff*dzCutOff)
	}

	for k := 0; k < nv; k++ {
		vraw.SE[k] = 0
		vraw.SW[k] = 0
		vraw.SWZ[k] = 0
		if trackTc {
			vraw.SWE[k] = 0
		}
	}

	var sumtkwt float64
	for i := range raw.Zpca {
		kmin, kmax := raw.KMin[i], raw.KMax[i]
		trackZ := raw.Zpca[i]
		betaDz2 := -beta * raw.Dz2[i]

		for k := kmin; k < kmax; k++ {
			d := trackZ - vraw.Zvtx[k]
			vraw.ExpArg[k] = betaDz2 * (d * d)
		}
		for k := kmin; k < kmax; k++ {
			vraw.Exp[k] = fastmath.Exp(vraw.ExpArg[k])
		}

		zsum := zInit
		for k := kmin; k < kmax; k++ {
			zsum += vraw.Rho[k] * vraw.Exp[k]
		}
		if !fastmath.IsFinite(zsum) {
			zsum = 0
		}
		raw.ZSum[i] = zsum

		sumtkwt += raw.Tkwt[i]

		if zsum > 1e-100 {
			tkwt := raw.Tkwt[i]
			oZsum := 1 / zsum
			oDz2 := raw.Dz2[i]
			obeta := -1 / beta

			for k := kmin; k < kmax; k++ {
				vraw.SE[k] += vraw.Exp[k] * (tkwt * oZsum)
				w := vraw.Rho[k] * vraw.Exp[k] * (tkwt * oZsum * oDz2)
				vraw.SW[k] += w
				vraw.SWZ[k] += w * trackZ
				if trackTc {
					vraw.SWE[k] += w * vraw.ExpArg[k] * obeta
				}
			}
		}
	}

	var delta float64
	for k := 0; k < nv; k++ {
		if vraw.SW[k] > 0 {
			znew := vraw.SWZ[k] / vraw.SW[k]
			if d := fastmath.Abs(vraw.Zvtx[k] - znew); d > delta {
				delta = d
			}
			vraw.Zvtx[k] = znew
		}
	}

	oSumtkwt := 1 / sumtkwt
	for k := 0; k < nv; k++ {
		vraw.Rho[k] = vraw.Rho[k] * vraw.SE[k] * oSumtkwt
	}

	return delta
}
