// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"math"

	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// Thermalize iterates Update to a fixed point at fixed beta, refreshing
// each track's active window whenever accumulated vertex motion could
// plausibly have invalidated it. deltaMax0 is the convergence tolerance
// used when p.ConvergenceMode is 0; in mode 1 the tolerance instead
// shrinks with temperature (spec.md §4.5). It returns the number of
// iterations performed.
func Thermalize(beta float64, tks *track.Set, vtx *vertex.Set, deltaMax0, rho0, dzCutOff float64, p Params) int {
	deltaMax := deltaMax0
	if p.ConvergenceMode == 1 {
		deltaMax = p.DeltaLowT / math.Sqrt(math.Max(beta, 1.0))
	}

	SetVtxRange(beta, tks, vtx, p)

	var deltaSumRange float64
	z0 := append([]float64(nil), vtx.ExtractRaw().Zvtx...)

	niter := 0
	for niter < p.MaxIterations {
		niter++
		delta := Update(beta, tks, vtx, rho0, dzCutOff)
		deltaSumRange += delta

		if deltaSumRange > p.ZRangeMin {
			vraw := vtx.ExtractRaw()
			for k := 0; k < vtx.Len(); k++ {
				if fastmath.Abs(vraw.Zvtx[k]-z0[k]) > p.ZRangeMin {
					SetVtxRange(beta, tks, vtx, p)
					deltaSumRange = 0
					z0 = append(z0[:0], vtx.ExtractRaw().Zvtx...)
					break
				}
			}
		}

		if delta < deltaMax {
			break
		}
	}

	return niter
}
