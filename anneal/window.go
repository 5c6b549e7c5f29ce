// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"math"

	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// SetVtxRange recomputes, for every track, the half-open range of vertex
// indices [KMin, KMax) considered close enough in z to influence it at
// the given inverse temperature. The window shrinks as beta grows; the
// walk from the previous KMin/KMax is amortized O(1) across a cooling
// run because beta only increases between calls.
func SetVtxRange(beta float64, tks *track.Set, vtx *vertex.Set, p Params) {
	nv := vtx.Len()
	if nv == 0 {
		return
	}
	raw := tks.ExtractRaw()
	vraw := vtx.ExtractRaw()

	for i := range raw.Zpca {
		zrange := p.SelZRange / math.Sqrt(beta*raw.Dz2[i])
		if zrange < p.ZRangeMin {
			zrange = p.ZRangeMin
		}

		zmin := raw.Zpca[i] - zrange
		kmin := raw.KMin[i]
		if kmin > nv-1 {
			kmin = nv - 1
		}
		if vraw.Zvtx[kmin] > zmin {
			for kmin > 0 && vraw.Zvtx[kmin-1] > zmin {
				kmin--
			}
		} else {
			for kmin < nv-1 && vraw.Zvtx[kmin] < zmin {
				kmin++
			}
		}

		zmax := raw.Zpca[i] + zrange
		kmax := raw.KMax[i] - 1
		if kmax > nv-1 {
			kmax = nv - 1
		}
		if vraw.Zvtx[kmax] < zmax {
			for kmax < nv-1 && vraw.Zvtx[kmax+1] < zmax {
				kmax++
			}
		} else {
			for kmax > 0 && vraw.Zvtx[kmax] > zmax {
				kmax--
			}
		}

		if kmin <= kmax {
			raw.KMin[i] = kmin
			raw.KMax[i] = kmax + 1
		} else {
			lo, hi := kmin, kmax
			if hi < lo {
				lo, hi = hi, lo
			}
			raw.KMin[i] = lo
			raw.KMax[i] = hi + 1
			if raw.KMax[i] > nv {
				raw.KMax[i] = nv
			}
		}
	}
}

// ClearVtxRange resets every track's active window to the full [0, nv)
// range of vertices.
func ClearVtxRange(tks *track.Set, vtx *vertex.Set) {
	nv := vtx.Len()
	raw := tks.ExtractRaw()
	for i := range raw.KMin {
		raw.KMin[i] = 0
		raw.KMax[i] = nv
	}
}
