// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"math"
	"sort"

	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// splitEpsilon is the minimum separation a proposed split must reach to
// be accepted (spec.md §4.8).
const splitEpsilon = 1e-3

type splitCandidate struct {
	tc float64
	k  int
}

func eik(trackZ, vertexZ, dz2 float64) float64 {
	d := trackZ - vertexZ
	return d * d * dz2
}

// Split attempts to split every vertex whose beta*Tc exceeds threshold,
// highest Tc first, into two sub-clusters using soft (logistic) left/
// right track assignments (spec.md §4.8). UpdateTc must have been run
// at this beta immediately beforehand, with no merges since, so that
// SW/SWE reflect the current vertex positions. It reports whether any
// split was accepted.
func Split(beta float64, tks *track.Set, vtx *vertex.Set, threshold float64) bool {
	nv := vtx.Len()

	vrawInit := vtx.ExtractRaw()
	var candidates []splitCandidate
	for k := 0; k < nv; k++ {
		tc := 2 * vrawInit.SWE[k] / vrawInit.SW[k]
		if beta*tc > threshold {
			candidates = append(candidates, splitCandidate{tc, k})
		}
	}
	if len(candidates) == 0 {
		return false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].tc > candidates[j].tc })

	raw := tks.ExtractRaw()
	split := false

	for ci := 0; ci < len(candidates); ci++ {
		k := candidates[ci].k
		vraw := vtx.ExtractRaw()

		var p1, z1, w1, p2, z2, w2 float64
		for i := range raw.Zpca {
			if raw.ZSum[i] <= 1e-100 {
				continue
			}

			tl := 1.0
			if raw.Zpca[i] >= vraw.Zvtx[k] {
				tl = 0.0
			}
			tr := 1 - tl

			arg := (raw.Zpca[i] - vraw.Zvtx[k]) * math.Sqrt(beta*raw.Dz2[i])
			if fastmath.Abs(arg) < 20 {
				t := fastmath.Exp(-arg)
				tl = t / (t + 1)
				tr = 1 / (t + 1)
			}

			p := vraw.Rho[k] * raw.Tkwt[i] * fastmath.Exp(-beta*eik(raw.Zpca[i], vraw.Zvtx[k], raw.Dz2[i])) / raw.ZSum[i]
			w := p * raw.Dz2[i]
			p1 += p * tl
			z1 += w * tl * raw.Zpca[i]
			w1 += w * tl
			p2 += p * tr
			z2 += w * tr * raw.Zpca[i]
			w2 += w * tr
		}

		if w1 > 0 {
			z1 /= w1
		} else {
			z1 = vraw.Zvtx[k] - splitEpsilon
		}
		if w2 > 0 {
			z2 /= w2
		} else {
			z2 = vraw.Zvtx[k] + splitEpsilon
		}

		if k > 0 {
			if floor := 0.6*vraw.Zvtx[k] + 0.4*vraw.Zvtx[k-1]; z1 < floor {
				z1 = floor
			}
		}
		if k+1 < nv {
			if ceil := 0.6*vraw.Zvtx[k] + 0.4*vraw.Zvtx[k+1]; z2 > ceil {
				z2 = ceil
			}
		}

		if z2-z1 > splitEpsilon {
			split = true
			pk1 := p1 * vraw.Rho[k] / (p1 + p2)
			pk2 := p2 * vraw.Rho[k] / (p1 + p2)
			vraw.Zvtx[k] = z2
			vraw.Rho[k] = pk2
			vtx.InsertItem(k, z1, pk1, tks)
			nv++

			for jc := ci; jc < len(candidates); jc++ {
				if candidates[jc].k >= k {
					candidates[jc].k++
				}
			}
		}
	}

	return split
}
