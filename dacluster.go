// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dacluster implements a one-dimensional deterministic-annealing
// clusterer for grouping weighted, noisy longitudinal track measurements
// into vertex candidates, modeled on the CMSSW primary-vertex producer's
// DAClusterizerInZ_vect. The core algorithm lives in the track, vertex
// and anneal subpackages; this package is the top-level facade callers
// use: Vertices for the raw (z, assigned tracks) clusters, Clusterize for
// the additionally gap-merged, singleton-suppressed track groups.
package dacluster

import (
	"math"
	"sort"

	"github.com/gonum-community/dacluster/anneal"
	"github.com/gonum-community/dacluster/internal/fastmath"
	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

// Clusterer runs the annealing clusterer with a fixed configuration. It
// holds no mutable state between calls: every Vertices/Clusterize call
// builds its own track.Set/vertex.Set and is safe to run concurrently
// with any other call on the same or a different Clusterer (spec.md §5).
type Clusterer struct {
	cfg Config
}

// New validates cfg and returns a Clusterer that runs with it.
func New(cfg Config) *Clusterer {
	cfg.Validate(newLogger(cfg))
	return &Clusterer{cfg: cfg}
}

// Vertices runs the full annealing schedule over tracks and returns the
// resulting clusters ordered by z ascending. An empty input, or an input
// that yields no surviving tracks after Fill's drop rules, produces an
// empty (nil) result (spec.md §7).
func (c *Clusterer) Vertices(tracks []InputTrack) []VertexResult {
	log := newLogger(c.cfg)
	p := c.cfg.annealParams()

	tks := track.Fill(tracks, track.FillParams{VertexSize: c.cfg.VertexSize, D0CutOff: c.cfg.D0CutOff})
	nt := tks.Len()
	if nt == 0 {
		return nil
	}

	rho0 := 0.0
	vtx := vertex.NewSet()
	vtx.AddItem(0, 1.0)
	anneal.ClearVtxRange(tks, vtx)

	beta := anneal.Beta0(c.cfg.betamax, c.cfg.CoolingFactor, tks, vtx)
	log.Debugf("beta0 = %v", beta)
	anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaHighT, rho0, c.cfg.DzCutOff, p)

	betafreeze := c.cfg.betamax * math.Sqrt(c.cfg.CoolingFactor)
	for beta < betafreeze {
		anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
		for anneal.Merge(beta, tks, vtx, p) {
			anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
		}
		anneal.Split(beta, tks, vtx, 1.0)

		beta /= c.cfg.CoolingFactor
		anneal.SetVtxRange(beta, tks, vtx, p)
		anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaHighT, rho0, c.cfg.DzCutOff, p)
	}
	log.Debugf("entering final splitting round at T=%v, nv=%d", 1/beta, vtx.Len())

	anneal.SetVtxRange(beta, tks, vtx, p)
	anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
	for anneal.Merge(beta, tks, vtx, p) {
		anneal.SetVtxRange(beta, tks, vtx, p)
		anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
	}

	threshold := 1.0
	for ntry := 0; anneal.Split(beta, tks, vtx, threshold) && ntry < 10; ntry++ {
		anneal.SetVtxRange(beta, tks, vtx, p)
		anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaHighT, 0, c.cfg.DzCutOff, p)
		anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
		for anneal.Merge(beta, tks, vtx, p) {
			anneal.UpdateTc(beta, tks, vtx, rho0, c.cfg.DzCutOff)
		}
		threshold *= 1.1
	}

	if c.cfg.DzCutOff > 0 {
		log.Debugf("turning on outlier rejection at T=%v", 1/beta)
		rho0 = 1 / float64(nt)
		for a := 0; a < 5; a++ {
			anneal.Update(beta, tks, vtx, float64(a)*rho0/5, c.cfg.DzCutOff)
		}
	}
	anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaLowT, rho0, c.cfg.DzCutOff, p)

	for anneal.Merge(beta, tks, vtx, p) {
		anneal.SetVtxRange(beta, tks, vtx, p)
		anneal.Update(beta, tks, vtx, rho0, c.cfg.DzCutOff)
	}

	for beta < c.cfg.betapurge {
		beta = math.Min(beta/c.cfg.CoolingFactor, c.cfg.betapurge)
		anneal.SetVtxRange(beta, tks, vtx, p)
		anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaLowT, rho0, c.cfg.DzCutOff, p)
	}
	log.Debugf("purging at T=%v", 1/beta)

	for anneal.Purge(beta, tks, vtx, rho0, c.cfg.DzCutOff, c.cfg.UniqueTrkWeight, p) {
		anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaLowT, rho0, c.cfg.DzCutOff, p)
	}

	for beta < c.cfg.betastop {
		beta = math.Min(beta/c.cfg.CoolingFactor, c.cfg.betastop)
		anneal.Thermalize(beta, tks, vtx, c.cfg.DeltaLowT, rho0, c.cfg.DzCutOff, p)
	}
	log.Debugf("stop cooling at T=%v, nv=%d", 1/beta, vtx.Len())

	results := c.assign(beta, rho0, tks, vtx)
	for _, r := range results {
		if withinDump(c.cfg, r.Z) {
			log.Debugf("vertex z=%v ntracks=%d", r.Z, len(r.Tracks))
		}
	}
	return results
}

// assign performs the final hard assignment of step §4.10.12: every
// non-finite prototype is zeroed, each track's full (unwindowed) Z_sum is
// recomputed, and a track is attached to the first vertex (in z order)
// whose posterior exceeds mintrkweight, after which it is excluded from
// every later vertex to guarantee single assignment.
func (c *Clusterer) assign(beta, rho0 float64, tks *track.Set, vtx *vertex.Set) []VertexResult {
	nv := vtx.Len()
	vraw := vtx.ExtractRaw()
	for k := 0; k < nv; k++ {
		if !fastmath.IsFinite(vraw.Rho[k]) || !fastmath.IsFinite(vraw.Zvtx[k]) {
			vraw.Rho[k] = 0
			vraw.Zvtx[k] = 0
		}
	}

	raw := tks.ExtractRaw()
	nt := tks.Len()
	zSumInit := rho0 * fastmath.Exp(-beta*c.cfg.DzCutOff*c.cfg.DzCutOff)
	for i := 0; i < nt; i++ {
		raw.ZSum[i] = zSumInit
	}
	for k := 0; k < nv; k++ {
		for i := 0; i < nt; i++ {
			raw.ZSum[i] += vraw.Rho[k] * fastmath.Exp(-beta*eik(raw.Zpca[i], vraw.Zvtx[k], raw.Dz2[i]))
		}
	}

	results := make([]VertexResult, nv)
	for k := 0; k < nv; k++ {
		var assigned []int
		for i := 0; i < nt; i++ {
			if raw.ZSum[i] <= 1e-100 {
				continue
			}
			p := vraw.Rho[k] * fastmath.Exp(-beta*eik(raw.Zpca[i], vraw.Zvtx[k], raw.Dz2[i])) / raw.ZSum[i]
			if raw.Tkwt[i] > 0 && p > minTrkWeight {
				assigned = append(assigned, raw.Handle[i])
				raw.ZSum[i] = 0
			}
		}
		results[k] = VertexResult{Z: vraw.Zvtx[k], Cov: defaultPlaceholderCovariance, Tracks: assigned}
	}

	return results
}

func eik(trackZ, vertexZ, dz2 float64) float64 {
	d := trackZ - vertexZ
	return d * d * dz2
}

// Clusterize runs Vertices and then collapses adjacent vertices within
// 2*VertexSize of each other into a single track group, suppressing
// resulting single-track groups except the final one (spec.md §4.11).
func (c *Clusterer) Clusterize(tracks []InputTrack) [][]int {
	verts := c.Vertices(tracks)
	if len(verts) == 0 {
		return nil
	}
	sort.SliceStable(verts, func(i, j int) bool { return verts[i].Z < verts[j].Z })

	var clusters [][]int
	current := append([]int(nil), verts[0].Tracks...)

	for k := 1; k < len(verts); k++ {
		if math.Abs(verts[k].Z-verts[k-1].Z) > 2*c.cfg.VertexSize {
			if len(current) > 1 {
				clusters = append(clusters, current)
			}
			current = nil
		}
		current = append(current, verts[k].Tracks...)
	}
	clusters = append(clusters, current)

	return clusters
}
