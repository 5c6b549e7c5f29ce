// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dacluster

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/gonum-community/dacluster/internal/synthtrack"
)

func toInputTracks(ts []synthtrack.Track) []InputTrack {
	in := make([]InputTrack, len(ts))
	for i, t := range ts {
		in[i] = t
	}
	return in
}

func TestVertices_SingleClusterProducesOneVertex(t *testing.T) {
	// GIVEN a single tight cluster of tracks around z=1.5
	rng := rand.New(rand.NewSource(1))
	synth := synthtrack.Generate(rng, []synthtrack.Cluster{
		{Z: 1.5, Sigma: 0.02, N: 40, DzError: 0.01},
	}, 0, -10, 10)

	// WHEN the clusterer runs with default tuning
	c := New(DefaultConfig())
	verts := c.Vertices(toInputTracks(synth))

	// THEN exactly one vertex is found near the generating mean, and
	// every track is assigned to it exactly once
	assert.Len(t, verts, 1)
	assert.InDelta(t, 1.5, verts[0].Z, 0.1)
	assert.Len(t, verts[0].Tracks, len(synth))
}

func TestVertices_TwoWellSeparatedClustersStaySeparate(t *testing.T) {
	// GIVEN two tight clusters several centimeters apart -- far beyond
	// both ZMerge and the default resolution
	rng := rand.New(rand.NewSource(2))
	synth := synthtrack.Generate(rng, []synthtrack.Cluster{
		{Z: -5.0, Sigma: 0.01, N: 30, DzError: 0.01},
		{Z: 5.0, Sigma: 0.01, N: 30, DzError: 0.01},
	}, 0, -10, 10)

	// WHEN the clusterer runs
	c := New(DefaultConfig())
	verts := c.Vertices(toInputTracks(synth))

	// THEN both clusters are recovered as distinct vertices
	assert.Len(t, verts, 2)
}

func TestVertices_NoTracksProducesNoVertices(t *testing.T) {
	// GIVEN no input tracks at all
	c := New(DefaultConfig())

	// WHEN Vertices runs
	verts := c.Vertices(nil)

	// THEN it returns an empty result without panicking
	assert.Empty(t, verts)
}

func TestVertices_EverySurvivingTrackAssignedAtMostOnce(t *testing.T) {
	// GIVEN three clusters plus background outliers
	rng := rand.New(rand.NewSource(3))
	synth := synthtrack.Generate(rng, []synthtrack.Cluster{
		{Z: -3.0, Sigma: 0.02, N: 25, DzError: 0.015},
		{Z: 0.0, Sigma: 0.02, N: 25, DzError: 0.015},
		{Z: 3.0, Sigma: 0.02, N: 25, DzError: 0.015},
	}, 10, -10, 10)

	// WHEN the clusterer runs
	c := New(DefaultConfig())
	verts := c.Vertices(toInputTracks(synth))

	// THEN no track handle is assigned to more than one vertex
	seen := make(map[int]bool)
	for _, v := range verts {
		for _, h := range v.Tracks {
			assert.False(t, seen[h], "track %d assigned to more than one vertex", h)
			seen[h] = true
		}
	}
}

func TestVertices_DeterministicForSameInput(t *testing.T) {
	// GIVEN the same synthetic input generated twice from the same seed
	rng1 := rand.New(rand.NewSource(7))
	synth1 := synthtrack.Generate(rng1, []synthtrack.Cluster{{Z: 0, Sigma: 0.02, N: 30, DzError: 0.01}}, 5, -10, 10)
	rng2 := rand.New(rand.NewSource(7))
	synth2 := synthtrack.Generate(rng2, []synthtrack.Cluster{{Z: 0, Sigma: 0.02, N: 30, DzError: 0.01}}, 5, -10, 10)

	// WHEN the clusterer runs on each independently
	c := New(DefaultConfig())
	v1 := c.Vertices(toInputTracks(synth1))
	v2 := c.Vertices(toInputTracks(synth2))

	// THEN the results agree exactly -- the engine has no hidden
	// randomness or map-iteration-order dependence
	if diff := cmp.Diff(v1, v2); diff != "" {
		t.Errorf("Vertices result not deterministic (-first +second):\n%s", diff)
	}
}

func TestClusterize_MergesVerticesWithinGap(t *testing.T) {
	// GIVEN two clusters closer together than 2*VertexSize after
	// annealing settles
	rng := rand.New(rand.NewSource(4))
	synth := synthtrack.Generate(rng, []synthtrack.Cluster{
		{Z: 0.0, Sigma: 0.005, N: 20, DzError: 0.01},
		{Z: 0.01, Sigma: 0.005, N: 20, DzError: 0.01},
	}, 0, -5, 5)

	cfg := DefaultConfig()
	c := New(cfg)

	// WHEN Clusterize runs
	clusters := c.Clusterize(toInputTracks(synth))

	// THEN the two nearby groups are reported as a single track cluster
	assert.Len(t, clusters, 1)
	assert.Len(t, clusters[0], len(synth))
}

func TestConfig_ValidateClampsOutOfRangeTemperatures(t *testing.T) {
	// GIVEN a config where Tpurge exceeds Tmin and Tstop exceeds Tpurge
	cfg := Config{Tmin: 4.0, Tpurge: 10.0, Tstop: 20.0, ConvergenceMode: 5}

	// WHEN Validate runs
	cfg.Validate(nil)

	// THEN every out-of-range option is clamped to its nearest sane
	// value rather than left to destabilize the schedule
	assert.Equal(t, 0, cfg.ConvergenceMode)
	assert.InDelta(t, 0.25, cfg.betamax, 1e-9)
	assert.InDelta(t, 0.25, cfg.betapurge, 1e-9)
	assert.InDelta(t, 0.25, cfg.betastop, 1e-9)
}
