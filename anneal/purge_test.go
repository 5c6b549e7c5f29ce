// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anneal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonum-community/dacluster/track"
	"github.com/gonum-community/dacluster/vertex"
)

func TestPurge_RemovesUnsupportedVertex(t *testing.T) {
	// GIVEN a strong vertex supported by many tracks and a weak one far
	// away supported by none
	tks := track.NewSet()
	for i := 0; i < 20; i++ {
		tks.AddSorted(0.001*float64(i-10), 100, 1, i)
	}
	vtx := vertex.NewSet()
	vtx.AddItem(0, 1.0)
	vtx.AddItem(50, 1e-6)
	ClearVtxRange(tks, vtx)

	p := testParams()
	SetVtxRange(10.0, tks, vtx, p)
	UpdateTc(10.0, tks, vtx, 0, 3.0)

	// WHEN Purge runs
	purged := Purge(10.0, tks, vtx, 0, 3.0, 0.8, p)

	// THEN the unsupported vertex at z=50 is removed, leaving the
	// well-supported one
	assert.True(t, purged)
	assert.Equal(t, 1, vtx.Len())
	assert.InDelta(t, 0, vtx.Z(0), 1.0)
}

func TestPurge_NoopWithFewerThanTwoVertices(t *testing.T) {
	// GIVEN a single vertex
	tks := track.NewSet()
	tks.AddSorted(0, 100, 1, 0)
	vtx := vertex.NewSet()
	vtx.AddItem(0, 1)
	ClearVtxRange(tks, vtx)

	// WHEN Purge runs
	purged := Purge(10.0, tks, vtx, 0, 3.0, 0.8, testParams())

	// THEN it reports no removal; purge never empties a clustering
	assert.False(t, purged)
	assert.Equal(t, 1, vtx.Len())
}
