// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonum-community/dacluster/track"
)

func newTracksWithWindows(n int) *track.Set {
	s := track.NewSet()
	for i := 0; i < n; i++ {
		s.AddSorted(float64(i), 1, 1, i)
	}
	raw := s.ExtractRaw()
	for i := range raw.KMin {
		raw.KMin[i] = 0
		raw.KMax[i] = n
	}
	return s
}

func TestInsertItem_ShiftsTrackWindows(t *testing.T) {
	// GIVEN three vertices and a track whose window spans all of them
	v := NewSet()
	v.AddItem(-1, 1)
	v.AddItem(0, 1)
	v.AddItem(1, 1)
	tks := newTracksWithWindows(1)
	raw := tks.ExtractRaw()
	raw.KMin[0], raw.KMax[0] = 0, 3

	// WHEN a new vertex is inserted at index 1
	v.InsertItem(1, -0.5, 1, tks)

	// THEN the vertex array grows in place and the track's window widens
	// to still cover every vertex
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, -0.5, v.Z(1))
	assert.Equal(t, 0, raw.KMin[0])
	assert.Equal(t, 4, raw.KMax[0])
}

func TestRemoveItem_ShrinksTrackWindows(t *testing.T) {
	// GIVEN four vertices and a track whose window covers the middle two
	v := NewSet()
	v.AddItem(-1, 1)
	v.AddItem(-0.5, 1)
	v.AddItem(0, 1)
	v.AddItem(1, 1)
	tks := newTracksWithWindows(1)
	raw := tks.ExtractRaw()
	raw.KMin[0], raw.KMax[0] = 1, 3

	// WHEN the first of the covered vertices is removed
	v.RemoveItem(1, tks)

	// THEN the array shrinks and the window shifts left to keep pointing
	// at the same logical vertex
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, raw.KMin[0])
	assert.Equal(t, 2, raw.KMax[0])
}

func TestRemoveItem_ClampsDegenerateWindow(t *testing.T) {
	// GIVEN two vertices and a track whose window is exactly the second one
	v := NewSet()
	v.AddItem(0, 1)
	v.AddItem(1, 1)
	tks := newTracksWithWindows(1)
	raw := tks.ExtractRaw()
	raw.KMin[0], raw.KMax[0] = 1, 2

	// WHEN that vertex is removed, leaving only one vertex behind
	v.RemoveItem(1, tks)

	// THEN the window is clamped to the only remaining vertex rather than
	// left empty
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, 0, raw.KMin[0])
	assert.Equal(t, 1, raw.KMax[0])
}
