// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	valid      bool
	z          float64
	dzerror    float64
	momx, momy float64
	momz       float64
	ipvalue    float64
	iperror    float64
}

func (f fakeSource) Valid() bool         { return f.valid }
func (f fakeSource) ZPCA() float64       { return f.z }
func (f fakeSource) DzError() float64    { return f.dzerror }
func (f fakeSource) MomentumX() float64  { return f.momx }
func (f fakeSource) MomentumY() float64  { return f.momy }
func (f fakeSource) MomentumZ() float64  { return f.momz }
func (f fakeSource) BeamWidthX() float64 { return 0 }
func (f fakeSource) BeamWidthY() float64 { return 0 }
func (f fakeSource) IPValue() float64    { return f.ipvalue }
func (f fakeSource) IPError() float64    { return f.iperror }

func straight(z float64) fakeSource {
	return fakeSource{valid: true, z: z, dzerror: 0.1, momx: 1, momy: 0, momz: 0, ipvalue: 0, iperror: 1}
}

func TestFill_OrdersByZAscending(t *testing.T) {
	// GIVEN tracks supplied out of z order
	sources := []Source{straight(5), straight(-2), straight(1)}

	// WHEN the set is filled
	set := Fill(sources, FillParams{VertexSize: 0.01})

	// THEN it is sorted by z ascending, and handles still point at the
	// original slice positions
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []float64{-2, 1, 5}, []float64{set.ZPCA(0), set.ZPCA(1), set.ZPCA(2)})
	assert.Equal(t, []int{1, 2, 0}, []int{set.Handle(0), set.Handle(1), set.Handle(2)})
}

func TestFill_DropsInvalidAndOutOfRange(t *testing.T) {
	// GIVEN a mix of valid, invalid and out-of-range tracks
	sources := []Source{
		straight(0),
		fakeSource{valid: false, z: 0, dzerror: 0.1, momx: 1, iperror: 1},
		straight(2000),
	}

	// WHEN filled
	set := Fill(sources, FillParams{VertexSize: 0.01})

	// THEN only the single valid, in-range track survives
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 0.0, set.ZPCA(0))
}

func TestFill_D0CutOffDropsLowWeightTracks(t *testing.T) {
	// GIVEN a track with a large impact-parameter significance
	far := straight(0)
	far.ipvalue = 100
	far.iperror = 0.01

	sources := []Source{straight(1), far}

	// WHEN filled with a tight d0 cutoff
	set := Fill(sources, FillParams{VertexSize: 0.01, D0CutOff: 3.0})

	// THEN the high-significance track is dropped by the logistic weight
	// floor
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1.0, set.ZPCA(0))
}

func TestAddSorted_InsertsAtCorrectPosition(t *testing.T) {
	// GIVEN a set with two tracks already inserted
	set := NewSet()
	set.AddSorted(-1, 1, 1, 10)
	set.AddSorted(1, 1, 1, 11)

	// WHEN a third track lands between them
	set.AddSorted(0, 1, 1, 12)

	// THEN all parallel arrays stay aligned with the new ordering
	assert.Equal(t, []float64{-1, 0, 1}, []float64{set.ZPCA(0), set.ZPCA(1), set.ZPCA(2)})
	assert.Equal(t, []int{10, 12, 11}, []int{set.Handle(0), set.Handle(1), set.Handle(2)})
}
