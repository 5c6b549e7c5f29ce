// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gonum-community/dacluster"
)

// csvTrack implements dacluster.InputTrack over one parsed CSV row. CSV
// columns, in order: valid(0/1), zpca, dzerror, momx, momy, momz,
// beamwidthx, beamwidthy, ipvalue, iperror.
type csvTrack struct {
	valid                   bool
	zpca, dzerror           float64
	momx, momy, momz        float64
	beamwidthx, beamwidthy  float64
	ipvalue, iperror        float64
}

func (t csvTrack) Valid() bool         { return t.valid }
func (t csvTrack) ZPCA() float64       { return t.zpca }
func (t csvTrack) DzError() float64    { return t.dzerror }
func (t csvTrack) MomentumX() float64  { return t.momx }
func (t csvTrack) MomentumY() float64  { return t.momy }
func (t csvTrack) MomentumZ() float64  { return t.momz }
func (t csvTrack) BeamWidthX() float64 { return t.beamwidthx }
func (t csvTrack) BeamWidthY() float64 { return t.beamwidthy }
func (t csvTrack) IPValue() float64    { return t.ipvalue }
func (t csvTrack) IPError() float64    { return t.iperror }

// readTracks parses the CSV file at path into a slice of dacluster
// input tracks, skipping a header row if the first field of the first
// row does not parse as a track's valid flag.
func readTracks(path string) ([]dacluster.InputTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dacluster: opening tracks file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dacluster: parsing tracks csv: %w", err)
	}

	var tracks []dacluster.InputTrack
	for i, row := range rows {
		if len(row) < 10 {
			return nil, fmt.Errorf("dacluster: row %d: expected 10 columns, got %d", i, len(row))
		}
		vals := make([]float64, 9)
		validRaw, err := strconv.Atoi(row[0])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("dacluster: row %d: %w", i, err)
		}
		for j := 0; j < 9; j++ {
			vals[j], err = strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("dacluster: row %d: %w", i, err)
			}
		}
		tracks = append(tracks, csvTrack{
			valid: validRaw != 0, zpca: vals[0], dzerror: vals[1],
			momx: vals[2], momy: vals[3], momz: vals[4],
			beamwidthx: vals[5], beamwidthy: vals[6],
			ipvalue: vals[7], iperror: vals[8],
		})
	}
	return tracks, nil
}

func runClusterer(tracksPath, configPath string, doClusterize bool) error {
	runID := uuid.New().String()
	log := logrus.WithField("run_id", runID)

	cfg := dacluster.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = dacluster.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	tracks, err := readTracks(tracksPath)
	if err != nil {
		return err
	}
	log.Infof("loaded %d tracks from %s", len(tracks), tracksPath)

	c := dacluster.New(cfg)

	if doClusterize {
		clusters := c.Clusterize(tracks)
		log.Infof("found %d track clusters", len(clusters))
		for i, cl := range clusters {
			fmt.Printf("cluster %d: %v\n", i, cl)
		}
		return nil
	}

	verts := c.Vertices(tracks)
	log.Infof("found %d vertices", len(verts))
	for i, v := range verts {
		fmt.Printf("vertex %d: z=%.6f ntracks=%d tracks=%v\n", i, v.Z, len(v.Tracks), v.Tracks)
	}
	return nil
}
