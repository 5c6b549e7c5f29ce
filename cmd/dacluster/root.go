// Copyright ©2026 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main provides the dacluster command-line tool: it reads a CSV
// file of track measurements and a YAML tuning file, runs the annealing
// clusterer, and prints the resulting vertices.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	tracksPath string
	configPath string
	logLevel   string
	clusterize bool
)

var rootCmd = &cobra.Command{
	Use:   "dacluster",
	Short: "Deterministic-annealing 1-D vertex clusterer",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Cluster a CSV file of tracks into vertices",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runClusterer(tracksPath, configPath, clusterize); err != nil {
			logrus.Fatal(err)
		}
	},
}

// Execute runs the root command and exits the process on error, in the
// style of a thin cobra entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&tracksPath, "tracks", "", "path to a CSV file of track measurements (required)")
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML tuning file (defaults built in if omitted)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&clusterize, "clusterize", false, "print the gap-merged track groups instead of the vertices")
	runCmd.MarkFlagRequired("tracks")

	rootCmd.AddCommand(runCmd)
}

func main() {
	Execute()
}
