// SPDX-License-Identifier: MIT

// Command matview-kmeans clusters CSV points with k-means.
//
// Each input record is one sample; every field must parse as a float and all
// records must have the same number of fields. Results go to stdout as text
// (one centroid per line, then the labels) or as a CBOR map
// {"centroids": [[...]], "labels": [...]}.
//
//	matview-kmeans -input points.csv -k 3 -format cbor > out.cbor
package main

import (
	"flag"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/matview/clustering"
)

var (
	inputPath  = flag.String("input", "", "CSV file with one sample per line (default: stdin)")
	clusters   = flag.Int("k", 2, "Number of clusters")
	iterations = flag.Int("iterations", clustering.DefaultIterations, "Maximum number of k-means rounds")
	format     = flag.String("format", "text", "Output format (text, cbor)")
	center     = flag.Bool("center", false, "Center columns before clustering")
	seed       = flag.Int64("seed", 1, "Seed for the initial centroid shuffle")
	verbose    = flag.Bool("v", false, "Log every k-means round")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := log.Logger.Level(level)

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Fatal().Err(err).Str("input", *inputPath).Msg("Failed to open input")
		}
		defer f.Close()
		in = f
	}

	points, err := readPoints(in)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read points")
	}
	rows, cols := points.Shape()
	logger.Info().Int("samples", rows).Int("features", cols).Int("k", *clusters).Msg("Loaded points")

	if *iterations <= 0 {
		logger.Fatal().Int("iterations", *iterations).Msg("iterations must be positive")
	}
	res, err := cluster(points, *clusters, *center,
		clustering.WithIterations(*iterations),
		clustering.WithRandomSource(rand.New(rand.NewSource(*seed))),
		clustering.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("k-means failed")
	}
	logger.Info().Int("iterations", res.Iterations).Msg("k-means done")

	switch *format {
	case "text":
		err = writeText(os.Stdout, res)
	case "cbor":
		err = writeCBOR(os.Stdout, res)
	default:
		logger.Fatal().Str("format", *format).Msg("Unknown output format")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to write result")
	}
}
