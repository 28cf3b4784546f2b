// SPDX-License-Identifier: MIT

// Package clustering groups the rows of a matrix with Lloyd's k-means.
//
// Purpose:
//   - Partition n samples (one per row) into k clusters around k centroids.
//
// Contract:
//   - Initial centroids are the samples at the first k positions of a shuffle
//     drawn from the configured RandomSource; results are reproducible for a
//     fixed source.
//   - Each round assigns every sample to its nearest centroid (ties go to the
//     lower cluster index) and moves each centroid to the mean of its members.
//     A cluster left without members keeps its previous centroid.
//   - Iteration stops after WithIterations rounds or as soon as no label changes.
//
// AI-Hints:
//   - Centre or scale the columns first (matrix.CenterColumns) when features
//     have very different ranges.
package clustering

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/matview/matrix"
	"github.com/katalvlaran/matview/numeric"
)

var (
	// ErrInvalidClusterCount indicates clusters <= 0 or clusters > number of samples.
	ErrInvalidClusterCount = errors.New("clustering: invalid cluster count")

	// ErrNoSamples indicates an empty sample matrix.
	ErrNoSamples = errors.New("clustering: no samples")
)

// Result holds the outcome of KMeans.
type Result[T numeric.Float] struct {
	// Centroids is clusters×features, one centroid per row.
	Centroids *matrix.Matrix[T]
	// Labels[i] is the cluster index of sample row i.
	Labels []int
	// Iterations is the number of rounds actually run.
	Iterations int
}

// KMeans clusters the rows of samples into the given number of clusters.
// samples may be any variant, including a strided view.
// Errors: matrix.ErrNilMatrix, matrix.ErrStaleView, ErrNoSamples, ErrInvalidClusterCount.
// Complexity: O(iterations·n·k·d).
func KMeans[T numeric.Float](samples matrix.Reader[T], clusters int, opts ...Option) (*Result[T], error) {
	if err := matrix.ValidateNotNil(samples); err != nil {
		return nil, fmt.Errorf("KMeans: %w", err)
	}
	n, d := samples.Shape()
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("KMeans: %w", ErrNoSamples)
	}
	if clusters <= 0 || clusters > n {
		return nil, fmt.Errorf("KMeans: %d clusters for %d samples: %w", clusters, n, ErrInvalidClusterCount)
	}
	o := gatherOptions(opts...)

	points := make([]*matrix.ConstView[T], n)
	for i := range points {
		row, err := matrix.SliceRowConst(samples, i)
		if err != nil {
			return nil, fmt.Errorf("KMeans: %w", err)
		}
		points[i] = row
	}

	centroids, err := matrix.NewFilled[T](matrix.DynamicShape, clusters, d, 0)
	if err != nil {
		return nil, fmt.Errorf("KMeans: %w", err)
	}
	centers, err := rowViews(centroids, clusters)
	if err != nil {
		return nil, fmt.Errorf("KMeans: %w", err)
	}
	perm := o.rng.Perm(n)
	for c := range centers {
		if err = centers[c].CopyFrom(points[perm[c]]); err != nil {
			return nil, fmt.Errorf("KMeans: seed centroid %d: %w", c, err)
		}
	}

	next, err := matrix.NewFilled[T](matrix.DynamicShape, clusters, d, 0)
	if err != nil {
		return nil, fmt.Errorf("KMeans: %w", err)
	}
	sums, err := rowViews(next, clusters)
	if err != nil {
		return nil, fmt.Errorf("KMeans: %w", err)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	counts := make([]int, clusters)
	res := &Result[T]{Centroids: centroids, Labels: labels}

	for res.Iterations < o.iterations {
		res.Iterations++
		changed := 0
		clear(counts)
		if err = next.ScaleInPlace(0); err != nil {
			return nil, fmt.Errorf("KMeans: %w", err)
		}

		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for c, center := range centers {
				dist, derr := matrix.Distance[T](p, center)
				if derr != nil {
					return nil, fmt.Errorf("KMeans: %w", derr)
				}
				if dist < bestDist {
					best, bestDist = c, dist
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed++
			}
			if err = sums[best].AddInPlace(p); err != nil {
				return nil, fmt.Errorf("KMeans: %w", err)
			}
			counts[best]++
		}

		o.log.Debug().
			Int("iteration", res.Iterations).
			Int("changed", changed).
			Ints("counts", counts).
			Msg("k-means round")

		if changed == 0 {
			break
		}
		for c, sum := range sums {
			if counts[c] == 0 {
				err = sum.CopyFrom(centers[c])
			} else {
				err = sum.DivideInPlace(T(counts[c]))
			}
			if err != nil {
				return nil, fmt.Errorf("KMeans: %w", err)
			}
		}
		// CopyFrom keeps the storage, so the row views in centers stay valid.
		if err = centroids.CopyFrom(next); err != nil {
			return nil, fmt.Errorf("KMeans: %w", err)
		}
	}

	return res, nil
}

func rowViews[T numeric.Float](m *matrix.Matrix[T], rows int) ([]*matrix.View[T], error) {
	out := make([]*matrix.View[T], rows)
	for i := range out {
		v, err := matrix.SliceRow[T](m, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
