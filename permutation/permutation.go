// SPDX-License-Identifier: MIT

// Package permutation builds and inverts permutations of 0..n-1.
//
// A permutation p maps position i to p[i]; the inverse q satisfies q[p[i]] == i.
// Permutations pair naturally with matrix.Induced to reorder rows or columns.
package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength indicates a negative permutation length.
	ErrNegativeLength = errors.New("permutation: negative length")

	// ErrNotPermutation indicates a slice that is not a permutation of 0..n-1
	// (an entry out of range or repeated).
	ErrNotPermutation = errors.New("permutation: not a permutation")
)

// Identity returns [0, 1, ..., n-1]. n == 0 yields an empty slice.
// Errors: ErrNegativeLength.
// Complexity: O(n).
func Identity(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrNegativeLength)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p, nil
}

// Inverted returns q with q[p[i]] = i.
// Errors: ErrNotPermutation when p is not a permutation of 0..len(p)-1.
// Complexity: O(n).
func Inverted(p []int) ([]int, error) {
	q := make([]int, len(p))
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return nil, fmt.Errorf("Inverted: entry %d at %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
		q[v] = i
	}

	return q, nil
}
