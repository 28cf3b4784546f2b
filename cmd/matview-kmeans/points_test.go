// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matview/clustering"
)

const blobsCSV = `# x, y
-3, 6
-7, 5
-8, 4
-7, 3
-4, 2
5, 1
8, 0
7, -1
9, -2
5, -4
6, -4.5
`

type firstPerm []int

func (p firstPerm) Perm(int) []int { return append([]int(nil), p...) }

var seedBoth = clustering.WithRandomSource(firstPerm{0, 5, 1, 2, 3, 4, 6, 7, 8, 9, 10})

func TestReadPoints(t *testing.T) {
	t.Parallel()

	m, err := readPoints(strings.NewReader(blobsCSV))
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, [2]int{11, 2}, [2]int{r, c})
	v, err := m.At(10, 1)
	require.NoError(t, err)
	require.Equal(t, -4.5, v)

	_, err = readPoints(strings.NewReader("1,2\n3\n"))
	require.Error(t, err)
	_, err = readPoints(strings.NewReader("1,x\n"))
	require.ErrorContains(t, err, "line 1 field 2")
	_, err = readPoints(strings.NewReader("# nothing\n"))
	require.ErrorIs(t, err, errNoPoints)
}

func TestCluster_CenteredMatchesPlain(t *testing.T) {
	t.Parallel()

	points, err := readPoints(strings.NewReader(blobsCSV))
	require.NoError(t, err)
	plain, err := cluster(points, 2, false, seedBoth)
	require.NoError(t, err)
	centered, err := cluster(points, 2, true, seedBoth)
	require.NoError(t, err)

	require.Equal(t, plain.Labels, centered.Labels)
	require.InDeltaSlice(t, plain.Centroids.Data(), centered.Centroids.Data(), 1e-9)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	points, err := readPoints(strings.NewReader("0,0\n0,2\n10,10\n"))
	require.NoError(t, err)
	res, err := cluster(points, 2, false, clustering.WithRandomSource(firstPerm{0, 2, 1}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, res))
	require.Equal(t, "centroid 0: 0 1\ncentroid 1: 10 10\nlabels: 0 0 1\n", buf.String())
}

func TestWriteCBOR(t *testing.T) {
	t.Parallel()

	points, err := readPoints(strings.NewReader(blobsCSV))
	require.NoError(t, err)
	res, err := cluster(points, 2, false, seedBoth)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCBOR(&buf, res))

	var got output
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, res.Labels, got.Labels)
	require.Equal(t, 2, got.Iterations)
	require.Len(t, got.Centroids, 2)
	require.InDeltaSlice(t, []float64{-5.8, 4}, got.Centroids[0], 1e-9)
}
