// SPDX-License-Identifier: MIT
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/matview/clustering"
	"github.com/katalvlaran/matview/matrix"
)

var errNoPoints = errors.New("no points in input")

// readPoints parses CSV records into an n×d matrix, one sample per row.
// Blank lines are skipped by the CSV reader; ragged records are an error.
func readPoints(r io.Reader) (*matrix.Matrix[float64], error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				line, _ := cr.FieldPos(j)
				return nil, fmt.Errorf("line %d field %d: %w", line, j+1, err)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errNoPoints
	}

	return matrix.FromRows(matrix.DynamicShape, rows)
}

// cluster runs k-means, optionally on column-centred data; centroids are
// always reported in the input's coordinates.
func cluster(points *matrix.Matrix[float64], k int, centered bool, opts ...clustering.Option) (*clustering.Result[float64], error) {
	if !centered {
		return clustering.KMeans[float64](points, k, opts...)
	}
	shifted, means, err := matrix.CenterColumns[float64](points)
	if err != nil {
		return nil, err
	}
	res, err := clustering.KMeans[float64](shifted, k, opts...)
	if err != nil {
		return nil, err
	}
	offset, err := matrix.FromFlat(matrix.RowVectorShape(matrix.Dynamic), means)
	if err != nil {
		return nil, err
	}
	for i := 0; i < res.Centroids.Rows(); i++ {
		row, err := matrix.SliceRow[float64](res.Centroids, i)
		if err != nil {
			return nil, err
		}
		if err = row.AddInPlace(offset); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// output is the wire form of a clustering result.
type output struct {
	Centroids  [][]float64 `cbor:"centroids"`
	Labels     []int       `cbor:"labels"`
	Iterations int         `cbor:"iterations"`
}

func toOutput(res *clustering.Result[float64]) output {
	rows, cols := res.Centroids.Shape()
	data := res.Centroids.Data()
	out := output{Centroids: make([][]float64, rows), Labels: res.Labels, Iterations: res.Iterations}
	for i := range out.Centroids {
		out.Centroids[i] = append([]float64(nil), data[i*cols:(i+1)*cols]...)
	}

	return out
}

func writeCBOR(w io.Writer, res *clustering.Result[float64]) error {
	return cbor.NewEncoder(w).Encode(toOutput(res))
}

func writeText(w io.Writer, res *clustering.Result[float64]) error {
	out := toOutput(res)
	var b strings.Builder
	for i, c := range out.Centroids {
		fmt.Fprintf(&b, "centroid %d:", i)
		for _, v := range c {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	b.WriteString("labels:")
	for _, l := range out.Labels {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(l))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())

	return err
}
