// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// hstack concatenates dense matrices of equal row count side by side.
func hstack(parts []*mat.Dense) *mat.Dense {
	if len(parts) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	rows, _ := parts[0].Dims()
	total := 0
	for _, p := range parts {
		_, c := p.Dims()
		total += c
	}
	out := mat.NewDense(rows, total, nil)
	col := 0
	for _, p := range parts {
		_, c := p.Dims()
		out.Slice(0, rows, col, col+c).(*mat.Dense).Copy(p)
		col += c
	}
	return out
}

// vstack concatenates dense matrices of equal column count on top of one
// another.
func vstack(parts []*mat.Dense) *mat.Dense {
	if len(parts) == 0 {
		return mat.NewDense(0, 0, nil)
	}
	_, cols := parts[0].Dims()
	total := 0
	for _, p := range parts {
		r, _ := p.Dims()
		total += r
	}
	out := mat.NewDense(total, cols, nil)
	row := 0
	for _, p := range parts {
		r, _ := p.Dims()
		out.Slice(row, row+r, 0, cols).(*mat.Dense).Copy(p)
		row += r
	}
	return out
}

func norm2(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
