// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Solver is a built, ready-to-step discrete modal state-space model: a
// fixed input vector u, a fixed output vector y, the bank of discretized
// modes that map one to the other, and the optional static-gain
// compensation term folded into the output one sample late.
type Solver struct {
	u []float64
	y []float64

	modes []*Mode

	ins  []inputSlot
	outs []outputSlot

	psi  *mat.Dense
	psiU []float64
}

// NInputs returns the width of the solver's input vector.
func (s *Solver) NInputs() int { return len(s.u) }

// NOutputs returns the width of the solver's output vector.
func (s *Solver) NOutputs() int { return len(s.y) }

// NModes returns the number of modes retained by the Build that produced
// this solver.
func (s *Solver) NModes() int { return len(s.modes) }

// Step advances every mode by one sample from the current input vector,
// folds their contributions into y, and - if static-gain compensation is
// enabled - adds the psi*u correction computed from the previous step's
// input before recomputing it from this step's input. The one-sample
// delay on the correction term lets it be computed after every mode has
// already consumed u, without a second read of u mid-step.
func (s *Solver) Step() {
	acc := parallelFoldModes(s.modes, s.u, len(s.y))
	copy(s.y, acc)

	if s.psi == nil {
		return
	}
	for i := range s.y {
		s.y[i] += s.psiU[i]
	}
	uVec := mat.NewVecDense(len(s.u), append([]float64(nil), s.u...))
	outVec := mat.NewVecDense(len(s.y), nil)
	outVec.MulVec(s.psi, uVec)
	copy(s.psiU, outVec.RawVector().Data)
}

// parallelFoldModes steps every mode against u and reduces their
// contributions into an n-wide output vector. Modes are partitioned across
// GOMAXPROCS goroutines in index order; each goroutine accumulates its own
// partition independently, and partitions are then summed back together
// in ascending index order, so the result does not depend on goroutine
// scheduling.
func parallelFoldModes(modes []*Mode, u []float64, n int) []float64 {
	total := make([]float64, n)
	if len(modes) == 0 {
		return total
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(modes) {
		workers = len(modes)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(modes) + workers - 1) / workers
	partials := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(modes) {
			partials[w] = make([]float64, n)
			continue
		}
		end := start + chunk
		if end > len(modes) {
			end = len(modes)
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			acc := make([]float64, n)
			for _, m := range modes[start:end] {
				for i, v := range m.Step(u) {
					acc[i] += v
				}
			}
			partials[w] = acc
		}(w, start, end)
	}
	wg.Wait()

	for _, p := range partials {
		for i, v := range p {
			total[i] += v
		}
	}
	return total
}
