// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modal builds and runs the discrete modal state-space model of a
// finite-element structure: a bank of independent 2x2 discrete oscillators,
// one per retained vibration mode, fed by physical input forces/torques and
// summed into physical output displacements/angles.
//
// A FEM payload (eigen-frequencies, proportional damping, and the
// inputs-to-modes / modes-to-outputs transformation matrices) is reduced by
// a Builder into a Solver: the builder selects a subset of named input and
// output groups, discretizes each retained mode at a fixed sampling rate,
// and optionally folds in a static-gain compensation term. The Solver is
// then stepped at that sampling rate; Set and Get route named groups to and
// from the solver's input and output vectors.
//
//	fem, err := modal.FromEnv()
//	ss := modal.NewBuilder(fem).
//		Sampling(1e3).
//		ProportionalDamping(0.02).
//		MaxEigenFrequency(75.0)
//	modal.InputGroup[modal.OSSM1Lcl6F](ss)
//	modal.OutputGroup[modal.OSSM1Lcl](ss)
//	solver, err := ss.Build()
//	modal.Set[modal.OSSM1Lcl6F](solver, make([]float64, 42))
//	solver.Step()
//	y, _ := modal.Get[modal.OSSM1Lcl](solver)
package modal
