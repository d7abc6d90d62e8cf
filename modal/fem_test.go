// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"testing"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

func makeTestFEM() *FEM {
	return &FEM{
		ModelDescription: "test rig",
		Inputs: []IOGroup{
			{Name: "GroupA", DOFs: []DOF{
				{Index: 1, On: true, Label: "a1"},
				{Index: 2, On: true, Label: "a2"},
			}},
			{Name: "GroupB", DOFs: []DOF{
				{Index: 3, On: true, Label: "b1"},
			}},
		},
		Outputs: []IOGroup{
			{Name: "GroupC", DOFs: []DOF{
				{Index: 1, On: true, Label: "c1"},
			}},
		},
		EigenFrequenciesHz: []float64{1.0, 2.0},
		Damping:            []float64{0.01, 0.02},
		InputsToModes:      mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		ModesToOutputs:     mat.NewDense(1, 2, []float64{10, 20}),
		StaticGain:         mat.NewDense(1, 3, []float64{100, 200, 300}),
	}
}

type GroupA struct{}

func (GroupA) GroupName() string { return "GroupA" }

type GroupB struct{}

func (GroupB) GroupName() string { return "GroupB" }

type GroupC struct{}

func (GroupC) GroupName() string { return "GroupC" }

// Test_fem01 checks that inputsToModesFor selects the correct columns for
// a group spanning only part of the full input space.
func Test_fem01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("fem01: inputsToModesFor column selection")

	fem := makeTestFEM()
	m, ok := inputsToModesFor[GroupA](fem)
	if !ok {
		tst.Fatal("expected GroupA to be present")
	}
	r, c := m.Dims()
	if r != 2 || c != 2 {
		tst.Fatalf("expected 2x2, got %dx%d", r, c)
	}
	utl.CheckScalar(tst, "m[0][0]", 1e-15, m.At(0, 0), 1)
	utl.CheckScalar(tst, "m[0][1]", 1e-15, m.At(0, 1), 2)
	utl.CheckScalar(tst, "m[1][0]", 1e-15, m.At(1, 0), 4)
	utl.CheckScalar(tst, "m[1][1]", 1e-15, m.At(1, 1), 5)
}

// Test_fem02 checks that switching a group off removes it from selection.
func Test_fem02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("fem02: switch off removes the group")

	fem := makeTestFEM()
	fem.SwitchInputsByName(SwitchOff, "GroupA")
	_, ok := inputsToModesFor[GroupA](fem)
	if ok {
		tst.Fatal("expected GroupA to be unavailable once switched off")
	}

	fem.SwitchInputsByName(SwitchOn, "GroupA")
	_, ok = inputsToModesFor[GroupA](fem)
	if !ok {
		tst.Fatal("expected GroupA to be available again once switched back on")
	}
}

// Test_fem03 checks FilterInputsBy against DOF metadata.
func Test_fem03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("fem03: FilterInputsBy selects by label")

	fem := makeTestFEM()
	fem.FilterInputsBy(func(d DOF) bool { return d.Label == "a1" })

	m, ok := inputsToModesFor[GroupA](fem)
	if !ok {
		tst.Fatal("expected GroupA to still be present")
	}
	_, c := m.Dims()
	if c != 1 {
		tst.Fatalf("expected exactly one column selected, got %d", c)
	}
	utl.CheckScalar(tst, "m[0][0]", 1e-15, m.At(0, 0), 1)

	_, ok = inputsToModesFor[GroupB](fem)
	if ok {
		tst.Fatal("expected GroupB to have no DOFs switched on")
	}
}

// Test_fem04 checks trimToInputGroup/trimToOutputGroup against the
// static-gain matrix, independent of the modal matrices.
func Test_fem04(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("fem04: trim static-gain columns and rows")

	fem := makeTestFEM()
	colsA, ok := trimToInputGroup[GroupA](fem, fem.StaticGain)
	if !ok {
		tst.Fatal("expected GroupA columns to trim")
	}
	r, c := colsA.Dims()
	if r != 1 || c != 2 {
		tst.Fatalf("expected 1x2, got %dx%d", r, c)
	}
	utl.CheckScalar(tst, "colsA[0][0]", 1e-15, colsA.At(0, 0), 100)
	utl.CheckScalar(tst, "colsA[0][1]", 1e-15, colsA.At(0, 1), 200)

	rowsC, ok := trimToOutputGroup[GroupC](fem, fem.StaticGain)
	if !ok {
		tst.Fatal("expected GroupC row to trim")
	}
	r, c = rowsC.Dims()
	if r != 1 || c != 3 {
		tst.Fatalf("expected 1x3, got %dx%d", r, c)
	}
}
