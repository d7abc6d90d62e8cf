// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// makeCompensationFEM builds a 4-mode rig: three zero-frequency rigid-body
// modes with no input/output coupling, and one dynamic mode that does
// couple the single selected input DOF to the single selected output DOF.
// The static-gain matrix S is set so that S == D (the dynamic model's own
// DC gain from the one dynamic mode), so a correctly-computed psi should
// come out at (approximately) zero.
func makeCompensationFEM(inName, outName string) (*FEM, float64) {
	w3 := 2 * math.Pi * 5.0
	b3, c3 := 0.7, 1.3
	d := c3 * (1 / (w3 * w3)) * b3

	return &FEM{
		ModelDescription: "compensation rig",
		Inputs: []IOGroup{
			{Name: inName, DOFs: []DOF{{Index: 1, On: true}}},
		},
		Outputs: []IOGroup{
			{Name: outName, DOFs: []DOF{{Index: 1, On: true}}},
		},
		EigenFrequenciesHz: []float64{0, 0, 0, 5.0},
		Damping:            []float64{0, 0, 0, 0.02},
		InputsToModes:      mat.NewDense(4, 1, []float64{0, 0, 0, b3}),
		ModesToOutputs:     mat.NewDense(1, 4, []float64{0, 0, 0, c3}),
		StaticGain:         mat.NewDense(1, 1, []float64{d}),
	}, d
}

// Test_builder01 checks that static-gain compensation cancels the dynamic
// model's own DC gain when the static-gain matrix was built consistently
// with it.
func Test_builder01(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("builder01: static-gain compensation cancels dynamic DC gain")

	fem, _ := makeCompensationFEM("GroupA", "GroupC")
	b := NewBuilder(fem).Sampling(1000).UseStaticGainCompensation()
	InputGroup[GroupA](b)
	OutputGroup[GroupC](b)

	s, err := b.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	utl.CheckScalar(tst, "psi", 1e-9, s.psi.At(0, 0), 0)
}

// Test_builder02 checks that the azimuth drive-torque/encoder-angle block
// of psi is zeroed even when the static gain and dynamic gain disagree
// there.
func Test_builder02(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("builder02: az drive/encoder DC block is zeroed")

	fem, d := makeCompensationFEM("OSS_AzDrive_Torque", "OSS_AzEncoder_Angle")
	fem.StaticGain.Set(0, 0, d+42) // deliberately inconsistent with D

	b := NewBuilder(fem).Sampling(1000).UseStaticGainCompensation()
	InputGroup[OSSAzDriveTorque](b)
	OutputGroup[OSSAzEncoderAngle](b)

	s, err := b.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	utl.CheckScalar(tst, "psi", 1e-15, s.psi.At(0, 0), 0)
}

// Test_builder03 checks Hankel singular value truncation drops a mode with
// negligible input/output coupling.
func Test_builder03(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("builder03: HSV truncation drops weakly-coupled modes")

	fem := &FEM{
		Inputs: []IOGroup{
			{Name: "GroupA", DOFs: []DOF{{Index: 1, On: true}}},
		},
		Outputs: []IOGroup{
			{Name: "GroupC", DOFs: []DOF{{Index: 1, On: true}}},
		},
		EigenFrequenciesHz: []float64{5.0, 6.0},
		Damping:            []float64{0.02, 0.02},
		InputsToModes:      mat.NewDense(2, 1, []float64{1.0, 1e-6}),
		ModesToOutputs:     mat.NewDense(1, 2, []float64{1.0, 1e-6}),
	}

	builder := NewBuilder(fem).Sampling(1000)
	InputGroup[GroupA](builder)
	OutputGroup[GroupC](builder)
	withoutTrunc, err := builder.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if withoutTrunc.NModes() != 2 {
		tst.Fatalf("expected 2 modes without truncation, got %d", withoutTrunc.NModes())
	}

	builder2 := NewBuilder(fem).Sampling(1000).TruncateHankelSingularValues(1e-3)
	InputGroup[GroupA](builder2)
	OutputGroup[GroupC](builder2)
	trunc, err := builder2.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if trunc.NModes() != 1 {
		tst.Fatalf("expected 1 mode after truncation, got %d", trunc.NModes())
	}
}

// Test_builder04 checks MaxEigenFrequency drops modes above the cutoff
// entirely (they are never discretized, regardless of coupling strength).
func Test_builder04(tst *testing.T) {

	defer func() {
		if err := recover(); err != nil {
			tst.Error("[1;31mSome error has happened:[0m\n", err)
		}
	}()

	utl.TTitle("builder04: MaxEigenFrequency caps the mode count")

	fem := &FEM{
		Inputs: []IOGroup{
			{Name: "GroupA", DOFs: []DOF{{Index: 1, On: true}}},
		},
		Outputs: []IOGroup{
			{Name: "GroupC", DOFs: []DOF{{Index: 1, On: true}}},
		},
		EigenFrequenciesHz: []float64{5.0, 50.0, 500.0},
		Damping:            []float64{0.02, 0.02, 0.02},
		InputsToModes:      mat.NewDense(3, 1, []float64{1, 1, 1}),
		ModesToOutputs:     mat.NewDense(1, 3, []float64{1, 1, 1}),
	}

	builder := NewBuilder(fem).Sampling(2000).MaxEigenFrequency(100)
	InputGroup[GroupA](builder)
	OutputGroup[GroupC](builder)
	s, err := builder.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if s.NModes() != 2 {
		tst.Fatalf("expected 2 modes at or below 100 Hz, got %d", s.NModes())
	}
}

// Test_builder05 checks that Build fails cleanly without a sampling rate.
func Test_builder05(tst *testing.T) {

	utl.TTitle("builder05: missing sampling rate is a BuildError")

	fem, _ := makeCompensationFEM("GroupA", "GroupC")
	builder := NewBuilder(fem)
	InputGroup[GroupA](builder)
	OutputGroup[GroupC](builder)
	_, err := builder.Build()
	if err == nil {
		tst.Fatal("expected an error")
	}
	if _, ok := err.(*BuildError); !ok {
		tst.Fatalf("expected *BuildError, got %T", err)
	}
}

// Test_builder06 checks that Build fails cleanly when a selected group is
// absent from the FEM payload.
func Test_builder06(tst *testing.T) {

	utl.TTitle("builder06: absent group is a BuildError")

	fem, _ := makeCompensationFEM("GroupA", "GroupC")
	builder := NewBuilder(fem).Sampling(1000)
	InputGroup[GroupB](builder) // GroupB is not present in this FEM
	OutputGroup[GroupC](builder)
	_, err := builder.Build()
	if err == nil {
		tst.Fatal("expected an error")
	}
}
