// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import "gonum.org/v1/gonum/mat"

// Range is a half-open [Start,End) slice of a solver's input or output
// vector, assigned to one selected group at Build time.
type Range struct {
	Start, End int
}

// Len returns the width of the range.
func (r Range) Len() int { return r.End - r.Start }

// Group is the marker interface implemented by the zero-sized group-name
// types declared in groups.go. Each concrete Group corresponds to one named
// input or output of the FEM payload (e.g. OSSM1Lcl6F, OSSAzEncoderAngle).
// In the source this engine is ported from, one such type is generated per
// named group by a build-time code generator reading the FEM archive's
// schema; here the generator is out of scope (spec.md §1) and the group
// surface is declared directly in groups.go instead.
type Group interface {
	GroupName() string
}

// inputSlot is the type-erased handle a Builder keeps for one selected
// input group. Concrete instances are produced by newInputSlot[G] and
// recovered by type assertion in Set[G].
type inputSlot interface {
	Name() string
	Range() Range
	setRange(Range)
	extract(fem *FEM) (*mat.Dense, bool)
	trim(fem *FEM, full *mat.Dense) (*mat.Dense, bool)
}

// outputSlot is the output-side counterpart of inputSlot.
type outputSlot interface {
	Name() string
	Range() Range
	setRange(Range)
	extract(fem *FEM) (*mat.Dense, bool)
	trim(fem *FEM, full *mat.Dense) (*mat.Dense, bool)
}

type inputSlotOf[G Group] struct{ r Range }

func newInputSlot[G Group]() *inputSlotOf[G] { return &inputSlotOf[G]{} }

func (s *inputSlotOf[G]) Name() string {
	var g G
	return g.GroupName()
}
func (s *inputSlotOf[G]) Range() Range     { return s.r }
func (s *inputSlotOf[G]) setRange(r Range) { s.r = r }
func (s *inputSlotOf[G]) extract(fem *FEM) (*mat.Dense, bool) {
	return inputsToModesFor[G](fem)
}
func (s *inputSlotOf[G]) trim(fem *FEM, full *mat.Dense) (*mat.Dense, bool) {
	return trimToInputGroup[G](fem, full)
}

type outputSlotOf[G Group] struct{ r Range }

func newOutputSlot[G Group]() *outputSlotOf[G] { return &outputSlotOf[G]{} }

func (s *outputSlotOf[G]) Name() string {
	var g G
	return g.GroupName()
}
func (s *outputSlotOf[G]) Range() Range     { return s.r }
func (s *outputSlotOf[G]) setRange(r Range) { s.r = r }
func (s *outputSlotOf[G]) extract(fem *FEM) (*mat.Dense, bool) {
	return modesToOutputsFor[G](fem)
}
func (s *outputSlotOf[G]) trim(fem *FEM, full *mat.Dense) (*mat.Dense, bool) {
	return trimToOutputGroup[G](fem, full)
}

// findInputRange returns the range assigned to input group G, if selected.
func findInputRange[G Group](ins []inputSlot) (Range, bool) {
	for _, s := range ins {
		if _, ok := s.(*inputSlotOf[G]); ok {
			return s.Range(), true
		}
	}
	return Range{}, false
}

// findOutputRange returns the range assigned to output group G, if selected.
func findOutputRange[G Group](outs []outputSlot) (Range, bool) {
	for _, s := range outs {
		if _, ok := s.(*outputSlotOf[G]); ok {
			return s.Range(), true
		}
	}
	return Range{}, false
}
