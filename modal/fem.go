// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Switch toggles a group of degrees of freedom on or off.
type Switch bool

const (
	SwitchOn  Switch = true
	SwitchOff Switch = false
)

// DOF describes one scalar degree of freedom within a named input or
// output group: its 1-based column/row index into the FEM payload's
// inputs-to-modes / modes-to-outputs / static-gain matrices, whether it
// currently participates in the reduced model, and the node metadata
// carried alongside it for filtering.
type DOF struct {
	Index       int // 1-based index into the group's global matrix space
	On          bool
	NodeID      int
	Location    [3]float64
	Label       string
	Description string
}

// IOGroup is one named, ordered collection of DOFs - the Go analogue of
// the Rust source's per-group IOData plus its On/Off wrapper.
type IOGroup struct {
	Name string
	DOFs []DOF
}

func (g *IOGroup) nOn() int {
	n := 0
	for _, d := range g.DOFs {
		if d.On {
			n++
		}
	}
	return n
}

// onIndices returns the 1-based global indices of this group's currently
// switched-on DOFs, in declaration order.
func (g *IOGroup) onIndices() []int {
	idx := make([]int, 0, len(g.DOFs))
	for _, d := range g.DOFs {
		if d.On {
			idx = append(idx, d.Index)
		}
	}
	return idx
}

// FEM is the read-only modal payload a Builder reduces: ordered input and
// output groups of switchable DOFs, eigen-frequencies, proportional
// damping, the inputs-to-modes and modes-to-outputs transformation
// matrices, and an optional static-gain matrix used for DC compensation.
type FEM struct {
	ModelDescription string

	Inputs  []IOGroup
	Outputs []IOGroup

	// EigenFrequenciesHz has one entry per mode, in Hz.
	EigenFrequenciesHz []float64
	// Damping has one entry per mode (proportional/modal damping ratio).
	Damping []float64

	// InputsToModes is N_modes x N_total_inputs.
	InputsToModes *mat.Dense
	// ModesToOutputs is N_total_outputs x N_modes.
	ModesToOutputs *mat.Dense
	// StaticGain, if present, is N_total_outputs x N_total_inputs.
	StaticGain *mat.Dense
}

// NModes returns the number of modes carried by the payload.
func (f *FEM) NModes() int { return len(f.EigenFrequenciesHz) }

// EigenFrequenciesRadPerSec returns a fresh copy of the eigen-frequencies
// converted to rad/s.
func (f *FEM) EigenFrequenciesRadPerSec() []float64 {
	w := make([]float64, len(f.EigenFrequenciesHz))
	for i, hz := range f.EigenFrequenciesHz {
		w[i] = 2 * math.Pi * hz
	}
	return w
}

func (f *FEM) inputGroupByName(name string) (*IOGroup, int, bool) {
	for i := range f.Inputs {
		if f.Inputs[i].Name == name {
			return &f.Inputs[i], i, true
		}
	}
	return nil, -1, false
}

func (f *FEM) outputGroupByName(name string) (*IOGroup, int, bool) {
	for i := range f.Outputs {
		if f.Outputs[i].Name == name {
			return &f.Outputs[i], i, true
		}
	}
	return nil, -1, false
}

// SwitchInputs turns whole input groups (identified by their index in
// f.Inputs) on or off. With no ids given, every input group is switched.
func (f *FEM) SwitchInputs(sw Switch, ids ...int) *FEM {
	if len(ids) == 0 {
		ids = allIndices(len(f.Inputs))
	}
	for _, i := range ids {
		if i < 0 || i >= len(f.Inputs) {
			continue
		}
		for d := range f.Inputs[i].DOFs {
			f.Inputs[i].DOFs[d].On = bool(sw)
		}
	}
	return f
}

// SwitchOutputs is the output-side counterpart of SwitchInputs.
func (f *FEM) SwitchOutputs(sw Switch, ids ...int) *FEM {
	if len(ids) == 0 {
		ids = allIndices(len(f.Outputs))
	}
	for _, i := range ids {
		if i < 0 || i >= len(f.Outputs) {
			continue
		}
		for d := range f.Outputs[i].DOFs {
			f.Outputs[i].DOFs[d].On = bool(sw)
		}
	}
	return f
}

// SwitchInputsByName is SwitchInputs for callers that only know group
// names at runtime (the Go stand-in for the source's generated
// TryFrom<String> lookup).
func (f *FEM) SwitchInputsByName(sw Switch, names ...string) *FEM {
	for _, name := range names {
		if _, i, ok := f.inputGroupByName(name); ok {
			f.SwitchInputs(sw, i)
		}
	}
	return f
}

// SwitchOutputsByName is SwitchOutputs by group name.
func (f *FEM) SwitchOutputsByName(sw Switch, names ...string) *FEM {
	for _, name := range names {
		if _, i, ok := f.outputGroupByName(name); ok {
			f.SwitchOutputs(sw, i)
		}
	}
	return f
}

// FilterInputsBy sets every input DOF's On flag to pred(dof), across every
// input group, letting callers select DOFs by node location, label, or any
// other metadata instead of switching a whole group at once.
func (f *FEM) FilterInputsBy(pred func(DOF) bool) *FEM {
	for gi := range f.Inputs {
		for di := range f.Inputs[gi].DOFs {
			f.Inputs[gi].DOFs[di].On = pred(f.Inputs[gi].DOFs[di])
		}
	}
	return f
}

// FilterOutputsBy is FilterInputsBy for outputs.
func (f *FEM) FilterOutputsBy(pred func(DOF) bool) *FEM {
	for gi := range f.Outputs {
		for di := range f.Outputs[gi].DOFs {
			f.Outputs[gi].DOFs[di].On = pred(f.Outputs[gi].DOFs[di])
		}
	}
	return f
}

func allIndices(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// String summarizes the payload: input/output counts, eigenfrequency and
// damping ranges, and per-group sizes.
func (f *FEM) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FEM %q: %d modes, %d input groups, %d output groups\n",
		f.ModelDescription, f.NModes(), len(f.Inputs), len(f.Outputs))
	if n := f.NModes(); n > 0 {
		lo, hi := f.EigenFrequenciesHz[0], f.EigenFrequenciesHz[0]
		for _, hz := range f.EigenFrequenciesHz {
			if hz < lo {
				lo = hz
			}
			if hz > hi {
				hi = hz
			}
		}
		fmt.Fprintf(&b, "  eigen-frequencies: %.4g Hz .. %.4g Hz\n", lo, hi)
	}
	if len(f.Damping) > 0 {
		lo, hi := f.Damping[0], f.Damping[0]
		for _, z := range f.Damping {
			if z < lo {
				lo = z
			}
			if z > hi {
				hi = z
			}
		}
		fmt.Fprintf(&b, "  damping: %.4g .. %.4g\n", lo, hi)
	}
	for _, g := range f.Inputs {
		fmt.Fprintf(&b, "  in  %-28s %4d dofs (%4d on)\n", g.Name, len(g.DOFs), g.nOn())
	}
	for _, g := range f.Outputs {
		fmt.Fprintf(&b, "  out %-28s %4d dofs (%4d on)\n", g.Name, len(g.DOFs), g.nOn())
	}
	return b.String()
}

// inputsToModesFor extracts the N_modes x k sub-matrix of fem.InputsToModes
// spanning group G's currently-on DOFs. ok is false if G is not present in
// fem.Inputs or has no DOF switched on.
func inputsToModesFor[G Group](fem *FEM) (*mat.Dense, bool) {
	var g G
	grp, _, ok := fem.inputGroupByName(g.GroupName())
	if !ok {
		return nil, false
	}
	idx := grp.onIndices()
	if len(idx) == 0 {
		return nil, false
	}
	rows, _ := fem.InputsToModes.Dims()
	out := mat.NewDense(rows, len(idx), nil)
	for col, globalIdx := range idx {
		for row := 0; row < rows; row++ {
			out.Set(row, col, fem.InputsToModes.At(row, globalIdx-1))
		}
	}
	return out, true
}

// modesToOutputsFor is inputsToModesFor's output-side counterpart,
// extracting rows instead of columns.
func modesToOutputsFor[G Group](fem *FEM) (*mat.Dense, bool) {
	var g G
	grp, _, ok := fem.outputGroupByName(g.GroupName())
	if !ok {
		return nil, false
	}
	idx := grp.onIndices()
	if len(idx) == 0 {
		return nil, false
	}
	_, cols := fem.ModesToOutputs.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for row, globalIdx := range idx {
		for col := 0; col < cols; col++ {
			out.Set(row, col, fem.ModesToOutputs.At(globalIdx-1, col))
		}
	}
	return out, true
}

// trimToInputGroup extracts the columns of an arbitrary N x N_total_inputs
// matrix (typically the static-gain matrix) spanning group G's on DOFs,
// using the same global index space as inputsToModesFor.
func trimToInputGroup[G Group](fem *FEM, full *mat.Dense) (*mat.Dense, bool) {
	var g G
	grp, _, ok := fem.inputGroupByName(g.GroupName())
	if !ok {
		return nil, false
	}
	idx := grp.onIndices()
	if len(idx) == 0 {
		return nil, false
	}
	rows, _ := full.Dims()
	out := mat.NewDense(rows, len(idx), nil)
	for col, globalIdx := range idx {
		for row := 0; row < rows; row++ {
			out.Set(row, col, full.At(row, globalIdx-1))
		}
	}
	return out, true
}

// trimToOutputGroup is trimToInputGroup's output-side counterpart,
// selecting rows instead of columns.
func trimToOutputGroup[G Group](fem *FEM, full *mat.Dense) (*mat.Dense, bool) {
	var g G
	grp, _, ok := fem.outputGroupByName(g.GroupName())
	if !ok {
		return nil, false
	}
	idx := grp.onIndices()
	if len(idx) == 0 {
		return nil, false
	}
	_, cols := full.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for row, globalIdx := range idx {
		for col := 0; col < cols; col++ {
			out.Set(row, col, full.At(globalIdx-1, col))
		}
	}
	return out, true
}
