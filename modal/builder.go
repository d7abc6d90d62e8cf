// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Builder reduces a FEM payload to a Solver: it selects a subset of named
// input and output groups, a sampling rate, a damping model, an optional
// mode-count cap (by eigenfrequency or by Hankel singular value), and an
// optional static-gain compensation, then assembles the corresponding
// discrete state-space realization.
type Builder struct {
	fem *FEM

	samplingHz   *float64
	zeta         *float64
	eigenOveride map[int]float64
	maxFreqHz    *float64
	hsvThreshold *float64

	useStaticGain bool

	ins           []inputSlot
	outs          []outputSlot
	outsTransform []*mat.Dense
}

// NewBuilder starts a reduction of fem.
func NewBuilder(fem *FEM) *Builder {
	return &Builder{fem: fem}
}

// Sampling sets the sampling rate, in Hz, at which the resulting Solver
// will be stepped.
func (b *Builder) Sampling(hz float64) *Builder {
	b.samplingHz = &hz
	return b
}

// ProportionalDamping overrides every mode's damping ratio with a single
// value, in place of the FEM payload's per-mode damping.
func (b *Builder) ProportionalDamping(zeta float64) *Builder {
	b.zeta = &zeta
	return b
}

// MaxEigenFrequency retains only modes whose eigenfrequency (as carried by
// the FEM payload, before any EigenFrequencyOverride) is at or below hz.
func (b *Builder) MaxEigenFrequency(hz float64) *Builder {
	b.maxFreqHz = &hz
	return b
}

// EigenFrequencyOverride replaces the eigenfrequency of mode index (0-based,
// into the FEM payload's mode ordering) with hz, before mode-count capping.
func (b *Builder) EigenFrequencyOverride(index int, hz float64) *Builder {
	if b.eigenOveride == nil {
		b.eigenOveride = make(map[int]float64)
	}
	b.eigenOveride[index] = hz
	return b
}

// TruncateHankelSingularValues drops every retained mode whose Hankel
// singular value is at or below threshold.
func (b *Builder) TruncateHankelSingularValues(threshold float64) *Builder {
	b.hsvThreshold = &threshold
	return b
}

// UseStaticGainCompensation enables the DC-gain compensation term: the
// solver's output gets psi*u added, one sample delayed, where psi is the
// FEM payload's static-gain matrix minus the dynamic model's own
// asymptotic gain (computed from every retained mode beyond the first
// three rigid-body modes).
func (b *Builder) UseStaticGainCompensation() *Builder {
	b.useStaticGain = true
	return b
}

// InputGroup selects input group G for the reduced model.
func InputGroup[G Group](b *Builder) *Builder {
	b.ins = append(b.ins, newInputSlot[G]())
	return b
}

// OutputGroup selects output group G for the reduced model.
func OutputGroup[G Group](b *Builder) *Builder {
	b.outs = append(b.outs, newOutputSlot[G]())
	b.outsTransform = append(b.outsTransform, nil)
	return b
}

// OutputGroupWith selects output group G and applies transform (shape
// k x (group width)) to its rows before they are folded into the model.
func OutputGroupWith[G Group](b *Builder, transform *mat.Dense) *Builder {
	b.outs = append(b.outs, newOutputSlot[G]())
	b.outsTransform = append(b.outsTransform, transform)
	return b
}

// properties computes the effective per-mode eigenfrequency (rad/s), the
// number of retained modes and the effective per-mode damping ratio, after
// applying EigenFrequencyOverride and MaxEigenFrequency.
func (b *Builder) properties() (w []float64, nModes int, zeta []float64, err error) {
	if b.fem == nil {
		return nil, 0, nil, newBuildError("FEM payload is required")
	}
	w = b.fem.EigenFrequenciesRadPerSec()
	for idx, hz := range b.eigenOveride {
		if idx < 0 || idx >= len(w) {
			return nil, 0, nil, newBuildError("eigen-frequency override index %d out of range [0,%d)", idx, len(w))
		}
		w[idx] = 2 * math.Pi * hz
	}

	nModes = b.fem.NModes()
	if b.maxFreqHz != nil {
		n := 0
		for _, hz := range b.fem.EigenFrequenciesHz {
			if hz <= *b.maxFreqHz {
				n++
			}
		}
		nModes = n
	}

	if b.zeta != nil {
		zeta = make([]float64, len(w))
		for i := range zeta {
			zeta[i] = *b.zeta
		}
	} else {
		zeta = append([]float64(nil), b.fem.Damping...)
	}
	return w, nModes, zeta, nil
}

// assembleInputs builds B_mode: N_modes x |u|, the horizontal concatenation
// of each selected input group's modal force-input columns, in selection
// order. Each slot's Range is recorded as a side effect.
func (b *Builder) assembleInputs() (*mat.Dense, error) {
	if len(b.ins) == 0 {
		return nil, newBuildError("at least one input group must be selected")
	}
	parts := make([]*mat.Dense, 0, len(b.ins))
	offset := 0
	for _, slot := range b.ins {
		m, ok := slot.extract(b.fem)
		if !ok {
			return nil, newBuildError("input group %q is not present in the FEM payload, or has no DOF switched on", slot.Name())
		}
		_, k := m.Dims()
		slot.setRange(Range{offset, offset + k})
		offset += k
		parts = append(parts, m)
	}
	return hstack(parts), nil
}

// assembleOutputs builds C_mode: |y| x N_modes, the vertical concatenation
// of each selected output group's modal displacement-output rows (after an
// optional linear transform), in selection order.
func (b *Builder) assembleOutputs() (*mat.Dense, error) {
	if len(b.outs) == 0 {
		return nil, newBuildError("at least one output group must be selected")
	}
	parts := make([]*mat.Dense, 0, len(b.outs))
	offset := 0
	for i, slot := range b.outs {
		m, ok := slot.extract(b.fem)
		if !ok {
			return nil, newBuildError("output group %q is not present in the FEM payload, or has no DOF switched on", slot.Name())
		}
		if t := b.outsTransform[i]; t != nil {
			tr, tc := t.Dims()
			mr, _ := m.Dims()
			if tc != mr {
				chk.Panic("output transform for group %q has %d columns, expected %d to match the group width", slot.Name(), tc, mr)
			}
			transformed := mat.NewDense(tr, b.fem.NModes(), nil)
			transformed.Mul(t, m)
			m = transformed
		}
		r, _ := m.Dims()
		slot.setRange(Range{offset, offset + r})
		offset += r
		parts = append(parts, m)
	}
	return vstack(parts), nil
}

// reduceToSelectedIO trims an arbitrary N_total_outputs x N_total_inputs
// matrix (the static-gain matrix) down to the builder's selected input
// columns and output rows, applying output transforms in the same order as
// assembleOutputs.
func (b *Builder) reduceToSelectedIO(full *mat.Dense) (*mat.Dense, error) {
	colParts := make([]*mat.Dense, 0, len(b.ins))
	for _, slot := range b.ins {
		m, ok := slot.trim(b.fem, full)
		if !ok {
			return nil, newBuildError("input group %q is not present while trimming the static-gain matrix", slot.Name())
		}
		colParts = append(colParts, m)
	}
	mid := hstack(colParts)

	rowParts := make([]*mat.Dense, 0, len(b.outs))
	for i, slot := range b.outs {
		m, ok := slot.trim(b.fem, mid)
		if !ok {
			return nil, newBuildError("output group %q is not present while trimming the static-gain matrix", slot.Name())
		}
		if t := b.outsTransform[i]; t != nil {
			tr, _ := t.Dims()
			_, mc := m.Dims()
			transformed := mat.NewDense(tr, mc, nil)
			transformed.Mul(t, m)
			m = transformed
		}
		rowParts = append(rowParts, m)
	}
	return vstack(rowParts), nil
}

// buildCompensation computes psi = S - D, where S is the static-gain
// matrix restricted to the selected IO and D is the dynamic model's own
// asymptotic (DC) gain, computed from every retained mode beyond the first
// three rigid-body modes (modes 0-2 have omega == 0 and would divide by
// zero in D's closed form). Where a drive-torque input group and its
// matching encoder-angle output group are both selected, the
// corresponding block of psi is zeroed: torque measured by its own
// encoder has no DC coupling to compensate, only cross-axis coupling
// does.
func (b *Builder) buildCompensation(w []float64, nModes int, bMode, cMode *mat.Dense) (*mat.Dense, error) {
	if b.fem.StaticGain == nil {
		return nil, newBuildError("static-gain compensation requested but the FEM payload carries no static-gain matrix")
	}
	s, err := b.reduceToSelectedIO(b.fem.StaticGain)
	if err != nil {
		return nil, err
	}
	psi := s
	if nModes > 3 {
		nOut, nIn := s.Dims()
		nDyn := nModes - 3
		cSub := cMode.Slice(0, nOut, 3, nModes).(*mat.Dense)
		bSub := bMode.Slice(3, nModes, 0, nIn).(*mat.Dense)

		invW2 := make([]float64, nDyn)
		for i, wk := range w[3:nModes] {
			invW2[i] = 1 / (wk * wk)
		}
		diag := mat.NewDiagDense(nDyn, invW2)

		tmp := mat.NewDense(nOut, nDyn, nil)
		tmp.Mul(cSub, diag)
		d := mat.NewDense(nOut, nIn, nil)
		d.Mul(tmp, bSub)

		psi = mat.NewDense(nOut, nIn, nil)
		psi.Sub(s, d)
	}

	type pair struct {
		in  func([]inputSlot) (Range, bool)
		out func([]outputSlot) (Range, bool)
	}
	pairs := []pair{
		{findInputRange[OSSAzDriveTorque], findOutputRange[OSSAzEncoderAngle]},
		{findInputRange[OSSElDriveTorque], findOutputRange[OSSElEncoderAngle]},
		{findInputRange[OSSRotDriveTorque], findOutputRange[OSSRotEncoderAngle]},
	}
	for _, p := range pairs {
		inRange, ok1 := p.in(b.ins)
		outRange, ok2 := p.out(b.outs)
		if !ok1 || !ok2 {
			continue
		}
		zeroBlock(psi, inRange, outRange)
	}
	return psi, nil
}

func zeroBlock(m *mat.Dense, inRange, outRange Range) {
	for row := outRange.Start; row < outRange.End; row++ {
		for col := inRange.Start; col < inRange.End; col++ {
			m.Set(row, col, 0)
		}
	}
}

// Build assembles the Solver. Modes are discretized in FEM mode order,
// skipping any mode whose Hankel singular value falls at or below the
// configured threshold (if any).
func (b *Builder) Build() (*Solver, error) {
	if b.samplingHz == nil {
		return nil, newBuildError("sampling rate not set; call Sampling before Build")
	}
	tau := 1.0 / *b.samplingHz

	w, nModes, zeta, err := b.properties()
	if err != nil {
		return nil, err
	}
	if nModes > len(w) {
		nModes = len(w)
	}

	bMode, err := b.assembleInputs()
	if err != nil {
		return nil, err
	}
	cMode, err := b.assembleOutputs()
	if err != nil {
		return nil, err
	}
	_, nU := bMode.Dims()
	nY, _ := cMode.Dims()

	var psi *mat.Dense
	if b.useStaticGain {
		psi, err = b.buildCompensation(w, nModes, bMode, cMode)
		if err != nil {
			return nil, err
		}
	}

	modes := make([]*Mode, 0, nModes)
	for k := 0; k < nModes; k++ {
		bk := mat.Row(nil, k, bMode)
		ck := mat.Col(nil, k, cMode)
		if b.hsvThreshold != nil {
			if HankelSingularValue(w[k], zeta[k], bk, ck) <= *b.hsvThreshold {
				continue
			}
		}
		modes = append(modes, NewMode(tau, w[k], zeta[k], bk, ck))
	}

	psiU := []float64(nil)
	if psi != nil {
		psiU = make([]float64, nY)
	}

	return &Solver{
		u:     make([]float64, nU),
		y:     make([]float64, nY),
		modes: modes,
		ins:   b.ins,
		outs:  b.outs,
		psi:   psi,
		psiU:  psiU,
	}, nil
}

// HankelSingularValue is hsv_k = 0.25*||b_k||*||c_k||/(omega_k*zeta_k), the
// model-order-reduction truncation criterion for one mode.
func HankelSingularValue(omega, zeta float64, b, c []float64) float64 {
	return 0.25 * norm2(b) * norm2(c) / (omega * zeta)
}

// HankelSingularValues computes the Hankel singular value of every mode in
// the underlying FEM payload (ignoring any configured threshold),
// honouring EigenFrequencyOverride and ProportionalDamping but not
// MaxEigenFrequency, for diagnostic display.
func (b *Builder) HankelSingularValues() ([]float64, error) {
	w, _, zeta, err := b.properties()
	if err != nil {
		return nil, err
	}
	bMode, err := b.assembleInputs()
	if err != nil {
		return nil, err
	}
	cMode, err := b.assembleOutputs()
	if err != nil {
		return nil, err
	}
	hsv := make([]float64, b.fem.NModes())
	for k := range hsv {
		if w[k] == 0 {
			hsv[k] = 0
			continue
		}
		bk := mat.Row(nil, k, bMode)
		ck := mat.Col(nil, k, cMode)
		hsv[k] = HankelSingularValue(w[k], zeta[k], bk, ck)
	}
	return hsv, nil
}

// FemInfo prints a summary of the underlying FEM payload and the builder's
// current selection to standard output, colored in the teacher's console
// style.
func (b *Builder) FemInfo() *Builder {
	utl.PfWhite("%s", b.fem.String())
	names := make([]string, 0, len(b.ins)+len(b.outs))
	for _, s := range b.ins {
		names = append(names, fmt.Sprintf("in  %s", s.Name()))
	}
	for _, s := range b.outs {
		names = append(names, fmt.Sprintf("out %s", s.Name()))
	}
	sort.Strings(names)
	for _, n := range names {
		utl.Pfgrey("  selected %s\n", n)
	}
	return b
}
