// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import "math/cmplx"

// Mode is one discrete 2x2 oscillator: the zero-order-hold discretization,
// at a fixed sampling period tau, of a single second-order modal equation
//
//	q'' + 2*omega*zeta*q' + omega^2*q = b.u
//	y = c*q
//
// Construction performs the matrix exponential of the augmented 3x3 block
//
//	M = [[0, 1, 0], [-omega^2, -2*omega*zeta, 1], [0, 0, 0]]
//
// via the closed-form eigendecomposition of its upper-left 2x2 block
// (poles lambda+/- = -omega*zeta +/- i*omega*sqrt(1-zeta^2)), except when
// omega is zero, where the exponential degenerates to an exact polynomial
// and the eigendecomposition is skipped entirely.
type Mode struct {
	tau, omega, zeta float64

	// phi is the discrete state-transition matrix, row-major [2][2]:
	// phi[0], phi[1] is row 0; phi[2], phi[3] is row 1.
	phi [4]float64
	// gamma is the discrete input matrix, column vector [2]: gamma[0] is
	// the gain from the modal input b.u into the new q, gamma[1] into the
	// new q'.
	gamma [2]float64

	b []float64
	c []float64

	x [2]float64
	y []float64
}

// NewMode builds the discrete oscillator for one mode. b and c are copied.
func NewMode(tau, omega, zeta float64, b, c []float64) *Mode {
	m := &Mode{
		tau:   tau,
		omega: omega,
		zeta:  zeta,
		b:     append([]float64(nil), b...),
		c:     append([]float64(nil), c...),
		y:     make([]float64, len(c)),
	}
	if omega == 0 {
		m.phi = [4]float64{1, tau, 0, 1}
		m.gamma = [2]float64{0.5 * tau * tau, tau}
		return m
	}

	x := complex(omega, 0)
	z0 := complex(zeta, 0)
	one := complex(1, 0)

	z := cmplx.Sqrt(x * x * (z0*z0 - one))
	zmxy := z - x*z0
	zpxy := z + x*z0
	ezmxy := cmplx.Exp(complex(tau, 0) * zmxy)
	ezpxy := cmplx.Exp(complex(-tau, 0) * zpxy)

	phi00 := real((zpxy*ezmxy + zmxy*ezpxy) / (2 * z))
	phi01 := real((ezmxy - ezpxy) / (2 * z))
	phi10 := real(x * x * (ezpxy - ezmxy) / (2 * z))
	phi11 := real((zmxy*ezmxy + zpxy*ezpxy) / (2 * z))
	m.phi = [4]float64{phi00, phi01, phi10, phi11}

	// A^-1 of A = [[0,1],[-omega^2,-2*omega*zeta]]
	ia00 := -2 * zeta / omega
	ia01 := -1 / (omega * omega)

	adI00, adI01 := phi00-1, phi01
	adI10, adI11 := phi10, phi11-1

	// gamma = (A^-1 * (phi - I))[:,1], matching the ZOH identity
	// Bd = A^-1 * (Ad - I) * B with B = [0;1].
	m.gamma = [2]float64{
		ia00*adI01 + ia01*adI11,
		1*adI01 + 0*adI11,
	}
	return m
}

// Omega returns the mode's undamped natural frequency in rad/s.
func (m *Mode) Omega() float64 { return m.omega }

// Zeta returns the mode's damping ratio.
func (m *Mode) Zeta() float64 { return m.zeta }

// B returns the mode's input coupling row (read-only view; do not modify).
func (m *Mode) B() []float64 { return m.b }

// C returns the mode's output coupling column (read-only view; do not modify).
func (m *Mode) C() []float64 { return m.c }

// Step advances the oscillator by one sample given the current physical
// input vector u (len(u) must equal len(m.b)) and returns this mode's
// contribution to the physical output vector. The state is updated first,
// from the previous state and u; the output is then read from the new
// state. This adds one sample of delay relative to reading the output
// before the update, by design: it lets every mode be stepped
// independently and folded without a second pass over the state.
//
// The returned slice is reused across calls; callers that need to retain
// a contribution across Step calls must copy it.
func (m *Mode) Step(u []float64) []float64 {
	var v float64
	for i, bi := range m.b {
		v += bi * u[i]
	}
	x0, x1 := m.x[0], m.x[1]
	m.x[0] = m.phi[0]*x0 + m.phi[1]*x1 + m.gamma[0]*v
	m.x[1] = m.phi[2]*x0 + m.phi[3]*x1 + m.gamma[1]*v
	for i, ci := range m.c {
		m.y[i] = ci * m.x[0]
	}
	return m.y
}
