// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import "github.com/cpmech/gosl/chk"

// Set copies v into the slice of the solver's input vector assigned to
// group G, returning an error if G was not selected at Build time or if
// len(v) does not match the group's width.
func Set[G Group](s *Solver, v []float64) error {
	for _, slot := range s.ins {
		if _, ok := slot.(*inputSlotOf[G]); ok {
			r := slot.Range()
			if len(v) != r.Len() {
				return chk.Err("group %q expects %d values, got %d", slot.Name(), r.Len(), len(v))
			}
			copy(s.u[r.Start:r.End], v)
			return nil
		}
	}
	var g G
	return chk.Err("group %q is not part of this solver's selected inputs", g.GroupName())
}

// Get returns a copy of the slice of the solver's output vector assigned
// to group G. ok is false if G was not selected at Build time.
func Get[G Group](s *Solver) (v []float64, ok bool) {
	for _, slot := range s.outs {
		if _, match := slot.(*outputSlotOf[G]); match {
			r := slot.Range()
			out := make([]float64, r.Len())
			copy(out, s.y[r.Start:r.End])
			return out, true
		}
	}
	return nil, false
}
