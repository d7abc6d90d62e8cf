// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import "github.com/cpmech/gosl/chk"

// BuildError reports a failure to assemble a Solver from a Builder - a
// missing sampling rate, a selected group absent from the FEM payload, or
// static-gain compensation requested without a static-gain matrix. It is
// always a configuration mistake, never an internal invariant violation
// (those use chk.Panic instead, per dyncoefs.go's PanicOrNot convention).
type BuildError struct{ msg string }

func (e *BuildError) Error() string { return e.msg }

func newBuildError(format string, args ...interface{}) *BuildError {
	return &BuildError{msg: chk.Err(format, args...).Error()}
}
