// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dexcore

// Result is what block evaluation returns to the caller: the outputs
// accumulated before the outcome was decided, plus either success or the
// single terminating error. A failed block's delta environment is always
// empty — the caller discards it outright rather than inspecting Result
// for it.
type Result struct {
	Outputs []Output
	Err     *Err
}

// Ok reports whether the block evaluated successfully.
func (r Result) Ok() bool { return r.Err == nil }
