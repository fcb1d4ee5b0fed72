// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dexcore

import "github.com/dexlang-go/dexcore/dexerr"

// Err is the structured error returned by a failed pass or block
// evaluation. It is defined in dexerr so that the passes package can
// report failures without importing this package back.
type Err = dexerr.Err

// ErrKind enumerates the taxonomy an Err can carry.
type ErrKind = dexerr.Kind

const (
	ParseErr          = dexerr.ParseErr
	TypeErr           = dexerr.TypeErr
	LinErr            = dexerr.LinErr
	UnboundVarErr     = dexerr.UnboundVarErr
	CompilerErr       = dexerr.CompilerErr
	NotImplementedErr = dexerr.NotImplementedErr
	RuntimeErr        = dexerr.RuntimeErr
)
