// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dexerr defines the structured error type shared by every layer
// of the evaluation pipeline — passes, the data model, and the driver —
// so that none of them needs to import another to report a failure.
package dexerr

import "fmt"

// Kind is the closed taxonomy of error kinds a pass can fail with.
// CompilerErr marks an internal invariant violation and is the only kind
// ever enriched with debug context; the rest are user-facing.
type Kind int

const (
	ParseErr Kind = iota
	TypeErr
	LinErr
	UnboundVarErr
	CompilerErr
	NotImplementedErr
	RuntimeErr
)

func (k Kind) String() string {
	switch k {
	case ParseErr:
		return "ParseErr"
	case TypeErr:
		return "TypeErr"
	case LinErr:
		return "LinErr"
	case UnboundVarErr:
		return "UnboundVarErr"
	case CompilerErr:
		return "CompilerErr"
	case NotImplementedErr:
		return "NotImplementedErr"
	case RuntimeErr:
		return "RuntimeErr"
	default:
		return "UnknownErr"
	}
}

// Region is a half-open byte range [Start, Stop) within a file.
type Region struct {
	Start, Stop int
}

// Err is the structured error threaded through every pass and the driver:
// a kind, an optional source region, and a message. Source regions are
// absolute byte offsets in the enclosing file until [Err.Rebase] relocates
// one onto a block's own text.
type Err struct {
	Kind    Kind
	Region  *Region
	Message string
}

// New constructs an Err with no source region.
func New(kind Kind, message string) Err {
	return Err{Kind: kind, Message: message}
}

// NewAt constructs an Err carrying a source region.
func NewAt(kind Kind, region Region, message string) Err {
	r := region
	return Err{Kind: kind, Region: &r, Message: message}
}

func (e Err) Error() string {
	if e.Region != nil {
		return fmt.Sprintf("%s: %s [%d,%d)", e.Kind, e.Message, e.Region.Start, e.Region.Stop)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AppendMessage returns a copy of e with text appended to its message.
func (e Err) AppendMessage(text string) Err {
	e.Message += text
	return e
}

// Rebase subtracts offset from e's region, if it has one, relocating an
// absolute file-level region onto a block's own local text. Errors
// without a region are returned unchanged.
func (e Err) Rebase(offset int) Err {
	if e.Region == nil {
		return e
	}
	r := Region{Start: e.Region.Start - offset, Stop: e.Region.Stop - offset}
	e.Region = &r
	return e
}
