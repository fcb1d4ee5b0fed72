// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dexcore

import "github.com/dexlang-go/dexcore/passes"

// VarName identifies a top-level binding.
type VarName = string

// SourceBlock is a single unit of input: raw source text, its byte offset
// within the enclosing file, and a closed-variant kind describing how it
// should be handled.
type SourceBlock struct {
	Text   string
	Offset int
	Kind   BlockKind
}

// BlockKind is the closed set of ways a SourceBlock can be interpreted.
// Concrete variants are RunModule, Command, IncludeSourceFile, LoadData,
// UnParseable, and Other.
type BlockKind interface {
	blockKind()
}

// RunModule evaluates a module purely for its environment contribution.
type RunModule struct {
	Module *passes.FModule
}

func (RunModule) blockKind() {}

// Command evaluates a module and then performs cmd against the resulting
// environment, using Var to look up the binding of interest.
type Command struct {
	Cmd    CommandKind
	Var    VarName
	Module *passes.FModule
}

func (Command) blockKind() {}

// IncludeSourceFile pulls in another file's source. Unsupported in this
// core; the driver rejects it rather than silently skipping it.
type IncludeSourceFile struct {
	Path string
}

func (IncludeSourceFile) blockKind() {}

// LoadData loads external data into the environment. Unsupported in this
// core; the driver rejects it rather than silently skipping it.
type LoadData struct {
	Path string
}

func (LoadData) blockKind() {}

// UnParseable marks a block whose source failed to parse.
type UnParseable struct {
	Reason string
}

func (UnParseable) blockKind() {}

// Other covers block kinds not otherwise recognized by this core.
type Other struct{}

func (Other) blockKind() {}

// CommandKind is the closed set of commands a Command block may carry.
type CommandKind interface {
	commandKind()
}

// EvalExpr evaluates the module, then formats and emits the value bound to
// the command's variable.
type EvalExpr struct {
	Format string
}

func (EvalExpr) commandKind() {}

// GetType evaluates the module, then emits the pretty-printed type of the
// value bound to the command's variable.
type GetType struct{}

func (GetType) commandKind() {}

// ShowPasses evaluates the module, retaining only PassInfo outputs.
type ShowPasses struct{}

func (ShowPasses) commandKind() {}

// ShowPass evaluates the module, retaining only PassInfo outputs whose
// stage name equals Stage.
type ShowPass struct {
	Stage string
}

func (ShowPass) commandKind() {}
