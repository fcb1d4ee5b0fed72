// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/IBM/fp-go/v2/monoid"

	"github.com/dexlang-go/dexcore/dexcore"
	"github.com/dexlang-go/dexcore/dexerr"
	"github.com/dexlang-go/dexcore/passes"
	"github.com/dexlang-go/dexcore/toppass"
)

// Backend selects how a module is ultimately evaluated. In this core only
// Jit is wired through eval-module; Interp is reserved and currently
// no-ops.
type Backend int

const (
	Jit Backend = iota
	Interp
)

// Env2 through Env6 are the nested product environments produced by
// left-folding six named stages with AndThen. Every stage
// reads from the same immutable session TopEnv; only eval-jit, the
// right-most leaf, ever contributes a non-empty delta.
type (
	Env2 = toppass.Pair[passes.TopEnv, passes.TopEnv]
	Env3 = toppass.Pair[Env2, passes.TopEnv]
	Env4 = toppass.Pair[Env3, passes.TopEnv]
	Env5 = toppass.Pair[Env4, passes.TopEnv]
	Env6 = toppass.Pair[Env5, passes.TopEnv]
)

func makeEnv2(e passes.TopEnv) Env2 { return toppass.Pair[passes.TopEnv, passes.TopEnv]{Fst: e, Snd: e} }
func makeEnv3(e passes.TopEnv) Env3 { return toppass.Pair[Env2, passes.TopEnv]{Fst: makeEnv2(e), Snd: e} }
func makeEnv4(e passes.TopEnv) Env4 { return toppass.Pair[Env3, passes.TopEnv]{Fst: makeEnv3(e), Snd: e} }
func makeEnv5(e passes.TopEnv) Env5 { return toppass.Pair[Env4, passes.TopEnv]{Fst: makeEnv4(e), Snd: e} }
func makeEnv6(e passes.TopEnv) Env6 { return toppass.Pair[Env5, passes.TopEnv]{Fst: makeEnv5(e), Snd: e} }

func env2Monoid() monoid.Monoid[Env2] {
	return toppass.PairMonoid(passes.TopEnvMonoid, passes.TopEnvMonoid)
}
func env3Monoid() monoid.Monoid[Env3] { return toppass.PairMonoid(env2Monoid(), passes.TopEnvMonoid) }
func env4Monoid() monoid.Monoid[Env4] { return toppass.PairMonoid(env3Monoid(), passes.TopEnvMonoid) }
func env5Monoid() monoid.Monoid[Env5] { return toppass.PairMonoid(env4Monoid(), passes.TopEnvMonoid) }
func env6Monoid() monoid.Monoid[Env6] { return toppass.PairMonoid(env5Monoid(), passes.TopEnvMonoid) }

func flattenEnv2(e Env2) passes.TopEnv { return e.Fst.Concat(e.Fst, e.Snd) }
func flattenEnv3(e Env3) passes.TopEnv { p := flattenEnv2(e.Fst); return p.Concat(p, e.Snd) }
func flattenEnv4(e Env4) passes.TopEnv { p := flattenEnv3(e.Fst); return p.Concat(p, e.Snd) }
func flattenEnv5(e Env5) passes.TopEnv { p := flattenEnv4(e.Fst); return p.Concat(p, e.Snd) }
func flattenEnv6(e Env6) passes.TopEnv { p := flattenEnv5(e.Fst); return p.Concat(p, e.Snd) }

// evalModulePipeline is the composed eval-module pipeline, run with env as
// every stage's ambient environment:
//
//	eval-module = infer-types >+> eval-typed
//	infer-types = named("deshadow", ...) >+> named("type inference", ...) >+> named("normalize", ...)
//	eval-typed  = named("simplify", ...)  >+> named("imp", ...)           >+> named("jit", ...)
//
// Implemented as one flat left-fold over all six stages — equivalent, by
// associativity of the env-composition combinator, to grouping them as
// infer-types and eval-typed separately.
//
// Returns the session environment produced by eval-jit on success, or a nil
// environment and a non-nil error on failure; toppass.Either never escapes
// this function, folded here into the Go-idiomatic (value, *Err) pair the
// rest of this package already uses.
func evalModulePipeline(env passes.TopEnv, m *passes.FModule) (passes.TopEnv, *dexerr.Err, []dexcore.Output) {
	deshadow := NamedPureStage("deshadow", passes.Deshadow, nil)
	typeInfer := NamedPureStage("type inference", passes.TypeInfer, passes.CheckModule)
	normalize := NamedPureStage("normalize", passes.Normalize, passes.CheckModule)
	simplify := NamedPureStage("simplify", passes.Simplify, passes.CheckModule)
	toImp := NamedPureStage("imp", passes.ToImp, passes.CheckImpModule)
	jit := NamedTopStage("jit", passes.EvalJit, nil)

	stage2 := toppass.AndThen[passes.TopEnv, passes.TopEnv, dexcore.Output, dexerr.Err, *passes.FModule, *passes.FModule, *passes.Module](
		passes.TopEnvMonoid, deshadow, passes.TopEnvMonoid, typeInfer)
	stage3 := toppass.AndThen[Env2, passes.TopEnv, dexcore.Output, dexerr.Err, *passes.FModule, *passes.Module, *passes.Module](
		env2Monoid(), stage2, passes.TopEnvMonoid, normalize)
	stage4 := toppass.AndThen[Env3, passes.TopEnv, dexcore.Output, dexerr.Err, *passes.FModule, *passes.Module, *passes.Module](
		env3Monoid(), stage3, passes.TopEnvMonoid, simplify)
	stage5 := toppass.AndThen[Env4, passes.TopEnv, dexcore.Output, dexerr.Err, *passes.FModule, *passes.Module, *passes.ImpModule](
		env4Monoid(), stage4, passes.TopEnvMonoid, toImp)
	stage6 := toppass.AndThen[Env5, passes.TopEnv, dexcore.Output, dexerr.Err, *passes.FModule, *passes.ImpModule, passes.TopEnv](
		env5Monoid(), stage5, passes.TopEnvMonoid, jit)

	var collected []dexcore.Output
	sink := func(o dexcore.Output) { collected = append(collected, o) }
	either, delta6 := toppass.RunTopPass[Env6, dexcore.Output, dexerr.Err, passes.TopEnv](
		sink, env6Monoid(), makeEnv6(env), stage6(m))
	if left, failed := either.GetLeft(); failed {
		return passes.EmptyTopEnv(), &left, collected
	}
	return flattenEnv6(delta6), nil, collected
}

// EvalBlock is the top-level entry point: it installs the block's source
// context, dispatches on the block's kind, and converts the final outcome
// into a Result plus an environment delta to fold into the caller's
// session state.
func EvalBlock(backend Backend, env passes.TopEnv, block dexcore.SourceBlock) (passes.TopEnv, dexcore.Result) {
	withContext := func(err dexerr.Err) dexerr.Err {
		return AddContext(block.Text, block.Offset, err)
	}

	switch kind := block.Kind.(type) {
	case dexcore.RunModule:
		resultEnv, err, _ := runModule(backend, env, kind.Module)
		return finishModule(resultEnv, err, withContext)

	case dexcore.Command:
		resultEnv, err, outputs := runModule(backend, env, kind.Module)
		if err != nil {
			var kept []dexcore.Output
			switch cmd := kind.Cmd.(type) {
			case dexcore.ShowPasses:
				kept = filterPassInfo(outputs, "")
			case dexcore.ShowPass:
				kept = filterPassInfo(outputs, cmd.Stage)
			}
			return passes.EmptyTopEnv(), dexcore.Result{Outputs: kept, Err: refErr(withContext(*err))}
		}
		combined := env.Concat(env, resultEnv)
		return evalCommand(kind, combined, outputs)

	case dexcore.UnParseable:
		err := withContext(dexerr.New(dexerr.ParseErr, kind.Reason))
		return passes.EmptyTopEnv(), dexcore.Result{Err: refErr(err)}

	case dexcore.IncludeSourceFile, dexcore.LoadData:
		err := withContext(dexerr.New(dexerr.NotImplementedErr, "unsupported in this core"))
		return passes.EmptyTopEnv(), dexcore.Result{Err: refErr(err)}

	default:
		return passes.EmptyTopEnv(), dexcore.Result{}
	}
}

// runModule executes eval-module against env, suppressing nothing itself
// — callers decide what to do with the collected outputs. Backend=Interp
// is a literal no-op: it never runs a single pass.
func runModule(backend Backend, env passes.TopEnv, m *passes.FModule) (passes.TopEnv, *dexerr.Err, []dexcore.Output) {
	if backend == Interp {
		return passes.EmptyTopEnv(), nil, nil
	}
	return evalModulePipeline(env, m)
}

func finishModule(resultEnv passes.TopEnv, err *dexerr.Err, withContext func(dexerr.Err) dexerr.Err) (passes.TopEnv, dexcore.Result) {
	if err != nil {
		return passes.EmptyTopEnv(), dexcore.Result{Err: refErr(withContext(*err))}
	}
	return resultEnv, dexcore.Result{}
}

func evalCommand(block dexcore.Command, env passes.TopEnv, outputs []dexcore.Output) (passes.TopEnv, dexcore.Result) {
	switch cmd := block.Cmd.(type) {
	case dexcore.EvalExpr:
		v, ok := passes.LoadAtomVal(env, passes.Atom{Name: block.Var})
		if !ok {
			err := dexerr.New(dexerr.UnboundVarErr, "no value binding for "+block.Var)
			return passes.EmptyTopEnv(), dexcore.Result{Err: refErr(err)}
		}
		return passes.EmptyTopEnv(), dexcore.Result{Outputs: []dexcore.Output{dexcore.ValOut{Format: cmd.Format, Value: v}}}

	case dexcore.GetType:
		b, ok := env.Lookup(block.Var)
		if !ok {
			err := dexerr.New(dexerr.UnboundVarErr, "no binding for "+block.Var)
			return passes.EmptyTopEnv(), dexcore.Result{Err: refErr(err)}
		}
		return passes.EmptyTopEnv(), dexcore.Result{Outputs: []dexcore.Output{dexcore.TextOut{Text: b.Type.String()}}}

	case dexcore.ShowPasses:
		return passes.EmptyTopEnv(), dexcore.Result{Outputs: filterPassInfo(outputs, "")}

	case dexcore.ShowPass:
		return passes.EmptyTopEnv(), dexcore.Result{Outputs: filterPassInfo(outputs, cmd.Stage)}

	default:
		return passes.EmptyTopEnv(), dexcore.Result{}
	}
}

// filterPassInfo retains only PassInfo outputs, optionally restricted to a
// single stage name. Applying it twice is idempotent: the second pass sees
// only PassInfo entries already matching.
func filterPassInfo(outputs []dexcore.Output, stage string) []dexcore.Output {
	var out []dexcore.Output
	for _, o := range outputs {
		pi, ok := o.(dexcore.PassInfo)
		if !ok {
			continue
		}
		if stage != "" && pi.Stage != stage {
			continue
		}
		out = append(out, pi)
	}
	return out
}

func refErr(e dexerr.Err) *dexerr.Err { return &e }
