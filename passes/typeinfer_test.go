// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes_test

import (
	"testing"

	"github.com/dexlang-go/dexcore/dexerr"
	"github.com/dexlang-go/dexcore/passes"
	"github.com/dexlang-go/dexcore/toppass"
)

func TestTypeInferAssignsIntType(t *testing.T) {
	m := &passes.FModule{Bindings: []passes.FBinding{
		{Name: "x", Expr: passes.BinOp{Op: "+", Left: passes.IntLit{Value: 1}, Right: passes.IntLit{Value: 2}}},
	}}

	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, dexerr.Err, *passes.Module](
		passes.EmptyTopEnv(), toppass.FreshScope{}, passes.TypeInfer(m))
	out, ok := either.GetRight()
	if !ok {
		t.Fatalf("TypeInfer failed unexpectedly: %v", either)
	}
	if out.Bindings[0].Type != passes.IntType {
		t.Fatalf("got %v, want IntType", out.Bindings[0].Type)
	}
}

func TestTypeInferResolvesFromAmbientEnv(t *testing.T) {
	env := passes.EmptyTopEnv().With("y", passes.TypeBinding(passes.IntType))
	m := &passes.FModule{Bindings: []passes.FBinding{
		{Name: "x", Expr: passes.Var{Name: "y"}},
	}}

	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, dexerr.Err, *passes.Module](
		env, toppass.FreshScope{}, passes.TypeInfer(m))
	out, ok := either.GetRight()
	if !ok {
		t.Fatalf("TypeInfer failed unexpectedly: %v", either)
	}
	if out.Bindings[0].Type != passes.IntType {
		t.Fatalf("got %v, want IntType", out.Bindings[0].Type)
	}
}

func TestTypeInferUnboundVariableFailsWithRegion(t *testing.T) {
	region := dexerr.Region{Start: 5, Stop: 6}
	m := &passes.FModule{Bindings: []passes.FBinding{
		{Name: "x", Expr: passes.Var{Name: "y", Region: region}},
	}}

	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, dexerr.Err, *passes.Module](
		passes.EmptyTopEnv(), toppass.FreshScope{}, passes.TypeInfer(m))
	if !either.IsLeft() {
		t.Fatal("expected Left for unbound variable")
	}
	errVal, _ := either.GetLeft()
	if errVal.Kind != dexerr.UnboundVarErr {
		t.Fatalf("got kind %v, want UnboundVarErr", errVal.Kind)
	}
	if errVal.Region == nil || *errVal.Region != region {
		t.Fatalf("got region %+v, want %+v", errVal.Region, region)
	}
}

func TestTypeInferMismatchedOperandsFailsWithTypeErr(t *testing.T) {
	m := &passes.FModule{Bindings: []passes.FBinding{
		{Name: "x", Expr: passes.BinOp{Op: "+", Left: passes.BoolLit{Value: true}, Right: passes.IntLit{Value: 1}}},
	}}

	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, dexerr.Err, *passes.Module](
		passes.EmptyTopEnv(), toppass.FreshScope{}, passes.TypeInfer(m))
	if !either.IsLeft() {
		t.Fatal("expected Left for a Bool operand to +")
	}
	errVal, _ := either.GetLeft()
	if errVal.Kind != dexerr.TypeErr {
		t.Fatalf("got kind %v, want TypeErr", errVal.Kind)
	}
}
