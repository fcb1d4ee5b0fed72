// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass_test

import (
	"testing"

	"github.com/dexlang-go/dexcore/toppass"
)

func TestAndThenCombinesBothDeltasOnSuccess(t *testing.T) {
	f1 := func(x int) toppass.TopPass[int] { return toppass.PutEnv(10, toppass.Return[toppass.Resumed](x+1)) }
	f2 := func(x int) toppass.TopPass[int] { return toppass.PutEnv(20, toppass.Return[toppass.Resumed](x*2)) }

	combined := toppass.AndThen[int, int, string, string, int, int, int](sumMonoid(), f1, sumMonoid(), f2)
	pairMonoid := toppass.PairMonoid[int, int](sumMonoid(), sumMonoid())

	either, delta := toppass.RunTopPass[toppass.Pair[int, int], string, string](
		func(string) {}, pairMonoid, toppass.Pair[int, int]{Fst: 1, Snd: 1}, combined(5))

	val, ok := either.GetRight()
	if !ok || val != 12 {
		t.Fatalf("got %v, want Right(12)", either)
	}
	if delta.Fst != 10 || delta.Snd != 20 {
		t.Fatalf("got delta %+v, want {10 20}", delta)
	}
}

func TestAndThenFirstStageFailureContributesNoDelta(t *testing.T) {
	f1 := func(x int) toppass.TopPass[int] {
		return toppass.PutEnv(10, toppass.Fail[string, int]("first failed"))
	}
	f2Called := false
	f2 := func(x int) toppass.TopPass[int] {
		f2Called = true
		return toppass.Return[toppass.Resumed](x)
	}

	combined := toppass.AndThen[int, int, string, string, int, int, int](sumMonoid(), f1, sumMonoid(), f2)
	pairMonoid := toppass.PairMonoid[int, int](sumMonoid(), sumMonoid())

	either, delta := toppass.RunTopPass[toppass.Pair[int, int], string, string](
		func(string) {}, pairMonoid, toppass.Pair[int, int]{}, combined(5))

	if !either.IsLeft() {
		t.Fatal("expected Left")
	}
	if f2Called {
		t.Fatal("second stage must not run after the first stage fails")
	}
	if delta.Fst != 0 || delta.Snd != 0 {
		t.Fatalf("a failing AndThen must contribute no delta, got %+v", delta)
	}
}

func TestAndThenForwardsOutputsFromBothStagesEvenOnFailure(t *testing.T) {
	f1 := func(x int) toppass.TopPass[int] {
		return toppass.WriteOut[string, int]("stage1", toppass.Return[toppass.Resumed](x))
	}
	f2 := func(x int) toppass.TopPass[int] {
		return toppass.WriteOut[string, int]("stage2", toppass.Fail[string, int]("stage2 failed"))
	}

	combined := toppass.AndThen[int, int, string, string, int, int, int](sumMonoid(), f1, sumMonoid(), f2)
	pairMonoid := toppass.PairMonoid[int, int](sumMonoid(), sumMonoid())

	var sunk []string
	either, _ := toppass.RunTopPass[toppass.Pair[int, int], string, string](
		func(s string) { sunk = append(sunk, s) }, pairMonoid, toppass.Pair[int, int]{}, combined(5))

	if !either.IsLeft() {
		t.Fatal("expected Left")
	}
	if len(sunk) != 2 || sunk[0] != "stage1" || sunk[1] != "stage2" {
		t.Fatalf("got outputs %v, want [stage1 stage2]", sunk)
	}
}

func TestAndThenSecondStageRunsAgainstItsOwnAmbientEnv(t *testing.T) {
	f1 := func(x int) toppass.TopPass[int] { return toppass.Return[toppass.Resumed](x * 10) }
	f2 := func(y int) toppass.TopPass[int] {
		return toppass.Bind(toppass.GetEnv[bool](), func(flag bool) toppass.TopPass[int] {
			if flag {
				return toppass.Return[toppass.Resumed](1)
			}
			return toppass.Return[toppass.Resumed](0)
		})
	}
	boolMonoid := toppass.MakeMonoid(false, func(x, y bool) bool { return x || y })

	combined := toppass.AndThen[int, bool, string, string, int, int, int](sumMonoid(), f1, boolMonoid, f2)
	pairMonoid := toppass.PairMonoid[int, bool](sumMonoid(), boolMonoid)

	either, _ := toppass.RunTopPass[toppass.Pair[int, bool], string, string](
		func(string) {}, pairMonoid, toppass.Pair[int, bool]{Fst: 2, Snd: true}, combined(4))

	val, ok := either.GetRight()
	if !ok || val != 1 {
		t.Fatalf("got %v, want Right(1): second stage must read its own env component", either)
	}
}
