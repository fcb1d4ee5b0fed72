// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass_test

import (
	"testing"

	"github.com/dexlang-go/dexcore/toppass"
)

func TestRunPassThreadsStateAndEnv(t *testing.T) {
	comp := toppass.Bind(toppass.GetPureEnv[int](), func(env int) toppass.Pass[int] {
		return toppass.Bind(toppass.GetPureState[int](), func(s int) toppass.Pass[int] {
			return toppass.Bind(toppass.PutPureState(s+env), func(struct{}) toppass.Pass[int] {
				return toppass.GetPureState[int]()
			})
		})
	})

	either, finalState := toppass.RunPass[int, int, string, int](10, 5, comp)
	val, ok := either.GetRight()
	if !ok || val != 15 {
		t.Fatalf("got %v, want Right(15)", either)
	}
	if finalState != 15 {
		t.Fatalf("got final state %d, want 15", finalState)
	}
}

func TestEvalPassDiscardsState(t *testing.T) {
	comp := toppass.Bind(toppass.PutPureState(99), func(struct{}) toppass.Pass[int] {
		return toppass.GetPureState[int]()
	})

	either := toppass.EvalPass[int, int, string, int](0, 0, comp)
	val, ok := either.GetRight()
	if !ok || val != 99 {
		t.Fatalf("got %v, want Right(99)", either)
	}
}

func TestFailPureAbortsPass(t *testing.T) {
	comp := toppass.Bind(toppass.PutPureState(1), func(struct{}) toppass.Pass[int] {
		return toppass.FailPure[string, int]("bad state")
	})

	either := toppass.EvalPass[int, int, string, int](0, 0, comp)
	if !either.IsLeft() {
		t.Fatal("expected Left")
	}
	errVal, _ := either.GetLeft()
	if errVal != "bad state" {
		t.Fatalf("got error %q, want %q", errVal, "bad state")
	}
}

func TestLiftTopPassFoldsSuccessIntoTopPass(t *testing.T) {
	pure := toppass.Bind(toppass.GetPureEnv[int](), func(env int) toppass.Pass[int] {
		return toppass.Pure(env * 2)
	})
	lifted := toppass.LiftTopPass[int, struct{}, string, int](struct{}{}, pure)

	either, _ := toppass.RunTopPass[int, string, string](func(string) {}, sumMonoid(), 21, lifted)
	val, ok := either.GetRight()
	if !ok || val != 42 {
		t.Fatalf("got %v, want Right(42)", either)
	}
}

func TestLiftTopPassFoldsFailureIntoTopPass(t *testing.T) {
	pure := toppass.FailPure[string, int]("pure failure")
	lifted := toppass.LiftTopPass[int, struct{}, string, int](struct{}{}, pure)

	either, _ := toppass.RunTopPass[int, string, string](func(string) {}, sumMonoid(), 0, lifted)
	if !either.IsLeft() {
		t.Fatal("expected Left")
	}
	errVal, _ := either.GetLeft()
	if errVal != "pure failure" {
		t.Fatalf("got error %q, want %q", errVal, "pure failure")
	}
}

func TestFreshScopeNamesAreUniqueAndAdvance(t *testing.T) {
	var scope toppass.FreshScope
	var names []string
	for range 5 {
		var name string
		name, scope = scope.Next("x")
		names = append(names, name)
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if seen[name] {
			t.Fatalf("name %q repeated at index %d: %v", name, i, names)
		}
		seen[name] = true
	}
	if names[0] != "x$0" || names[4] != "x$4" {
		t.Fatalf("got %v, want names of the form x$<n> in order", names)
	}
}

func TestFreshScopeZeroValueIsUsable(t *testing.T) {
	var scope toppass.FreshScope
	name, next := scope.Next("seed")
	if name != "seed$0" {
		t.Fatalf("got %q, want %q", name, "seed$0")
	}
	name2, _ := next.Next("seed")
	if name2 != "seed$1" {
		t.Fatalf("got %q, want %q", name2, "seed$1")
	}
}

func TestFreshScopeIndependentLineagesDoNotCollide(t *testing.T) {
	var base toppass.FreshScope
	_, base = base.Next("a")
	_, base = base.Next("a")

	// A brand-new scope does not see base's advancement: each pure pass
	// gets its own seed, never a shared counter.
	var fresh toppass.FreshScope
	name, _ := fresh.Next("a")
	if name != "a$0" {
		t.Fatalf("got %q, want %q: fresh scopes must not inherit another lineage's counter", name, "a$0")
	}
}
