// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass_test

import (
	"math/rand/v2"
	"testing"

	"github.com/dexlang-go/dexcore/toppass"
)

const propertyN = 1000

func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// TestPropertyContLeftIdentity: Bind(Return(a), f) ≡ f(a)
func TestPropertyContLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) toppass.Cont[int, int] { return toppass.Return[int](x * 3) }
		left := toppass.Run(toppass.Bind(toppass.Return[int](a), f))
		right := toppass.Run(f(a))
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyContAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func TestPropertyContAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := toppass.Return[int](a)
		f := func(x int) toppass.Cont[int, int] { return toppass.Return[int](x + 3) }
		g := func(x int) toppass.Cont[int, int] { return toppass.Return[int](x * 2) }
		left := toppass.Run(toppass.Bind(toppass.Bind(m, f), g))
		right := toppass.Run(toppass.Bind(m, func(x int) toppass.Cont[int, int] {
			return toppass.Bind(f(x), g)
		}))
		if left != right {
			t.Fatalf("associativity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertySumMonoidAssociativity checks the monoid law independent of
// which concrete TopEnv uses it — the same law [PairMonoid] relies on to
// compose product environments.
func TestPropertySumMonoidAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	m := sumMonoid()
	for range propertyN {
		a, b, c := randInt(rng), randInt(rng), randInt(rng)
		left := m.Concat(m.Concat(a, b), c)
		right := m.Concat(a, m.Concat(b, c))
		if left != right {
			t.Fatalf("monoid associativity: %d != %d (a=%d b=%d c=%d)", left, right, a, b, c)
		}
	}
}

// TestPropertyAndThenAssociativity: composing three stages left- or
// right-nested with AndThen produces the same result and the same combined
// delta — associativity of the env composition combinator.
func TestPropertyAndThenAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 0))
	for range propertyN {
		d1, d2, d3 := randInt(rng), randInt(rng), randInt(rng)
		stage1 := func(x int) toppass.TopPass[int] { return toppass.PutEnv(d1, toppass.Return[toppass.Resumed](x + 1)) }
		stage2 := func(x int) toppass.TopPass[int] { return toppass.PutEnv(d2, toppass.Return[toppass.Resumed](x + 2)) }
		stage3 := func(x int) toppass.TopPass[int] { return toppass.PutEnv(d3, toppass.Return[toppass.Resumed](x + 3)) }

		leftNested := toppass.AndThen[toppass.Pair[int, int], int, string, string, int, int, int](
			toppass.PairMonoid(sumMonoid(), sumMonoid()),
			toppass.AndThen[int, int, string, string, int, int, int](sumMonoid(), stage1, sumMonoid(), stage2),
			sumMonoid(), stage3,
		)
		rightNested := toppass.AndThen[int, toppass.Pair[int, int], string, string, int, int, int](
			sumMonoid(), stage1,
			toppass.PairMonoid(sumMonoid(), sumMonoid()),
			toppass.AndThen[int, int, string, string, int, int, int](sumMonoid(), stage2, sumMonoid(), stage3),
		)

		leftEnv := toppass.Pair[toppass.Pair[int, int], int]{Fst: toppass.Pair[int, int]{}, Snd: 0}
		leftMonoid := toppass.PairMonoid(toppass.PairMonoid(sumMonoid(), sumMonoid()), sumMonoid())
		leftEither, leftDelta := toppass.RunTopPass[toppass.Pair[toppass.Pair[int, int], int], string, string](
			func(string) {}, leftMonoid, leftEnv, leftNested(0))

		rightEnv := toppass.Pair[int, toppass.Pair[int, int]]{Fst: 0, Snd: toppass.Pair[int, int]{}}
		rightMonoid := toppass.PairMonoid(sumMonoid(), toppass.PairMonoid(sumMonoid(), sumMonoid()))
		rightEither, rightDelta := toppass.RunTopPass[toppass.Pair[int, toppass.Pair[int, int]], string, string](
			func(string) {}, rightMonoid, rightEnv, rightNested(0))

		leftVal, _ := leftEither.GetRight()
		rightVal, _ := rightEither.GetRight()
		if leftVal != rightVal {
			t.Fatalf("AndThen grouping changed the result: %d != %d (d1=%d d2=%d d3=%d)", leftVal, rightVal, d1, d2, d3)
		}
		if leftDelta.Fst.Fst != rightDelta.Fst || leftDelta.Fst.Snd != rightDelta.Snd.Fst || leftDelta.Snd != rightDelta.Snd.Snd {
			t.Fatalf("AndThen grouping changed the delta: %+v vs %+v (d1=%d d2=%d d3=%d)", leftDelta, rightDelta, d1, d2, d3)
		}
	}
}
