// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

import "github.com/IBM/fp-go/v2/monoid"

// funcMonoid adapts a pair of plain functions to monoid.Monoid[A].
type funcMonoid[A any] struct {
	empty  A
	concat func(A, A) A
}

func (m funcMonoid[A]) Empty() A        { return m.empty }
func (m funcMonoid[A]) Concat(x, y A) A { return m.concat(x, y) }

// MakeMonoid builds a monoid.Monoid[A] from an identity element and an
// associative combining function.
func MakeMonoid[A any](empty A, concat func(A, A) A) monoid.Monoid[A] {
	return funcMonoid[A]{empty: empty, concat: concat}
}

// PairMonoid combines the product of two monoids component-wise. Used by
// [AndThen] to build the monoid over the combined environment; associative
// because each factor monoid is associative.
func PairMonoid[A, B any](ma monoid.Monoid[A], mb monoid.Monoid[B]) monoid.Monoid[Pair[A, B]] {
	return MakeMonoid(
		Pair[A, B]{Fst: ma.Empty(), Snd: mb.Empty()},
		func(x, y Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{Fst: ma.Concat(x.Fst, y.Fst), Snd: mb.Concat(x.Snd, y.Snd)}
		},
	)
}
