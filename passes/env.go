// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import (
	"strings"

	"github.com/IBM/fp-go/v2/monoid"
)

// Binding is one entry in a TopEnv: either a value binding (produced by
// eval-jit) or a type-only binding (produced by type-infer, before a value
// exists).
type Binding struct {
	IsValue bool
	Type    Type
	Value   Value
}

// ValueBinding constructs a fully-evaluated binding.
func ValueBinding(v Value) Binding {
	return Binding{IsValue: true, Type: v.Type, Value: v}
}

// TypeBinding constructs a type-only binding, as produced mid-pipeline
// before eval-jit has run.
func TypeBinding(t Type) Binding {
	return Binding{IsValue: false, Type: t}
}

// TopEnv is a mapping from fully-qualified names to typed bindings,
// preserving insertion order. It forms a commutative-with-shadowing
// monoid: the empty environment is the identity, and combination is a
// right-biased override on key collision that otherwise preserves stable
// traversal order — a name already present keeps its original position,
// but its binding is replaced by the right operand's.
type TopEnv struct {
	order []VarName
	table map[VarName]Binding
}

// EmptyTopEnv returns the identity element of the TopEnv monoid.
func EmptyTopEnv() TopEnv {
	return TopEnv{}
}

// Lookup returns the binding for name and whether it exists.
func (e TopEnv) Lookup(name VarName) (Binding, bool) {
	if e.table == nil {
		return Binding{}, false
	}
	b, ok := e.table[name]
	return b, ok
}

// With returns a new TopEnv with name bound to b, preserving e's
// existing order and appending name if it is new.
func (e TopEnv) With(name VarName, b Binding) TopEnv {
	order := e.order
	table := make(map[VarName]Binding, len(e.table)+1)
	for k, v := range e.table {
		table[k] = v
	}
	if _, exists := table[name]; !exists {
		order = append(append([]VarName{}, order...), name)
	}
	table[name] = b
	return TopEnv{order: order, table: table}
}

// Names returns the bound names in stable insertion order.
func (e TopEnv) Names() []VarName {
	return append([]VarName{}, e.order...)
}

// Concat combines two environments, right-biased: where both bind the same
// name, y's binding wins, but the name keeps the position it first
// occupied in x (or, if new to x, the position it occupied in y).
func (e TopEnv) Concat(x, y TopEnv) TopEnv {
	out := x
	for _, name := range y.order {
		out = out.With(name, y.table[name])
	}
	return out
}

// Empty returns the identity element, satisfying monoid.Monoid[TopEnv]. The
// receiver is ignored: Empty must be callable on any TopEnv value, not just
// the zero one, since monoid.Monoid methods are invoked on whatever
// instance was supplied to a generic caller (see TopEnvMonoid below).
func (e TopEnv) Empty() TopEnv { return EmptyTopEnv() }

// Pretty renders the environment as a sequence of "name : type [= value]"
// lines, in stable insertion order.
func (e TopEnv) Pretty() string {
	var b strings.Builder
	for _, name := range e.order {
		bind := e.table[name]
		b.WriteString(name)
		b.WriteString(" : ")
		b.WriteString(bind.Type.String())
		if bind.IsValue {
			b.WriteString(" = ")
			b.WriteString(bind.Value.Pretty())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TopEnvMonoid is the monoid.Monoid[TopEnv] instance used by every TopPass
// whose Env type parameter is TopEnv. EmptyTopEnv() itself is used as the
// instance — a zero-value TopEnv satisfying monoid.Monoid[TopEnv] via its
// Empty/Concat methods — rather than introducing a separate named type,
// since both methods ignore their receiver and operate only on their
// arguments.
var TopEnvMonoid monoid.Monoid[TopEnv] = EmptyTopEnv()
