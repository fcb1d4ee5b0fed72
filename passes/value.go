// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "strconv"

// Type is the closed set of types a binding can carry.
type Type int

const (
	IntType Type = iota
	BoolType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "Int"
	case BoolType:
		return "Bool"
	default:
		return "?"
	}
}

// Value is a runtime value produced by eval-jit: either an Int or a Bool.
// It is a closed variant, not an interface, since the two cases are fixed
// and always carried together with their Type.
type Value struct {
	Type    Type
	IntVal  int64
	BoolVal bool
}

// IntValue constructs an Int value.
func IntValue(n int64) Value { return Value{Type: IntType, IntVal: n} }

// BoolValue constructs a Bool value.
func BoolValue(b bool) Value { return Value{Type: BoolType, BoolVal: b} }

// Pretty renders a value the way ValOut and TextOut expect it.
func (v Value) Pretty() string {
	switch v.Type {
	case BoolType:
		return strconv.FormatBool(v.BoolVal)
	default:
		return strconv.FormatInt(v.IntVal, 10)
	}
}

// Atom is an unevaluated reference into a TopEnv, realized by name lookup.
type Atom struct {
	Name VarName
}

// VarName identifies a top-level binding. Duplicated here (rather than
// imported) to keep this package free of a dependency on dexcore.
type VarName = string

// LoadAtomVal realizes an Atom against an environment (load-atom-val). It
// fails with an UnboundVarErr-flavored zero Value and false when the name
// is not bound, or when the binding carries no value (type-only).
func LoadAtomVal(env TopEnv, atom Atom) (Value, bool) {
	b, ok := env.Lookup(atom.Name)
	if !ok || !b.IsValue {
		return Value{}, false
	}
	return b.Value, true
}
