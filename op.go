package grad

import (
	"encoding"
	"fmt"
)

// Op identifies the operation that produced a node.
type Op int

const (
	OpLeaf Op = iota // User-supplied input, no operands.
	OpAdd            // a + b
	OpMul            // a * b
	OpPow            // a ^ k, k a fixed real exponent
	OpNeg            // -a
	OpRelu           // max(0, a)
	OpTanh           // tanh(a)
	OpExp            // e^a
)

var (
	opNames = [...]string{
		OpLeaf: "leaf",
		OpAdd:  "add",
		OpMul:  "mul",
		OpPow:  "pow",
		OpNeg:  "neg",
		OpRelu: "relu",
		OpTanh: "tanh",
		OpExp:  "exp",
	}
	opByName = map[string]Op{
		"leaf": OpLeaf,
		"add":  OpAdd,
		"mul":  OpMul,
		"pow":  OpPow,
		"neg":  OpNeg,
		"relu": OpRelu,
		"tanh": OpTanh,
		"exp":  OpExp,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Op(0)
	_ encoding.TextMarshaler   = Op(0)
	_ encoding.TextUnmarshaler = (*Op)(nil)
)

// IsValid reports whether o is a known operation.
func (o Op) IsValid() bool {
	return o >= OpLeaf && o <= OpExp
}

// arity returns the number of operands nodes produced by o carry.
func (o Op) arity() int {
	switch o {
	case OpLeaf:
		return 0
	case OpAdd, OpMul:
		return 2
	default:
		return 1
	}
}

// String returns the name of the operation ("leaf", "add", "mul", ...).
// For invalid values it returns "Op(n)".
func (o Op) String() string {
	if o.IsValid() {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("grad: invalid op: %d", int(o))
	}
	return []byte(opNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) error {
	v, ok := opByName[string(text)]
	if !ok {
		return fmt.Errorf("grad: invalid op: %q", text)
	}
	*o = v
	return nil
}
