package grad

import (
	"fmt"
	"math"
)

// Operator methods. Each takes existing nodes, computes the forward value,
// and records a new node with its operands and Op tag; the local gradient
// rules live in backward.go, keyed by the tag. Construction is atomic: on
// error no node is appended.
//
// All operators reject a non-finite forward result (overflow) with
// ErrInvalidValue so that every stored value stays a finite real.

// Add returns a node computing a + b.
// Backward: da += dout; db += dout.
func (g *Graph) Add(a, b Value) (Value, error) {
	if err := g.checkAll(a, b); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpAdd, a.Value()+b.Value(), a.id, b.id, 0)
}

// Mul returns a node computing a * b.
// Backward: da += b.value*dout; db += a.value*dout.
func (g *Graph) Mul(a, b Value) (Value, error) {
	if err := g.checkAll(a, b); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpMul, a.Value()*b.Value(), a.id, b.id, 0)
}

// Pow returns a node computing a^k for a fixed real exponent k. The
// exponent is a constant, not a graph node; differentiating with respect
// to the exponent is unsupported.
// Backward: da += k * a.value^(k-1) * dout.
//
// Returns ErrDomain for a negative base with a non-integer exponent, and
// ErrDivisionByZero for a zero base with a negative exponent.
func (g *Graph) Pow(a Value, k float64) (Value, error) {
	if err := g.check(a); err != nil {
		return Value{}, err
	}
	if !isFinite(k) {
		return Value{}, fmt.Errorf("%w: exponent %v", ErrInvalidValue, k)
	}
	base := a.Value()
	if base < 0 && k != math.Trunc(k) {
		return Value{}, fmt.Errorf("%w: %v^%v", ErrDomain, base, k)
	}
	if base == 0 && k < 0 {
		return Value{}, fmt.Errorf("%w: 0^%v", ErrDivisionByZero, k)
	}
	return g.appendOp(OpPow, math.Pow(base, k), a.id, 0, k)
}

// Neg returns a node computing -a.
// Backward: da += -dout.
func (g *Graph) Neg(a Value) (Value, error) {
	if err := g.check(a); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpNeg, -a.Value(), a.id, 0, 0)
}

// Relu returns a node computing max(0, a).
// Backward: da += dout when a.value > 0, else nothing; the kink at
// exactly 0 passes no gradient.
func (g *Graph) Relu(a Value) (Value, error) {
	if err := g.check(a); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpRelu, math.Max(0, a.Value()), a.id, 0, 0)
}

// Tanh returns a node computing tanh(a).
// Backward: da += (1 - out²) * dout.
func (g *Graph) Tanh(a Value) (Value, error) {
	if err := g.check(a); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpTanh, math.Tanh(a.Value()), a.id, 0, 0)
}

// Exp returns a node computing e^a.
// Backward: da += out * dout.
func (g *Graph) Exp(a Value) (Value, error) {
	if err := g.check(a); err != nil {
		return Value{}, err
	}
	return g.appendOp(OpExp, math.Exp(a.Value()), a.id, 0, 0)
}

// Sub returns a node computing a - b, expressed as a + (-b).
func (g *Graph) Sub(a, b Value) (Value, error) {
	nb, err := g.Neg(b)
	if err != nil {
		return Value{}, err
	}
	return g.Add(a, nb)
}

// Div returns a node computing a / b, expressed as a * b^(-1).
// Returns ErrDivisionByZero when b's value is exactly 0; the check runs
// before any node is appended.
func (g *Graph) Div(a, b Value) (Value, error) {
	if err := g.checkAll(a, b); err != nil {
		return Value{}, err
	}
	if b.Value() == 0 {
		return Value{}, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, a.Value())
	}
	inv, err := g.Pow(b, -1)
	if err != nil {
		return Value{}, err
	}
	return g.Mul(a, inv)
}

// appendOp validates the forward result and stores the derived node.
func (g *Graph) appendOp(op Op, out float64, a, b int32, aux float64) (Value, error) {
	if !isFinite(out) {
		return Value{}, fmt.Errorf("%w: %s result %v", ErrInvalidValue, op, out)
	}
	return g.append(node{value: out, op: op, operands: [2]int32{a, b}, aux: aux}), nil
}

func (g *Graph) checkAll(vs ...Value) error {
	for _, v := range vs {
		if err := g.check(v); err != nil {
			return err
		}
	}
	return nil
}
