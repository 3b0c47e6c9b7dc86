package grad

import (
	"errors"
	"math"
	"testing"
)

// --- forward values ---

func TestForwardBinary(t *testing.T) {
	tests := []struct {
		name string
		op   func(g *Graph, a, b Value) (Value, error)
		a, b float64
		want float64
	}{
		{"add", (*Graph).Add, 2, 3, 5},
		{"add negative", (*Graph).Add, 2, -3, -1},
		{"mul", (*Graph).Mul, 2, -3, -6},
		{"sub", (*Graph).Sub, 2, 3, -1},
		{"div", (*Graph).Div, 7, 2, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			a := mustValue(t, g, tt.a)
			b := mustValue(t, g, tt.b)
			c, err := tt.op(g, a, b)
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			assertFloat(t, tt.name, c.Value(), tt.want)
		})
	}
}

func TestForwardUnary(t *testing.T) {
	tests := []struct {
		name string
		op   func(g *Graph, a Value) (Value, error)
		a    float64
		want float64
	}{
		{"neg", (*Graph).Neg, 2, -2},
		{"relu positive", (*Graph).Relu, 3, 3},
		{"relu negative", (*Graph).Relu, -3, 0},
		{"relu zero", (*Graph).Relu, 0, 0},
		{"tanh zero", (*Graph).Tanh, 0, 0},
		{"tanh", (*Graph).Tanh, 1, math.Tanh(1)},
		{"exp zero", (*Graph).Exp, 0, 1},
		{"exp", (*Graph).Exp, 2, math.Exp(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			a := mustValue(t, g, tt.a)
			c, err := tt.op(g, a)
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			assertFloat(t, tt.name, c.Value(), tt.want)
		})
	}
}

func TestForwardPow(t *testing.T) {
	tests := []struct {
		name string
		a, k float64
		want float64
	}{
		{"square", 3, 2, 9},
		{"inverse", 4, -1, 0.25},
		{"sqrt", 9, 0.5, 3},
		{"negative base integer exponent", -2, 3, -8},
		{"zero exponent", 5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			a := mustValue(t, g, tt.a)
			c, err := g.Pow(a, tt.k)
			if err != nil {
				t.Fatalf("Pow(%v, %v): %v", tt.a, tt.k, err)
			}
			assertFloat(t, tt.name, c.Value(), tt.want)
		})
	}
}

// --- operand recording ---

func TestOperandsRecorded(t *testing.T) {
	g := NewGraph()
	a := mustValue(t, g, 2)
	b := mustValue(t, g, 3)
	c, _ := g.Add(a, b)

	if c.Op() != OpAdd {
		t.Errorf("Op = %v, want add", c.Op())
	}
	ops := c.Operands()
	if len(ops) != 2 {
		t.Fatalf("len(Operands) = %d, want 2", len(ops))
	}
	assertFloat(t, "operand 0", ops[0].Value(), 2)
	assertFloat(t, "operand 1", ops[1].Value(), 3)
}

func TestCompositionalSubDiv(t *testing.T) {
	// Sub and Div are built from the primitives, not ops of their own.
	g := NewGraph()
	a := mustValue(t, g, 6)
	b := mustValue(t, g, 2)

	s, _ := g.Sub(a, b)
	if s.Op() != OpAdd {
		t.Errorf("Sub Op = %v, want add", s.Op())
	}
	d, _ := g.Div(a, b)
	if d.Op() != OpMul {
		t.Errorf("Div Op = %v, want mul", d.Op())
	}
	assertFloat(t, "sub", s.Value(), 4)
	assertFloat(t, "div", d.Value(), 3)
}

// --- error conditions ---

func TestDivByZero(t *testing.T) {
	g := NewGraph()
	a := mustValue(t, g, 1)
	b := mustValue(t, g, 0)

	before := g.Len()
	_, err := g.Div(a, b)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div err = %v, want ErrDivisionByZero", err)
	}
	// Atomic construction: the failed Div appended nothing.
	if g.Len() != before {
		t.Errorf("Len = %d after failed Div, want %d", g.Len(), before)
	}
}

func TestPowDomainError(t *testing.T) {
	g := NewGraph()
	a := mustValue(t, g, -2)
	_, err := g.Pow(a, 0.5)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("Pow(-2, 0.5) err = %v, want ErrDomain", err)
	}
}

func TestPowZeroBaseNegativeExponent(t *testing.T) {
	g := NewGraph()
	a := mustValue(t, g, 0)
	_, err := g.Pow(a, -1)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Pow(0, -1) err = %v, want ErrDivisionByZero", err)
	}
}

func TestOverflowRejected(t *testing.T) {
	g := NewGraph()
	big := mustValue(t, g, math.MaxFloat64)

	if _, err := g.Add(big, big); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Add overflow err = %v, want ErrInvalidValue", err)
	}
	if _, err := g.Mul(big, big); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Mul overflow err = %v, want ErrInvalidValue", err)
	}
	x := mustValue(t, g, 1000)
	if _, err := g.Exp(x); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Exp overflow err = %v, want ErrInvalidValue", err)
	}
}
