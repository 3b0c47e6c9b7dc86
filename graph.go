package grad

import (
	"fmt"
	"math"
)

// node is a single scalar computation stored in a Graph arena.
// Operands are arena indices, always smaller than the node's own index,
// which makes the operand relation acyclic by construction.
type node struct {
	value    float64 // forward result, finite, set once
	grad     float64 // accumulated gradient, reset via ZeroGrad
	op       Op
	operands [2]int32
	aux      float64 // exponent for OpPow, unused otherwise
	label    string
}

// Graph is an append-only arena of computation nodes. Nodes are created
// through the leaf constructor [Graph.Value] and the operator methods
// (Add, Mul, ...) and referenced through [Value] handles.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty computation graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Value creates a leaf node holding x, with zero gradient and no operands.
// Returns ErrInvalidValue if x is NaN or infinite.
func (g *Graph) Value(x float64) (Value, error) {
	if !isFinite(x) {
		return Value{}, fmt.Errorf("%w: leaf %v", ErrInvalidValue, x)
	}
	return g.append(node{value: x, op: OpLeaf}), nil
}

// ZeroGrad resets the gradient of every node in the graph to zero.
// Gradients accumulate additively across Backward calls, so callers must
// invoke ZeroGrad before reusing the graph for an independent pass.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}

// append stores n in the arena and returns its handle.
func (g *Graph) append(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{g: g, id: int32(len(g.nodes) - 1)}
}

// check validates that v is a live handle into g.
func (g *Graph) check(v Value) error {
	if v.g != g {
		return ErrWrongGraph
	}
	if v.id < 0 || int(v.id) >= len(g.nodes) {
		return fmt.Errorf("%w: index %d out of range", ErrWrongGraph, v.id)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
