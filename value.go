package grad

import "fmt"

// Value is a handle to a node in a computation graph. The zero Value is
// invalid; handles are obtained from [Graph.Value] and the operator methods.
// Copying a Value is cheap and both copies refer to the same node.
type Value struct {
	g  *Graph
	id int32
}

// Value returns the forward-computed scalar. It is fixed at construction.
func (v Value) Value() float64 {
	return v.g.nodes[v.id].value
}

// Grad returns the gradient accumulated by Backward passes since the last
// ZeroGrad. Zero before any Backward call.
func (v Value) Grad() float64 {
	return v.g.nodes[v.id].grad
}

// Op returns the operation that produced this node. OpLeaf for inputs.
func (v Value) Op() Op {
	return v.g.nodes[v.id].op
}

// Operands returns handles to the nodes this node was computed from,
// in operator argument order. Empty for leaves.
func (v Value) Operands() []Value {
	n := v.g.nodes[v.id]
	out := make([]Value, n.op.arity())
	for i := range out {
		out[i] = Value{g: v.g, id: n.operands[i]}
	}
	return out
}

// Label returns the debugging annotation set by SetLabel, or "".
func (v Value) Label() string {
	return v.g.nodes[v.id].label
}

// SetLabel attaches a debugging annotation to the node. It has no effect
// on computation.
func (v Value) SetLabel(label string) {
	v.g.nodes[v.id].label = label
}

// String returns a debug representation like "Value(value=4.0000, grad=1.0000)".
func (v Value) String() string {
	if v.g == nil {
		return "Value(invalid)"
	}
	n := v.g.nodes[v.id]
	if n.label != "" {
		return fmt.Sprintf("Value(%s, value=%.4f, grad=%.4f)", n.label, n.value, n.grad)
	}
	return fmt.Sprintf("Value(value=%.4f, grad=%.4f)", n.value, n.grad)
}
