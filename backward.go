package grad

import (
	"fmt"
	"math"
)

// Node visitation states during one topological sort. The state slice is
// scoped to a single Backward call; nodes carry no persistent visited flag,
// so the same graph can run any number of later passes.
const (
	unvisited uint8 = iota
	inProgress
	done
)

// Backward runs a reverse-mode differentiation pass from root.
//
// It seeds root's gradient with +1 (additively, so gradients keep
// accumulating across repeated Backward calls until ZeroGrad), computes a
// depth-first post-order topological ordering of every node reachable from
// root through its operands, and replays each node's local gradient rule in
// reverse order, accumulating into the operands' gradients.
//
// Each reachable node is visited exactly once, keyed by node identity, so
// shared subexpressions contribute once per use. Returns ErrCyclicGraph if
// the operand relation contains a cycle; the public API cannot construct
// one, so this is a defensive check.
func (g *Graph) Backward(root Value) error {
	if err := g.check(root); err != nil {
		return err
	}

	order, err := g.topoSort(root.id)
	if err != nil {
		return err
	}

	g.nodes[root.id].grad += 1

	// Post-order places leaves first; replay root-first.
	for i := len(order) - 1; i >= 0; i-- {
		g.applyRule(order[i])
	}
	return nil
}

// topoSort returns the nodes reachable from root in depth-first post-order:
// every node appears after all of its operands.
func (g *Graph) topoSort(root int32) ([]int32, error) {
	type frame struct {
		id   int32
		next int // index of the next operand edge to follow
	}

	state := make([]uint8, len(g.nodes))
	order := make([]int32, 0, len(g.nodes))
	stack := []frame{{id: root}}
	state[root] = inProgress

	for len(stack) > 0 {
		top := len(stack) - 1
		id := stack[top].id
		n := &g.nodes[id]

		if stack[top].next < n.op.arity() {
			child := n.operands[stack[top].next]
			stack[top].next++
			switch state[child] {
			case inProgress:
				return nil, fmt.Errorf("%w: node %d revisited", ErrCyclicGraph, child)
			case unvisited:
				state[child] = inProgress
				stack = append(stack, frame{id: child})
			}
			continue
		}

		state[id] = done
		order = append(order, id)
		stack = stack[:top]
	}
	return order, nil
}

// applyRule accumulates the node's chain-rule contribution into each
// operand's gradient, reading only the node's own grad and the operands'
// forward values.
func (g *Graph) applyRule(id int32) {
	n := g.nodes[id]
	a, b := n.operands[0], n.operands[1]

	switch n.op {
	case OpLeaf:
		// No operands; nothing flows further back.
	case OpAdd:
		g.nodes[a].grad += n.grad
		g.nodes[b].grad += n.grad
	case OpMul:
		av, bv := g.nodes[a].value, g.nodes[b].value
		g.nodes[a].grad += bv * n.grad
		g.nodes[b].grad += av * n.grad
	case OpPow:
		k := n.aux
		g.nodes[a].grad += k * math.Pow(g.nodes[a].value, k-1) * n.grad
	case OpNeg:
		g.nodes[a].grad -= n.grad
	case OpRelu:
		if g.nodes[a].value > 0 {
			g.nodes[a].grad += n.grad
		}
	case OpTanh:
		g.nodes[a].grad += (1 - n.value*n.value) * n.grad
	case OpExp:
		g.nodes[a].grad += n.value * n.grad
	}
}
