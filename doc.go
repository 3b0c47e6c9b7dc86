// Package grad implements a scalar reverse-mode automatic differentiation engine.
//
// grad provides a Graph arena of scalar computation nodes and an operator
// layer (Add, Mul, Pow, Relu, ...) for composing them into a directed acyclic
// graph. Calling Backward on any node populates the gradient of every node it
// was computed from, via the chain rule. The grad/optimizer subpackage builds
// gradient descent on top of the engine.
//
// Basic usage:
//
//	g := grad.NewGraph()
//	a, err := g.Value(2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, _ := g.Value(-3)
//	c, _ := g.Mul(a, b)
//
//	if err := g.Backward(c); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Grad()) // -3
//
// Gradients accumulate additively across Backward calls; call
// Graph.ZeroGrad before reusing a graph for an independent pass.
package grad
