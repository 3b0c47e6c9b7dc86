// Package optimizer minimizes scalar objectives by gradient descent over
// the grad engine.
//
// A caller supplies a [Forward] function that rebuilds the objective on a
// fresh graph from the current parameter vector (node values are immutable,
// so every step constructs a new graph). [Descent.Minimize] then iterates:
// build, Backward, read leaf gradients, and update the parameters with the
// [Adam] optimizer under a [CosineAnnealing] learning rate schedule.
//
// # Usage
//
//	d := optimizer.New(optimizer.Config{})
//	res, err := d.Minimize(ctx, []float64{0}, func(g *grad.Graph, p []grad.Value) (grad.Value, error) {
//	    three, err := g.Value(3)
//	    if err != nil {
//	        return grad.Value{}, err
//	    }
//	    diff, err := g.Sub(p[0], three)
//	    if err != nil {
//	        return grad.Value{}, err
//	    }
//	    return g.Mul(diff, diff) // (x - 3)²
//	})
//
// The context can be used to cancel long-running optimization.
package optimizer
