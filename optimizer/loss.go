package optimizer

import (
	"errors"
	"fmt"

	"github.com/go-grad/grad"
)

// ErrNoData is returned when a loss helper receives no prediction/target pairs.
var ErrNoData = errors.New("optimizer: no prediction/target pairs")

// MeanSquaredError returns a node computing Σ(pred[i]-target[i])² / n,
// composed from the engine's primitives so gradients flow to every input.
func MeanSquaredError(g *grad.Graph, pred, target []grad.Value) (grad.Value, error) {
	if len(pred) != len(target) {
		return grad.Value{}, fmt.Errorf("optimizer: %d predictions vs %d targets", len(pred), len(target))
	}
	if len(pred) == 0 {
		return grad.Value{}, ErrNoData
	}

	var sum grad.Value
	for i := range pred {
		diff, err := g.Sub(pred[i], target[i])
		if err != nil {
			return grad.Value{}, err
		}
		sq, err := g.Mul(diff, diff)
		if err != nil {
			return grad.Value{}, err
		}
		if i == 0 {
			sum = sq
			continue
		}
		if sum, err = g.Add(sum, sq); err != nil {
			return grad.Value{}, err
		}
	}

	n, err := g.Value(float64(len(pred)))
	if err != nil {
		return grad.Value{}, err
	}
	return g.Div(sum, n)
}
