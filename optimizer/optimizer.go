package optimizer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-grad/grad"
)

var (
	// ErrNoParameters is returned when the initial parameter vector is empty.
	ErrNoParameters = errors.New("optimizer: no parameters to optimize")

	// ErrNilForward is returned when no forward function is provided.
	ErrNilForward = errors.New("optimizer: nil forward function")
)

// Forward rebuilds the objective on a fresh graph from the current
// parameters. params holds one leaf per parameter, in order; the returned
// node is the scalar loss to minimize.
type Forward func(g *grad.Graph, params []grad.Value) (grad.Value, error)

// Config configures the descent. Zero values are replaced with defaults.
type Config struct {
	MaxSteps      int     `json:"max_steps"`      // default 1000
	LearningRate  float64 `json:"learning_rate"`  // default 0.01
	GradTolerance float64 `json:"grad_tolerance"` // zero → run all steps
}

// Descent minimizes a scalar objective with Adam and a cosine annealing
// learning rate schedule, using reverse-mode gradients from the grad engine.
type Descent struct {
	maxSteps      int
	learningRate  float64
	gradTolerance float64
}

// New creates a Descent with the given config. Zero-valued fields receive
// defaults: MaxSteps=1000, LearningRate=0.01.
func New(cfg Config) *Descent {
	d := &Descent{
		maxSteps:      cfg.MaxSteps,
		learningRate:  cfg.LearningRate,
		gradTolerance: cfg.GradTolerance,
	}
	if d.maxSteps == 0 {
		d.maxSteps = 1000
	}
	if d.learningRate == 0 {
		d.learningRate = 0.01
	}
	return d
}

// Result reports the outcome of a Minimize call.
type Result struct {
	Params []float64 // best parameters seen
	Loss   float64   // loss at Params
	Steps  int       // steps executed
}

// Minimize runs gradient descent from init and returns the best parameters
// seen. Each step rebuilds the objective via f on a fresh graph and reads
// gradients from its leaves after a backward pass. Stops early when the
// gradient L2 norm drops below GradTolerance (if set) or when ctx is
// cancelled; on cancellation the best result so far is returned along with
// the context error.
func (d *Descent) Minimize(ctx context.Context, init []float64, f Forward) (Result, error) {
	if len(init) == 0 {
		return Result{}, ErrNoParameters
	}
	if f == nil {
		return Result{}, ErrNilForward
	}

	params := append([]float64(nil), init...)
	adam := NewAdam(d.learningRate)
	sched := NewCosineAnnealing(d.learningRate, d.maxSteps)
	grads := make([]float64, len(params))

	best := Result{Params: append([]float64(nil), params...), Loss: math.Inf(1)}

	for step := 1; step <= d.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		g := grad.NewGraph()
		leaves := make([]grad.Value, len(params))
		for i, p := range params {
			v, err := g.Value(p)
			if err != nil {
				return best, fmt.Errorf("optimizer: parameter %d: %w", i, err)
			}
			leaves[i] = v
		}

		loss, err := f(g, leaves)
		if err != nil {
			return best, fmt.Errorf("optimizer: forward: %w", err)
		}
		if err := g.Backward(loss); err != nil {
			return best, fmt.Errorf("optimizer: backward: %w", err)
		}
		for i, leaf := range leaves {
			grads[i] = leaf.Grad()
		}

		best.Steps = step
		if loss.Value() < best.Loss {
			best.Loss = loss.Value()
			copy(best.Params, params)
		}

		if d.gradTolerance > 0 && l2Norm(grads) < d.gradTolerance {
			return best, nil
		}

		params = adam.Update(params, grads)
		adam.SetLR(sched.Step())
	}

	return best, nil
}

func l2Norm(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum)
}
