package bootstrap

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/chronos-atelier/chronos-backend/pkg/logger"
)

// State tracks the warm-up lifecycle of the storefront.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
)

// Step is one named warm-up fetch. Steps are isolated: a failing step is
// recorded and the remaining steps still run.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Loader executes the warm-up steps once and reports readiness afterwards.
type Loader struct {
	steps []Step
	logg  *logger.Logger

	mu       sync.Mutex
	state    State
	failures map[string]error
}

// NewLoader builds a loader over the given steps.
func NewLoader(logg *logger.Logger, steps ...Step) (*Loader, error) {
	seen := map[string]bool{}
	for _, step := range steps {
		if step.Name == "" || step.Run == nil {
			return nil, fmt.Errorf("bootstrap steps need a name and a run function")
		}
		if seen[step.Name] {
			return nil, fmt.Errorf("duplicate bootstrap step %q", step.Name)
		}
		seen[step.Name] = true
	}
	return &Loader{
		steps:    steps,
		logg:     logg,
		state:    StateUninitialized,
		failures: map[string]error{},
	}, nil
}

// Run executes every step in order. It returns the combined error of the
// steps that failed, but always finishes the full pass and marks the loader
// ready: a broken back-office fetch must not take the storefront down.
func (l *Loader) Run(ctx context.Context) error {
	l.setState(StateLoading)

	var combined error
	for _, step := range l.steps {
		if err := l.runStep(ctx, step); err != nil {
			combined = multierr.Append(combined, fmt.Errorf("%s: %w", step.Name, err))
		}
	}

	l.setState(StateReady)
	return combined
}

func (l *Loader) runStep(ctx context.Context, step Step) error {
	err := step.Run(ctx)

	l.mu.Lock()
	if err != nil {
		l.failures[step.Name] = err
	} else {
		delete(l.failures, step.Name)
	}
	l.mu.Unlock()

	if l.logg != nil {
		if err != nil {
			l.logg.Error(ctx, "bootstrap step failed: "+step.Name, err)
		} else {
			l.logg.Info(ctx, "bootstrap step complete: "+step.Name)
		}
	}
	return err
}

// Ready reports whether the warm-up pass has finished.
func (l *Loader) Ready() bool {
	return l.State() == StateReady
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Failures returns the errors of the steps that failed, keyed by step name.
func (l *Loader) Failures() map[string]error {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]error, len(l.failures))
	for name, err := range l.failures {
		out[name] = err
	}
	return out
}

func (l *Loader) setState(state State) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()
}
