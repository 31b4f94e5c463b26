package determinize

import (
	"context"
	"fmt"
)

// Option configures a determinization run via functional arguments.
// If an Option is invalid (e.g. a negative state cap), it is recorded
// internally and surfaced as ErrOptionViolation when the run is invoked.
type Option func(*DeterminizeOptions)

// DeterminizeOptions holds parameters and callbacks customizing a run.
type DeterminizeOptions struct {
	// Ctx allows cancellation and deadlines; it is polled once per
	// worklist iteration.
	Ctx context.Context

	// MaxStates, if > 0, caps the number of output states; exceeding it
	// aborts the run with ErrStateLimit. A value of 0 disables the cap.
	MaxStates int

	// Diagnostic, if set, is called once per worklist iteration with a
	// snapshot of the run. It must not retain the snapshot's Traceback
	// beyond the call.
	Diagnostic func(Progress)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DeterminizeOptions with sane defaults:
//   - context.Background()
//   - no state cap (MaxStates == 0)
//   - no diagnostic callback.
func DefaultOptions() DeterminizeOptions {
	return DeterminizeOptions{
		Ctx:        context.Background(),
		MaxStates:  0,
		Diagnostic: nil,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DeterminizeOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates caps the number of output states.
//
//	n > 0: abort with ErrStateLimit past n states
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *DeterminizeOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no cap"
			o.MaxStates = 0
		default:
			o.MaxStates = n
		}
	}
}

// WithDiagnostic registers a per-iteration progress callback.
func WithDiagnostic(fn func(Progress)) Option {
	return func(o *DeterminizeOptions) {
		if fn != nil {
			o.Diagnostic = fn
		}
	}
}

// Progress is the snapshot handed to the diagnostic callback before an
// output state is expanded.
type Progress struct {
	// State is the output state about to be expanded.
	State int

	// NumStates is the number of output states discovered so far.
	NumStates int

	// NumArcs is the number of buffered output arcs so far.
	NumArcs int

	// QueueLen is the number of pending worklist entries.
	QueueLen int

	// Traceback reconstructs the label path from the start state to
	// State: one step per determinized arc, carrying the arc's input
	// label and the output labels it accumulated. Valid only during the
	// callback.
	Traceback func() []TraceStep
}

// TraceStep is one determinized arc on a traceback path. Labels are
// widened to int64 so Progress stays independent of the label type.
type TraceStep struct {
	// In is the input label consumed by the step (0 for epsilon).
	In int64

	// Out holds the output labels emitted by the step, possibly empty.
	Out []int64
}
