package interact

import (
	"github.com/google/uuid"

	"github.com/go-drift/interact/pkg/controls"
	"github.com/go-drift/interact/pkg/display"
	ierrors "github.com/go-drift/interact/pkg/errors"
)

// Args is the parameter-to-value mapping for one call of the target
// function. It is rebuilt fresh immediately before every invocation.
type Args map[string]any

// Func is the target of an interact container. It receives the current
// control values keyed by parameter name. A non-nil result is rendered to
// the output surface; a non-nil error is reported through the error
// handler and ends the invocation without propagating.
type Func func(args Args) (any, error)

// Interactive owns the ordered controls tied to a function and drives its
// re-invocation.
//
// In reactive mode (the default), any value change on any control invokes
// the function, and one invocation runs automatically when the container
// is first displayed so the output reflects the starting values. In manual
// mode a Run button is added; only the button (or a submit on a text
// control) invokes the function, and the button is disabled for the
// duration of each invocation.
//
// All of this runs synchronously on the host's event-processing goroutine;
// Interactive spawns none of its own.
type Interactive struct {
	// Result holds the value returned by the most recent successful
	// invocation.
	Result any

	id        string
	fn        Func
	manual    bool
	clear     bool
	bounds    []bound
	run       *controls.Button
	out       display.Surface
	unsubs    []func()
	displayed bool
}

// newInteractive assembles the container from already-built bindings and
// wires the mode's event subscriptions.
func newInteractive(fn Func, bounds []bound, out display.Surface, manual, clear bool, runLabel string) *Interactive {
	iv := &Interactive{
		id:     uuid.NewString(),
		fn:     fn,
		manual: manual,
		clear:  clear,
		bounds: bounds,
		out:    out,
	}

	if manual {
		iv.run = controls.NewButton(runLabel)
		iv.unsubs = append(iv.unsubs, iv.run.ObserveClick(iv.invoke))
		// Text entry can trigger a run without reaching for the button.
		for _, b := range bounds {
			if t, ok := b.control.(*controls.Text); ok {
				iv.unsubs = append(iv.unsubs, t.ObserveSubmit(iv.invoke))
			}
		}
	} else {
		for _, b := range bounds {
			if b.control != nil {
				iv.unsubs = append(iv.unsubs, b.control.Observe(iv.invoke))
			}
		}
	}
	return iv
}

// ID returns the container's unique identifier.
func (iv *Interactive) ID() string {
	return iv.id
}

// Controls returns the displayed controls in declaration order. Fixed
// pass-throughs are not controls and never appear here.
func (iv *Interactive) Controls() []controls.Control {
	var cs []controls.Control
	for _, b := range iv.bounds {
		if b.control != nil {
			cs = append(cs, b.control)
		}
	}
	return cs
}

// RunButton returns the manual-mode trigger, or nil in reactive mode.
func (iv *Interactive) RunButton() *controls.Button {
	return iv.run
}

// Manual reports whether the container runs in manual mode.
func (iv *Interactive) Manual() bool {
	return iv.manual
}

// Target returns the function the container is tied to.
func (iv *Interactive) Target() Func {
	return iv.fn
}

// Args returns a fresh snapshot of the current invocation state.
func (iv *Interactive) Args() Args {
	args := make(Args, len(iv.bounds))
	for _, b := range iv.bounds {
		args[b.key] = b.value()
	}
	return args
}

// Display marks the container as shown by the host. In reactive mode this
// performs the initial automatic invocation, driven by a no-op change
// event. Repeated calls do nothing.
func (iv *Interactive) Display() {
	if iv.displayed {
		return
	}
	iv.displayed = true
	if !iv.manual {
		iv.invoke(controls.Change{})
	}
}

// Dispose removes every event subscription the container holds on its
// controls. The controls themselves stay usable.
func (iv *Interactive) Dispose() {
	for _, unsub := range iv.unsubs {
		unsub()
	}
	iv.unsubs = nil
}

// invoke performs one logical invocation transaction: snapshot the current
// control values, clear prior output when configured, call the target, and
// route the result. Errors and panics from the target are reported through
// the error handler and never propagate; the container stays usable. The
// manual trigger is disabled for the duration, re-enabled on every exit
// path.
func (iv *Interactive) invoke(controls.Change) {
	if iv.run != nil {
		iv.run.SetDisabled(true)
	}
	defer func() {
		if iv.run != nil {
			iv.run.SetDisabled(false)
		}
	}()
	defer ierrors.Recover("interact.invoke")

	args := iv.Args()

	if iv.clear {
		iv.out.Clear()
	}
	result, err := iv.fn(args)
	if err != nil {
		ierrors.Report(&ierrors.InteractError{
			Op:   "interact.invoke",
			Kind: ierrors.KindInvocation,
			Err:  err,
		})
		return
	}
	iv.Result = result
	if result != nil {
		iv.out.Render(result)
	}
}
