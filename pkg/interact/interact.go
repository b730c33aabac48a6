package interact

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-drift/interact/pkg/display"
	ierrors "github.com/go-drift/interact/pkg/errors"
)

// Reserved override keys, consumed before signature resolution. They
// configure the container rather than describe a parameter.
const (
	// OptManual forces manual mode when set to true.
	OptManual = "__manual"
	// OptClearOutput controls whether previous output is cleared before
	// each invocation. Defaults to true.
	OptClearOutput = "__clear_output"
)

// New builds a container for fn without displaying it. Callers that need
// to defer the initial display compose New with an explicit Display call;
// most callers want Interact instead.
//
// sig describes fn's parameters; a nil sig treats fn as uninspectable and
// binds every override directly. overrides map parameter names to
// abbreviation values, pre-built controls, or Fixed wrappers, and may
// carry the reserved Opt keys. out receives invocation results; nil means
// standard output.
func New(fn Func, sig Signature, overrides map[string]any, out display.Surface) (*Interactive, error) {
	if fn == nil {
		return nil, &ierrors.InteractError{
			Op:   "interact.New",
			Kind: ierrors.KindContract,
			Err:  fmt.Errorf("nil target function"),
		}
	}
	if out == nil {
		out = display.NewWriter(os.Stdout)
	}

	remaining := make(map[string]any, len(overrides))
	for k, v := range overrides {
		remaining[k] = v
	}
	manual, err := popBool(remaining, OptManual, false)
	if err != nil {
		return nil, err
	}
	clearOut, err := popBool(remaining, OptClearOutput, true)
	if err != nil {
		return nil, err
	}

	rs, leftover, err := resolve(sig, remaining)
	if err != nil {
		return nil, err
	}
	if sig != nil {
		named := make(map[string]bool, len(rs))
		for _, r := range rs {
			named[r.name] = true
		}
		if err := sig.validateCall(named, leftover); err != nil {
			return nil, err
		}
	}

	bounds, err := buildBindings(rs)
	if err != nil {
		return nil, err
	}

	return newInteractive(fn, bounds, out, manual, clearOut, runLabel(fn)), nil
}

// Interact builds a container for fn, displays it, and returns the handle
// pair of function and container. In reactive mode the initial invocation
// runs immediately, so out reflects the starting control values.
func Interact(fn Func, sig Signature, overrides map[string]any, out display.Surface) (*Interactive, error) {
	iv, err := New(fn, sig, overrides, out)
	if err != nil {
		return nil, err
	}
	iv.Display()
	return iv, nil
}

// InteractManual is Interact with manual mode forced: a Run button is
// added and the function runs only when it is pressed. Useful when the
// function is long-running and has several parameters to change.
func InteractManual(fn Func, sig Signature, overrides map[string]any, out display.Surface) (*Interactive, error) {
	forced := make(map[string]any, len(overrides)+1)
	for k, v := range overrides {
		forced[k] = v
	}
	forced[OptManual] = true
	return Interact(fn, sig, forced, out)
}

// With returns a builder holding the given overrides and sink, for
// decorator-style usage where one configuration is applied to several
// functions:
//
//	show := interact.With(map[string]any{"n": [2]int{0, 10}}, out)
//	iv, err := show(square, sig)
func With(overrides map[string]any, out display.Surface) func(Func, Signature) (*Interactive, error) {
	return func(fn Func, sig Signature) (*Interactive, error) {
		return Interact(fn, sig, overrides, out)
	}
}

// popBool consumes a reserved bool key from the override map.
func popBool(m map[string]any, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	delete(m, key)
	b, ok := v.(bool)
	if !ok {
		return false, &ierrors.InteractError{
			Op:   "interact.New",
			Kind: ierrors.KindContract,
			Err:  fmt.Errorf("reserved option %q must be a bool, got %T", key, v),
		}
	}
	return b, nil
}

// runLabel derives the manual trigger's label from the target's symbol
// name. Anonymous functions get a bare "Run".
func runLabel(fn Func) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || strings.HasPrefix(name, "func") {
		return "Run"
	}
	return "Run " + name
}
