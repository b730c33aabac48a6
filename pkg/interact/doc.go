// Package interact infers interactive controls from a function's
// parameter specification and re-invokes the function when they change.
//
// Given a target function and a Signature describing its parameters, the
// package resolves each parameter to an abbreviation (a compact value
// that implies a control kind and initial state), builds the controls, and
// wires their change events to re-invocation of the function, routing each
// result to an output surface.
//
// # Abbreviations
//
// An abbreviation can be a bare Go value or an explicit constructor:
//
//   - a string, bool, or number makes a text box, checkbox, or slider
//     seeded with that value (slider bounds derived from the number);
//   - a 2- or 3-element numeric array, or Range / RangeStep, makes a
//     slider over (min, max[, step]);
//   - a slice, map, or Options / OptionsMap makes a dropdown;
//   - a pre-built control from pkg/controls is used as-is;
//   - Fixed(v) passes v to the function unchanged, with no control.
//
// Per parameter, an explicit override wins over the declared annotation,
// which wins over the declared default; a parameter with none of the three
// fails resolution.
//
// # Usage
//
//	square := func(args interact.Args) (any, error) {
//	    n := args["n"].(int)
//	    return n * n, nil
//	}
//
//	sig := interact.Signature{
//	    interact.Param{Name: "n"}.WithDefault(5),
//	}
//
//	iv, err := interact.Interact(square, sig, nil, display.NewWriter(os.Stdout))
//
// The container invokes the function once on display and again on every
// control change. InteractManual defers invocation to an explicit Run
// button instead. The returned *Interactive is the handle for inspecting
// controls, the latest Result, and the run trigger.
//
// # Modes and reserved keys
//
// The override map may carry the reserved keys OptManual and
// OptClearOutput, consumed before resolution. Overrides can also be
// declared in YAML through Preset.
package interact
