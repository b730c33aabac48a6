package interact

import (
	"fmt"
	"math"

	"github.com/go-drift/interact/pkg/controls"
	ierrors "github.com/go-drift/interact/pkg/errors"
)

// bound ties one binding key to its value source: either a displayed
// control or a fixed pass-through.
type bound struct {
	key     string
	control controls.Control
	fixed   *FixedValue
}

// value applies the source's own extraction rule.
func (b bound) value() any {
	if b.fixed != nil {
		return b.fixed.Value()
	}
	return b.control.Value()
}

// buildBindings classifies each resolved triple and turns it into exactly
// one control or one fixed pass-through. Controls without a label get the
// parameter name as description, and always carry it as binding key.
func buildBindings(rs []resolved) ([]bound, error) {
	bounds := make([]bound, 0, len(rs))
	for _, r := range rs {
		a, err := Classify(r.value)
		if err != nil {
			return nil, abbrevErr(r.name, err)
		}
		c, f, err := fromAbbrev(a, r.def, r.hasDef)
		if err != nil {
			return nil, abbrevErr(r.name, err)
		}
		if f != nil {
			bounds = append(bounds, bound{key: r.name, fixed: f})
			continue
		}
		if c.Description() == "" {
			c.SetDescription(r.name)
		}
		c.SetKey(r.name)
		bounds = append(bounds, bound{key: r.name, control: c})
	}
	return bounds, nil
}

// fromAbbrev converts one classified abbreviation into a control or a
// fixed pass-through. A supplied default is applied best-effort: a control
// that rejects it keeps its computed initial value.
func fromAbbrev(a Abbrev, def any, hasDef bool) (controls.Control, *FixedValue, error) {
	switch x := a.(type) {
	case *FixedValue:
		return nil, x, nil
	case controlAbbrev:
		return x.control, nil, nil
	case rangeAbbrev:
		c, err := rangeControl(x)
		if err != nil {
			return nil, nil, err
		}
		if hasDef {
			_ = c.SetValue(def)
		}
		return c, nil, nil
	case scalarAbbrev:
		return scalarControl(x.value), nil, nil
	case choicesAbbrev:
		d := controls.NewDropdown(x.options)
		if hasDef {
			_ = d.SetValue(def)
		}
		return d, nil, nil
	}
	return nil, nil, fmt.Errorf("cannot infer a control for abbreviation %T", a)
}

// rangeControl builds a slider for a (min, max[, step]) range. The initial
// value sits at the midpoint, snapped down onto the min+k*step lattice when
// a step is given. Integer ranges use integer division throughout so the
// value keeps its type.
func rangeControl(a rangeAbbrev) (controls.Control, error) {
	if a.hasStep && a.step <= 0 {
		return nil, fmt.Errorf("step must be > 0, not %v", a.step)
	}
	if a.integral {
		min, max := int(a.min), int(a.max)
		if max <= min {
			return nil, fmt.Errorf("max must be greater than min: (min=%d, max=%d)", min, max)
		}
		value := min + (max-min)/2
		s := controls.NewIntSlider(value, min, max)
		if a.hasStep {
			step := int(a.step)
			if err := s.SetStep(step); err != nil {
				return nil, fmt.Errorf("step must be > 0, not %d", step)
			}
			tick := (value - min) / step
			if err := s.Set(min + tick*step); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	if a.max <= a.min {
		return nil, fmt.Errorf("max must be greater than min: (min=%v, max=%v)", a.min, a.max)
	}
	value := a.min + (a.max-a.min)/2
	s := controls.NewFloatSlider(value, a.min, a.max)
	if a.hasStep {
		if err := s.SetStep(a.step); err != nil {
			return nil, fmt.Errorf("step must be > 0, not %v", a.step)
		}
		tick := math.Floor((value - a.min) / a.step)
		if err := s.Set(a.min + tick*a.step); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// scalarControl builds a control seeded with a bare scalar: a text box for
// strings, a checkbox for bools, a slider for numbers. Slider bounds are
// derived from the value so the control has room to move on both sides:
// 0 gives [0, 1], positive v gives [-v, 3v], negative v gives [3v, -v].
func scalarControl(v any) controls.Control {
	switch x := v.(type) {
	case string:
		return controls.NewText(x)
	case bool:
		return controls.NewCheckbox(x)
	case int:
		min, max := autoBoundsInt(x)
		return controls.NewIntSlider(x, min, max)
	case float64:
		min, max := autoBoundsFloat(x)
		return controls.NewFloatSlider(x, min, max)
	}
	// Classify only emits the four scalar types above.
	panic(fmt.Sprintf("unreachable scalar type %T", v))
}

func autoBoundsInt(v int) (int, int) {
	switch {
	case v == 0:
		return 0, 1
	case v > 0:
		return -v, 3 * v
	default:
		return 3 * v, -v
	}
}

func autoBoundsFloat(v float64) (float64, float64) {
	switch {
	case v == 0:
		return 0, 1
	case v > 0:
		return -v, 3 * v
	default:
		return 3 * v, -v
	}
}

func abbrevErr(param string, err error) error {
	return &ierrors.InteractError{
		Op:    "interact.build",
		Kind:  ierrors.KindAbbreviation,
		Param: param,
		Err:   err,
	}
}
