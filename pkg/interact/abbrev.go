package interact

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-drift/interact/pkg/controls"
)

// Abbrev is a classified control abbreviation: a compact description of
// what kind of control to create and its initial state.
//
// The set of shapes is closed (a pre-built control, a fixed pass-through,
// a numeric range, a single scalar, or a choice list) and every raw value
// is mapped onto exactly one of them by Classify, once, at setup time.
// The constructors in this package (Range, RangeStep, Options, OptionsMap,
// Fixed) build shapes directly and sidestep classification.
type Abbrev interface {
	isAbbrev()
}

// FixedValue is a non-interactive pass-through: it is never turned into a
// control and never displayed, and supplies its stored value on every
// invocation of the target function.
type FixedValue struct {
	value any
}

// Fixed wraps a value so it is passed to the target function unchanged,
// with no control created for it.
func Fixed(v any) *FixedValue {
	return &FixedValue{value: v}
}

// Value returns the wrapped value.
func (f *FixedValue) Value() any {
	return f.value
}

func (*FixedValue) isAbbrev() {}

// controlAbbrev carries a pre-built control used as-is.
type controlAbbrev struct {
	control controls.Control
}

func (controlAbbrev) isAbbrev() {}

// rangeAbbrev is a (min, max[, step]) numeric range.
type rangeAbbrev struct {
	min, max, step float64
	hasStep        bool
	integral       bool
}

func (rangeAbbrev) isAbbrev() {}

// scalarAbbrev is a single string, bool, int, or float64.
type scalarAbbrev struct {
	value any
}

func (scalarAbbrev) isAbbrev() {}

// choicesAbbrev is an ordered option list.
type choicesAbbrev struct {
	options []controls.Option
}

func (choicesAbbrev) isAbbrev() {}

// Real constrains the numeric types accepted by the range constructors.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Range returns a (min, max) range abbreviation. The resulting control is
// an integer slider when T is an integer type, a float slider otherwise.
func Range[T Real](min, max T) Abbrev {
	return rangeAbbrev{
		min:      float64(min),
		max:      float64(max),
		integral: isIntegralKind(reflect.TypeOf(min).Kind()),
	}
}

// RangeStep returns a (min, max, step) range abbreviation.
func RangeStep[T Real](min, max, step T) Abbrev {
	return rangeAbbrev{
		min:      float64(min),
		max:      float64(max),
		step:     float64(step),
		hasStep:  true,
		integral: isIntegralKind(reflect.TypeOf(min).Kind()),
	}
}

// Options returns a choice abbreviation over the given values, in order.
// Each option is labeled with the value's default formatting.
func Options(values ...any) Abbrev {
	opts := make([]controls.Option, len(values))
	for i, v := range values {
		opts[i] = controls.Option{Label: fmt.Sprint(v), Value: v}
	}
	return choicesAbbrev{options: opts}
}

// OptionsMap returns a choice abbreviation over name-value pairs, ordered
// by name.
func OptionsMap(m map[string]any) Abbrev {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	opts := make([]controls.Option, len(names))
	for i, name := range names {
		opts[i] = controls.Option{Label: name, Value: m[name]}
	}
	return choicesAbbrev{options: opts}
}

// Classify maps a raw abbreviation value onto its shape:
//
//  1. an Abbrev or a pre-built control is used as-is;
//  2. a 2- or 3-element numeric array is a (min, max) or (min, max, step)
//     range;
//  3. a string, bool, or number is a scalar;
//  4. any other slice or map is a choice list (map entries ordered by key);
//  5. anything else cannot be classified.
func Classify(v any) (Abbrev, error) {
	switch x := v.(type) {
	case Abbrev:
		return x, nil
	case controls.Control:
		return controlAbbrev{control: x}, nil
	case string:
		return scalarAbbrev{value: x}, nil
	case bool:
		return scalarAbbrev{value: x}, nil
	case int:
		return scalarAbbrev{value: x}, nil
	case int8:
		return scalarAbbrev{value: int(x)}, nil
	case int16:
		return scalarAbbrev{value: int(x)}, nil
	case int32:
		return scalarAbbrev{value: int(x)}, nil
	case int64:
		return scalarAbbrev{value: int(x)}, nil
	case uint:
		return scalarAbbrev{value: int(x)}, nil
	case uint8:
		return scalarAbbrev{value: int(x)}, nil
	case uint16:
		return scalarAbbrev{value: int(x)}, nil
	case uint32:
		return scalarAbbrev{value: int(x)}, nil
	case uint64:
		return scalarAbbrev{value: int(x)}, nil
	case float32:
		return scalarAbbrev{value: float64(x)}, nil
	case float64:
		return scalarAbbrev{value: x}, nil
	case []controls.Option:
		return choicesAbbrev{options: append([]controls.Option(nil), x...)}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		return classifyArray(rv)
	case reflect.Slice:
		opts := make([]controls.Option, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev := rv.Index(i).Interface()
			opts[i] = controls.Option{Label: fmt.Sprint(ev), Value: ev}
		}
		return choicesAbbrev{options: opts}, nil
	case reflect.Map:
		return classifyMap(rv)
	}
	return nil, fmt.Errorf("cannot infer a control for %T", v)
}

// classifyArray turns a 2- or 3-element numeric array into a range. Other
// arrays cannot be classified.
func classifyArray(rv reflect.Value) (Abbrev, error) {
	n := rv.Len()
	if n != 2 && n != 3 {
		return nil, fmt.Errorf("cannot infer a control for a %d-element array", n)
	}
	vals := make([]float64, n)
	integral := true
	for i := 0; i < n; i++ {
		ev := rv.Index(i)
		if ev.Kind() == reflect.Interface {
			ev = ev.Elem()
		}
		switch {
		case isIntegralKind(ev.Kind()):
			if ev.CanUint() {
				vals[i] = float64(ev.Uint())
			} else {
				vals[i] = float64(ev.Int())
			}
		case ev.Kind() == reflect.Float32 || ev.Kind() == reflect.Float64:
			vals[i] = ev.Float()
			integral = false
		default:
			return nil, fmt.Errorf("cannot infer a control for an array holding %s", ev.Kind())
		}
	}
	a := rangeAbbrev{min: vals[0], max: vals[1], integral: integral}
	if n == 3 {
		a.step = vals[2]
		a.hasStep = true
	}
	return a, nil
}

// classifyMap turns a map into a choice list ordered by formatted key.
func classifyMap(rv reflect.Value) (Abbrev, error) {
	type pair struct {
		label string
		value any
	}
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			label: fmt.Sprint(iter.Key().Interface()),
			value: iter.Value().Interface(),
		})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].label < pairs[j].label })
	opts := make([]controls.Option, len(pairs))
	for i, p := range pairs {
		opts[i] = controls.Option{Label: p.label, Value: p.value}
	}
	return choicesAbbrev{options: opts}, nil
}

func isIntegralKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
