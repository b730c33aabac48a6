package controls

import "reflect"

// Option represents a selectable value for a dropdown.
type Option struct {
	// Label is the text shown for the option.
	Label string
	// Value is the underlying value contributed at invocation time.
	Value any
}

// Dropdown is a choice control over an ordered option list.
//
// Its Value is the selected option's underlying value, never the label.
type Dropdown struct {
	base
	options []Option
	index   int
}

// NewDropdown creates a dropdown over the given options. The first option
// is selected initially; with no options the selection is empty.
func NewDropdown(options []Option) *Dropdown {
	d := &Dropdown{base: newBase(), options: append([]Option(nil), options...)}
	if len(d.options) == 0 {
		d.index = -1
	}
	return d
}

// Options returns a copy of the option list.
func (d *Dropdown) Options() []Option {
	return append([]Option(nil), d.options...)
}

// SetOptions replaces the option list. The selection is kept when the
// previously selected value still appears; otherwise it moves to the first
// option, notifying observers of the value change.
func (d *Dropdown) SetOptions(options []Option) {
	old := d.Value()
	d.options = append([]Option(nil), options...)
	if len(d.options) == 0 {
		d.index = -1
	} else {
		d.index = 0
		for i, o := range d.options {
			if reflect.DeepEqual(o.Value, old) {
				d.index = i
				break
			}
		}
	}
	if cur := d.Value(); !reflect.DeepEqual(old, cur) {
		d.notify(valueChange(old, cur))
	}
}

// Index returns the selected option index, or -1 when empty.
func (d *Dropdown) Index() int {
	return d.index
}

// SetIndex selects the option at i.
func (d *Dropdown) SetIndex(i int) error {
	if i < 0 || i >= len(d.options) {
		return ErrOutOfRange
	}
	if i == d.index {
		return nil
	}
	old := d.Value()
	d.index = i
	d.notify(valueChange(old, d.Value()))
	return nil
}

// SelectedLabel returns the selected option's label, or "" when empty.
func (d *Dropdown) SelectedLabel() string {
	if d.index < 0 {
		return ""
	}
	return d.options[d.index].Label
}

// Value returns the selected option's underlying value.
func (d *Dropdown) Value() any {
	if d.index < 0 {
		return nil
	}
	return d.options[d.index].Value
}

// SetValue selects the first option whose underlying value equals v.
func (d *Dropdown) SetValue(v any) error {
	for i, o := range d.options {
		if reflect.DeepEqual(o.Value, v) {
			return d.SetIndex(i)
		}
	}
	return ErrNoOption
}
