package controls

// Checkbox is a boolean toggle control.
type Checkbox struct {
	base
	value bool
}

// NewCheckbox creates a checkbox seeded with the given state.
func NewCheckbox(value bool) *Checkbox {
	return &Checkbox{base: newBase(), value: value}
}

// Checked returns the current state.
func (c *Checkbox) Checked() bool {
	return c.value
}

// SetChecked replaces the current state, notifying observers on change.
func (c *Checkbox) SetChecked(v bool) {
	if v == c.value {
		return
	}
	old := c.value
	c.value = v
	c.notify(valueChange(old, v))
}

// Toggle flips the current state. Disabled controls ignore it.
func (c *Checkbox) Toggle() {
	if c.disabled {
		return
	}
	c.SetChecked(!c.value)
}

// Value returns the current state.
func (c *Checkbox) Value() any {
	return c.value
}

// SetValue applies a new state. Only booleans are accepted.
func (c *Checkbox) SetValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return ErrType
	}
	c.SetChecked(b)
	return nil
}
