package controls

// Text is a single-line text input control.
//
// Besides value changes, Text carries a submit event: a host toolkit fires
// Submit when the user presses return. Containers running in manual mode
// subscribe to it so text entry can trigger a run without a button press.
type Text struct {
	base
	value           string
	submitListeners []listenerEntry
	nextSubmit      int
}

// NewText creates a text control seeded with the given string.
func NewText(value string) *Text {
	return &Text{base: newBase(), value: value}
}

// Text returns the current text.
func (t *Text) Text() string {
	return t.value
}

// SetText replaces the current text, notifying observers on change.
func (t *Text) SetText(s string) {
	if s == t.value {
		return
	}
	old := t.value
	t.value = s
	t.notify(valueChange(old, s))
}

// Value returns the current text.
func (t *Text) Value() any {
	return t.value
}

// SetValue applies a new value. Only strings are accepted.
func (t *Text) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return ErrType
	}
	t.SetText(s)
	return nil
}

// Submit fires the submit event. Disabled controls ignore it.
func (t *Text) Submit() {
	if t.disabled {
		return
	}
	snapshot := make([]listenerEntry, len(t.submitListeners))
	copy(snapshot, t.submitListeners)
	for _, l := range snapshot {
		l.fn(Change{Name: "submit", Old: t.value, New: t.value})
	}
}

// ObserveSubmit registers a submit listener and returns a function that
// removes it.
func (t *Text) ObserveSubmit(fn func(Change)) func() {
	id := t.nextSubmit
	t.nextSubmit++
	t.submitListeners = append(t.submitListeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range t.submitListeners {
			if l.id == id {
				t.submitListeners = append(t.submitListeners[:i], t.submitListeners[i+1:]...)
				return
			}
		}
	}
}
