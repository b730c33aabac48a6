package controls

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrType is returned when a value's type does not match the control.
	ErrType = errors.New("value type does not match control")

	// ErrOutOfRange is returned when a value falls outside a range control's bounds.
	ErrOutOfRange = errors.New("value outside control bounds")

	// ErrNoOption is returned when a value matches none of a choice control's options.
	ErrNoOption = errors.New("value matches no option")

	// ErrBounds is returned for an invalid bounds or step mutation.
	ErrBounds = errors.New("invalid control bounds")
)

// Change describes a single value-change event on a control.
type Change struct {
	// Name is the property that changed, "value" for value edits.
	// It is empty for the synthetic event that drives a container's
	// initial run.
	Name string
	// Old is the previous value.
	Old any
	// New is the current value.
	New any
}

// Control is the capability surface shared by all value-holding controls.
//
// Value returns the value the control contributes to an invocation, using
// the control's own extraction rule: a Dropdown yields the selected
// option's underlying value, not its label.
//
// SetValue applies a caller-supplied value and returns an error when the
// control rejects it (wrong type, out of bounds, unknown option).
type Control interface {
	// ID returns the control's unique identifier.
	ID() string
	// Description returns the human-readable label.
	Description() string
	// SetDescription sets the human-readable label.
	SetDescription(string)
	// Key returns the binding key: the parameter name the control's
	// value is passed under at invocation time.
	Key() string
	// SetKey sets the binding key.
	SetKey(string)
	// Value returns the control's current value.
	Value() any
	// SetValue applies a new value, or reports why it cannot.
	SetValue(any) error
	// Observe registers a value-change listener and returns a function
	// that removes it.
	Observe(func(Change)) (cancel func())
	// Disabled reports whether the control accepts interaction.
	Disabled() bool
	// SetDisabled enables or disables interaction.
	SetDisabled(bool)
}

type listenerEntry struct {
	id int
	fn func(Change)
}

// base carries the state common to every control: identity, label, binding
// key, disabled flag, and the ordered value-change listener list.
type base struct {
	id           string
	description  string
	key          string
	disabled     bool
	listeners    []listenerEntry
	nextListener int
}

func newBase() base {
	return base{id: uuid.NewString()}
}

// ID returns the control's unique identifier.
func (b *base) ID() string {
	return b.id
}

// Description returns the human-readable label.
func (b *base) Description() string {
	return b.description
}

// SetDescription sets the human-readable label.
func (b *base) SetDescription(d string) {
	b.description = d
}

// Key returns the binding key used at invocation time.
func (b *base) Key() string {
	return b.key
}

// SetKey sets the binding key.
func (b *base) SetKey(k string) {
	b.key = k
}

// Disabled reports whether the control accepts interaction.
func (b *base) Disabled() bool {
	return b.disabled
}

// SetDisabled enables or disables interaction.
func (b *base) SetDisabled(d bool) {
	b.disabled = d
}

// Observe registers a value-change listener. Listeners are invoked
// synchronously in registration order. The returned function removes the
// listener; calling it more than once is harmless.
func (b *base) Observe(fn func(Change)) func() {
	id := b.nextListener
	b.nextListener++
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify delivers a change to all listeners. It iterates over a snapshot so
// listeners may unsubscribe themselves mid-delivery.
func (b *base) notify(c Change) {
	snapshot := make([]listenerEntry, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, l := range snapshot {
		l.fn(c)
	}
}

// valueChange builds the Change event for a value edit.
func valueChange(old, new any) Change {
	return Change{Name: "value", Old: old, New: new}
}
