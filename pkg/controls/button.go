package controls

// Button is a trigger control. It holds no value; it fires a click event
// when activated. Containers in manual mode use one as their run trigger,
// disabling it for the duration of each invocation.
type Button struct {
	base
	clickListeners []listenerEntry
	nextClick      int
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	b := &Button{base: newBase()}
	b.description = label
	return b
}

// Click fires the click event. Disabled buttons ignore it.
func (b *Button) Click() {
	if b.disabled {
		return
	}
	snapshot := make([]listenerEntry, len(b.clickListeners))
	copy(snapshot, b.clickListeners)
	for _, l := range snapshot {
		l.fn(Change{Name: "click"})
	}
}

// ObserveClick registers a click listener and returns a function that
// removes it.
func (b *Button) ObserveClick(fn func(Change)) func() {
	id := b.nextClick
	b.nextClick++
	b.clickListeners = append(b.clickListeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range b.clickListeners {
			if l.id == id {
				b.clickListeners = append(b.clickListeners[:i], b.clickListeners[i+1:]...)
				return
			}
		}
	}
}
