// Package controls provides headless interactive control descriptors.
//
// A control holds one value bound to one function parameter: a text box,
// checkbox, slider, or dropdown. Controls carry no rendering of their own;
// a host toolkit draws them and delivers user input by calling the typed
// setters. Everything the dispatch layer needs is exposed here: current
// value, description label, binding key, and value-change subscription.
//
// # Constructor Conventions
//
// Controls are long-lived, mutable objects and use NewX() constructors
// returning pointers:
//
//	slider := controls.NewIntSlider(5, -5, 15)
//	text := controls.NewText("hello")
//
// # Observation
//
// Every control exposes Observe, which registers a callback for value
// changes and returns an unsubscribe function:
//
//	cancel := slider.Observe(func(c controls.Change) {
//	    fmt.Println("value is now", c.New)
//	})
//	defer cancel()
//
// Listeners run synchronously, in registration order, on the caller's
// goroutine. A setter that does not change the value fires no event.
package controls
