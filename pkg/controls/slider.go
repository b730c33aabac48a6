package controls

// number constrains the value types a range control can hold.
type number interface {
	~int | ~float64
}

// slider is the shared implementation behind IntSlider and FloatSlider.
type slider[T number] struct {
	base
	value T
	min   T
	max   T
	step  T
}

// Get returns the current value with its static type.
func (s *slider[T]) Get() T {
	return s.value
}

// Set applies a new value, rejecting values outside [min, max].
func (s *slider[T]) Set(v T) error {
	if v < s.min || v > s.max {
		return ErrOutOfRange
	}
	if v == s.value {
		return nil
	}
	old := s.value
	s.value = v
	s.notify(valueChange(old, v))
	return nil
}

// Min returns the lower bound.
func (s *slider[T]) Min() T {
	return s.min
}

// Max returns the upper bound.
func (s *slider[T]) Max() T {
	return s.max
}

// Step returns the step size.
func (s *slider[T]) Step() T {
	return s.step
}

// SetBounds replaces the bounds. The current value is clamped into the new
// range; clamping notifies observers like any other value change.
func (s *slider[T]) SetBounds(min, max T) error {
	if max <= min {
		return ErrBounds
	}
	s.min = min
	s.max = max
	if s.value < min {
		old := s.value
		s.value = min
		s.notify(valueChange(old, s.value))
	} else if s.value > max {
		old := s.value
		s.value = max
		s.notify(valueChange(old, s.value))
	}
	return nil
}

// SetStep replaces the step size, which must be positive.
func (s *slider[T]) SetStep(step T) error {
	if step <= 0 {
		return ErrBounds
	}
	s.step = step
	return nil
}

// Value returns the current value.
func (s *slider[T]) Value() any {
	return s.value
}

// SetValue applies a new value. The value's type must match the slider's
// numeric type exactly; values outside the bounds are rejected.
func (s *slider[T]) SetValue(v any) error {
	tv, ok := v.(T)
	if !ok {
		return ErrType
	}
	return s.Set(tv)
}

// IntSlider is an integer range control.
type IntSlider struct {
	slider[int]
}

// NewIntSlider creates an integer slider with the given value and bounds.
// The step defaults to 1.
func NewIntSlider(value, min, max int) *IntSlider {
	s := &IntSlider{}
	s.base = newBase()
	s.value = value
	s.min = min
	s.max = max
	s.step = 1
	return s
}

// FloatSlider is a real-number range control.
type FloatSlider struct {
	slider[float64]
}

// NewFloatSlider creates a float slider with the given value and bounds.
// The step defaults to 0.1.
func NewFloatSlider(value, min, max float64) *FloatSlider {
	s := &FloatSlider{}
	s.base = newBase()
	s.value = value
	s.min = min
	s.max = max
	s.step = 0.1
	return s
}
