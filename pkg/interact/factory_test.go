package interact_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-drift/interact/pkg/controls"
	ierrors "github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/interact"
)

// controlFor builds a one-parameter container and returns its sole control.
func controlFor(t *testing.T, abbrev any) controls.Control {
	t.Helper()
	iv, err := interact.New(discard, interact.Signature{{Name: "x"}}, map[string]any{"x": abbrev}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cs := iv.Controls()
	if len(cs) != 1 {
		t.Fatalf("got %d controls, want 1", len(cs))
	}
	return cs[0]
}

func buildErr(t *testing.T, abbrev any) error {
	t.Helper()
	_, err := interact.New(discard, interact.Signature{{Name: "x"}}, map[string]any{"x": abbrev}, nil)
	if err == nil {
		t.Fatalf("expected error for abbreviation %#v", abbrev)
	}
	return err
}

func discard(interact.Args) (any, error) {
	return nil, nil
}

func TestRangeMidpoint(t *testing.T) {
	tests := []struct {
		name   string
		abbrev any
		want   any
	}{
		{"int 0..10", [2]int{0, 10}, 5},
		{"int 0..9 uses integer division", [2]int{0, 9}, 4},
		{"int negative", [2]int{-10, -5}, -8}, // -10 + 5/2
		{"float 0..1", [2]float64{0, 1}, 0.5},
		{"float 1..4", [2]float64{1, 4}, 2.5},
		{"constructor int", interact.Range(2, 8), 5},
		{"constructor float", interact.Range(0.0, 3.0), 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := controlFor(t, tt.abbrev)
			if c.Value() != tt.want {
				t.Errorf("initial value = %v (%T), want %v (%T)", c.Value(), c.Value(), tt.want, tt.want)
			}
		})
	}
}

func TestRangeKindFollowsElementType(t *testing.T) {
	if _, ok := controlFor(t, [2]int{0, 10}).(*controls.IntSlider); !ok {
		t.Error("integer tuple should make an IntSlider")
	}
	if _, ok := controlFor(t, [2]float64{0, 10}).(*controls.FloatSlider); !ok {
		t.Error("float tuple should make a FloatSlider")
	}
	// One real element makes the whole range real.
	if _, ok := controlFor(t, [2]any{0, 10.0}).(*controls.FloatSlider); !ok {
		t.Error("mixed tuple should make a FloatSlider")
	}
}

func TestRangeStepSnapsToLattice(t *testing.T) {
	tests := []struct {
		name            string
		abbrev          any
		min, max, step  float64
		wantInt         bool
		wantSnappedInt  int
		wantSnappedReal float64
	}{
		{"int step", [3]int{0, 10, 3}, 0, 10, 3, true, 3, 0},
		{"int step exact", [3]int{0, 10, 5}, 0, 10, 5, true, 5, 0},
		{"float step", [3]float64{0, 1, 0.3}, 0, 1, 0.3, false, 0, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := controlFor(t, tt.abbrev)
			switch s := c.(type) {
			case *controls.IntSlider:
				if !tt.wantInt {
					t.Fatalf("got IntSlider, want FloatSlider")
				}
				if s.Get() != tt.wantSnappedInt {
					t.Errorf("snapped value = %d, want %d", s.Get(), tt.wantSnappedInt)
				}
				if (s.Get()-s.Min())%s.Step() != 0 {
					t.Error("value is off the step lattice")
				}
			case *controls.FloatSlider:
				if tt.wantInt {
					t.Fatalf("got FloatSlider, want IntSlider")
				}
				if math.Abs(s.Get()-tt.wantSnappedReal) > 1e-9 {
					t.Errorf("snapped value = %v, want %v", s.Get(), tt.wantSnappedReal)
				}
				if s.Get() < s.Min() || s.Get() > s.Max() {
					t.Error("value escaped the bounds")
				}
			}
		})
	}
}

func TestRangeInvalid(t *testing.T) {
	var ierr *ierrors.InteractError

	err := buildErr(t, [2]int{10, 10})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("max==min error = %v, want KindAbbreviation", err)
	}

	err = buildErr(t, [2]float64{5, 1})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("max<min error = %v, want KindAbbreviation", err)
	}

	err = buildErr(t, [3]int{0, 10, 0})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("step==0 error = %v, want KindAbbreviation", err)
	}

	err = buildErr(t, [3]float64{0, 10, -0.5})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("negative step error = %v, want KindAbbreviation", err)
	}
}

func TestScalarControls(t *testing.T) {
	if txt, ok := controlFor(t, "hello").(*controls.Text); !ok || txt.Text() != "hello" {
		t.Errorf("string scalar should make a Text seeded with it, got %#v", txt)
	}
	if cb, ok := controlFor(t, true).(*controls.Checkbox); !ok || !cb.Checked() {
		t.Errorf("bool scalar should make a Checkbox seeded with it")
	}
}

func TestScalarAutoBounds(t *testing.T) {
	tests := []struct {
		value    int
		min, max int
	}{
		{0, 0, 1},
		{5, -5, 15},
		{-4, -12, 4},
	}
	for _, tt := range tests {
		s, ok := controlFor(t, tt.value).(*controls.IntSlider)
		if !ok {
			t.Fatalf("int scalar %d should make an IntSlider", tt.value)
		}
		if s.Min() != tt.min || s.Max() != tt.max {
			t.Errorf("bounds for %d = [%d, %d], want [%d, %d]", tt.value, s.Min(), s.Max(), tt.min, tt.max)
		}
		if s.Get() != tt.value {
			t.Errorf("initial value = %d, want %d", s.Get(), tt.value)
		}
		if s.Get() < s.Min() || s.Get() > s.Max() {
			t.Errorf("value %d escaped bounds [%d, %d]", s.Get(), s.Min(), s.Max())
		}
	}

	f, ok := controlFor(t, 2.5).(*controls.FloatSlider)
	if !ok {
		t.Fatal("float scalar should make a FloatSlider")
	}
	if f.Min() != -2.5 || f.Max() != 7.5 {
		t.Errorf("bounds for 2.5 = [%v, %v], want [-2.5, 7.5]", f.Min(), f.Max())
	}
}

func TestChoicesFromSlice(t *testing.T) {
	d, ok := controlFor(t, []int{1, 2, 3}).(*controls.Dropdown)
	if !ok {
		t.Fatal("slice should make a Dropdown")
	}
	opts := d.Options()
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}
	for i, want := range []int{1, 2, 3} {
		if opts[i].Value != want {
			t.Errorf("option %d value = %v, want %d", i, opts[i].Value, want)
		}
	}
	if d.Value() != 1 {
		t.Errorf("initial value = %v, want 1", d.Value())
	}
}

func TestChoicesFromMap(t *testing.T) {
	d, ok := controlFor(t, map[string]any{"y": 2, "x": 1}).(*controls.Dropdown)
	if !ok {
		t.Fatal("map should make a Dropdown")
	}
	opts := d.Options()
	if len(opts) != 2 {
		t.Fatalf("got %d options, want 2", len(opts))
	}
	if opts[0].Label != "x" || opts[0].Value != 1 || opts[1].Label != "y" || opts[1].Value != 2 {
		t.Errorf("options = %v, want [(x,1), (y,2)] ordered by name", opts)
	}
}

func TestChoicesDefaultApplied(t *testing.T) {
	sig := interact.Signature{
		interact.Param{Name: "x"}.WithDefault("b"),
	}
	iv, err := interact.New(discard, sig, map[string]any{"x": []string{"a", "b", "c"}}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d := iv.Controls()[0].(*controls.Dropdown)
	if d.Value() != "b" {
		t.Errorf("default %q not applied, value = %v", "b", d.Value())
	}
}

func TestChoicesBadDefaultIgnored(t *testing.T) {
	sig := interact.Signature{
		interact.Param{Name: "x"}.WithDefault("zzz"),
	}
	iv, err := interact.New(discard, sig, map[string]any{"x": []string{"a", "b"}}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d := iv.Controls()[0].(*controls.Dropdown)
	if d.Value() != "a" {
		t.Errorf("rejected default should keep first option, value = %v", d.Value())
	}
}

func TestRangeDefaultApplied(t *testing.T) {
	sig := interact.Signature{
		interact.Param{Name: "x"}.WithDefault(8),
	}
	iv, err := interact.New(discard, sig, map[string]any{"x": [2]int{0, 10}}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := iv.Controls()[0].(*controls.IntSlider)
	if s.Get() != 8 {
		t.Errorf("default 8 not applied, value = %d", s.Get())
	}
}

func TestRangeOutOfBoundsDefaultIgnored(t *testing.T) {
	sig := interact.Signature{
		interact.Param{Name: "x"}.WithDefault(99),
	}
	iv, err := interact.New(discard, sig, map[string]any{"x": [2]int{0, 10}}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := iv.Controls()[0].(*controls.IntSlider)
	if s.Get() != 5 {
		t.Errorf("out-of-bounds default should keep the midpoint, value = %d", s.Get())
	}
}

func TestPrebuiltControlUsedAsIs(t *testing.T) {
	pre := controls.NewIntSlider(3, 0, 100)
	c := controlFor(t, pre)
	if c != controls.Control(pre) {
		t.Error("pre-built control should be used as-is")
	}
	if c.Key() != "x" {
		t.Errorf("binding key = %q, want %q", c.Key(), "x")
	}
}

func TestDescriptionDefaultsToParameterName(t *testing.T) {
	c := controlFor(t, 5)
	if c.Description() != "x" {
		t.Errorf("description = %q, want parameter name %q", c.Description(), "x")
	}

	labeled := controls.NewText("v")
	labeled.SetDescription("Custom")
	c = controlFor(t, labeled)
	if c.Description() != "Custom" {
		t.Errorf("existing description overwritten: %q", c.Description())
	}
}

func TestUnclassifiableAbbreviation(t *testing.T) {
	var ierr *ierrors.InteractError
	err := buildErr(t, struct{ X int }{1})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("error = %v, want KindAbbreviation", err)
	}
	if ierr.Param != "x" {
		t.Errorf("error names param %q, want %q", ierr.Param, "x")
	}

	err = buildErr(t, [4]int{1, 2, 3, 4})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("4-element array error = %v, want KindAbbreviation", err)
	}

	err = buildErr(t, [2]string{"a", "b"})
	if !errors.As(err, &ierr) || ierr.Kind != ierrors.KindAbbreviation {
		t.Errorf("string array error = %v, want KindAbbreviation", err)
	}
}
