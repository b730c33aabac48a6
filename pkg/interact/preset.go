package interact

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is an optional YAML description of a container's overrides, so
// control abbreviations can live in configuration instead of code:
//
//	manual: true
//	params:
//	  depth:
//	    min: 1
//	    max: 10
//	    integer: true
//	  color:
//	    options: [red, green, blue]
//	  seed:
//	    fixed: 42
type Preset struct {
	// Manual forces manual mode.
	Manual bool `yaml:"manual,omitempty"`
	// ClearOutput controls clearing of prior output. Nil keeps the default.
	ClearOutput *bool `yaml:"clear_output,omitempty"`
	// Params maps parameter names to their abbreviations.
	Params map[string]PresetParam `yaml:"params,omitempty"`
}

// PresetParam declares one parameter's abbreviation. Exactly one form
// applies, checked in this order: Fixed, Options, Min/Max (with optional
// Step), Value.
type PresetParam struct {
	// Value is a scalar abbreviation (string, bool, or number).
	Value any `yaml:"value,omitempty"`
	// Min and Max declare a range abbreviation; both must be present.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
	// Step is the optional range step.
	Step *float64 `yaml:"step,omitempty"`
	// Integer makes the range an integer range.
	Integer bool `yaml:"integer,omitempty"`
	// Options declares a choice abbreviation.
	Options []any `yaml:"options,omitempty"`
	// Fixed declares a non-interactive pass-through value.
	Fixed any `yaml:"fixed,omitempty"`
}

// LoadPreset reads and parses a YAML preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset parses YAML preset data.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	return &p, nil
}

// Overrides converts the preset into the override map New and Interact
// accept, reserved keys included.
func (p *Preset) Overrides() (map[string]any, error) {
	ovr := make(map[string]any, len(p.Params)+2)
	if p.Manual {
		ovr[OptManual] = true
	}
	if p.ClearOutput != nil {
		ovr[OptClearOutput] = *p.ClearOutput
	}

	names := make([]string, 0, len(p.Params))
	for name := range p.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pp := p.Params[name]
		a, err := pp.abbrev()
		if err != nil {
			return nil, fmt.Errorf("preset param %q: %w", name, err)
		}
		ovr[name] = a
	}
	return ovr, nil
}

func (pp PresetParam) abbrev() (any, error) {
	switch {
	case pp.Fixed != nil:
		return Fixed(pp.Fixed), nil
	case len(pp.Options) > 0:
		return Options(pp.Options...), nil
	case pp.Min != nil || pp.Max != nil:
		if pp.Min == nil || pp.Max == nil {
			return nil, fmt.Errorf("a range needs both min and max")
		}
		if pp.Integer {
			if pp.Step != nil {
				return RangeStep(int(*pp.Min), int(*pp.Max), int(*pp.Step)), nil
			}
			return Range(int(*pp.Min), int(*pp.Max)), nil
		}
		if pp.Step != nil {
			return RangeStep(*pp.Min, *pp.Max, *pp.Step), nil
		}
		return Range(*pp.Min, *pp.Max), nil
	case pp.Value != nil:
		return pp.Value, nil
	}
	return nil, fmt.Errorf("no abbreviation declared")
}
