package interact_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/interact/pkg/controls"
	"github.com/go-drift/interact/pkg/display"
	"github.com/go-drift/interact/pkg/interact"
)

const samplePreset = `
manual: true
clear_output: false
params:
  depth:
    min: 1
    max: 10
    integer: true
  ratio:
    min: 0
    max: 1
    step: 0.25
  color:
    options: [red, green, blue]
  seed:
    fixed: 42
`

func TestParsePreset(t *testing.T) {
	p, err := interact.ParsePreset([]byte(samplePreset))
	if err != nil {
		t.Fatalf("ParsePreset failed: %v", err)
	}
	if !p.Manual {
		t.Error("manual flag not parsed")
	}
	if p.ClearOutput == nil || *p.ClearOutput {
		t.Error("clear_output flag not parsed")
	}
	if len(p.Params) != 4 {
		t.Errorf("parsed %d params, want 4", len(p.Params))
	}
}

func TestPresetDrivesContainer(t *testing.T) {
	p, err := interact.ParsePreset([]byte(samplePreset))
	if err != nil {
		t.Fatalf("ParsePreset failed: %v", err)
	}
	ovr, err := p.Overrides()
	if err != nil {
		t.Fatalf("Overrides failed: %v", err)
	}

	out := display.NewRecorder()
	var got interact.Args
	fn := func(args interact.Args) (any, error) {
		got = args
		return nil, nil
	}
	sig := interact.Signature{
		{Name: "depth"},
		{Name: "ratio"},
		{Name: "color"},
		{Name: "seed"},
	}

	iv, err := interact.New(fn, sig, ovr, out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !iv.Manual() {
		t.Error("preset should have forced manual mode")
	}

	byKey := map[string]controls.Control{}
	for _, c := range iv.Controls() {
		byKey[c.Key()] = c
	}

	depth, ok := byKey["depth"].(*controls.IntSlider)
	if !ok {
		t.Fatalf("depth control is %T, want *controls.IntSlider", byKey["depth"])
	}
	if depth.Min() != 1 || depth.Max() != 10 {
		t.Errorf("depth bounds = [%d, %d], want [1, 10]", depth.Min(), depth.Max())
	}

	ratio, ok := byKey["ratio"].(*controls.FloatSlider)
	if !ok {
		t.Fatalf("ratio control is %T, want *controls.FloatSlider", byKey["ratio"])
	}
	if ratio.Step() != 0.25 {
		t.Errorf("ratio step = %v, want 0.25", ratio.Step())
	}

	if _, ok := byKey["color"].(*controls.Dropdown); !ok {
		t.Fatalf("color control is %T, want *controls.Dropdown", byKey["color"])
	}
	if _, ok := byKey["seed"]; ok {
		t.Error("fixed seed should not be a control")
	}

	iv.RunButton().Click()
	if got["seed"] != 42 {
		t.Errorf("args[seed] = %v, want 42", got["seed"])
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(samplePreset), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	p, err := interact.LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset failed: %v", err)
	}
	if len(p.Params) != 4 {
		t.Errorf("loaded %d params, want 4", len(p.Params))
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := interact.LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read preset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParsePresetInvalidYAML(t *testing.T) {
	_, err := interact.ParsePreset([]byte("params: [not, a, map]"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse preset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPresetHalfRangeRejected(t *testing.T) {
	p, err := interact.ParsePreset([]byte("params:\n  n:\n    min: 1\n"))
	if err != nil {
		t.Fatalf("ParsePreset failed: %v", err)
	}
	if _, err := p.Overrides(); err == nil {
		t.Fatal("expected an error for a range missing max")
	}
}

func TestPresetEmptyParamRejected(t *testing.T) {
	p := &interact.Preset{Params: map[string]interact.PresetParam{"n": {}}}
	if _, err := p.Overrides(); err == nil {
		t.Fatal("expected an error for an empty param declaration")
	}
}
