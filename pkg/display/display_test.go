package display_test

import (
	"strings"
	"testing"

	"github.com/go-drift/interact/pkg/display"
)

func TestWriterRender(t *testing.T) {
	var sb strings.Builder
	s := display.NewWriter(&sb)

	s.Render("hello")
	s.Render(42)

	got := sb.String()
	want := "hello\n42\n"
	if got != want {
		t.Errorf("writer output = %q, want %q", got, want)
	}
}

func TestWriterClearIsNoOp(t *testing.T) {
	var sb strings.Builder
	s := display.NewWriter(&sb)

	s.Render("kept")
	s.Clear()

	if !strings.Contains(sb.String(), "kept") {
		t.Error("Clear should not affect already-written output")
	}
}

func TestRecorder(t *testing.T) {
	r := display.NewRecorder()

	r.Render(1)
	r.Render(2)
	if got := r.Rendered(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Rendered() = %v, want [1 2]", got)
	}
	if r.Last() != 2 {
		t.Errorf("Last() = %v, want 2", r.Last())
	}

	r.Clear()
	if r.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", r.Clears())
	}
	if len(r.Rendered()) != 0 {
		t.Error("Clear should discard recorded values")
	}
	if r.Last() != nil {
		t.Errorf("Last() = %v after Clear, want nil", r.Last())
	}
}
