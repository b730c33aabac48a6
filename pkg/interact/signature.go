package interact

import (
	"fmt"
	"sort"

	ierrors "github.com/go-drift/interact/pkg/errors"
)

// ParamKind identifies how a parameter binds at call time.
type ParamKind int

const (
	// PositionalOrKeyword is an ordinary named parameter.
	PositionalOrKeyword ParamKind = iota
	// KeywordOnly is a parameter that can only be bound by name.
	KeywordOnly
	// VarKeyword is a catch-all parameter that absorbs every override not
	// claimed by a named parameter.
	VarKeyword
)

func (k ParamKind) String() string {
	switch k {
	case KeywordOnly:
		return "keyword-only"
	case VarKeyword:
		return "var-keyword"
	default:
		return "positional-or-keyword"
	}
}

// Param describes one parameter of the target function.
//
// Go offers no runtime view of a function's parameter names or defaults, so
// the caller states them explicitly. A Param is an immutable configuration
// value; build it as a struct literal or through the WithX helpers:
//
//	interact.Param{Name: "x"}.WithDefault(5)
//	interact.Param{Name: "color"}.WithAnnotation([]string{"red", "green"})
type Param struct {
	// Name is the parameter name.
	Name string
	// Kind is how the parameter binds. The zero value is PositionalOrKeyword.
	Kind ParamKind
	// Default is the declared default value. Meaningful only when
	// HasDefault is true; a nil default is distinct from no default.
	Default any
	// HasDefault marks the parameter as optional.
	HasDefault bool
	// Annotation is the declared type annotation, used as an abbreviation
	// when no override is supplied. Meaningful only when HasAnnotation is
	// true.
	Annotation any
	// HasAnnotation marks the annotation as present.
	HasAnnotation bool
}

// WithDefault returns a copy of the parameter with the given default value.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// WithAnnotation returns a copy of the parameter with the given annotation.
func (p Param) WithAnnotation(v any) Param {
	p.Annotation = v
	p.HasAnnotation = true
	return p
}

// Rest returns a var-keyword parameter: a catch-all that binds every
// override not claimed by a named parameter.
func Rest(name string) Param {
	return Param{Name: name, Kind: VarKeyword}
}

// Signature is the ordered parameter list of a target function.
//
// A nil Signature means the target cannot be introspected at all; every
// caller-supplied override is then bound directly and the call contract is
// not checked.
type Signature []Param

// hasVarKeyword reports whether the signature carries a catch-all parameter.
func (s Signature) hasVarKeyword() bool {
	for _, p := range s {
		if p.Kind == VarKeyword {
			return true
		}
	}
	return false
}

// validateCall checks that the resolved argument set can legally call the
// target: every required parameter bound, no unexpected names left over.
// It runs before any control is built.
func (s Signature) validateCall(bound map[string]bool, leftover map[string]any) error {
	for _, p := range s {
		if p.Kind == VarKeyword {
			continue
		}
		if !bound[p.Name] && !p.HasDefault {
			return contractErr(p.Name, fmt.Errorf("missing required argument %q", p.Name))
		}
	}
	if len(leftover) > 0 && !s.hasVarKeyword() {
		names := make([]string, 0, len(leftover))
		for name := range leftover {
			names = append(names, name)
		}
		sort.Strings(names)
		return contractErr(names[0], fmt.Errorf("unexpected argument %q", names[0]))
	}
	return nil
}

func contractErr(param string, err error) error {
	return &ierrors.InteractError{
		Op:    "interact.validate",
		Kind:  ierrors.KindContract,
		Param: param,
		Err:   err,
	}
}
