package interact

import (
	"fmt"
	"sort"

	ierrors "github.com/go-drift/interact/pkg/errors"
)

// resolved is one (name, abbreviation source, default) triple produced by
// the resolver. The value is still raw at this point; classification into
// an Abbrev happens when controls are built.
type resolved struct {
	name   string
	value  any
	def    any
	hasDef bool
}

// resolve walks the signature in declaration order and decides, per
// parameter, which abbreviation source applies: a caller-supplied override
// (consumed from the map), the annotation, or the declared default. A
// parameter with none of the three is a resolution error.
//
// A var-keyword parameter drains every remaining override, each as its own
// triple with no default. The triples for those are emitted in sorted name
// order, since a Go map has none of its own.
//
// A nil signature means the target cannot be introspected; every override
// then binds directly as (name, value, value).
//
// The second return value holds overrides consumed by nobody; the caller
// checks it against the signature's call contract.
func resolve(sig Signature, overrides map[string]any) ([]resolved, map[string]any, error) {
	remaining := make(map[string]any, len(overrides))
	for k, v := range overrides {
		remaining[k] = v
	}

	if sig == nil {
		names := sortedNames(remaining)
		rs := make([]resolved, 0, len(names))
		for _, name := range names {
			v := remaining[name]
			rs = append(rs, resolved{name: name, value: v, def: v, hasDef: true})
		}
		return rs, map[string]any{}, nil
	}

	var rs []resolved
	for _, p := range sig {
		switch p.Kind {
		case PositionalOrKeyword, KeywordOnly:
			if v, ok := remaining[p.Name]; ok {
				delete(remaining, p.Name)
				rs = append(rs, resolved{name: p.Name, value: v, def: p.Default, hasDef: p.HasDefault})
			} else if p.HasAnnotation {
				rs = append(rs, resolved{name: p.Name, value: p.Annotation, def: p.Default, hasDef: p.HasDefault})
			} else if p.HasDefault {
				rs = append(rs, resolved{name: p.Name, value: p.Default, def: p.Default, hasDef: true})
			} else {
				return nil, nil, resolutionErr(p.Name)
			}
		case VarKeyword:
			for _, name := range sortedNames(remaining) {
				rs = append(rs, resolved{name: name, value: remaining[name]})
				delete(remaining, name)
			}
		}
	}
	return rs, remaining, nil
}

func sortedNames(m map[string]any) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolutionErr(param string) error {
	return &ierrors.InteractError{
		Op:    "interact.resolve",
		Kind:  ierrors.KindResolution,
		Param: param,
		Err:   fmt.Errorf("cannot find control or abbreviation for argument %q", param),
	}
}
