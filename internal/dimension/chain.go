package dimension

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
)

// SummaryUnit is one pipeline reducing a source to a string.
type SummaryUnit struct {
	Name   string
	Stages []Unit
}

// SummaryChain is an ordered set of summary units whose outputs are
// concatenated.
type SummaryChain []*SummaryUnit

// Names returns the unit names in order.
func (c SummaryChain) Names() []string {
	out := make([]string, len(c))
	for i, u := range c {
		out[i] = u.Name
	}
	return out
}

// Select returns the units called name, or the whole chain when name is
// empty.
func (c SummaryChain) Select(name string) (SummaryChain, error) {
	if name == "" {
		return c, nil
	}
	for _, u := range c {
		if u.Name == name {
			return SummaryChain{u}, nil
		}
	}
	return nil, errs.Emptyf("summary %q", name)
}

// CheckChain verifies that units can run in sequence on a root of shape root:
// every stage accepts what the previous one produces and the last one
// produces a string.
func CheckChain(units []Unit, root Shape) error {
	if len(units) == 0 {
		return errs.Emptyf("stages")
	}
	if !units[0].In().Accepts(root) {
		return errs.TypeMismatch(fmt.Sprintf("stage 0 %s input", units[0]), units[0].In().String(), root.String())
	}
	for i := 1; i < len(units); i++ {
		prev, next := units[i-1], units[i]
		if !next.In().Accepts(prev.Out()) {
			return errs.TypeMismatch(fmt.Sprintf("stage %d %s input", i, next), next.In().String(), prev.Out().String())
		}
	}
	last := units[len(units)-1]
	if last.Out() != ShapeString {
		return errs.TypeMismatch(fmt.Sprintf("stage %d %s output", len(units)-1, last), ShapeString.String(), last.Out().String())
	}
	return nil
}
