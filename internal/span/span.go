package span

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind tells field spans from function spans.
type Kind int

const (
	KindField Kind = iota
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "FIELD"
	case KindFunction:
		return "FUNCTION"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Delimiters of the two span syntaxes.
const (
	FieldOpen     = "${"
	FieldClose    = "}"
	FunctionOpen  = "#{"
	FunctionClose = "}#"
)

var (
	fieldPattern    = regexp.MustCompile(`\$\{.*?\}`)
	functionPattern = regexp.MustCompile(`#\{.*?\}#`)
)

// MatchUnit is one span found in a template. Content includes the delimiters;
// Begin and End are byte offsets of the half-open range [Begin, End).
type MatchUnit struct {
	Content string
	Kind    Kind
	Begin   int
	End     int
}

// Inner returns the span text without its delimiters.
func (u MatchUnit) Inner() string {
	opening, closing := FieldOpen, FieldClose
	if u.Kind == KindFunction {
		opening, closing = FunctionOpen, FunctionClose
	}
	if len(u.Content) < len(opening)+len(closing) {
		return ""
	}
	return u.Content[len(opening) : len(u.Content)-len(closing)]
}

func (u MatchUnit) String() string {
	return fmt.Sprintf("%s%q[%d,%d)", u.Kind, u.Content, u.Begin, u.End)
}

// FieldUnit builds a field unit for a bare field name, wrapping it in field
// delimiters unless it already carries them.
func FieldUnit(name string) MatchUnit {
	content := name
	if !strings.HasPrefix(name, FieldOpen) || !strings.HasSuffix(name, FieldClose) || len(name) < len(FieldOpen)+len(FieldClose) {
		content = FieldOpen + name + FieldClose
	}
	return MatchUnit{Content: content, Kind: KindField, Begin: 0, End: len(content)}
}

// ScanFields returns every field span of s in textual order.
func ScanFields(s string) []MatchUnit {
	return scan(s, fieldPattern, KindField)
}

// ScanFunctions returns every function span of s in textual order.
func ScanFunctions(s string) []MatchUnit {
	return scan(s, functionPattern, KindFunction)
}

// CountFunctions returns the number of function spans in s.
func CountFunctions(s string) int {
	return len(functionPattern.FindAllStringIndex(s, -1))
}

// FirstFunction returns the first function span of s.
func FirstFunction(s string) (MatchUnit, bool) {
	loc := functionPattern.FindStringIndex(s)
	if loc == nil {
		return MatchUnit{}, false
	}
	return MatchUnit{Content: s[loc[0]:loc[1]], Kind: KindFunction, Begin: loc[0], End: loc[1]}, true
}

func scan(s string, pattern *regexp.Regexp, kind Kind) []MatchUnit {
	locs := pattern.FindAllStringIndex(s, -1)
	units := make([]MatchUnit, 0, len(locs))
	for _, loc := range locs {
		units = append(units, MatchUnit{
			Content: s[loc[0]:loc[1]],
			Kind:    kind,
			Begin:   loc[0],
			End:     loc[1],
		})
	}
	return units
}
