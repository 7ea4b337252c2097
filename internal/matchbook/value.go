package matchbook

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Value is a sealed interface for comparison operands.
// Only Text, Int, Float, Texts and Numbers implement it.
//
// The tag carried by the concrete type is what the builder dispatches on:
// text values are single-quoted on the wire, numeric values are emitted
// bare, and sequences are emitted comma-joined inside the comparison
// parentheses. Contains accepts only Text.
type Value interface {
	value() // Sealed - only types in this package implement it
}

// Text is a textual comparison value. Rendered single-quoted and NFC
// normalized so the same logical string always produces the same wire bytes.
type Text string

func (Text) value() {}

// Int is an integer comparison value.
type Int int64

func (Int) value() {}

// Float is a floating-point comparison value. Integral floats keep a
// trailing ".0" on the wire, so Float(1) renders as "1.0", distinct from
// Int(1).
type Float float64

func (Float) value() {}

// Texts is a sequence of textual values, rendered as 'a','b','c'.
type Texts []string

func (Texts) value() {}

// Numbers is a sequence of numeric values, rendered comma-joined.
type Numbers []float64

func (Numbers) value() {}

// render produces the wire form of a value.
func render(v Value) string {
	switch val := v.(type) {
	case Text:
		return renderText(string(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return renderFloat(float64(val))
	case Texts:
		parts := make([]string, len(val))
		for i, s := range val {
			parts[i] = renderText(s)
		}
		return strings.Join(parts, ",")
	case Numbers:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = renderFloat(f)
		}
		return strings.Join(parts, ",")
	default:
		// Unreachable: Value is sealed.
		return ""
	}
}

func renderText(s string) string {
	return "'" + norm.NFC.String(s) + "'"
}

// renderFloat keeps integral floats distinguishable from integers on the
// wire: 1.0 renders as "1.0", not "1".
func renderFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// isText reports whether v carries a single textual value.
func isText(v Value) bool {
	_, ok := v.(Text)
	return ok
}
