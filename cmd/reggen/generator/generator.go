package generator

import (
	"fmt"
	"io"
	"strings"
)

type Generator interface {
	Generate(w io.Writer) error
}

var initialisms = map[string]string{
	"ID":  "ID",
	"IRQ": "IRQ",
}

// GoName converts an upper snake case register or field name into an
// exported Go identifier, e.g. MIS_ID_WR becomes MisIDWr.
func GoName(name string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		upper := strings.ToUpper(word)
		if s, ok := initialisms[upper]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteString(upper[:1])
		b.WriteString(strings.ToLower(upper[1:]))
	}
	return b.String()
}

// MacroName joins the parts into an upper snake case C identifier.
func MacroName(parts ...string) string {
	return strings.ToUpper(strings.Join(parts, "_"))
}

// WriteComment writes text as line comments, one per line of text.
func WriteComment(w io.Writer, text string) {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fmt.Fprintf(w, "// %s\n", strings.TrimSpace(line))
	}
}
