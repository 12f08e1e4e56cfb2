// Package picture parses COBOL PIC clauses into storage shapes.
package picture

import (
	"regexp"
	"strconv"
	"strings"
)

// Spec describes the declared shape of a variable: numeric versus
// fixed-width text, and the total character width.
type Spec struct {
	Numeric bool
	Length  int
}

// A PIC token is a run of 9 or X symbols, each optionally annotated
// with a parenthesized repeat count, e.g. "9(3)", "X(10)", "99X".
var symbolPattern = regexp.MustCompile(`([9X])(\((\d+)\))?`)

// Parse interprets a PIC token. The width is the sum of the repeated
// symbols; the slot is numeric when the token starts with 9.
func Parse(pic string) Spec {
	pic = strings.ToUpper(strings.TrimSpace(pic))
	spec := Spec{Numeric: strings.HasPrefix(pic, "9")}
	for _, m := range symbolPattern.FindAllStringSubmatch(pic, -1) {
		if m[3] != "" {
			if n, err := strconv.Atoi(m[3]); err == nil {
				spec.Length += n
			}
			continue
		}
		spec.Length++
	}
	return spec
}
