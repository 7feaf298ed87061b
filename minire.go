// Package minire parses a small regular expression dialect into a syntax tree.
//
// The dialect has literal characters, `.`, single-byte `\` escapes,
// `(...)` groups and postfix `*` and `+` repetition.
// See package syntax for the tree node types.
package minire

import (
	"strconv"

	"github.com/quasilyte/minire/syntax"
)

// Parse returns a syntax tree for expr.
//
// On failure, the error is a *syntax.ParseError that reads
// like "at position 1, EOF in escape".
func Parse(expr string) (syntax.Expr, error) {
	return syntax.Parse(expr)
}

// MustParse is like Parse but panics if expr can't be parsed.
func MustParse(expr string) syntax.Expr {
	e, err := Parse(expr)
	if err != nil {
		panic(`minire: Parse(` + strconv.Quote(expr) + `): ` + err.Error())
	}
	return e
}
