package syntax

import (
	"fmt"
	"strings"
)

type Regexp struct {
	Source string
	Expr   Expr
}

// Expr is a parsed pattern node.
//
// The set of node types is closed: Char, Dot, Star, Plus, Seq and Group.
// Nodes are never modified after the parser returns them.
type Expr interface {
	exprNode()
}

// Char matches exactly one literal byte.
type Char struct {
	Value byte
}

// Dot matches any single character.
type Dot struct{}

// Star matches zero or more repetitions of X.
type Star struct {
	X Expr
}

// Plus matches one or more repetitions of X.
type Plus struct {
	X Expr
}

// Seq is a concatenation of its items.
//
// Items can be empty: that's what an empty pattern or `()` group
// body is parsed into.
type Seq struct {
	Items []Expr
}

// Group is a parenthesized sub-expression.
type Group struct {
	X Expr
}

func (Char) exprNode()  {}
func (Dot) exprNode()   {}
func (Star) exprNode()  {}
func (Plus) exprNode()  {}
func (Seq) exprNode()   {}
func (Group) exprNode() {}

// Equal reports whether x and y are structurally identical trees.
//
// A nil Seq.Items is equal to an empty one.
func Equal(x, y Expr) bool {
	switch x := x.(type) {
	case Char:
		y, ok := y.(Char)
		return ok && x.Value == y.Value
	case Dot:
		_, ok := y.(Dot)
		return ok
	case Star:
		y, ok := y.(Star)
		return ok && Equal(x.X, y.X)
	case Plus:
		y, ok := y.(Plus)
		return ok && Equal(x.X, y.X)
	case Group:
		y, ok := y.(Group)
		return ok && Equal(x.X, y.X)
	case Seq:
		y, ok := y.(Seq)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case nil:
		return y == nil
	default:
		return false
	}
}

// FormatSyntax returns an s-expression form of e.
//
// Sequences are printed as `{x y}`, repetitions as `(* x)` and `(+ x)`,
// groups as `(group x)`. Chars that would be ambiguous inside that
// notation are quoted, non-printable bytes are printed as '\xNN'.
func FormatSyntax(e Expr) string {
	switch e := e.(type) {
	case Char:
		return formatChar(e.Value)
	case Dot:
		return "."
	case Star:
		return fmt.Sprintf("(* %s)", FormatSyntax(e.X))
	case Plus:
		return fmt.Sprintf("(+ %s)", FormatSyntax(e.X))
	case Group:
		return fmt.Sprintf("(group %s)", FormatSyntax(e.X))
	case Seq:
		return fmt.Sprintf("{%s}", formatArgsSyntax(e.Items))
	default:
		return fmt.Sprintf("<expr=%T>", e)
	}
}

func formatArgsSyntax(args []Expr) string {
	parts := make([]string, len(args))
	for i, e := range args {
		parts[i] = FormatSyntax(e)
	}
	return strings.Join(parts, " ")
}

func formatChar(ch byte) string {
	switch {
	case ch == '{', ch == '}', ch == '(', ch == ')', ch == ' ', ch == '.':
		return fmt.Sprintf("'%c'", ch)
	case ch == '\'':
		return `'\''`
	case !isPrint(ch):
		return fmt.Sprintf("'\\x%02x'", ch)
	default:
		return string(ch)
	}
}
