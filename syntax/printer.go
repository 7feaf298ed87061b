package syntax

import (
	"strings"
)

// Pattern renders e back into the pattern syntax.
//
// For any tree returned by Parse, Parse(Pattern(e)) yields an equal tree.
// Trees built by hand may have no textual form (e.g. a Star of a Star);
// such nodes are printed as-is and will not parse back to the same tree.
func Pattern(e Expr) string {
	var b strings.Builder
	writePattern(&b, e)
	return b.String()
}

func writePattern(w *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Char:
		if isMetachar(e.Value) {
			w.WriteByte('\\')
		}
		w.WriteByte(e.Value)
	case Dot:
		w.WriteByte('.')
	case Star:
		writePattern(w, e.X)
		w.WriteByte('*')
	case Plus:
		writePattern(w, e.X)
		w.WriteByte('+')
	case Group:
		w.WriteByte('(')
		writePattern(w, e.X)
		w.WriteByte(')')
	case Seq:
		for _, x := range e.Items {
			writePattern(w, x)
		}
	}
}
