package syntax

// Walk traverses e in depth-first pre-order.
// If visit returns false, children of that node are skipped.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil || !visit(e) {
		return
	}
	switch e := e.(type) {
	case Star:
		Walk(e.X, visit)
	case Plus:
		Walk(e.X, visit)
	case Group:
		Walk(e.X, visit)
	case Seq:
		for _, x := range e.Items {
			Walk(x, visit)
		}
	}
}

// TreeStats is a summary of a syntax tree shape.
type TreeStats struct {
	Chars  int
	Dots   int
	Stars  int
	Pluses int
	Seqs   int
	Groups int

	// MaxDepth is the deepest group nesting level.
	MaxDepth int
}

// Nodes returns the total number of nodes.
func (s TreeStats) Nodes() int {
	return s.Chars + s.Dots + s.Stars + s.Pluses + s.Seqs + s.Groups
}

// Stats collects the TreeStats of e.
func Stats(e Expr) TreeStats {
	var s TreeStats
	collectStats(&s, e, 0)
	return s
}

func collectStats(s *TreeStats, e Expr, depth int) {
	Walk(e, func(x Expr) bool {
		switch x := x.(type) {
		case Char:
			s.Chars++
		case Dot:
			s.Dots++
		case Star:
			s.Stars++
		case Plus:
			s.Pluses++
		case Seq:
			s.Seqs++
		case Group:
			s.Groups++
			if depth+1 > s.MaxDepth {
				s.MaxDepth = depth + 1
			}
			collectStats(s, x.X, depth+1)
			return false
		}
		return true
	})
}
