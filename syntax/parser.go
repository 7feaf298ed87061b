package syntax

// DefaultMaxDepth is a group nesting limit that is used
// when ParserOptions.MaxDepth is not set.
const DefaultMaxDepth = 1000

type ParserOptions struct {
	// MaxDepth limits how deep groups can be nested.
	// Zero value means DefaultMaxDepth, negative value disables the limit.
	//
	// Every nested group costs a few stack frames, so the limit
	// keeps adversarial patterns like `((((...` from exhausting the stack.
	MaxDepth int
}

// NewParser returns a parser configured by opts.
// A nil opts is identical to the zero ParserOptions.
//
// A Parser can be reused for several patterns, but it's not
// safe for concurrent use.
func NewParser(opts *ParserOptions) *Parser {
	var p Parser
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.MaxDepth == 0 {
		p.opts.MaxDepth = DefaultMaxDepth
	}
	return &p
}

type Parser struct {
	input string
	depth int

	opts ParserOptions
}

// Parse parses a pattern using the default parser options.
func Parse(pattern string) (Expr, error) {
	re, err := NewParser(nil).Parse(pattern)
	if err != nil {
		return nil, err
	}
	return re.Expr, nil
}

// Parse converts pattern into its syntax tree.
//
// The pattern is scanned byte by byte; a multi-byte UTF-8 sequence
// becomes several Char nodes. All error positions are byte offsets.
//
// The returned error is always a *ParseError.
func (p *Parser) Parse(pattern string) (*Regexp, error) {
	p.input = pattern
	p.depth = 0

	e, pos, err := p.seq(0)
	if err != nil {
		return nil, err
	}
	if pos < len(p.input) {
		// A sequence stops only at ')' or the end of input.
		return nil, &ParseError{
			Kind:  ErrUnexpectedCharacter,
			Pos:   pos,
			Found: p.input[pos],
		}
	}

	return &Regexp{Source: pattern, Expr: e}, nil
}

// seq parses consecutive (possibly repeated) atoms until the end
// of input or a ')', which is left for the caller to consume.
func (p *Parser) seq(pos int) (Expr, int, error) {
	var items []Expr
	for pos < len(p.input) && p.input[pos] != ')' {
		e, next, err := p.rep(pos)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
		pos = next
	}
	return Seq{Items: items}, pos, nil
}

// rep parses an atom followed by an optional '*' or '+'.
//
// Only one quantifier is consumed: in `a**` the second '*'
// is parsed as a literal by the next rep call.
func (p *Parser) rep(pos int) (Expr, int, error) {
	e, pos, err := p.base(pos)
	if err != nil {
		return nil, 0, err
	}
	switch p.byteAt(pos) {
	case '*':
		return Star{X: e}, pos + 1, nil
	case '+':
		return Plus{X: e}, pos + 1, nil
	default:
		return e, pos, nil
	}
}

// base parses a single atom. pos must be a valid input index.
func (p *Parser) base(pos int) (Expr, int, error) {
	switch ch := p.input[pos]; ch {
	case '.':
		return Dot{}, pos + 1, nil

	case '\\':
		if pos+1 == len(p.input) {
			return nil, 0, newParseError(ErrEOFInEscape, pos+1)
		}
		// Escaped byte is taken as is: `\n` is 'n', not a newline.
		return Char{Value: p.input[pos+1]}, pos + 2, nil

	case '(':
		if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
			return nil, 0, &ParseError{
				Kind:  ErrNestingTooDeep,
				Pos:   pos,
				Limit: p.opts.MaxDepth,
			}
		}
		p.depth++
		x, next, err := p.seq(pos + 1)
		p.depth--
		if err != nil {
			return nil, 0, err
		}
		return p.expect(next, ')', Group{X: x})

	case ')':
		// seq never delegates on ')', but base should not
		// silently accept it if some other caller does.
		return nil, 0, newParseError(ErrUnbalancedCloseParen, pos)

	default:
		return Char{Value: ch}, pos + 1, nil
	}
}

// expect consumes want at pos and returns e on success.
func (p *Parser) expect(pos int, want byte, e Expr) (Expr, int, error) {
	if pos >= len(p.input) {
		return nil, 0, &ParseError{
			Kind:     ErrExpectedCharFoundEOF,
			Pos:      pos,
			Expected: want,
		}
	}
	if ch := p.input[pos]; ch != want {
		return nil, 0, &ParseError{
			Kind:     ErrExpectedCharFoundChar,
			Pos:      pos,
			Expected: want,
			Found:    ch,
		}
	}
	return e, pos + 1, nil
}

func (p *Parser) byteAt(pos int) byte {
	if pos >= 0 && pos < len(p.input) {
		return p.input[pos]
	}
	return 0
}
