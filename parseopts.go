package triad

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	powopt   struct{}
	depthopt int
	skipopt  func(col int, r rune)
	presetopt []ParseOption
)

// parsectx holds general data for parsing.
type parsectx struct {
	// pow indicates that ^ is an operator.
	pow bool
	// maxdepth is the maximum group nesting depth, or 0 for the default.
	maxdepth int
	// skip is called with every rune that no scanner matches.
	skip func(col int, r rune)
}

// DefaultMaxDepth is the group nesting depth allowed when no MaxDepth option
// is given.
const DefaultMaxDepth = 256

func (p *parsectx) depth() int {
	if p.maxdepth <= 0 {
		return DefaultMaxDepth
	}
	return p.maxdepth
}

// Power tells the parser to scan ^ as the exponentiation operator. Without
// it, ^ is skipped like any other unrecognized character.
func Power() ParseOption {
	return powopt{}
}

func (powopt) parseOption(p parsectx) parsectx {
	p.pow = true
	return p
}

// MaxDepth sets the maximum nesting depth of parenthesized groups. Deeper
// groups are consumed by the tokenizer but left empty, and evaluating them
// results in a *DepthError. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("triad: max depth must be positive")
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// OnSkip sets a function to call with each character the tokenizer drops
// because it does not begin any token. col is the rune position of the
// character in the input, starting from 1. The function is called in order of
// position.
func OnSkip(f func(col int, r rune)) ParseOption {
	return skipopt(f)
}

func (o skipopt) parseOption(p parsectx) parsectx {
	p.skip = o
	return p
}

// ParsingPreset combines options into one. Applying a preset is the same as
// applying each of its options in order.
func ParsingPreset(opts ...ParseOption) ParseOption {
	v := make(presetopt, 0, len(opts))
	for _, opt := range opts {
		if opt != nil {
			v = append(v, opt)
		}
	}
	return v
}

func (o presetopt) parseOption(p parsectx) parsectx {
	for _, opt := range o {
		p = opt.parseOption(p)
	}
	return p
}
