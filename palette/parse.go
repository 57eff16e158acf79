package palette

import (
	"fmt"
	"strconv"

	"github.com/nfractal/newtongen/newton"
)

// taggedColor is one color literal parsed from a palette string,
// remembering whether it was written in the hidden syntax — hidden
// colors participate in gradient anchoring (full-separator
// interpolation) but never appear in the built color table.
type taggedColor struct {
	color  RGB
	hidden bool
}

// Parse resolves a palette string into its ordered visible color
// table and default color (spec.md §4.4). It first tries the chain
// grammar (`>`, `-(k)>`, `|>` separators over `#RRGGBB` and
// `(#RRGGBB)` hidden-color terms); if that fails it tries the
// supplemented `gradient(#RRGGBB, ...)` grammar. If both fail, both
// diagnostics are reported together as a PolicyError.
func Parse(s string) ([]RGB, RGB, error) {
	colors, def, chainErr := parseChain(s)
	if chainErr == nil {
		return colors, def, nil
	}
	colors, gradientErr := parseGradient(s)
	if gradientErr == nil {
		return colors, Black, nil
	}
	return nil, RGB{}, policyError(chainErr, gradientErr)
}

func parseChain(s string) ([]RGB, RGB, error) {
	c := newCursor(s).skipSpace()

	chain, c, err := parseTerm(c)
	if err != nil {
		return nil, RGB{}, err
	}
	def := Black

	for {
		c = c.skipSpace()
		if c.isEmpty() {
			break
		}

		switch {
		case c.hasPrefix("|>"):
			c = c.consume(2).skipSpace()
			rhs, rest, err := parseTerm(c)
			if err != nil {
				return nil, RGB{}, err
			}
			def = rhs[0].color
			c = rest

		case c.hasPrefix("-("):
			k, rest, err := parseFullSeparator(c)
			if err != nil {
				return nil, RGB{}, err
			}
			rest = rest.skipSpace()
			rhs, rest2, err := parseTerm(rest)
			if err != nil {
				return nil, RGB{}, err
			}
			chain = interpolateChain(chain, rhs, k)
			c = rest2

		case c.hasPrefix(">"):
			c = c.consume(1).skipSpace()
			rhs, rest, err := parseTerm(c)
			if err != nil {
				return nil, RGB{}, err
			}
			chain = append(chain, rhs...)
			c = rest

		default:
			return nil, RGB{}, newton.Wrap(newton.PalettePolicy,
				fmt.Errorf("column %d: expected a separator ('>', '-(k)>', or '|>')", c.column+1))
		}
	}

	return visible(chain), def, nil
}

// parseTerm parses one color or hidden-color literal.
func parseTerm(c cursor) ([]taggedColor, cursor, error) {
	if c.isEmpty() {
		return nil, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: expected a color literal", c.column+1))
	}
	if c.peek() == '(' {
		inner := c.consume(1)
		color, rest, err := parseColorLiteral(inner)
		if err != nil {
			return nil, c, err
		}
		rest = rest.skipSpace()
		if rest.isEmpty() || rest.peek() != ')' {
			return nil, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: expected ')' closing hidden color", rest.column+1))
		}
		return []taggedColor{{color: color, hidden: true}}, rest.consume(1), nil
	}
	color, rest, err := parseColorLiteral(c)
	if err != nil {
		return nil, c, err
	}
	return []taggedColor{{color: color}}, rest, nil
}

func parseColorLiteral(c cursor) (RGB, cursor, error) {
	if len(c.str) < 7 {
		return RGB{}, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: expected #RRGGBB", c.column+1))
	}
	color, ok := parseHexColor(c.str[:7])
	if !ok {
		return RGB{}, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: malformed color literal %q", c.column+1, c.str[:7]))
	}
	return color, c.consume(7), nil
}

// parseFullSeparator parses "-(k)>" starting at c (which must begin
// with "-(") and returns k and the cursor positioned after '>'.
func parseFullSeparator(c cursor) (int, cursor, error) {
	rest := c.consume(2) // "-("
	i := 0
	for i < len(rest.str) && rest.str[i] >= '0' && rest.str[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: expected a positive integer in '-(k)>'", rest.column+1))
	}
	k, err := strconv.Atoi(rest.str[:i])
	if err != nil || k < 1 {
		return 0, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: '-(k)>' requires k a positive integer", rest.column+1))
	}
	rest = rest.consume(i)
	if !rest.hasPrefix(")>") {
		return 0, c, newton.Wrap(newton.PalettePolicy, fmt.Errorf("column %d: expected ')>' closing full separator", rest.column+1))
	}
	return k, rest.consume(2), nil
}

func visible(chain []taggedColor) []RGB {
	out := make([]RGB, 0, len(chain))
	for _, tc := range chain {
		if !tc.hidden {
			out = append(out, tc.color)
		}
	}
	return out
}
