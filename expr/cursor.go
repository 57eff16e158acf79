package expr

// cursor pairs the remaining unparsed text with its 0-based column
// within the original expression, so syntax errors can report a
// position. This mirrors asm.fstring from the teacher's assembler,
// simplified to a single line since expressions arrive as one CLI
// argument rather than multi-line source.
type cursor struct {
	str    string
	column int
}

func newCursor(s string) cursor {
	return cursor{str: s, column: 0}
}

func (c cursor) isEmpty() bool {
	return len(c.str) == 0
}

func (c cursor) peek() byte {
	return c.str[0]
}

func (c cursor) consume(n int) cursor {
	return cursor{str: c.str[n:], column: c.column + n}
}

func (c cursor) skipSpace() cursor {
	i := 0
	for i < len(c.str) && (c.str[i] == ' ' || c.str[i] == '\t') {
		i++
	}
	return c.consume(i)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}
