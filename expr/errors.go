package expr

import (
	"errors"
	"fmt"

	"github.com/nfractal/newtongen/newton"
)

// Internal sentinels used by the shunting-yard collapse step in
// parse.go; both are always translated into a positioned SyntaxError
// before reaching a caller.
var (
	errShortStack  = errors.New("expr: operator with too few operands")
	errPowExponent = errors.New("expr: exponent must be a numeric literal")
)

// SyntaxError reports a parse failure at a column within the
// original expression text, per spec.md §4.1 ("syntactic errors are
// reported with source position") and §7 (ExpressionSyntax).
type SyntaxError struct {
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column+1, e.Message)
}

func syntaxErrorf(c cursor, format string, args ...any) error {
	return newton.Wrap(newton.ExpressionSyntax, &SyntaxError{
		Column:  c.column,
		Message: fmt.Sprintf(format, args...),
	})
}
