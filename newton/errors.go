package newton

import "errors"

// Kind classifies the error families a render can fail with. Only
// ExpressionSyntax, PalettePolicy, ViewportInvalid, JitCompile,
// JitLoad, JitSymbol and Io abort a render; per-pixel numerical
// anomalies are never reported as errors (they are absorbed as
// non-convergence).
type Kind byte

const (
	// ExpressionSyntax means the expression parser rejected the input.
	ExpressionSyntax Kind = iota
	// PalettePolicy means the palette grammar failed on both the
	// chain and gradient rules.
	PalettePolicy
	// ViewportInvalid means the coordinate string failed to parse or
	// violated x1<x2, y1<y2.
	ViewportInvalid
	// JitCompile means the system C compiler rejected the emitted
	// translation unit.
	JitCompile
	// JitLoad means the compiled shared object could not be
	// dynamically loaded.
	JitLoad
	// JitSymbol means the loaded object was missing func or diff.
	JitSymbol
	// Io means a temporary-file or output-file operation failed.
	Io
)

func (k Kind) String() string {
	switch k {
	case ExpressionSyntax:
		return "expression syntax"
	case PalettePolicy:
		return "palette policy"
	case ViewportInvalid:
		return "viewport invalid"
	case JitCompile:
		return "jit compile"
	case JitLoad:
		return "jit load"
	case JitSymbol:
		return "jit symbol"
	case Io:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a classified render-setup failure. All non-per-pixel
// errors produced by the pipeline are wrapped in an Error so callers
// can switch on Kind without string-matching messages.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err under kind, unless err is already nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Is reports whether err (or any error it wraps) was classified
// under kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
