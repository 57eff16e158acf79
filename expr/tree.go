// Package expr implements the symbolic function algebra of the
// Newton-fractal renderer: parsing expressions over the complex
// variable x, building a normalized expression tree via smart
// constructors, differentiating it, evaluating it in pure Go for
// testing, and emitting equivalent C for JIT compilation.
package expr

import "math"

// Kind identifies the shape of an expression node.
type Kind byte

const (
	// Arg is the complex variable x.
	Arg Kind = iota
	// Num is a real-valued constant.
	Num
	// Im is the imaginary unit i.
	Im
	// Add, Sub, Mul, Div are binary arithmetic operators.
	Add
	Sub
	Mul
	Div
	// PowI raises a subexpression to an integer power.
	PowI
	// PowC raises a subexpression to a real (non-integer) power.
	PowC
	// Sqrt, Exp, Ln, Sin, Cos, Tan are unary elementary functions.
	Sqrt
	Exp
	Ln
	Sin
	Cos
	Tan
)

// Expr is one node of an immutable expression tree. Every leaf is
// Arg, Num or Im. Children are owned exclusively by their parent:
// there is no sharing and no cycles, so a tree may always be walked,
// copied or consumed without aliasing concerns.
type Expr struct {
	Kind   Kind
	Num    float64 // valid when Kind == Num or Kind == PowC (exponent)
	N      int     // valid when Kind == PowI (integer exponent)
	Child0 *Expr
	Child1 *Expr // valid for binary Kind values (Add, Sub, Mul, Div)
}

func (k Kind) isBinary() bool {
	switch k {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

func (k Kind) isUnaryFunc() bool {
	switch k {
	case Sqrt, Exp, Ln, Sin, Cos, Tan:
		return true
	default:
		return false
	}
}

// epsEqual reports whether a equals b within machine epsilon for
// double precision, per spec.md §4.2 ("equality of doubles against
// {0, 1, 1/2} uses absolute tolerance = machine epsilon for double").
func epsEqual(a, b float64) bool {
	return math.Abs(a-b) <= math.Nextafter(1, 2)-1
}

func isInt32Valued(f float64) bool {
	if f != math.Trunc(f) {
		return false
	}
	return f >= math.MinInt32 && f <= math.MaxInt32
}

// NewArg returns the leaf node for the complex variable x.
func NewArg() *Expr { return &Expr{Kind: Arg} }

// NewIm returns the leaf node for the imaginary unit i.
func NewIm() *Expr { return &Expr{Kind: Im} }

// NewNum returns a real constant node, collapsing integer-valued
// exponents is handled separately by NewPow; NewNum never folds.
func NewNum(v float64) *Expr { return &Expr{Kind: Num, Num: v} }

// NewAdd builds a+b, applying the §4.2 normalization law: constant
// folding and the 0+y = y, x+0 = x identities.
func NewAdd(a, b *Expr) *Expr {
	if a.Kind == Num && b.Kind == Num {
		return NewNum(a.Num + b.Num)
	}
	if a.Kind == Num && epsEqual(a.Num, 0) {
		return b
	}
	if b.Kind == Num && epsEqual(b.Num, 0) {
		return a
	}
	return &Expr{Kind: Add, Child0: a, Child1: b}
}

// NewSub builds a-b, applying constant folding and x-0 = x.
func NewSub(a, b *Expr) *Expr {
	if a.Kind == Num && b.Kind == Num {
		return NewNum(a.Num - b.Num)
	}
	if b.Kind == Num && epsEqual(b.Num, 0) {
		return a
	}
	return &Expr{Kind: Sub, Child0: a, Child1: b}
}

// NewMul builds a*b, applying constant folding and the
// 0*y = y*0 = 0, 1*y = y, x*1 = x identities.
func NewMul(a, b *Expr) *Expr {
	if a.Kind == Num && b.Kind == Num {
		return NewNum(a.Num * b.Num)
	}
	if a.Kind == Num && epsEqual(a.Num, 0) {
		return NewNum(0)
	}
	if b.Kind == Num && epsEqual(b.Num, 0) {
		return NewNum(0)
	}
	if a.Kind == Num && epsEqual(a.Num, 1) {
		return b
	}
	if b.Kind == Num && epsEqual(b.Num, 1) {
		return a
	}
	return &Expr{Kind: Mul, Child0: a, Child1: b}
}

// NewDiv builds a/b, applying constant folding and the
// 0/y = 0, x/1 = x identities.
func NewDiv(a, b *Expr) *Expr {
	if a.Kind == Num && b.Kind == Num {
		return NewNum(a.Num / b.Num)
	}
	if a.Kind == Num && epsEqual(a.Num, 0) {
		return NewNum(0)
	}
	if b.Kind == Num && epsEqual(b.Num, 1) {
		return a
	}
	return &Expr{Kind: Div, Child0: a, Child1: b}
}

// NewPowI builds e^n for an integer exponent n, applying the
// x^0 = 1, x^1 = x identities and constant folding.
func NewPowI(e *Expr, n int) *Expr {
	if e.Kind == Num {
		return NewNum(math.Pow(e.Num, float64(n)))
	}
	switch n {
	case 0:
		return NewNum(1)
	case 1:
		return e
	}
	return &Expr{Kind: PowI, Child0: e, N: n}
}

// NewPow builds e^r for a real exponent r (as produced by parsing
// `e^r`), collapsing to PowI when r is an integer within int32 range,
// to Sqrt when r = 1/2, and folding x^0, x^1 and constants exactly
// like NewPowI.
func NewPow(e *Expr, r float64) *Expr {
	if isInt32Valued(r) {
		return NewPowI(e, int(r))
	}
	if epsEqual(r, 0.5) {
		return NewSqrt(e)
	}
	if e.Kind == Num {
		return NewNum(math.Pow(e.Num, r))
	}
	return &Expr{Kind: PowC, Child0: e, Num: r}
}

// NewSqrt builds sqrt(e), folding numeric constants.
func NewSqrt(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Sqrt(e.Num))
	}
	return &Expr{Kind: Sqrt, Child0: e}
}

// NewExp builds exp(e), folding numeric constants.
func NewExp(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Exp(e.Num))
	}
	return &Expr{Kind: Exp, Child0: e}
}

// NewLn builds ln(e), folding numeric constants.
func NewLn(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Log(e.Num))
	}
	return &Expr{Kind: Ln, Child0: e}
}

// NewSin builds sin(e), folding numeric constants.
func NewSin(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Sin(e.Num))
	}
	return &Expr{Kind: Sin, Child0: e}
}

// NewCos builds cos(e), folding numeric constants.
func NewCos(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Cos(e.Num))
	}
	return &Expr{Kind: Cos, Child0: e}
}

// NewTan builds tan(e), folding numeric constants.
func NewTan(e *Expr) *Expr {
	if e.Kind == Num {
		return NewNum(math.Tan(e.Num))
	}
	return &Expr{Kind: Tan, Child0: e}
}

// NewNeg builds -e as 0-e, reusing the Sub normalization law (so
// -Num(c) folds to Num(-c) rather than allocating a node).
func NewNeg(e *Expr) *Expr {
	return NewSub(NewNum(0), e)
}
