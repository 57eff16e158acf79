package expr

import "math/cmplx"

// Eval evaluates the tree at x using pure Go arithmetic. It exists so
// the §8 invariant tests (central-difference check, smart-constructor
// identities, round-trip against emitted C) never need to shell out
// to a C compiler; production renders evaluate through the JIT
// package instead.
func Eval(e *Expr, x complex128) complex128 {
	switch e.Kind {
	case Arg:
		return x
	case Num:
		return complex(e.Num, 0)
	case Im:
		return complex(0, 1)
	case Add:
		return Eval(e.Child0, x) + Eval(e.Child1, x)
	case Sub:
		return Eval(e.Child0, x) - Eval(e.Child1, x)
	case Mul:
		return Eval(e.Child0, x) * Eval(e.Child1, x)
	case Div:
		return Eval(e.Child0, x) / Eval(e.Child1, x)
	case PowI:
		return cmplx.Pow(Eval(e.Child0, x), complex(float64(e.N), 0))
	case PowC:
		return cmplx.Pow(Eval(e.Child0, x), complex(e.Num, 0))
	case Sqrt:
		return cmplx.Sqrt(Eval(e.Child0, x))
	case Exp:
		return cmplx.Exp(Eval(e.Child0, x))
	case Ln:
		return cmplx.Log(Eval(e.Child0, x))
	case Sin:
		return cmplx.Sin(Eval(e.Child0, x))
	case Cos:
		return cmplx.Cos(Eval(e.Child0, x))
	case Tan:
		return cmplx.Tan(Eval(e.Child0, x))
	default:
		panic("expr: unhandled kind in Eval")
	}
}
