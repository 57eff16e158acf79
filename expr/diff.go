package expr

// Diff differentiates e with respect to x and returns a new,
// independently-owned tree; e is not modified, and the result shares
// no nodes with it, so the caller may keep using e. Every intermediate result
// flows back through the smart constructors in tree.go, so the
// derivative is itself normalized.
func Diff(e *Expr) *Expr {
	switch e.Kind {
	case Arg:
		return NewNum(1)

	case Num, Im:
		return NewNum(0)

	case Add:
		return NewAdd(Diff(e.Child0), Diff(e.Child1))

	case Sub:
		return NewSub(Diff(e.Child0), Diff(e.Child1))

	case Mul:
		// (fg)' = f'g + fg'
		return NewAdd(
			NewMul(Diff(e.Child0), cloneTree(e.Child1)),
			NewMul(cloneTree(e.Child0), Diff(e.Child1)),
		)

	case Div:
		// (f/g)' = (f'g - fg') / g^2
		f, g := e.Child0, e.Child1
		num := NewSub(
			NewMul(Diff(f), cloneTree(g)),
			NewMul(cloneTree(f), Diff(g)),
		)
		den := NewMul(cloneTree(g), cloneTree(g))
		return NewDiv(num, den)

	case PowI:
		// (f^n)' = n * f^(n-1) * f'
		n := e.N
		return NewMul(
			NewMul(NewNum(float64(n)), NewPowI(cloneTree(e.Child0), n-1)),
			Diff(e.Child0),
		)

	case PowC:
		// (f^r)' = r * f^(r-1) * f'
		r := e.Num
		return NewMul(
			NewMul(NewNum(r), NewPow(cloneTree(e.Child0), r-1)),
			Diff(e.Child0),
		)

	case Sqrt:
		// (sqrt(f))' = f' / (2*sqrt(f))
		return NewDiv(Diff(e.Child0), NewMul(NewNum(2), NewSqrt(cloneTree(e.Child0))))

	case Exp:
		// (exp(f))' = exp(f) * f'
		return NewMul(NewExp(cloneTree(e.Child0)), Diff(e.Child0))

	case Ln:
		// (ln(f))' = f' / f
		return NewDiv(Diff(e.Child0), cloneTree(e.Child0))

	case Sin:
		// (sin(f))' = cos(f) * f'
		return NewMul(NewCos(cloneTree(e.Child0)), Diff(e.Child0))

	case Cos:
		// (cos(f))' = -sin(f) * f'
		return NewMul(NewNeg(NewSin(cloneTree(e.Child0))), Diff(e.Child0))

	case Tan:
		// (tan(f))' = f' / cos(f)^2
		return NewDiv(Diff(e.Child0), NewMul(NewCos(cloneTree(e.Child0)), NewCos(cloneTree(e.Child0))))

	default:
		panic("expr: unhandled kind in Diff")
	}
}

// cloneTree returns a deep, independently-owned copy of e. Diff needs
// a fresh copy of every subexpression it does not itself consume,
// since tree nodes are uniquely owned and never shared (spec.md §3).
func cloneTree(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	clone := &Expr{Kind: e.Kind, Num: e.Num, N: e.N}
	clone.Child0 = cloneTree(e.Child0)
	clone.Child1 = cloneTree(e.Child1)
	return clone
}
