package expr

import (
	"math"

	"github.com/beevik/prefixtree/v2"
)

const (
	piConst = math.Pi
	eConst  = math.E
)

// identInfo describes one reserved word of the expression grammar:
// the four leaves x/pi/e/i, or one of the six unary functions.
// Resolution goes through a prefixtree.Tree the same way the teacher
// resolves REPL command and setting names (host/settings.go), rather
// than a chain of string comparisons; name is re-checked against the
// looked-up word so that abbreviations are rejected — spec.md §4.1
// fixes the grammar to these exact keywords.
type identInfo struct {
	name   string
	isFunc bool
	leaf   func() *Expr      // set when !isFunc
	build  func(*Expr) *Expr // set when isFunc
}

var identifiers = prefixtree.New[identInfo]()

func init() {
	add := func(info identInfo) { identifiers.Add(info.name, info) }

	add(identInfo{name: "x", leaf: NewArg})
	add(identInfo{name: "pi", leaf: func() *Expr { return NewNum(piConst) }})
	add(identInfo{name: "e", leaf: func() *Expr { return NewNum(eConst) }})
	add(identInfo{name: "i", leaf: NewIm})
	add(identInfo{name: "sqrt", isFunc: true, build: NewSqrt})
	add(identInfo{name: "exp", isFunc: true, build: NewExp})
	add(identInfo{name: "ln", isFunc: true, build: NewLn})
	add(identInfo{name: "sin", isFunc: true, build: NewSin})
	add(identInfo{name: "cos", isFunc: true, build: NewCos})
	add(identInfo{name: "tan", isFunc: true, build: NewTan})
}

// lookupIdent resolves word against the reserved-word table,
// returning ok=false if word is unknown or merely an unambiguous
// abbreviation of a reserved word (which the fixed grammar does not
// accept).
func lookupIdent(word string) (identInfo, bool) {
	info, err := identifiers.FindValue(word)
	if err != nil || info.name != word {
		return identInfo{}, false
	}
	return info, true
}
