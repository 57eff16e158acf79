package palette

import (
	"fmt"

	"github.com/nfractal/newtongen/newton"
)

// PolicyError reports that a palette string satisfied neither the
// chain grammar nor the supplemented gradient grammar; both
// diagnostics are carried, per spec.md §7 (PalettePolicy, "both
// diagnostics surfaced").
type PolicyError struct {
	ChainErr    error
	GradientErr error
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("chain grammar: %v; gradient grammar: %v", e.ChainErr, e.GradientErr)
}

func policyError(chainErr, gradientErr error) error {
	return newton.Wrap(newton.PalettePolicy, &PolicyError{ChainErr: chainErr, GradientErr: gradientErr})
}
