package palette

import (
	"errors"
	"reflect"
	"testing"
)

func mustHex(s string) RGB {
	c, ok := parseHexColor(s)
	if !ok {
		panic("bad test fixture color " + s)
	}
	return c
}

func TestParseSimpleChain(t *testing.T) {
	colors, def, err := Parse("#ff0000>#00ff00>#0000ff")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []RGB{mustHex("#ff0000"), mustHex("#00ff00"), mustHex("#0000ff")}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if def != Black {
		t.Errorf("def = %v, want black", def)
	}
}

func TestParseDefaultSeparator(t *testing.T) {
	colors, def, err := Parse("#ff0000 |> #123456")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []RGB{mustHex("#ff0000")}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if def != mustHex("#123456") {
		t.Errorf("def = %v, want #123456", def)
	}
}

func TestParseFullSeparatorInterpolates(t *testing.T) {
	colors, def, err := Parse("#000000-(2)>#FFFFFF")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []RGB{
		{0, 0, 0},
		{85, 85, 85},
		{170, 170, 170},
		{255, 255, 255},
	}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if def != Black {
		t.Errorf("def = %v, want black", def)
	}
}

func TestParseHiddenColorAnchorsButDoesNotAppear(t *testing.T) {
	colors, _, err := Parse("#ff0000>(#00ff00)-(1)>#0000ff")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, c := range colors {
		if c == mustHex("#00ff00") {
			t.Errorf("hidden color leaked into visible table: %v", colors)
		}
	}
	if len(colors) != 3 {
		t.Errorf("len(colors) = %d, want 3 (first + one interpolated + last)", len(colors))
	}
}

func TestParseGradientFallback(t *testing.T) {
	colors, def, err := Parse("gradient(#ff0000, #00ff00, #0000ff)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []RGB{mustHex("#ff0000"), mustHex("#00ff00"), mustHex("#0000ff")}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if def != Black {
		t.Errorf("def = %v, want black", def)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, err := Parse("not a palette at all")
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *PolicyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a wrapped *PolicyError, got %T: %v", err, err)
	}
	if pe.ChainErr == nil || pe.GradientErr == nil {
		t.Errorf("PolicyError should carry both diagnostics, got %+v", pe)
	}
}

func TestParseRejectsMalformedColor(t *testing.T) {
	if _, _, err := Parse("#zzzzzz"); err == nil {
		t.Fatal("expected an error for malformed color")
	}
}

func TestParseGradientRejectsAbbreviatedKeyword(t *testing.T) {
	if _, _, err := Parse("grad(#ff0000, #00ff00)"); err == nil {
		t.Fatal("expected an error for an abbreviated 'gradient' keyword")
	}
}

func TestParseGradientRequiresClosingParen(t *testing.T) {
	if _, _, err := Parse("gradient(#ff0000, #00ff00"); err == nil {
		t.Fatal("expected an error for an unterminated gradient(...)")
	}
}

func TestParseRejectsNonPositiveInterpolationCount(t *testing.T) {
	if _, _, err := Parse("#ff0000-(0)>#00ff00"); err == nil {
		t.Fatal("expected an error for k=0 in full separator")
	}
}
