package inputfilter

import (
	"regexp"
	"testing"
)

func TestMinLength(t *testing.T) {
	v := MinLength(3)
	if v("ab") == nil {
		t.Fatal("expected a violation for a too-short string")
	}
	if v("abc") != nil {
		t.Fatal("expected no violation at the minimum length")
	}
}

func TestMaxLength(t *testing.T) {
	v := MaxLength(3)
	if v("abcd") == nil {
		t.Fatal("expected a violation for a too-long string")
	}
	if v("abc") != nil {
		t.Fatal("expected no violation at the maximum length")
	}
}

func TestPattern(t *testing.T) {
	v := Pattern(regexp.MustCompile(`^[0-9]+$`))
	if v("abc") == nil || v("abc").Kind != PatternMismatch {
		t.Fatal("expected a PatternMismatch violation")
	}
	if v("123") != nil {
		t.Fatal("expected no violation for a matching string")
	}
}

func TestMinValue(t *testing.T) {
	v := MinValue(10)
	if got := v(5); got == nil || got.Kind != RangeUnderflow {
		t.Fatal("expected a RangeUnderflow violation")
	}
	if v(10) != nil {
		t.Fatal("expected no violation at the minimum")
	}
}

func TestMaxValue(t *testing.T) {
	v := MaxValue(10.0)
	if got := v(10.5); got == nil || got.Kind != RangeOverflow {
		t.Fatal("expected a RangeOverflow violation")
	}
	if v(10.0) != nil {
		t.Fatal("expected no violation at the maximum")
	}
}

func TestStep(t *testing.T) {
	v := Step(0, 5)
	if v(12) == nil {
		t.Fatal("expected a StepMismatch violation for a non-multiple")
	}
	if v(15) != nil {
		t.Fatal("expected no violation for an exact multiple")
	}
	if v(0) != nil {
		t.Fatal("expected the base itself to satisfy the step")
	}
}

func TestEquals(t *testing.T) {
	v := EqualTo("secret")
	if got := v("wrong"); got == nil || got.Kind != NotEqual {
		t.Fatal("expected a NotEqual violation")
	}
	if v("secret") != nil {
		t.Fatal("expected no violation for the matching value")
	}
}
