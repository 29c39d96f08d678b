package inputfilter

import (
	"regexp"
	"strings"
	"testing"
)

func identity[T any](v T) T { return v }

func TestFilterPurity_NoFiltersReturnsInputUnchanged(t *testing.T) {
	f := NewField[string, string]("name", identity[string])
	out, violations := f.Filter("Ada Lovelace")
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out != "Ada Lovelace" {
		t.Fatalf("expected input unchanged, got %q", out)
	}
}

func TestFilterOrdering_AppliesInDeclarationOrder(t *testing.T) {
	// f1 = TrimSpace, f2 = ToUpper; pipeline must return f2(f1(x)), not f1(f2(x)).
	f := NewField[string, string]("name", identity[string],
		WithFilters[string, string](TrimSpace(), ToUpper()))
	out, violations := f.Filter("  ada  ")
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out != "ADA" {
		t.Fatalf("expected trim-then-uppercase, got %q", out)
	}
}

func TestFilterOrdering_DeclarationOrderGovernsResult(t *testing.T) {
	// Truncate-then-trim and trim-then-truncate produce different results
	// on whitespace-padded input, demonstrating declaration order (not
	// some fixed internal order) governs the pipeline.
	truncateThenTrim := NewField[string, string]("a", identity[string],
		WithFilters[string, string](Truncate(3), TrimSpace()))
	trimThenTruncate := NewField[string, string]("b", identity[string],
		WithFilters[string, string](TrimSpace(), Truncate(3)))

	outA, _ := truncateThenTrim.Filter("  hi  ")
	outB, _ := trimThenTruncate.Filter("  hi  ")
	if outA != "h" {
		t.Fatalf("expected truncate-then-trim to yield %q, got %q", "h", outA)
	}
	if outB != "hi" {
		t.Fatalf("expected trim-then-truncate to yield %q, got %q", "hi", outB)
	}
}

func TestValueMissingMonotonicity_RequiredFieldRejectsAbsence(t *testing.T) {
	f := NewField[string, string]("name", identity[string], WithRequired[string, string](true))
	violations := f.ValidateOptionDetailed(nil)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d", len(violations))
	}
	if violations[0].Kind != ValueMissing {
		t.Fatalf("expected ValueMissing, got %v", violations[0].Kind)
	}
}

func TestValueMissingMonotonicity_NotRequiredFieldToleratesAbsence(t *testing.T) {
	f := NewField[string, string]("name", identity[string])
	violations := f.ValidateOptionDetailed(nil)
	if !violations.Empty() {
		t.Fatalf("expected no violations for an absent, non-required field, got %v", violations)
	}
}

// Scenario E: field email, required = true, filters [trim, lowercase], no
// extra validators.
func TestScenarioE_EmailTrimLowercasePipeline(t *testing.T) {
	email := NewField[string, string]("email", identity[string],
		WithRequired[string, string](true),
		WithFilters[string, string](TrimSpace(), ToLower()))

	if _, violations := email.FilterOption(nil); len(violations) != 1 || violations[0].Kind != ValueMissing {
		t.Fatalf("expected a single ValueMissing violation for nil input, got %v", violations)
	}

	raw := "  Foo@Bar.COM  "
	out, violations := email.FilterOption(&raw)
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out == nil || *out != "foo@bar.com" {
		t.Fatalf(`expected "foo@bar.com", got %v`, out)
	}
}

func TestField_CustomValidatorRunsBeforeOthersAndCanBreak(t *testing.T) {
	f := NewField[string, string]("password", identity[string],
		WithCustomValidator[string, string](func(v string) *Violation {
			if v == "" {
				return &Violation{Kind: ValueMissing, Message: "password required"}
			}
			return nil
		}),
		WithValidators[string, string](MinLength(8)),
		WithBreakOnFailure[string, string](true),
	)
	violations := f.ValidateDetailed("")
	if len(violations) != 1 {
		t.Fatalf("expected break-on-failure to stop after the custom validator, got %d violations", len(violations))
	}
	if violations[0].Message != "password required" {
		t.Fatalf("expected the custom validator's message, got %q", violations[0].Message)
	}
}

func TestField_ValidatorsAccumulateWithoutBreakOnFailure(t *testing.T) {
	f := NewField[string, string]("username", identity[string],
		WithValidators[string, string](MinLength(5), MaxLength(1)))
	violations := f.ValidateDetailed("ab")
	if len(violations) != 2 {
		t.Fatalf("expected both validators to fire, got %d", len(violations))
	}
}

func TestField_ConvertBridgesTToFT(t *testing.T) {
	f := NewField[string, int]("age", func(s string) int { return len(s) },
		WithFilters[string, int](func(n int) int { return n * 2 }))
	out, violations := f.Filter("abcd")
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out != 8 {
		t.Fatalf("expected convert-then-filter result 8, got %d", out)
	}
}

func TestField_FilterOptionUsesDefaultValueWhenAbsentAndNotRequired(t *testing.T) {
	f := NewField[string, string]("nickname", identity[string],
		WithDefaultValue[string, string](func() string { return "anonymous" }))
	out, violations := f.FilterOption(nil)
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if out == nil || *out != "anonymous" {
		t.Fatalf("expected default value anonymous, got %v", out)
	}
}

func TestField_FilterDoesNotRunOnValidationFailure(t *testing.T) {
	ranFilter := false
	f := NewField[string, string]("code", identity[string],
		WithValidators[string, string](Pattern(regexp.MustCompile(`^[0-9]+$`))),
		WithFilters[string, string](func(v string) string {
			ranFilter = true
			return strings.ToUpper(v)
		}),
	)
	_, violations := f.Filter("abc")
	if violations.Empty() {
		t.Fatal("expected a PatternMismatch violation")
	}
	if ranFilter {
		t.Fatal("filters must not run when validation fails")
	}
}
