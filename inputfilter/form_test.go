package inputfilter

import "testing"

func stringField(name string, opts ...FieldOption[string, string]) *StringField {
	return NewField[string, string](name, identity[string], opts...)
}

// Scenario F: password/password_confirm with a FieldsEqual rule.
func TestScenarioF_PasswordConfirmationFieldsEqual(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("password"), stringField("password_confirm")},
		NewFieldsEqual("password", "password_confirm", "passwords must match"),
	)

	ok := form.Validate(map[string]string{"password": "a", "password_confirm": "a"})
	if !ok.Valid() {
		t.Fatalf("expected matching passwords to validate, got %+v", ok)
	}

	mismatch := form.Validate(map[string]string{"password": "a", "password_confirm": "b"})
	if mismatch.Valid() {
		t.Fatal("expected mismatched passwords to fail")
	}
	if len(mismatch.FormViolations) != 1 || mismatch.FormViolations[0].Kind != NotEqual {
		t.Fatalf("expected one NotEqual-kind form violation, got %+v", mismatch.FormViolations)
	}
}

func TestFormEarlyExit_BreakOnFailureSkipsCrossFieldRules(t *testing.T) {
	ruleEvaluated := false
	form := NewForm(
		[]*StringField{
			stringField("password", WithRequired[string, string](true), WithBreakOnFailure[string, string](true)),
			stringField("password_confirm"),
		},
		NewCustomRule(func(values map[string]string) *Violation {
			ruleEvaluated = true
			return nil
		}),
	)

	result := form.Validate(map[string]string{"password_confirm": "a"})
	if result.Valid() {
		t.Fatal("expected the missing required password to fail")
	}
	if len(result.FormViolations) != 0 {
		t.Fatalf("expected no cross-field rules to run, got %+v", result.FormViolations)
	}
	if ruleEvaluated {
		t.Fatal("cross-field rule must not be evaluated after a break-on-failure field fails")
	}
}

func TestForm_FieldsEqualBothAbsentCountsAsEqual(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("a"), stringField("b")},
		NewFieldsEqual("a", "b", "must match"),
	)
	result := form.Validate(map[string]string{})
	if !result.Valid() {
		t.Fatalf("expected both-absent to count as equal, got %+v", result)
	}
}

func TestForm_RequiredIf(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("ship_to_different_address"), stringField("shipping_address")},
		NewRequiredIf("shipping_address", "ship_to_different_address",
			Condition{Kind: Equals, Value: "yes"}, "shipping address required"),
	)

	if !form.Validate(map[string]string{"ship_to_different_address": "no"}).Valid() {
		t.Fatal("expected no requirement when the depended-on field doesn't match")
	}
	if form.Validate(map[string]string{"ship_to_different_address": "yes"}).Valid() {
		t.Fatal("expected shipping_address to be required when ship_to_different_address is yes")
	}
	if !form.Validate(map[string]string{"ship_to_different_address": "yes", "shipping_address": "221B Baker St"}).Valid() {
		t.Fatal("expected a filled shipping_address to satisfy the requirement")
	}
}

func TestForm_RequiredUnless(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("payment_method"), stringField("card_number")},
		NewRequiredUnless("card_number", "payment_method",
			Condition{Kind: Equals, Value: "cash"}, "card number required unless paying cash"),
	)

	if !form.Validate(map[string]string{"payment_method": "cash"}).Valid() {
		t.Fatal("expected no card number required when paying cash")
	}
	if form.Validate(map[string]string{"payment_method": "card"}).Valid() {
		t.Fatal("expected card number required when not paying cash")
	}
	if !form.Validate(map[string]string{"payment_method": "card", "card_number": "4111111111111111"}).Valid() {
		t.Fatal("expected a filled card number to satisfy the requirement")
	}
}

func TestForm_OneOfRequired(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("email"), stringField("phone")},
		NewOneOfRequired([]string{"email", "phone"}, "email or phone required"),
	)

	if !form.Validate(map[string]string{"email": "a@b.com"}).Valid() {
		t.Fatal("expected email alone to satisfy OneOfRequired")
	}
	if form.Validate(map[string]string{}).Valid() {
		t.Fatal("expected neither field present to fail OneOfRequired")
	}
}

func TestForm_MutuallyExclusive(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("username"), stringField("guest_token")},
		NewMutuallyExclusive([]string{"username", "guest_token"}, "choose one"),
	)

	if !form.Validate(map[string]string{"username": "ada"}).Valid() {
		t.Fatal("expected a single field present to satisfy MutuallyExclusive")
	}
	if !form.Validate(map[string]string{}).Valid() {
		t.Fatal("expected neither field present to satisfy MutuallyExclusive")
	}
	if form.Validate(map[string]string{"username": "ada", "guest_token": "xyz"}).Valid() {
		t.Fatal("expected both fields present to violate MutuallyExclusive")
	}
}

func TestForm_DependentRequired(t *testing.T) {
	form := NewForm(
		[]*StringField{stringField("state"), stringField("country")},
		NewDependentRequired("state", "country", "state required when country is set"),
	)

	if !form.Validate(map[string]string{}).Valid() {
		t.Fatal("expected neither field present to satisfy DependentRequired")
	}
	if form.Validate(map[string]string{"country": "US"}).Valid() {
		t.Fatal("expected country present without state to violate DependentRequired")
	}
	if !form.Validate(map[string]string{"country": "US", "state": "CA"}).Valid() {
		t.Fatal("expected both present to satisfy DependentRequired")
	}
}

func TestForm_FieldAccessorReturnsNamedField(t *testing.T) {
	form := NewForm([]*StringField{stringField("email")})
	if form.Field("email") == nil {
		t.Fatal("expected Field to return the declared email field")
	}
	if form.Field("missing") != nil {
		t.Fatal("expected Field to return nil for an undeclared name")
	}
}
