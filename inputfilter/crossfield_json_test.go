package inputfilter

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
)

func TestCrossFieldRule_MarshalUnmarshalRoundTrip(t *testing.T) {
	cases := []CrossFieldRule{
		NewFieldsEqual("password", "password_confirm", "must match"),
		NewRequiredIf("shipping_address", "ship_to_different_address", Condition{Kind: Equals, Value: "yes"}, "required"),
		NewRequiredUnless("card_number", "payment_method", Condition{Kind: Matches, Pattern: regexp.MustCompile(`^cash$`)}, "required unless cash"),
		NewOneOfRequired([]string{"email", "phone"}, "one required"),
		NewMutuallyExclusive([]string{"username", "guest_token"}, "choose one"),
		NewDependentRequired("state", "country", "state required"),
	}

	for _, original := range cases {
		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed for kind %d: %v", original.Kind, err)
		}
		var decoded CrossFieldRule
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal failed for kind %d: %v", original.Kind, err)
		}
		if decoded.Kind != original.Kind {
			t.Fatalf("kind mismatch: got %d want %d", decoded.Kind, original.Kind)
		}
		if decoded.Message != original.Message {
			t.Fatalf("message mismatch: got %q want %q", decoded.Message, original.Message)
		}
	}
}

func TestCrossFieldRule_CustomIsNotSerializable(t *testing.T) {
	rule := NewCustomRule(func(values map[string]string) *Violation { return nil })
	if _, err := json.Marshal(rule); !errors.Is(err, ErrCustomRuleNotSerializable) {
		t.Fatalf("expected ErrCustomRuleNotSerializable, got %v", err)
	}

	var decoded CrossFieldRule
	if err := json.Unmarshal([]byte(`{"type":"custom"}`), &decoded); !errors.Is(err, ErrCustomRuleNotSerializable) {
		t.Fatalf("expected ErrCustomRuleNotSerializable on decode, got %v", err)
	}
}

func TestCrossFieldRule_UnmarshalRejectsUnknownType(t *testing.T) {
	var decoded CrossFieldRule
	if err := json.Unmarshal([]byte(`{"type":"bogus"}`), &decoded); err == nil {
		t.Fatal("expected an error for an unknown rule type")
	}
}

func TestCrossFieldRule_ConditionPatternRoundTrips(t *testing.T) {
	original := NewRequiredUnless("b", "a", Condition{Kind: Matches, Pattern: regexp.MustCompile(`^[a-z]+$`)}, "msg")
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded CrossFieldRule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Condition == nil || decoded.Condition.Pattern == nil {
		t.Fatal("expected the condition's pattern to round-trip")
	}
	if !decoded.Condition.Pattern.MatchString("abc") {
		t.Fatal("expected the round-tripped pattern to still match lowercase strings")
	}
}
