package inputfilter

import (
	"encoding/json"
	"errors"
	"regexp"
)

// ErrCustomRuleNotSerializable is returned when unmarshaling a tagged-union
// cross-field rule whose type is "custom" — Custom rules carry a Go
// closure and have no serializable representation (§6.4).
var ErrCustomRuleNotSerializable = errors.New("inputfilter: custom cross-field rules are not serializable")

type ruleTypeTag string

const (
	tagFieldsEqual        ruleTypeTag = "fields_equal"
	tagRequiredIf         ruleTypeTag = "required_if"
	tagRequiredUnless     ruleTypeTag = "required_unless"
	tagOneOfRequired      ruleTypeTag = "one_of_required"
	tagMutuallyExclusive  ruleTypeTag = "mutually_exclusive"
	tagDependentRequired  ruleTypeTag = "dependent_required"
	tagCustom             ruleTypeTag = "custom"
)

type conditionKindTag string

const (
	ctagIsEmpty    conditionKindTag = "is_empty"
	ctagIsNotEmpty conditionKindTag = "is_not_empty"
	ctagEquals     conditionKindTag = "equals"
	ctagGreater    conditionKindTag = "greater_than"
	ctagLess       conditionKindTag = "less_than"
	ctagMatches    conditionKindTag = "matches"
)

type conditionJSON struct {
	Kind    conditionKindTag `json:"kind"`
	Value   string           `json:"value,omitempty"`
	Pattern string           `json:"pattern,omitempty"`
}

func conditionToJSON(c *Condition) *conditionJSON {
	if c == nil {
		return nil
	}
	out := &conditionJSON{Value: c.Value}
	switch c.Kind {
	case IsEmpty:
		out.Kind = ctagIsEmpty
	case IsNotEmpty:
		out.Kind = ctagIsNotEmpty
	case Equals:
		out.Kind = ctagEquals
	case GreaterThan:
		out.Kind = ctagGreater
	case LessThan:
		out.Kind = ctagLess
	case Matches:
		out.Kind = ctagMatches
		if c.Pattern != nil {
			out.Pattern = c.Pattern.String()
		}
	}
	return out
}

func conditionFromJSON(c *conditionJSON) (*Condition, error) {
	if c == nil {
		return nil, nil
	}
	out := &Condition{Value: c.Value}
	switch c.Kind {
	case ctagIsEmpty:
		out.Kind = IsEmpty
	case ctagIsNotEmpty:
		out.Kind = IsNotEmpty
	case ctagEquals:
		out.Kind = Equals
	case ctagGreater:
		out.Kind = GreaterThan
	case ctagLess:
		out.Kind = LessThan
	case ctagMatches:
		out.Kind = Matches
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, err
		}
		out.Pattern = re
	default:
		return nil, errors.New("inputfilter: unknown condition kind " + string(c.Kind))
	}
	return out, nil
}

type crossFieldRuleJSON struct {
	Type      ruleTypeTag    `json:"type"`
	FieldA    string         `json:"fieldA,omitempty"`
	FieldB    string         `json:"fieldB,omitempty"`
	Field     string         `json:"field,omitempty"`
	DependsOn string         `json:"dependsOn,omitempty"`
	Condition *conditionJSON `json:"condition,omitempty"`
	Fields    []string       `json:"fields,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// MarshalJSON encodes r as a tagged union keyed on "type". Custom rules
// cannot be marshaled, since their function value has no JSON form.
func (r CrossFieldRule) MarshalJSON() ([]byte, error) {
	if r.Kind == RuleCustom {
		return nil, ErrCustomRuleNotSerializable
	}
	out := crossFieldRuleJSON{
		FieldA:    r.FieldA,
		FieldB:    r.FieldB,
		Field:     r.Field,
		DependsOn: r.DependsOn,
		Condition: conditionToJSON(r.Condition),
		Fields:    r.Fields,
		Message:   r.Message,
	}
	switch r.Kind {
	case RuleFieldsEqual:
		out.Type = tagFieldsEqual
	case RuleRequiredIf:
		out.Type = tagRequiredIf
	case RuleRequiredUnless:
		out.Type = tagRequiredUnless
	case RuleOneOfRequired:
		out.Type = tagOneOfRequired
	case RuleMutuallyExclusive:
		out.Type = tagMutuallyExclusive
	case RuleDependentRequired:
		out.Type = tagDependentRequired
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tagged-union cross-field rule. A "custom" type
// tag is rejected with ErrCustomRuleNotSerializable, since there is no way
// to recover the original function value.
func (r *CrossFieldRule) UnmarshalJSON(data []byte) error {
	var in crossFieldRuleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Type == tagCustom {
		return ErrCustomRuleNotSerializable
	}
	condition, err := conditionFromJSON(in.Condition)
	if err != nil {
		return err
	}

	out := CrossFieldRule{
		FieldA:    in.FieldA,
		FieldB:    in.FieldB,
		Field:     in.Field,
		DependsOn: in.DependsOn,
		Condition: condition,
		Fields:    in.Fields,
		Message:   in.Message,
	}
	switch in.Type {
	case tagFieldsEqual:
		out.Kind = RuleFieldsEqual
	case tagRequiredIf:
		out.Kind = RuleRequiredIf
	case tagRequiredUnless:
		out.Kind = RuleRequiredUnless
	case tagOneOfRequired:
		out.Kind = RuleOneOfRequired
	case tagMutuallyExclusive:
		out.Kind = RuleMutuallyExclusive
	case tagDependentRequired:
		out.Kind = RuleDependentRequired
	default:
		return errors.New("inputfilter: unknown cross-field rule type " + string(in.Type))
	}
	*r = out
	return nil
}
