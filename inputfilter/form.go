package inputfilter

import (
	"regexp"
	"strconv"
)

// StringField is the field type a Form validates: forms operate over a
// named string-value mapping, so cross-field rules (byte-wise equality,
// empty/non-empty checks, numeric comparisons) have a single well-defined
// value representation to work against.
type StringField = Field[string, string]

// ConditionKind is the predicate family a Condition evaluates.
type ConditionKind int

const (
	IsEmpty ConditionKind = iota
	IsNotEmpty
	Equals
	GreaterThan
	LessThan
	Matches
	CustomCondition
)

// Condition is the predicate evaluated against a target field's current
// value by RequiredIf/RequiredUnless.
type Condition struct {
	Kind    ConditionKind
	Value   string
	Pattern *regexp.Regexp
	Custom  func(value string, present bool) bool
}

func (c Condition) evaluate(value string, present bool) bool {
	switch c.Kind {
	case IsEmpty:
		return !present || value == ""
	case IsNotEmpty:
		return present && value != ""
	case Equals:
		return present && value == c.Value
	case GreaterThan:
		a, aerr := strconv.ParseFloat(value, 64)
		b, berr := strconv.ParseFloat(c.Value, 64)
		return present && aerr == nil && berr == nil && a > b
	case LessThan:
		a, aerr := strconv.ParseFloat(value, 64)
		b, berr := strconv.ParseFloat(c.Value, 64)
		return present && aerr == nil && berr == nil && a < b
	case Matches:
		return present && c.Pattern != nil && c.Pattern.MatchString(value)
	case CustomCondition:
		return c.Custom != nil && c.Custom(value, present)
	default:
		return false
	}
}

// RuleKind is the closed set of cross-field rule variants (§3.7).
type RuleKind int

const (
	RuleFieldsEqual RuleKind = iota
	RuleRequiredIf
	RuleRequiredUnless
	RuleOneOfRequired
	RuleMutuallyExclusive
	RuleDependentRequired
	RuleCustom
)

// CrossFieldRule is a tagged union over the variants named by RuleKind.
// Only the fields relevant to Kind are consulted; see NewFieldsEqual and
// its siblings for the intended construction of each variant.
type CrossFieldRule struct {
	Kind RuleKind

	FieldA string // FieldsEqual
	FieldB string // FieldsEqual

	Field     string     // RequiredIf, RequiredUnless, DependentRequired's dependent field
	DependsOn string     // DependentRequired's controlling field; RequiredIf/RequiredUnless's condition target
	Condition *Condition // RequiredIf, RequiredUnless; evaluated against DependsOn's current value

	Fields []string // OneOfRequired, MutuallyExclusive

	CustomFn func(values map[string]string) *Violation // Custom

	Message string
}

// NewFieldsEqual builds a FieldsEqual rule: a and b must hold byte-wise
// equal values, with both absent counting as equal.
func NewFieldsEqual(a, b, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleFieldsEqual, FieldA: a, FieldB: b, Message: message}
}

// NewRequiredIf builds a RequiredIf rule: field must be present and
// non-empty when condition holds against dependsOn's current value.
func NewRequiredIf(field, dependsOn string, condition Condition, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleRequiredIf, Field: field, DependsOn: dependsOn, Condition: &condition, Message: message}
}

// NewRequiredUnless builds a RequiredUnless rule: field must be present
// and non-empty unless condition holds against dependsOn's current value.
func NewRequiredUnless(field, dependsOn string, condition Condition, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleRequiredUnless, Field: field, DependsOn: dependsOn, Condition: &condition, Message: message}
}

// NewOneOfRequired builds a OneOfRequired rule: at least one of fields
// must have a non-empty value.
func NewOneOfRequired(fields []string, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleOneOfRequired, Fields: fields, Message: message}
}

// NewMutuallyExclusive builds a MutuallyExclusive rule: at most one of
// fields may have a non-empty value.
func NewMutuallyExclusive(fields []string, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleMutuallyExclusive, Fields: fields, Message: message}
}

// NewDependentRequired builds a DependentRequired rule: if dependsOn is
// filled, field must be filled too.
func NewDependentRequired(field, dependsOn, message string) CrossFieldRule {
	return CrossFieldRule{Kind: RuleDependentRequired, Field: field, DependsOn: dependsOn, Message: message}
}

// NewCustomRule builds a Custom rule over the whole form mapping. Custom
// rules are not serializable (§6.4) and are rejected by crossfield_json's
// unmarshaler.
func NewCustomRule(fn func(values map[string]string) *Violation) CrossFieldRule {
	return CrossFieldRule{Kind: RuleCustom, CustomFn: fn}
}

func (r CrossFieldRule) evaluate(values map[string]string) *Violation {
	violation := func() *Violation {
		return &Violation{Kind: CustomError, Message: r.Message}
	}
	switch r.Kind {
	case RuleFieldsEqual:
		va, oka := values[r.FieldA]
		vb, okb := values[r.FieldB]
		if !oka && !okb {
			return nil
		}
		if oka != okb || va != vb {
			return &Violation{Kind: NotEqual, Message: r.Message}
		}
		return nil
	case RuleRequiredIf:
		depValue, depPresent := values[r.DependsOn]
		fieldValue, fieldPresent := values[r.Field]
		if r.Condition.evaluate(depValue, depPresent) && (!fieldPresent || fieldValue == "") {
			return violation()
		}
		return nil
	case RuleRequiredUnless:
		depValue, depPresent := values[r.DependsOn]
		fieldValue, fieldPresent := values[r.Field]
		if !r.Condition.evaluate(depValue, depPresent) && (!fieldPresent || fieldValue == "") {
			return violation()
		}
		return nil
	case RuleOneOfRequired:
		for _, name := range r.Fields {
			if v, ok := values[name]; ok && v != "" {
				return nil
			}
		}
		return violation()
	case RuleMutuallyExclusive:
		count := 0
		for _, name := range r.Fields {
			if v, ok := values[name]; ok && v != "" {
				count++
			}
		}
		if count > 1 {
			return violation()
		}
		return nil
	case RuleDependentRequired:
		dependsOn, ok := values[r.DependsOn]
		if !ok || dependsOn == "" {
			return nil
		}
		field, ok := values[r.Field]
		if !ok || field == "" {
			return violation()
		}
		return nil
	case RuleCustom:
		if r.CustomFn == nil {
			return nil
		}
		return r.CustomFn(values)
	default:
		return nil
	}
}

// Form is a named collection of string fields plus an ordered list of
// cross-field rules (§3.7).
type Form struct {
	fields map[string]*StringField
	order  []string
	rules  []CrossFieldRule
}

// NewForm builds a Form from fields and an ordered list of cross-field
// rules.
func NewForm(fields []*StringField, rules ...CrossFieldRule) *Form {
	f := &Form{fields: make(map[string]*StringField, len(fields)), rules: rules}
	for _, field := range fields {
		f.fields[field.Name()] = field
		f.order = append(f.order, field.Name())
	}
	return f
}

// Field returns the named field, or nil if it doesn't exist.
func (f *Form) Field(name string) *StringField { return f.fields[name] }

// Result is the outcome of a Form.Validate call.
type Result struct {
	FieldViolations map[string]Violations
	FormViolations  Violations
}

// Valid reports whether no field or cross-field rule produced a
// violation.
func (r Result) Valid() bool {
	if len(r.FormViolations) != 0 {
		return false
	}
	for _, v := range r.FieldViolations {
		if len(v) != 0 {
			return false
		}
	}
	return true
}

// Validate runs each field's validator over values, then — only if no
// field with BreakOnFailure set produced a violation — runs the
// cross-field rules in declaration order. If a BreakOnFailure field
// fails, Validate returns immediately with the violations accumulated so
// far, evaluating neither the remaining fields nor any cross-field rule.
func (f *Form) Validate(values map[string]string) Result {
	fieldViolations := make(map[string]Violations, len(f.fields))
	for _, name := range f.order {
		field := f.fields[name]
		var value *string
		if v, ok := values[name]; ok {
			value = &v
		}
		violations := field.ValidateOptionDetailed(value)
		if len(violations) != 0 {
			fieldViolations[name] = violations
			if field.breakOnFailure {
				return Result{FieldViolations: fieldViolations}
			}
		}
	}

	var formViolations Violations
	for _, rule := range f.rules {
		if v := rule.evaluate(values); v != nil {
			formViolations = append(formViolations, *v)
		}
	}
	return Result{FieldViolations: fieldViolations, FormViolations: formViolations}
}
