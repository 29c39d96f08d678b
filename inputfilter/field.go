package inputfilter

// Validator is a pure predicate over a value of type T: it returns nil if
// the value passes, or a Violation describing why it doesn't.
type Validator[T any] func(value T) *Violation

// Filter is a pure transform over a value of type FT. Filters only ever
// run on a value that has already passed validation.
type Filter[FT any] func(value FT) FT

// Field is a named validation/filter pipeline over a value type T and a
// filter-output type FT, generalizing the source's separate Input/RefInput
// split (§9 Open Question 3) into one generic pipeline: T is the type
// validators see, FT is the type filters transform, and Convert bridges
// the two (the Rust FT: From<T> bound, expressed as an explicit function
// since Go generics have no trait bounds).
//
// The zero value is not usable; construct one with NewField.
type Field[T any, FT any] struct {
	name    string
	locale  string
	convert func(T) FT

	validators []Validator[T]
	custom     Validator[T]

	filters []Filter[FT]

	required       bool
	breakOnFailure bool

	defaultValue   func() FT
	missingMessage func() string
}

// FieldOption configures a Field at construction time.
type FieldOption[T any, FT any] func(*Field[T, FT])

// WithValidators appends validators to run, in order, after any custom
// validator.
func WithValidators[T any, FT any](validators ...Validator[T]) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.validators = append(f.validators, validators...) }
}

// WithCustomValidator sets a validator that runs before all others.
func WithCustomValidator[T any, FT any](v Validator[T]) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.custom = v }
}

// WithFilters appends filters to run, in declaration order, after
// validation succeeds.
func WithFilters[T any, FT any](filters ...Filter[FT]) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.filters = append(f.filters, filters...) }
}

// WithRequired marks the field as required: an absent value fails
// validation with ValueMissing regardless of any other rule.
func WithRequired[T any, FT any](required bool) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.required = required }
}

// WithBreakOnFailure makes Validate/ValidateDetailed stop at the first
// violation instead of collecting all of them.
func WithBreakOnFailure[T any, FT any](breakOnFailure bool) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.breakOnFailure = breakOnFailure }
}

// WithDefaultValue sets the provider invoked by FilterOption when the
// field is absent and not required.
func WithDefaultValue[T any, FT any](provider func() FT) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.defaultValue = provider }
}

// WithMissingMessage sets the message getter invoked when a required
// field is absent.
func WithMissingMessage[T any, FT any](getter func() string) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.missingMessage = getter }
}

// WithLocale attaches a locale tag to the field, available to message
// getters and custom validators via Locale.
func WithLocale[T any, FT any](locale string) FieldOption[T, FT] {
	return func(f *Field[T, FT]) { f.locale = locale }
}

// NewField constructs a Field. convert bridges T (what validators see) to
// FT (what filters transform); pass a no-op identity function when T and
// FT are the same type.
func NewField[T any, FT any](name string, convert func(T) FT, opts ...FieldOption[T, FT]) *Field[T, FT] {
	f := &Field[T, FT]{
		name:           name,
		convert:        convert,
		missingMessage: func() string { return "Value is missing" },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the field's name.
func (f *Field[T, FT]) Name() string { return f.name }

// Label is an alias for Name, matching the source's field-label accessor
// used by UI adapters to render a human-facing caption.
func (f *Field[T, FT]) Label() string { return f.name }

// Locale returns the field's configured locale tag.
func (f *Field[T, FT]) Locale() string { return f.locale }

// Required reports whether the field is required.
func (f *Field[T, FT]) Required() bool { return f.required }

// ValidateDetailed runs the custom validator (if set) then each validator
// in declaration order, returning every violation produced unless
// BreakOnFailure is set, in which case it returns at most one.
func (f *Field[T, FT]) ValidateDetailed(value T) Violations {
	var violations Violations
	if f.custom != nil {
		if v := f.custom(value); v != nil {
			violations = append(violations, *v)
			if f.breakOnFailure {
				return violations
			}
		}
	}
	for _, validator := range f.validators {
		v := validator(value)
		if v == nil {
			continue
		}
		violations = append(violations, *v)
		if f.breakOnFailure {
			return violations
		}
	}
	return violations
}

// Validate is ValidateDetailed flattened to messages.
func (f *Field[T, FT]) Validate(value T) []string {
	return f.ValidateDetailed(value).Messages()
}

// ValidateOptionDetailed handles an absent value: ValueMissing if
// required, Ok (empty Violations) if not required, else delegates to
// ValidateDetailed.
func (f *Field[T, FT]) ValidateOptionDetailed(value *T) Violations {
	if value == nil {
		if f.required {
			return Violations{{Kind: ValueMissing, Message: f.missingMessage()}}
		}
		return nil
	}
	return f.ValidateDetailed(*value)
}

// ValidateOption is ValidateOptionDetailed flattened to messages.
func (f *Field[T, FT]) ValidateOption(value *T) []string {
	return f.ValidateOptionDetailed(value).Messages()
}

// Filter validates value, then, only if validation produced no
// violations, folds it through Convert and the filters in declaration
// order. If validation fails, the zero value of FT is returned alongside
// the violations.
func (f *Field[T, FT]) Filter(value T) (FT, Violations) {
	violations := f.ValidateDetailed(value)
	if !violations.Empty() {
		var zero FT
		return zero, violations
	}
	out := f.convert(value)
	for _, filter := range f.filters {
		out = filter(out)
	}
	return out, nil
}

// FilterOption handles an absent value: the default-value provider's
// result if not required (nil if no provider was set), ValueMissing if
// required, else delegates to Filter.
func (f *Field[T, FT]) FilterOption(value *T) (*FT, Violations) {
	if value == nil {
		if f.required {
			return nil, Violations{{Kind: ValueMissing, Message: f.missingMessage()}}
		}
		if f.defaultValue == nil {
			return nil, nil
		}
		out := f.defaultValue()
		return &out, nil
	}
	out, violations := f.Filter(*value)
	if !violations.Empty() {
		return nil, violations
	}
	return &out, nil
}
