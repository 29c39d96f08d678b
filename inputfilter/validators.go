package inputfilter

import (
	"fmt"
	"regexp"
)

// MinLength returns a validator that rejects strings shorter than min,
// grounded on the source's StringConstraints min_length check.
func MinLength(min int) Validator[string] {
	return func(value string) *Violation {
		if len(value) < min {
			return &Violation{Kind: TooShort, Message: fmt.Sprintf("`%s` is too short; minimum length is `%d`", value, min)}
		}
		return nil
	}
}

// MaxLength returns a validator that rejects strings longer than max.
func MaxLength(max int) Validator[string] {
	return func(value string) *Violation {
		if len(value) > max {
			return &Violation{Kind: TooLong, Message: fmt.Sprintf("`%s` is too long; maximum length is `%d`", value, max)}
		}
		return nil
	}
}

// Pattern returns a validator that rejects strings not matching re.
func Pattern(re *regexp.Regexp) Validator[string] {
	return func(value string) *Violation {
		if !re.MatchString(value) {
			return &Violation{Kind: PatternMismatch, Message: fmt.Sprintf("`%s` does not match pattern `%s`", value, re.String())}
		}
		return nil
	}
}

// Ordered is the constraint MinValue/MaxValue/Step require: comparable
// with the standard relational operators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MinValue returns a validator that rejects values below min (a
// RangeUnderflow), grounded on the source's ScalarConstraints lower-bound
// check.
func MinValue[T Ordered](min T) Validator[T] {
	return func(value T) *Violation {
		if value < min {
			return &Violation{Kind: RangeUnderflow, Message: fmt.Sprintf("`%v` is less than minimum `%v`", value, min)}
		}
		return nil
	}
}

// MaxValue returns a validator that rejects values above max (a
// RangeOverflow).
func MaxValue[T Ordered](max T) Validator[T] {
	return func(value T) *Violation {
		if value > max {
			return &Violation{Kind: RangeOverflow, Message: fmt.Sprintf("`%v` is greater than maximum `%v`", value, max)}
		}
		return nil
	}
}

// Step returns a validator that rejects values not falling on a multiple
// of step, offset from base.
func Step[T Ordered](base, step T) Validator[T] {
	return func(value T) *Violation {
		diff := float64(value-base) / float64(step)
		if diff != float64(int64(diff)) {
			return &Violation{Kind: StepMismatch, Message: fmt.Sprintf("`%v` is not a valid step value (base `%v`, step `%v`)", value, base, step)}
		}
		return nil
	}
}

// EqualTo returns a validator that rejects values not equal to want (used
// for confirmation-field style checks, e.g. "confirm password").
func EqualTo[T comparable](want T) Validator[T] {
	return func(value T) *Violation {
		if value != want {
			return &Violation{Kind: NotEqual, Message: fmt.Sprintf("`%v` does not equal `%v`", value, want)}
		}
		return nil
	}
}
