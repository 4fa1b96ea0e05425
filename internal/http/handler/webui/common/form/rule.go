package form

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ValidationRule represents a validation rule that can be applied at runtime
type ValidationRule interface {
	Validate(ctx context.Context, form *Form, field Field) error
}

// RequiredRule validates that a field is not empty
type RequiredRule struct{}

var _ ValidationRule = &RequiredRule{}

func (r RequiredRule) Validate(ctx context.Context, f *Form, field Field) error {
	value, exists := f.Values[field.Name]
	if !exists || strings.TrimSpace(value) == "" {
		return errors.New("this field is required")
	}

	return nil
}

// MinLengthRule validates minimum string length
type MinLengthRule struct {
	MinLength int
}

var _ ValidationRule = &MinLengthRule{}

func (r MinLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if len(value) < r.MinLength {
		return errors.Errorf("minimum length is %d characters", r.MinLength)
	}
	return nil
}

// MaxLengthRule validates maximum string length
type MaxLengthRule struct {
	MaxLength int
}

var _ ValidationRule = &MaxLengthRule{}

func (r MaxLengthRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if len(value) > r.MaxLength {
		return errors.Errorf("maximum length is %d characters", r.MaxLength)
	}
	return nil
}

// PatternRule validates a field against a regular expression
type PatternRule struct {
	Pattern *regexp.Regexp
	Message string
}

var _ ValidationRule = &PatternRule{}

func (r PatternRule) Validate(ctx context.Context, f *Form, field Field) error {
	value := f.Values[field.Name]
	if value == "" {
		return nil // Let required rule handle empty values
	}

	if !r.Pattern.MatchString(value) {
		if r.Message != "" {
			return errors.New(r.Message)
		}

		return errors.New("invalid value")
	}

	return nil
}
