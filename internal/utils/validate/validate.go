// Package validate wraps struct-tag validation and the user id rules shared
// by every operation.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PairSeparator joins two user ids into a canonical pair key.
const PairSeparator = "_"

var (
	validate = validator.New()

	errEmptyID    = errors.New("user id is required")
	errIDHasSpace = errors.New("user id must not contain whitespace")
	errIDHasSep   = fmt.Errorf("user id must not contain %q", PairSeparator)
	errSameID     = errors.New("user ids must differ")
)

// Struct validates s based on its tags and folds field errors into one
// readable error.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, ", "))
}

// UserID checks a single opaque user id.
func UserID(id string) error {
	switch {
	case id == "":
		return errEmptyID
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		return errIDHasSpace
	case strings.Contains(id, PairSeparator):
		return errIDHasSep
	}
	return nil
}

// Pair checks two ids that must both be valid and distinct.
func Pair(a, b string) error {
	if err := UserID(a); err != nil {
		return err
	}
	if err := UserID(b); err != nil {
		return err
	}
	if a == b {
		return errSameID
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "required_with":
		return fmt.Sprintf("%s is required with %s", field, fe.Param())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
