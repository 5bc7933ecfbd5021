package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator *validator.Validate
	structOnce      sync.Once
)

// getValidator builds the shared validator on first use. Field names in
// error messages come from struct tags so they match the spellings users
// write in config files.
func getValidator() *validator.Validate {
	structOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(fieldName)
	})
	return structValidator
}

// fieldName resolves the user-facing name of a struct field. Config structs
// in this module are tagged for viper, so mapstructure wins, then yaml,
// then json, with a snake_case fallback for untagged fields.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "yaml", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return toSnakeCase(fld.Name)
}

// Validate checks a struct against its validate tags, e.g.
// `validate:"required,url"`. It returns nil on success, or a *Error
// carrying one FieldError per failing field.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Message: "validation failed"}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{
			Field:   e.Field(),
			Message: describeRule(e),
		})
	}
	return newError(fields)
}

// describeRule renders a failed rule as a short message. Numeric min/max
// speak in values, string min/max in characters.
func describeRule(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a Go field name to snake_case. Acronym runs stay
// together: APIVersion becomes api_version, VDCHref becomes vdc_href.
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
