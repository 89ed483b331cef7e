package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const allOrNothingTag = "allOrNothing"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(allOrNothingTag, allOrNothing)
	return v
}

// splitFieldList splits a space separated list of field names.
func splitFieldList(param string) []string {
	return strings.Fields(param)
}

// allOrNothing is attached to a placeholder field and passes when the sibling
// fields named in its parameter are either all zero or all set. Nil pointers
// and interfaces count as zero. An unknown field name or an empty list fails,
// so a typo in a tag cannot silently disable the rule.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	set := 0
	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}
		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}
		if !f.IsZero() {
			set++
		}
	}
	return set == 0 || set == len(names)
}

// formatValidationError turns the first allOrNothing failure into a message
// naming the section and its fields. Other failures are returned as is.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() != allOrNothingTag {
			continue
		}
		// "Config.S3.Validate" -> "S3"
		section := e.StructNamespace()
		section = strings.TrimSuffix(section, "."+e.StructField())
		section = section[strings.LastIndex(section, ".")+1:]

		return fmt.Errorf(
			"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
			section, strings.Join(splitFieldList(e.Param()), ", "))
	}
	return err
}
