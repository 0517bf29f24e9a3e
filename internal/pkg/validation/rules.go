package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gcett/studentdir/internal/pkg/apperrors"
)

// Enumerated sets accepted by the directory
var (
	Departments = []string{
		"Textile Technology Department",
		"Computer Science & Engineering",
		"Information Technology",
		"Apparel Production Management",
	}

	Years = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

	NoticeTypes      = []string{"Academic", "Facility", "Registration", "Event"}
	NoticePriorities = []string{"High", "Medium", "Low"}

	SubmissionCategories = []string{"AI/ML", "UI/UX"}
	QuestionDifficulties = []string{"Easy", "Medium", "Hard"}
)

// Filter sentinels meaning "no filter"
const (
	AllDepartments = "All Departments"
	AllYears       = "All Years"
	AllInterests   = "All Interests"
)

// MaxProfilePhotoSize caps registration photos at 5 MiB
const MaxProfilePhotoSize = 5 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := Configure(v); err != nil {
		panic(err)
	}
	return v
}

// Configure reports field names the way clients send them and installs the
// enum rules on v. It is also used to extend gin's binding validator.
func Configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	rules := map[string][]string{
		"department": Departments,
		"year":       Years,
		"noticetype": NoticeTypes,
		"priority":   NoticePriorities,
		"category":   SubmissionCategories,
		"difficulty": QuestionDifficulties,
	}
	for tag, allowed := range rules {
		allowed := allowed
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return Contains(allowed, fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether value is one of allowed
func Contains(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// LooksLikeEmail is the syntactic filter used for notice fan-out
func LooksLikeEmail(s string) bool {
	return strings.Contains(s, "@")
}

// Struct validates s and converts the first failure into a field-specific
// validation error.
func Struct(s interface{}) error {
	return FromError(validate.Struct(s))
}

// FromError converts a validator or request binding error into a
// validation error naming the first offending field.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid request body")
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), FormatFieldError(fe))
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		if isNumber(e.Kind()) {
			return e.Field() + " must be at least " + e.Param()
		}
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		if isNumber(e.Kind()) {
			return e.Field() + " must be at most " + e.Param()
		}
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "len":
		return e.Field() + " must have exactly " + e.Param() + " items"
	case "email":
		return e.Field() + " must be a valid email address"
	case "url":
		return e.Field() + " must be a valid URL"
	case "department":
		return e.Field() + " must be one of: " + strings.Join(Departments, ", ")
	case "year":
		return e.Field() + " must be one of: " + strings.Join(Years, ", ")
	case "noticetype":
		return e.Field() + " must be one of: " + strings.Join(NoticeTypes, ", ")
	case "priority":
		return e.Field() + " must be one of: " + strings.Join(NoticePriorities, ", ")
	case "category":
		return e.Field() + " must be one of: " + strings.Join(SubmissionCategories, ", ")
	case "difficulty":
		return e.Field() + " must be one of: " + strings.Join(QuestionDifficulties, ", ")
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
