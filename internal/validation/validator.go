package validation

import (
	"reflect"
	"strings"
	"sync"

	"expense-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_code", validateCategoryCode)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("year_month", validateYearMonth)
	_ = v.RegisterValidation("non_negative_decimal", validateNonNegativeDecimal)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateCategoryCode checks the value against the category table
func validateCategoryCode(fl validator.FieldLevel) bool {
	return models.IsValidCategory(models.CategoryCode(fl.Field().String()))
}

// validateISODate accepts real calendar dates in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	return models.IsValidDate(fl.Field().String())
}

// validateYearMonth accepts YYYY-MM
func validateYearMonth(fl validator.FieldLevel) bool {
	return models.IsValidMonth(fl.Field().String())
}

// validateNonNegativeDecimal treats a blank value as zero and rejects values
// outside the supported money range
func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, err := models.ParseAmount(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// FieldErrors flattens validator errors into "field: rule" messages
func FieldErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+": failed "+fe.Tag())
	}
	return out
}
