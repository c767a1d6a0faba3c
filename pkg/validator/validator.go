package validator

import "github.com/go-playground/validator/v10"

// FieldError describes one failed validation rule.
type FieldError struct {
	FailedField string `json:"failed_field"`
	Tag         string `json:"tag"`
	Value       string `json:"value,omitempty"`
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns one entry per
// failed field, or nil when the struct is valid.
func ValidateStruct(data interface{}) []*FieldError {
	var errs []*FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &FieldError{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Value:       fe.Param(),
			})
		}
	}
	return errs
}
