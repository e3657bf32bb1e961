package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes a single failed field: the struct path that
// failed, the rule tag it failed on, and the tag's parameter (if any).
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// "required" on a uuid.UUID passes for the zero value, so foreign keys
	// that must be set use uuid_required instead.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// ValidateStruct runs the struct's validate tags and returns one entry per
// failed field. An empty slice means the value is valid.
func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*ErrorResponse{{FailedField: "struct", Tag: "invalid"}}
	}

	responses := make([]*ErrorResponse, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		responses = append(responses, &ErrorResponse{
			FailedField: fe.StructNamespace(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return responses
}
