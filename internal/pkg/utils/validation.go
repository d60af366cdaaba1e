package utils

import (
	"carebridge-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("resource_type", validateResourceType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateResourceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, resourceType := range constvars.MigratedResourceTypes {
		if value == string(resourceType) {
			return true
		}
	}
	return false
}
