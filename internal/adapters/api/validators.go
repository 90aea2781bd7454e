package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherlookup.app/pkg/validation"
)

// validateCity bounds the trimmed city length. Empty cities pass: the search
// itself reports them to the user.
func validateCity(fl validator.FieldLevel) bool {
	return validation.IsValidCityLength(fl.Field().String())
}

// RegisterValidators installs the custom binding tags used by request structs
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("city", validateCity)
}
