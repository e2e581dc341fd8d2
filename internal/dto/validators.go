package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	contactNoRe    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	academicYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)
	pincodeRe      = regexp.MustCompile(`^\d{6}$`)
)

// RegisterValidators installs the custom binding validators used by the
// request DTOs. Must be called once before the router starts serving.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("contactno", func(fl validator.FieldLevel) bool {
		return contactNoRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("academicyear", func(fl validator.FieldLevel) bool {
		return academicYearRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})
}
