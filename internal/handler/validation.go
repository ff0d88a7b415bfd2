package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hospital-directory-backend/internal/models"
)

// RegisterValidations installs custom binding rules on Gin's validator
// engine. Call once before routes are served.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// "specialty" accepts only members of the closed specialty enumeration.
	_ = v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		return models.Specialty(fl.Field().String()).IsValid()
	})
}
