package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adlavijwal/innovbridge/internal/app/models"
	"github.com/adlavijwal/innovbridge/internal/pkg/logger"
)

// RegisterCustomValidators attaches domain validation tags to gin's binding
// engine. Called once during router setup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn().Msg("Unexpected binding validator engine, custom tags not registered")
		return
	}

	// serviceicon restricts a field to the closed icon set.
	if err := v.RegisterValidation("serviceicon", func(fl validator.FieldLevel) bool {
		return models.IsValidServiceIcon(fl.Field().String())
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to register serviceicon validator")
	}
}
