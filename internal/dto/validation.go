package dto

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterValidators installs the custom binding tags used by the request DTOs
// on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
		return fmt.Errorf("registering currency_code: %w", err)
	}
	if err := v.RegisterValidation("markup_mode", validateMarkupMode); err != nil {
		return fmt.Errorf("registering markup_mode: %w", err)
	}
	return nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateMarkupMode(fl validator.FieldLevel) bool {
	_, ok := domain.ParseMarkupMode(fl.Field().String())
	return ok
}
