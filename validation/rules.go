package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRules registra as tags usadas nos binding tags dos formulários.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("cpf", isCPF); err != nil {
		return err
	}
	if err := v.RegisterValidation("br_phone", isBRPhone); err != nil {
		return err
	}
	return nil
}

func isCPF(fl validator.FieldLevel) bool {
	return ValidCPF(fl.Field().String())
}

func isBRPhone(fl validator.FieldLevel) bool {
	return ValidPhone(fl.Field().String())
}
