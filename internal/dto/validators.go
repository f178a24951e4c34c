package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the decimal tags used by the request types:
//
//	dgte0  decimal >= 0
//	dgt0   decimal > 0
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("dgte0", decimalAtLeastZero); err != nil {
		return err
	}
	return v.RegisterValidation("dgt0", decimalPositive)
}

func decimalAtLeastZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

func decimalPositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}
