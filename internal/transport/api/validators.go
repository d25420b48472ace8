package api

import (
	"fmt"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/payment"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateOrderStatus значение поля должно быть одним из статусов заказа.
func validateOrderStatus(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.OrderStatus(str).IsValid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return payment.Method(str).IsValid()
}

func validateRole(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.Role(str).IsValid()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	validations := map[string]validator.Func{
		"order_status":   validateOrderStatus,
		"payment_method": validatePaymentMethod,
		"role":           validateRole,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
