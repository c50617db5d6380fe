package validator

import (
	"fmt"
	"strings"

	"bozorcha-admin/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Регистрация кастомных валидаторов
	validate.RegisterValidation("catalog_status", validateCatalogStatus)
	validate.RegisterValidation("discount_type", validateDiscountType)
	validate.RegisterStructValidation(validateProductDiscount, models.ProductCreateRequest{})
}

// Validate валидирует структуру
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// validateCatalogStatus проверяет статус каталога (OPEN/CLOSED/DELETED)
func validateCatalogStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "OPEN", "CLOSED", "DELETED":
		return true
	}
	return false
}

// validateDiscountType проверяет тип скидки (NONE/PERCENT/FIXED)
func validateDiscountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "NONE", "PERCENT", "FIXED":
		return true
	}
	return false
}

// validateProductDiscount проверяет согласованность полей скидки:
// при типе != NONE значение обязательно и положительно, даты по порядку
func validateProductDiscount(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.ProductCreateRequest)

	if req.DiscountType != models.DiscountNone && req.DiscountType != "" {
		if req.DiscountValue == nil || *req.DiscountValue <= 0 {
			sl.ReportError(req.DiscountValue, "DiscountValue", "DiscountValue", "discount_value", "")
		}
	}
	if req.DiscountStartAt != nil && req.DiscountEndAt != nil &&
		req.DiscountEndAt.Before(*req.DiscountStartAt) {
		sl.ReportError(req.DiscountEndAt, "DiscountEndAt", "DiscountEndAt", "discount_dates", "")
	}
}

// formatValidationError форматирует ошибки валидации для пользователя
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return err
}

// formatFieldError форматирует ошибку конкретного поля
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s обязательно для заполнения", field)
	case "min":
		return fmt.Sprintf("%s должен быть минимум %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s должен быть максимум %s", field, e.Param())
	case "catalog_status":
		return fmt.Sprintf("%s должен быть OPEN, CLOSED или DELETED", field)
	case "discount_type":
		return fmt.Sprintf("%s должен быть NONE, PERCENT или FIXED", field)
	case "discount_value":
		return fmt.Sprintf("%s обязательно и должно быть положительным при активной скидке", field)
	case "discount_dates":
		return fmt.Sprintf("%s не может быть раньше начала скидки", field)
	default:
		return fmt.Sprintf("%s не прошел валидацию: %s", field, e.Tag())
	}
}
