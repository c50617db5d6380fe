package apperror

import (
	"errors"
	"fmt"
)

// Xato kodlari - transport (so'rov umuman natija bermadi), domain
// (server success:false qaytardi) va validation (so'rov yuborilmasdan
// oldin ushlangan) xatolar bir-biridan ajratiladi.
const (
	CodeTransport    = "TRANSPORT_ERROR"
	CodeDomain       = "DOMAIN_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
)

// AppError - dastur xatosi
type AppError struct {
	Code     string `json:"code"`    // Xato kodi
	Message  string `json:"message"` // Foydalanuvchi uchun xabar
	Internal error  `json:"-"`       // Ichki xato (foydalanuvchiga ko'rsatilmaydi)
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewTransportError - tarmoq yoki parse xatosi
func NewTransportError(message string, internal error) *AppError {
	return &AppError{Code: CodeTransport, Message: message, Internal: internal}
}

// NewDomainError - server success:false qaytardi
func NewDomainError(message string) *AppError {
	return &AppError{Code: CodeDomain, Message: message}
}

// NewValidationError - kiritilgan ma'lumot validatsiyadan o'tmadi
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthorizedError - ruxsat berilmagan
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewNotFoundError - resurs topilmadi
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// FromError - oddiy errorni AppError ga aylantirish
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewTransportError("Kutilmagan xatolik yuz berdi", err)
}

// IsTransport - transport xatosimi
func IsTransport(err error) bool {
	return hasCode(err, CodeTransport)
}

// IsDomain - domain xatosimi
func IsDomain(err error) bool {
	return hasCode(err, CodeDomain)
}

// IsValidation - validatsiya xatosimi
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
