package models

// Status - katalog obyekti holati (kategoriya va mahsulot uchun bir xil)
type Status string

const (
	StatusOpen    Status = "OPEN"
	StatusClosed  Status = "CLOSED"
	StatusDeleted Status = "DELETED"
)

// UserStatus - admin foydalanuvchi holati
type UserStatus string

const (
	UserConfirmed UserStatus = "CONFIRMED"
	UserPending   UserStatus = "PENDING"
	UserRejected  UserStatus = "REJECTED"
)

// DiscountType - chegirma turi
type DiscountType string

const (
	DiscountNone    DiscountType = "NONE"
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// Locale - katalog tillari
type Locale string

const (
	LocaleUz  Locale = "uz"  // O'zbekcha (lotin)
	LocaleCyr Locale = "cyr" // O'zbekcha (kirill)
	LocaleRu  Locale = "ru"  // Ruscha
	LocaleEn  Locale = "en"  // Inglizcha
)

// AllLocales - qo'llab-quvvatlanadigan tillar ro'yxati
var AllLocales = []Locale{LocaleUz, LocaleCyr, LocaleRu, LocaleEn}
