package models

// UserAuthData - Telegram chat_id bo'yicha topilgan admin foydalanuvchi
// Sessiya davomida bir marta olinadi va o'zgartirilmaydi.
type UserAuthData struct {
	ID         string     `json:"id"`
	Firstname  string     `json:"firstname"`
	Lastname   string     `json:"lastname"`
	Username   string     `json:"username"`
	ChatID     int64      `json:"chatId"`
	Status     UserStatus `json:"status"`
	CategoryID *string    `json:"categoryId"`
	// Exists - eski variantdagi javob: status o'rniga faqat mavjudlik bayrog'i
	Exists *bool `json:"exists,omitempty"`
}

// IsConfirmed - foydalanuvchi tasdiqlanganmi
// Yangi format: status == CONFIRMED. Eski format: faqat exists bayrog'i.
func (u *UserAuthData) IsConfirmed() bool {
	if u.Status != "" {
		return u.Status == UserConfirmed
	}
	return u.Exists != nil && *u.Exists
}

// DisplayName - ko'rsatish uchun ism
func (u *UserAuthData) DisplayName() string {
	if u.Firstname == "" {
		return "Admin"
	}
	if u.Lastname == "" {
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}
