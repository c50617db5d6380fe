package models

import "encoding/json"

// APIResponse - backend API standart javob konverti
// Har bir endpoint {success, message, data} shaklida javob qaytaradi.
// Data keyinroq kerakli turga unmarshal qilinadi.
type APIResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	MessageUz string          `json:"messageUz,omitempty"`
	Code      int             `json:"code,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// UserMessage - foydalanuvchiga ko'rsatiladigan xabar (messageUz ustunlik qiladi)
func (r *APIResponse) UserMessage() string {
	if r.MessageUz != "" {
		return r.MessageUz
	}
	return r.Message
}

// UploadedFile - yuklangan fayl ma'lumotlari
type UploadedFile struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
}
