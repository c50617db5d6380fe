package feedback

import "context"

// Decider - ha/yo'q savoliga javob manbai (konsolda stdin, testda fake)
type Decider func(title, message string) bool

// Confirmer - destruktiv amallar uchun tasdiqlash darvozasi
// O'chirish chaqiruvi faqat tasdiqlangandan keyin yuboriladi;
// bekor qilinsa hech qanday chaqiruv bo'lmaydi.
type Confirmer struct {
	decide Decider
}

// NewConfirmer - yangi confirmer
func NewConfirmer(decide Decider) *Confirmer {
	return &Confirmer{decide: decide}
}

// Confirm - tasdiqlansagina action bajariladi
// Qaytgan bool - foydalanuvchi tasdiqladimi
func (c *Confirmer) Confirm(ctx context.Context, title, message string, action func(ctx context.Context) error) (bool, error) {
	if !c.decide(title, message) {
		return false, nil
	}
	return true, action(ctx)
}
