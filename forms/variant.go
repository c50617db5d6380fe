package forms

import (
	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"

	"github.com/google/uuid"
)

// VariantState - forma ichidagi variant draft holati
type VariantState int

const (
	// VariantUnchanged - serverda saqlangan, tegilmagan (submitda yuborilmaydi)
	VariantUnchanged VariantState = iota
	// VariantNew - faqat lokal vaqtinchalik id bor, hali saqlanmagan
	VariantNew
	// VariantModified - saqlangan id, maydonlari o'zgartirilgan
	VariantModified
)

func (s VariantState) String() string {
	switch s {
	case VariantNew:
		return "new"
	case VariantModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// VariantDraft - teg bilan belgilangan variant nusxasi
// Draft bir marta quriladi, joyida mutatsiya qilinmaydi: holat o'zgarsa
// yangi draft yaratiladi. Teglar forma yopilganda yo'qoladi.
type VariantDraft struct {
	State   VariantState
	Variant models.ProductVariant
}

// UnchangedVariant - serverdan kelgan, tegilmagan variant
func UnchangedVariant(v models.ProductVariant) VariantDraft {
	return VariantDraft{State: VariantUnchanged, Variant: v}
}

// NewVariantDraft - yangi variant (lokal vaqtinchalik id beriladi)
func NewVariantDraft(v models.ProductVariant) VariantDraft {
	v.ID = "local-" + uuid.NewString()
	return VariantDraft{State: VariantNew, Variant: v}
}

// ModifiedVariant - saqlangan variantning o'zgartirilgan nusxasi
func ModifiedVariant(v models.ProductVariant) VariantDraft {
	return VariantDraft{State: VariantModified, Variant: v}
}

// VariantEditor - bitta o'rinli "hozir tahrirlanayotgan variant" slot
// Qo'shish/saqlashdan keyin slot tozalanadi; mavjud elementni tahrirlash
// saqlangunga yoki bekor qilingunga qadar indeks bilan belgilanadi.
type VariantEditor struct {
	slot         models.ProductVariant
	editingIndex int // -1 = yangi variant kiritilmoqda
}

// NewVariantEditor - bo'sh editor
func NewVariantEditor() *VariantEditor {
	return &VariantEditor{editingIndex: -1}
}

// Slot - hozirgi kiritilayotgan variant (to'g'ridan-to'g'ri to'ldiriladi)
func (e *VariantEditor) Slot() *models.ProductVariant {
	return &e.slot
}

// EditingIndex - qaysi ro'yxat elementi tahrirlanmoqda (-1 = yangi)
func (e *VariantEditor) EditingIndex() int {
	return e.editingIndex
}

// BeginEdit - ro'yxatdagi variantni slotga yuklash
func (e *VariantEditor) BeginEdit(index int, v models.ProductVariant) {
	e.slot = v
	e.editingIndex = index
}

// Cancel - tahrirlashni bekor qilish, slot tozalanadi
func (e *VariantEditor) Cancel() {
	e.slot = models.ProductVariant{}
	e.editingIndex = -1
}

// AddOrUpdate - slotdagi variantni ro'yxatga qo'shish yoki almashtirish
// Nom (uz) va yuklangan rasm majburiy - validatsiya tarmoqqa chiqmasdan
// oldin ushlanadi. Muvaffaqiyatda slot tozalanadi.
func (e *VariantEditor) AddOrUpdate(drafts []VariantDraft) ([]VariantDraft, error) {
	if e.slot.NameUz == "" {
		return drafts, apperror.NewValidationError("Variant nomi (uz) kiritilishi shart")
	}
	if e.slot.ImageURL == "" {
		return drafts, apperror.NewValidationError("Variant rasmi yuklanishi shart")
	}

	if e.editingIndex >= 0 && e.editingIndex < len(drafts) {
		old := drafts[e.editingIndex]
		updated := e.slot
		updated.ID = old.Variant.ID
		if old.State == VariantNew {
			// Hali saqlanmagan variant tahrirlandi - yangi bo'lib qoladi
			drafts[e.editingIndex] = VariantDraft{State: VariantNew, Variant: updated}
		} else {
			drafts[e.editingIndex] = ModifiedVariant(updated)
		}
	} else {
		drafts = append(drafts, NewVariantDraft(e.slot))
	}

	e.slot = models.ProductVariant{}
	e.editingIndex = -1
	return drafts, nil
}
