package forms

import (
	"context"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"
	"bozorcha-admin/pkg/logger"
	"bozorcha-admin/pkg/validator"

	"go.uber.org/zap"
)

// Refresher - submit muvaffaqiyatidan keyin ro'yxatni yangilash
// (navigator shu interfeysni qanoatlantiradi)
type Refresher interface {
	Refresh(ctx context.Context) error
}

// CategoryWriter - kategoriya yozish chaqiruvlari
type CategoryWriter interface {
	CreateCategory(ctx context.Context, req models.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.CategoryEditRequest) (*models.Category, error)
}

// CategoryForm - kategoriya drafti
// Yangi kategoriya navigatorning hozirgi pozitsiyasidan parentId oladi;
// tahrirlashda asl parentId o'zgarmaydi.
type CategoryForm struct {
	writer    CategoryWriter
	refresher Refresher

	editingID string // bo'sh = yangi kategoriya
	parentID  *string
	open      bool

	NameUz         string
	NameUzCyrillic string
	NameRu         string
	NameEn         string
	OrderIndex     int
	Status         models.Status
}

// NewCategoryForm - yangi kategoriya formasi
func NewCategoryForm(writer CategoryWriter, refresher Refresher) *CategoryForm {
	return &CategoryForm{writer: writer, refresher: refresher}
}

// OpenForCreate - yangi kategoriya uchun ochish (parentId navigatordan)
func (f *CategoryForm) OpenForCreate(parentID *string) {
	*f = CategoryForm{
		writer:     f.writer,
		refresher:  f.refresher,
		parentID:   parentID,
		open:       true,
		Status:     models.StatusOpen,
		OrderIndex: 1,
	}
}

// OpenForEdit - mavjud kategoriyani tahrirlash uchun ochish
func (f *CategoryForm) OpenForEdit(c models.Category) {
	*f = CategoryForm{
		writer:    f.writer,
		refresher: f.refresher,
		editingID: c.ID,
		parentID:  c.ParentID,
		open:      true,

		NameUz:         c.NameUz,
		NameUzCyrillic: c.NameUzCyrillic,
		NameRu:         c.NameRu,
		NameEn:         c.NameEn,
		OrderIndex:     c.OrderIndex,
		Status:         c.Status,
	}
}

// IsOpen - forma ochiqmi
func (f *CategoryForm) IsOpen() bool {
	return f.open
}

// Close - formani yopish (draft va teglar yo'qoladi)
func (f *CategoryForm) Close() {
	*f = CategoryForm{writer: f.writer, refresher: f.refresher}
}

// IsEditing - mavjud kategoriya tahrirlanyaptimi
func (f *CategoryForm) IsEditing() bool {
	return f.editingID != ""
}

// ApplyTranslations - AI tarjima natijasini bo'sh maydonlarga qo'llash
// To'ldirilgan maydonlar ustidan yozilmaydi
func (f *CategoryForm) ApplyTranslations(names map[string]string) {
	if f.NameUzCyrillic == "" {
		f.NameUzCyrillic = names["cyr"]
	}
	if f.NameRu == "" {
		f.NameRu = names["ru"]
	}
	if f.NameEn == "" {
		f.NameEn = names["en"]
	}
}

// Submit - draftni serverga yuborish
// id bo'lsa edit, bo'lmasa create. Muvaffaqiyatda forma yopiladi va
// navigator hozirgi pozitsiyani qayta yuklaydi. Xatolikda forma ochiq
// qoladi (kiritilgan ma'lumot yo'qolmaydi).
func (f *CategoryForm) Submit(ctx context.Context) error {
	if f.editingID == "" {
		req := models.CategoryCreateRequest{
			NameUz:         f.NameUz,
			NameUzCyrillic: f.NameUzCyrillic,
			NameRu:         f.NameRu,
			NameEn:         f.NameEn,
			OrderIndex:     f.OrderIndex,
			ParentID:       f.parentID,
		}
		if err := validator.Validate(req); err != nil {
			return apperror.NewValidationError(err.Error())
		}
		if _, err := f.writer.CreateCategory(ctx, req); err != nil {
			return err
		}
		logger.Info("Kategoriya yaratildi", zap.String("name", req.NameUz))
	} else {
		req := models.CategoryEditRequest{
			NameUz:         f.NameUz,
			NameUzCyrillic: f.NameUzCyrillic,
			NameRu:         f.NameRu,
			NameEn:         f.NameEn,
			OrderIndex:     f.OrderIndex,
			ParentID:       f.parentID, // asl parentId saqlanadi
			Status:         f.Status,
		}
		if err := validator.Validate(req); err != nil {
			return apperror.NewValidationError(err.Error())
		}
		if _, err := f.writer.UpdateCategory(ctx, f.editingID, req); err != nil {
			return err
		}
		logger.Info("Kategoriya yangilandi", zap.String("id", f.editingID))
	}

	f.Close()
	if err := f.refresher.Refresh(ctx); err != nil {
		// Saqlash serverda bajarildi - yangilash xatosi submitni yiqitmaydi
		logger.Warn("Saqlangandan keyin ro'yxatni yangilab bo'lmadi", zap.Error(err))
	}
	return nil
}
