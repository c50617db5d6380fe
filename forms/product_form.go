package forms

import (
	"context"
	"fmt"
	"time"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/apperror"
	"bozorcha-admin/pkg/logger"
	"bozorcha-admin/pkg/validator"

	"go.uber.org/zap"
)

// Tab - mahsulot formasining faol bo'limi
type Tab string

const (
	TabDetails  Tab = "details"
	TabVariants Tab = "variants"
)

// ProductWriter - mahsulot va variant yozish chaqiruvlari
type ProductWriter interface {
	CreateProduct(ctx context.Context, req models.ProductCreateRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.ProductEditRequest) (*models.Product, error)
	AddProductVariant(ctx context.Context, req models.AddVariantRequest) error
	UpdateProductVariant(ctx context.Context, id string, req models.EditVariantRequest) error
}

// SyncStep - submit ketma-ketligidagi bitta chaqiruv natijasi
type SyncStep struct {
	Op        string // "create-product", "update-product", "add-variant", "update-variant"
	VariantID string
	Err       error
}

// SyncResult - submit ketma-ketligining to'liq natijasi
// Asosiy yozuvdan keyin har bir variant chaqiruvi alohida bosqich:
// qisman muvaffaqiyatlar ham shu yerda yig'iladi. Kompensatsiya
// tranzaksiyasi yo'q - k-chi chaqiruv yiqilsa 1..k-1 server tomonda
// saqlangan bo'lib qoladi, foydalanuvchi formani qayta ochib tuzatadi.
type SyncResult struct {
	ProductID string
	Steps     []SyncStep
}

// Ok - barcha bosqichlar muvaffaqiyatlimi
func (r *SyncResult) Ok() bool {
	for _, step := range r.Steps {
		if step.Err != nil {
			return false
		}
	}
	return true
}

// Failed - muvaffaqiyatsiz bosqichlar
func (r *SyncResult) Failed() []SyncStep {
	var failed []SyncStep
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// ProductForm - mahsulot drafti (variant draftlari bilan)
type ProductForm struct {
	writer    ProductWriter
	refresher Refresher

	editingID string // bo'sh = yangi mahsulot
	open      bool

	ActiveTab Tab
	Draft     models.ProductCreateRequest
	Variants  []VariantDraft
	Editor    *VariantEditor
}

// NewProductForm - yangi mahsulot formasi
func NewProductForm(writer ProductWriter, refresher Refresher) *ProductForm {
	return &ProductForm{
		writer:    writer,
		refresher: refresher,
		Editor:    NewVariantEditor(),
	}
}

// OpenForCreate - yangi mahsulot uchun ochish (categoryId navigatordan)
func (f *ProductForm) OpenForCreate(categoryID string) {
	*f = ProductForm{
		writer:    f.writer,
		refresher: f.refresher,
		open:      true,
		ActiveTab: TabDetails,
		Editor:    NewVariantEditor(),
		Draft: models.ProductCreateRequest{
			CategoryID:   categoryID,
			Status:       models.StatusOpen,
			DiscountType: models.DiscountNone,
			OrderIndex:   1,
		},
	}
}

// OpenForEdit - mavjud mahsulotni tahrirlash uchun ochish
// Serverdagi variantlar Unchanged teg bilan yuklanadi
func (f *ProductForm) OpenForEdit(p models.Product) {
	drafts := make([]VariantDraft, 0, len(p.Variants))
	for _, v := range p.Variants {
		drafts = append(drafts, UnchangedVariant(v))
	}

	*f = ProductForm{
		writer:    f.writer,
		refresher: f.refresher,
		editingID: p.ID,
		open:      true,
		ActiveTab: TabDetails,
		Editor:    NewVariantEditor(),
		Variants:  drafts,
		Draft: models.ProductCreateRequest{
			NameUz:                p.NameUz,
			NameUzCyrillic:        p.NameUzCyrillic,
			NameRu:                p.NameRu,
			NameEn:                p.NameEn,
			DescriptionUz:         p.DescriptionUz,
			DescriptionUzCyrillic: p.DescriptionUzCyrillic,
			DescriptionRu:         p.DescriptionRu,
			DescriptionEn:         p.DescriptionEn,
			Price:                 p.Price,
			Stock:                 p.Stock,
			ImageURL:              p.ImageURL,
			CategoryID:            p.CategoryID,
			Status:                p.Status,
			DiscountType:          p.DiscountType,
			DiscountValue:         p.DiscountValue,
			DiscountStartAt:       p.DiscountStartAt,
			DiscountEndAt:         p.DiscountEndAt,
			OrderIndex:            p.OrderIndex,
		},
	}
}

// IsOpen - forma ochiqmi
func (f *ProductForm) IsOpen() bool {
	return f.open
}

// Close - formani yopish (draft va variant teglari yo'qoladi)
func (f *ProductForm) Close() {
	*f = ProductForm{
		writer:    f.writer,
		refresher: f.refresher,
		Editor:    NewVariantEditor(),
	}
}

// IsEditing - mavjud mahsulot tahrirlanyaptimi
func (f *ProductForm) IsEditing() bool {
	return f.editingID != ""
}

// SaveVariant - editor slotidagi variantni ro'yxatga olish
func (f *ProductForm) SaveVariant() error {
	drafts, err := f.Editor.AddOrUpdate(f.Variants)
	if err != nil {
		return err
	}
	f.Variants = drafts
	return nil
}

// ApplyTranslations - AI tarjima natijasini bo'sh maydonlarga qo'llash
func (f *ProductForm) ApplyTranslations(names, descriptions map[string]string) {
	if f.Draft.NameUzCyrillic == "" {
		f.Draft.NameUzCyrillic = names["cyr"]
	}
	if f.Draft.NameRu == "" {
		f.Draft.NameRu = names["ru"]
	}
	if f.Draft.NameEn == "" {
		f.Draft.NameEn = names["en"]
	}
	if f.Draft.DescriptionUzCyrillic == "" {
		f.Draft.DescriptionUzCyrillic = descriptions["cyr"]
	}
	if f.Draft.DescriptionRu == "" {
		f.Draft.DescriptionRu = descriptions["ru"]
	}
	if f.Draft.DescriptionEn == "" {
		f.Draft.DescriptionEn = descriptions["en"]
	}
}

// Submit - mahsulot va variantlarni serverga yuborish
// Tartib: asosiy yozuv (POST yoki PUT), keyin har bir New variant uchun
// add-variant, har bir Modified variant uchun update-variant - hammasi
// ketma-ket, parallel emas. Unchanged variantlar qayta yuborilmaydi.
// Validatsiya xatosi tarmoqqa chiqmasdan qaytadi va faol tab variantlarga
// o'tadi. Har qanday bosqich xatosida forma ochiq qoladi.
func (f *ProductForm) Submit(ctx context.Context) (*SyncResult, error) {
	if len(f.Variants) == 0 {
		f.ActiveTab = TabVariants
		return nil, apperror.NewValidationError("Kamida bitta variant qo'shilishi kerak")
	}

	if err := validator.Validate(f.Draft); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	result := &SyncResult{}

	// 1. Asosiy mahsulot yozuvi (variantlarsiz)
	if f.editingID == "" {
		product, err := f.writer.CreateProduct(ctx, f.Draft)
		result.Steps = append(result.Steps, SyncStep{Op: "create-product", Err: err})
		if err != nil {
			return result, err
		}
		result.ProductID = product.ID
	} else {
		_, err := f.writer.UpdateProduct(ctx, f.editingID, f.Draft)
		result.Steps = append(result.Steps, SyncStep{Op: "update-product", Err: err})
		if err != nil {
			return result, err
		}
		result.ProductID = f.editingID
	}

	// 2. Variant chaqiruvlari - ketma-ket, xato bo'lsa ham davom etadi
	// va hammasi SyncResult ga yig'iladi
	for _, draft := range f.Variants {
		switch draft.State {
		case VariantNew:
			req := models.AddVariantRequest{
				ProductID:      result.ProductID,
				NameUz:         draft.Variant.NameUz,
				NameUzCyrillic: draft.Variant.NameUzCyrillic,
				NameRu:         draft.Variant.NameRu,
				NameEn:         draft.Variant.NameEn,
				Price:          draft.Variant.Price,
				Stock:          draft.Variant.Stock,
				ImageURL:       draft.Variant.ImageURL,
				ImgName:        draft.Variant.ImgName,
				ImgSize:        draft.Variant.ImgSize,
			}
			var err error
			if verr := validator.Validate(req); verr != nil {
				err = apperror.NewValidationError(verr.Error())
			} else {
				err = f.writer.AddProductVariant(ctx, req)
			}
			result.Steps = append(result.Steps, SyncStep{
				Op: "add-variant", VariantID: draft.Variant.ID, Err: err,
			})
		case VariantModified:
			req := models.EditVariantRequest{
				NameUz:         draft.Variant.NameUz,
				NameUzCyrillic: draft.Variant.NameUzCyrillic,
				NameRu:         draft.Variant.NameRu,
				NameEn:         draft.Variant.NameEn,
				Price:          draft.Variant.Price,
				Stock:          draft.Variant.Stock,
				ImageURL:       draft.Variant.ImageURL,
				ImgName:        draft.Variant.ImgName,
				ImgSize:        draft.Variant.ImgSize,
			}
			var err error
			if verr := validator.Validate(req); verr != nil {
				err = apperror.NewValidationError(verr.Error())
			} else {
				err = f.writer.UpdateProductVariant(ctx, draft.Variant.ID, req)
			}
			result.Steps = append(result.Steps, SyncStep{
				Op: "update-variant", VariantID: draft.Variant.ID, Err: err,
			})
		case VariantUnchanged:
			// Tegilmagan variant - tarmoq chaqiruvi yo'q
		}
	}

	if failed := result.Failed(); len(failed) > 0 {
		logger.Warn("Mahsulot sinxronizatsiyasi qisman muvaffaqiyatsiz",
			zap.String("product_id", result.ProductID),
			zap.Int("failed", len(failed)),
			zap.Int("total", len(result.Steps)))
		return result, apperror.NewDomainError(
			fmt.Sprintf("%d ta variant chaqiruvi muvaffaqiyatsiz: %v", len(failed), failed[0].Err))
	}

	logger.Info("Mahsulot saqlandi",
		zap.String("product_id", result.ProductID),
		zap.Int("calls", len(result.Steps)))

	f.Close()
	if err := f.refresher.Refresh(ctx); err != nil {
		// Saqlash serverda bajarildi - yangilash xatosi submitni yiqitmaydi
		logger.Warn("Saqlangandan keyin ro'yxatni yangilab bo'lmadi", zap.Error(err))
	}
	return result, nil
}

// DiscountPreview - draftdagi chegirma bo'yicha namuna narx
func (f *ProductForm) DiscountPreview(now time.Time) float64 {
	p := models.Product{
		Price:           f.Draft.Price,
		DiscountType:    f.Draft.DiscountType,
		DiscountValue:   f.Draft.DiscountValue,
		DiscountStartAt: f.Draft.DiscountStartAt,
		DiscountEndAt:   f.Draft.DiscountEndAt,
	}
	return p.EffectivePrice(now)
}
