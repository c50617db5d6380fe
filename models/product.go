package models

import "time"

// Product - mahsulot modeli (remote API bilan bir xil, camelCase)
// Har bir mahsulot aynan bitta leaf kategoriyaga tegishli.
type Product struct {
	ID                      string           `json:"id"`
	NameUz                  string           `json:"nameUz"`
	NameUzCyrillic          string           `json:"nameUzCyrillic"`
	NameRu                  string           `json:"nameRu"`
	NameEn                  string           `json:"nameEn"`
	DescriptionUz           string           `json:"descriptionUz"`
	DescriptionUzCyrillic   string           `json:"descriptionUzCyrillic"`
	DescriptionRu           string           `json:"descriptionRu"`
	DescriptionEn           string           `json:"descriptionEn"`
	Price                   float64          `json:"price"`
	Stock                   int              `json:"stock"`
	ImageURL                string           `json:"imageUrl"`
	CategoryID              string           `json:"categoryId"`
	Status                  Status           `json:"status"`
	SellerChatID            *int64           `json:"sellerChatId"`
	DiscountType            DiscountType     `json:"discountType"`
	DiscountValue           *float64         `json:"discountValue"`
	DiscountStartAt         *time.Time       `json:"discountStartAt"`
	DiscountEndAt           *time.Time       `json:"discountEndAt"`
	OrderIndex              int              `json:"orderIndex"`
	Variants                []ProductVariant `json:"variants,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

// LocalizedName - berilgan tildagi nom (bo'sh bo'lsa uz ga qaytadi)
func (p *Product) LocalizedName(locale Locale) string {
	var name string
	switch locale {
	case LocaleCyr:
		name = p.NameUzCyrillic
	case LocaleRu:
		name = p.NameRu
	case LocaleEn:
		name = p.NameEn
	}
	if name == "" {
		return p.NameUz
	}
	return name
}

// LocalizedDescription - berilgan tildagi tavsif (bo'sh bo'lsa uz ga qaytadi)
func (p *Product) LocalizedDescription(locale Locale) string {
	var desc string
	switch locale {
	case LocaleCyr:
		desc = p.DescriptionUzCyrillic
	case LocaleRu:
		desc = p.DescriptionRu
	case LocaleEn:
		desc = p.DescriptionEn
	}
	if desc == "" {
		return p.DescriptionUz
	}
	return desc
}

// DiscountActive - chegirma hozir amaldami
// Chegirma faqat discountType != NONE va now [startAt, endAt] oralig'ida
// bo'lganda faol. Chegara berilmagan bo'lsa o'sha tomondan ochiq hisoblanadi.
func (p *Product) DiscountActive(now time.Time) bool {
	if p.DiscountType == DiscountNone || p.DiscountType == "" {
		return false
	}
	if p.DiscountValue == nil || *p.DiscountValue <= 0 {
		return false
	}
	if p.DiscountStartAt != nil && now.Before(*p.DiscountStartAt) {
		return false
	}
	if p.DiscountEndAt != nil && now.After(*p.DiscountEndAt) {
		return false
	}
	return true
}

// EffectivePrice - chegirma hisobga olingan narx
func (p *Product) EffectivePrice(now time.Time) float64 {
	if !p.DiscountActive(now) {
		return p.Price
	}
	switch p.DiscountType {
	case DiscountPercent:
		return p.Price * (100 - *p.DiscountValue) / 100
	case DiscountFixed:
		price := p.Price - *p.DiscountValue
		if price < 0 {
			return 0
		}
		return price
	}
	return p.Price
}

// ProductVariant - mahsulot varianti (o'lcham, rang va hokazo)
type ProductVariant struct {
	ID             string  `json:"id"`
	NameUz         string  `json:"nameUz"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	ImageURL       string  `json:"imageUrl"`
	ImgName        string  `json:"imgName,omitempty"`
	ImgSize        int64   `json:"imgSize,omitempty"`
}

// ProductCreateRequest - mahsulot yaratish so'rovi
// Variantlar bu so'rovda yuborilmaydi - alohida add-product-type chaqiruvlari bilan
type ProductCreateRequest struct {
	NameUz                string       `json:"nameUz" validate:"required"`
	NameUzCyrillic        string       `json:"nameUzCyrillic"`
	NameRu                string       `json:"nameRu"`
	NameEn                string       `json:"nameEn"`
	DescriptionUz         string       `json:"descriptionUz"`
	DescriptionUzCyrillic string       `json:"descriptionUzCyrillic"`
	DescriptionRu         string       `json:"descriptionRu"`
	DescriptionEn         string       `json:"descriptionEn"`
	Price                 float64      `json:"price" validate:"min=0"`
	Stock                 int          `json:"stock" validate:"min=0"`
	ImageURL              string       `json:"imageUrl"`
	CategoryID            string       `json:"categoryId" validate:"required"`
	Status                Status       `json:"status" validate:"catalog_status"`
	DiscountType          DiscountType `json:"discountType" validate:"discount_type"`
	DiscountValue         *float64     `json:"discountValue"`
	DiscountStartAt       *time.Time   `json:"discountStartAt"`
	DiscountEndAt         *time.Time   `json:"discountEndAt"`
	OrderIndex            int          `json:"orderIndex" validate:"min=0"`
}

// ProductEditRequest - mahsulotni yangilash so'rovi (PUT)
type ProductEditRequest = ProductCreateRequest

// AddVariantRequest - variant qo'shish so'rovi (productId bilan)
type AddVariantRequest struct {
	ProductID      string  `json:"productId" validate:"required"`
	NameUz         string  `json:"nameUz" validate:"required"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	Price          float64 `json:"price" validate:"min=0"`
	Stock          int     `json:"stock" validate:"min=0"`
	ImageURL       string  `json:"imageUrl" validate:"required"`
	ImgName        string  `json:"imgName,omitempty"`
	ImgSize        int64   `json:"imgSize,omitempty"`
}

// EditVariantRequest - variantni yangilash so'rovi
// Variant o'z id si bilan manzillanadi, productId yuborilmaydi
type EditVariantRequest struct {
	NameUz         string  `json:"nameUz" validate:"required"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	Price          float64 `json:"price" validate:"min=0"`
	Stock          int     `json:"stock" validate:"min=0"`
	ImageURL       string  `json:"imageUrl" validate:"required"`
	ImgName        string  `json:"imgName,omitempty"`
	ImgSize        int64   `json:"imgSize,omitempty"`
}
