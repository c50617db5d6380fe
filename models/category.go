package models

// Category - kategoriya modeli (remote API bilan bir xil, camelCase)
// parentId = null bo'lsa root kategoriya. Bolasi bo'lmagan kategoriya
// "leaf" hisoblanadi va mahsulotlar konteyneri sifatida ochiladi.
type Category struct {
	ID             string  `json:"id"`
	NameUz         string  `json:"nameUz"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	OrderIndex     int     `json:"orderIndex"`
	Status         Status  `json:"status"`
	ParentID       *string `json:"parentId"`
}

// LocalizedName - berilgan tildagi nom (bo'sh bo'lsa uz ga qaytadi)
func (c *Category) LocalizedName(locale Locale) string {
	var name string
	switch locale {
	case LocaleCyr:
		name = c.NameUzCyrillic
	case LocaleRu:
		name = c.NameRu
	case LocaleEn:
		name = c.NameEn
	}
	if name == "" {
		return c.NameUz
	}
	return name
}

// IsRoot - root kategoriyami
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryCreateRequest - kategoriya yaratish so'rovi
type CategoryCreateRequest struct {
	NameUz         string  `json:"nameUz" validate:"required"`
	NameUzCyrillic string  `json:"nameUzCyrillic"`
	NameRu         string  `json:"nameRu"`
	NameEn         string  `json:"nameEn"`
	OrderIndex     int     `json:"orderIndex" validate:"min=0"`
	ParentID       *string `json:"parentId"`
}

// CategoryEditRequest - kategoriyani tahrirlash so'rovi
type CategoryEditRequest struct {
	NameUz         string  `json:"nameUz" validate:"required"`
	NameUzCyrillic string  `json:"nameUzCyrillic,omitempty"`
	NameRu         string  `json:"nameRu,omitempty"`
	NameEn         string  `json:"nameEn,omitempty"`
	OrderIndex     int     `json:"orderIndex" validate:"min=0"`
	ParentID       *string `json:"parentId"`
	Status         Status  `json:"status" validate:"catalog_status"`
}
