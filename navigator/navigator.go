package navigator

import (
	"context"
	"sort"
	"strings"

	"bozorcha-admin/models"
	"bozorcha-admin/pkg/logger"

	"go.uber.org/zap"
)

// ViewMode - hozirgi pozitsiya nimani ko'rsatadi
type ViewMode string

const (
	ViewCategories ViewMode = "CATEGORY"
	ViewProducts   ViewMode = "PRODUCT"
)

// Crumb - breadcrumb elementi (root saqlashga kirmaydi, id = nil implicit)
type Crumb struct {
	ID   string
	Name string
}

// NodeKind - tugun klassifikatsiyasi natijasi
type NodeKind string

const (
	KindCategories NodeKind = "categories"
	KindProducts   NodeKind = "products"
)

// NodeView - klassifikatsiya natijasi: tugun yoki kategoriyalar ro'yxati,
// yoki mahsulotlar ro'yxati - hech qachon ikkalasi emas
type NodeView struct {
	Kind       NodeKind
	Categories []models.Category
	Products   []models.Product
}

// CatalogAPI - navigator ishlatadigan remote chaqiruvlar
type CatalogAPI interface {
	ListRootCategories(ctx context.Context) ([]models.Category, error)
	ListChildCategories(ctx context.Context, parentID string) ([]models.Category, error)
	HasChildCategories(ctx context.Context, id string) (bool, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
}

// Navigator - kategoriya/mahsulot daraxtidagi hozirgi pozitsiya
// Bitta sessiya, bitta mutator: goroutine-safe emas, UI event loop dan
// ketma-ket chaqiriladi deb hisoblanadi.
type Navigator struct {
	api CatalogAPI

	currentParentID *string
	breadcrumb      []Crumb
	viewMode        ViewMode
	categories      []models.Category
	products        []models.Product
	isLoading       bool
	filter          string

	// seq - stale-response himoyasi: har bir navigatsiya yangi raqam oladi,
	// eskirgan raqam bilan kelgan javob tashlab yuboriladi (latest-wins)
	seq uint64
}

// New - yangi navigator (root pozitsiyada, hali hech narsa yuklanmagan)
func New(api CatalogAPI) *Navigator {
	return &Navigator{
		api:      api,
		viewMode: ViewCategories,
	}
}

// Classify - tugunni klassifikatsiya qilish va tegishli ro'yxatni olish
// Tugun turi entityda saqlanmaydi: bolasi bor kategoriya - kategoriya
// konteyneri, bolasi yo'q kategoriya - mahsulot konteyneri. Bu har safar
// serverdan qayta aniqlanadi, navigatsiyalar orasida keshlanmaydi.
func (n *Navigator) Classify(ctx context.Context, id *string) (*NodeView, error) {
	if id == nil {
		categories, err := n.api.ListRootCategories(ctx)
		if err != nil {
			return nil, err
		}
		return &NodeView{Kind: KindCategories, Categories: categories}, nil
	}

	hasChildren, err := n.api.HasChildCategories(ctx, *id)
	if err != nil {
		return nil, err
	}

	if hasChildren {
		categories, err := n.api.ListChildCategories(ctx, *id)
		if err != nil {
			return nil, err
		}
		return &NodeView{Kind: KindCategories, Categories: categories}, nil
	}

	products, err := n.api.ListProductsByCategory(ctx, *id)
	if err != nil {
		return nil, err
	}
	return &NodeView{Kind: KindProducts, Products: products}, nil
}

// NavigateTo - berilgan tugunga o'tish
// id = nil: root ga qaytish, breadcrumb tozalanadi.
// id breadcrumbda bor: o'sha yergacha kesiladi (to'g'ridan-to'g'ri sakrash).
// Aks holda: breadcrumb oxiriga qo'shiladi.
func (n *Navigator) NavigateTo(ctx context.Context, id *string, name string) error {
	if id == nil {
		n.breadcrumb = nil
	} else if idx := n.crumbIndex(*id); idx >= 0 {
		// Ajdod crumb bosildi - chuqurroq tarix tashlab yuboriladi
		n.breadcrumb = n.breadcrumb[:idx+1]
	} else {
		n.breadcrumb = append(n.breadcrumb, Crumb{ID: *id, Name: name})
	}

	n.currentParentID = id
	return n.resolve(ctx)
}

// Back - bitta pog'ona yuqoriga (oxirgi crumb olib tashlanadi)
func (n *Navigator) Back(ctx context.Context) error {
	if len(n.breadcrumb) == 0 {
		return n.resolve(ctx)
	}

	n.breadcrumb = n.breadcrumb[:len(n.breadcrumb)-1]
	if len(n.breadcrumb) == 0 {
		n.currentParentID = nil
	} else {
		last := n.breadcrumb[len(n.breadcrumb)-1]
		id := last.ID
		n.currentParentID = &id
	}
	return n.resolve(ctx)
}

// Refresh - hozirgi pozitsiyani qayta yuklash (breadcrumb o'zgarmaydi)
func (n *Navigator) Refresh(ctx context.Context) error {
	return n.resolve(ctx)
}

// resolve - hozirgi pozitsiya uchun ro'yxatni yuklash
// Xatolikda oldingi ro'yxat saqlanib qoladi (bo'sh ma'lumot bilan
// yozib yuborilmaydi), xabar caller tomonidan ko'rsatiladi.
func (n *Navigator) resolve(ctx context.Context) error {
	n.seq++
	seq := n.seq
	n.isLoading = true

	view, err := n.Classify(ctx, n.currentParentID)

	if seq != n.seq {
		// Eskirgan javob: yangiroq navigatsiya boshlangan
		logger.Debug("Eskirgan navigatsiya javobi tashlab yuborildi", zap.Uint64("seq", seq))
		return nil
	}
	n.isLoading = false

	if err != nil {
		logger.Warn("Ro'yxatni yuklab bo'lmadi", zap.Error(err))
		return err
	}

	switch view.Kind {
	case KindCategories:
		sort.SliceStable(view.Categories, func(i, j int) bool {
			return view.Categories[i].OrderIndex < view.Categories[j].OrderIndex
		})
		n.viewMode = ViewCategories
		n.categories = view.Categories
		n.products = nil
	case KindProducts:
		sort.SliceStable(view.Products, func(i, j int) bool {
			return view.Products[i].OrderIndex < view.Products[j].OrderIndex
		})
		n.viewMode = ViewProducts
		n.products = view.Products
		n.categories = nil
	}

	return nil
}

// crumbIndex - id breadcrumbning qaysi o'rnida (yo'q bo'lsa -1)
func (n *Navigator) crumbIndex(id string) int {
	for i, crumb := range n.breadcrumb {
		if crumb.ID == id {
			return i
		}
	}
	return -1
}

// SetFilter - ko'rsatilayotgan ro'yxat uchun qidiruv filtri
func (n *Navigator) SetFilter(query string) {
	n.filter = strings.ToLower(strings.TrimSpace(query))
}

// CurrentParentID - hozirgi pozitsiya (nil = root)
func (n *Navigator) CurrentParentID() *string {
	return n.currentParentID
}

// Breadcrumb - breadcrumb nusxasi
func (n *Navigator) Breadcrumb() []Crumb {
	crumbs := make([]Crumb, len(n.breadcrumb))
	copy(crumbs, n.breadcrumb)
	return crumbs
}

// Mode - hozirgi ko'rinish turi
func (n *Navigator) Mode() ViewMode {
	return n.viewMode
}

// IsLoading - yuklanish davom etyaptimi
func (n *Navigator) IsLoading() bool {
	return n.isLoading
}

// Categories - ko'rsatiladigan kategoriyalar (filtr qo'llangan)
func (n *Navigator) Categories() []models.Category {
	if n.filter == "" {
		return n.categories
	}
	var filtered []models.Category
	for _, c := range n.categories {
		if strings.Contains(strings.ToLower(c.NameUz), n.filter) ||
			strings.Contains(strings.ToLower(c.NameEn), n.filter) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Products - ko'rsatiladigan mahsulotlar (filtr qo'llangan)
func (n *Navigator) Products() []models.Product {
	if n.filter == "" {
		return n.products
	}
	var filtered []models.Product
	for _, p := range n.products {
		if strings.Contains(strings.ToLower(p.NameUz), n.filter) ||
			strings.Contains(strings.ToLower(p.NameEn), n.filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
