package navigator

import (
	"context"
	"errors"
	"testing"

	"bozorcha-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog - CatalogAPI uchun in-memory fake
type fakeCatalog struct {
	roots       []models.Category
	children    map[string][]models.Category
	hasChildren map[string]bool
	products    map[string][]models.Product
	err         error
	calls       []string

	// onListProducts - javob kelishidan oldin chaqiriladi (stale test uchun)
	onListProducts func()
}

func (f *fakeCatalog) ListRootCategories(ctx context.Context) ([]models.Category, error) {
	f.calls = append(f.calls, "roots")
	if f.err != nil {
		return nil, f.err
	}
	return f.roots, nil
}

func (f *fakeCatalog) ListChildCategories(ctx context.Context, parentID string) ([]models.Category, error) {
	f.calls = append(f.calls, "children:"+parentID)
	if f.err != nil {
		return nil, f.err
	}
	return f.children[parentID], nil
}

func (f *fakeCatalog) HasChildCategories(ctx context.Context, id string) (bool, error) {
	f.calls = append(f.calls, "has-children:"+id)
	if f.err != nil {
		return false, f.err
	}
	return f.hasChildren[id], nil
}

func (f *fakeCatalog) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	f.calls = append(f.calls, "products:"+categoryID)
	if f.onListProducts != nil {
		f.onListProducts()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.products[categoryID], nil
}

func newFake() *fakeCatalog {
	return &fakeCatalog{
		roots: []models.Category{
			{ID: "mebel", NameUz: "Mebel", OrderIndex: 2},
			{ID: "oshxona", NameUz: "Oshxona", OrderIndex: 1},
		},
		children: map[string][]models.Category{
			"mebel": {
				{ID: "divan", NameUz: "Divanlar", ParentID: strPtr("mebel"), OrderIndex: 1},
				{ID: "stol", NameUz: "Stollar", ParentID: strPtr("mebel"), OrderIndex: 2},
			},
		},
		hasChildren: map[string]bool{"mebel": true, "divan": false, "stol": false},
		products: map[string][]models.Product{
			"divan": {
				{ID: "p2", NameUz: "Burchak divan", CategoryID: "divan", OrderIndex: 2},
				{ID: "p1", NameUz: "Oddiy divan", CategoryID: "divan", OrderIndex: 1},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestNavigateToRoot(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	require.NoError(t, nav.NavigateTo(ctx, nil, ""))

	assert.Equal(t, ViewCategories, nav.Mode())
	assert.Empty(t, nav.Breadcrumb())
	assert.Nil(t, nav.CurrentParentID())

	// orderIndex bo'yicha saralangan: Oshxona(1) keyin Mebel(2)
	categories := nav.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "oshxona", categories[0].ID)
	assert.Equal(t, "mebel", categories[1].ID)
}

func TestClassifyPerNavigation(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	t.Run("bolasi bor kategoriya - kategoriya ro'yxati", func(t *testing.T) {
		require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
		assert.Equal(t, ViewCategories, nav.Mode())
		require.Len(t, nav.Categories(), 2)
		assert.Equal(t, "divan", nav.Categories()[0].ID)
	})

	t.Run("leaf kategoriya - mahsulot ro'yxati", func(t *testing.T) {
		require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
		assert.Equal(t, ViewProducts, nav.Mode())
		products := nav.Products()
		require.Len(t, products, 2)
		// orderIndex bo'yicha saralangan
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "p2", products[1].ID)
	})

	t.Run("tur keshlanmaydi - har navigatsiyada qayta probe", func(t *testing.T) {
		before := countCalls(fake.calls, "has-children:divan")
		require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
		require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
		assert.Equal(t, before+1, countCalls(fake.calls, "has-children:divan"))
	})
}

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestBreadcrumb(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	require.NoError(t, nav.NavigateTo(ctx, nil, ""))
	require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
	require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
	require.Len(t, nav.Breadcrumb(), 2)

	t.Run("ajdod crumb bosilganda chuqurroq tarix kesiladi", func(t *testing.T) {
		require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
		crumbs := nav.Breadcrumb()
		require.Len(t, crumbs, 1)
		assert.Equal(t, "mebel", crumbs[0].ID)
	})

	t.Run("root ga qaytishda breadcrumb tozalanadi", func(t *testing.T) {
		require.NoError(t, nav.NavigateTo(ctx, nil, ""))
		assert.Empty(t, nav.Breadcrumb())
	})

	t.Run("takror kirish siklga olib kelmaydi", func(t *testing.T) {
		require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
		require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
		require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
		assert.Len(t, nav.Breadcrumb(), 2)
	})
}

func TestBack(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	require.NoError(t, nav.NavigateTo(ctx, strPtr("mebel"), "Mebel"))
	require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))

	require.NoError(t, nav.Back(ctx))
	crumbs := nav.Breadcrumb()
	require.Len(t, crumbs, 1)
	assert.Equal(t, "mebel", crumbs[0].ID)
	assert.Equal(t, ViewCategories, nav.Mode())

	require.NoError(t, nav.Back(ctx))
	assert.Empty(t, nav.Breadcrumb())
	assert.Nil(t, nav.CurrentParentID())
}

func TestFetchFailureKeepsLastGood(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	require.NoError(t, nav.NavigateTo(ctx, nil, ""))
	require.Len(t, nav.Categories(), 2)

	fake.err = errors.New("connection refused")
	err := nav.NavigateTo(ctx, strPtr("mebel"), "Mebel")
	require.Error(t, err)

	// Oldingi ro'yxat saqlanib qoladi
	assert.Len(t, nav.Categories(), 2)
	assert.Equal(t, ViewCategories, nav.Mode())
}

func TestStaleResponseDiscarded(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	// divan ga navigatsiya davomida yangi navigatsiya (root) boshlanadi:
	// eskirgan mahsulot javobi tashlab yuboriladi, root ko'rinishi qoladi
	fake.onListProducts = func() {
		fake.onListProducts = nil
		require.NoError(t, nav.NavigateTo(ctx, nil, ""))
	}

	require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))

	assert.Equal(t, ViewCategories, nav.Mode())
	assert.Nil(t, nav.CurrentParentID())
	assert.Empty(t, nav.Breadcrumb())
	assert.Len(t, nav.Categories(), 2)
}

func TestFilter(t *testing.T) {
	fake := newFake()
	nav := New(fake)
	ctx := context.Background()

	require.NoError(t, nav.NavigateTo(ctx, nil, ""))

	nav.SetFilter("meb")
	require.Len(t, nav.Categories(), 1)
	assert.Equal(t, "mebel", nav.Categories()[0].ID)

	nav.SetFilter("")
	assert.Len(t, nav.Categories(), 2)

	require.NoError(t, nav.NavigateTo(ctx, strPtr("divan"), "Divanlar"))
	nav.SetFilter("burchak")
	require.Len(t, nav.Products(), 1)
	assert.Equal(t, "p2", nav.Products()[0].ID)
}
