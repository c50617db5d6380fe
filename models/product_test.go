package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)
	value := 10.0
	zero := 0.0

	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{
			name:    "NONE turi - faol emas",
			product: Product{DiscountType: DiscountNone, DiscountValue: &value},
			want:    false,
		},
		{
			name:    "qiymat nol - faol emas",
			product: Product{DiscountType: DiscountPercent, DiscountValue: &zero},
			want:    false,
		},
		{
			name:    "qiymat berilmagan - faol emas",
			product: Product{DiscountType: DiscountPercent},
			want:    false,
		},
		{
			name: "oraliq ichida - faol",
			product: Product{
				DiscountType: DiscountPercent, DiscountValue: &value,
				DiscountStartAt: &before, DiscountEndAt: &after,
			},
			want: true,
		},
		{
			name: "hali boshlanmagan - faol emas",
			product: Product{
				DiscountType: DiscountPercent, DiscountValue: &value,
				DiscountStartAt: &after,
			},
			want: false,
		},
		{
			name: "tugagan - faol emas",
			product: Product{
				DiscountType: DiscountPercent, DiscountValue: &value,
				DiscountEndAt: &before,
			},
			want: false,
		},
		{
			name: "chegaralar berilmagan - ochiq oraliq, faol",
			product: Product{
				DiscountType: DiscountFixed, DiscountValue: &value,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.DiscountActive(now))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	now := time.Now()
	percent := 10.0
	fixed := 300000.0
	huge := 2000000.0

	t.Run("PERCENT", func(t *testing.T) {
		p := Product{Price: 1000, DiscountType: DiscountPercent, DiscountValue: &percent}
		assert.Equal(t, float64(900), p.EffectivePrice(now))
	})

	t.Run("FIXED", func(t *testing.T) {
		p := Product{Price: 1500000, DiscountType: DiscountFixed, DiscountValue: &fixed}
		assert.Equal(t, float64(1200000), p.EffectivePrice(now))
	})

	t.Run("FIXED narxdan katta - nolga tushadi", func(t *testing.T) {
		p := Product{Price: 1500000, DiscountType: DiscountFixed, DiscountValue: &huge}
		assert.Equal(t, float64(0), p.EffectivePrice(now))
	})

	t.Run("chegirma faol emas - asl narx", func(t *testing.T) {
		p := Product{Price: 1000, DiscountType: DiscountNone}
		assert.Equal(t, float64(1000), p.EffectivePrice(now))
	})
}

func TestLocalizedName(t *testing.T) {
	p := Product{NameUz: "Divan", NameRu: "Диван"}

	assert.Equal(t, "Диван", p.LocalizedName(LocaleRu))
	// Bo'sh til - uz ga qaytadi
	assert.Equal(t, "Divan", p.LocalizedName(LocaleEn))
	assert.Equal(t, "Divan", p.LocalizedName(LocaleUz))
}

func TestUserMessagePrefersUz(t *testing.T) {
	r := APIResponse{Message: "Not found", MessageUz: "Topilmadi"}
	assert.Equal(t, "Topilmadi", r.UserMessage())

	r = APIResponse{Message: "Not found"}
	assert.Equal(t, "Not found", r.UserMessage())
}
