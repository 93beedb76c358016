package deal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"salewatch/internal/domain/entity"
	"salewatch/internal/domain/service/deal"
)

func ptr(v float64) *float64 {
	return &v
}

func TestExtract(t *testing.T) {
	rq := require.New(t)

	extractor := deal.NewExtractor("https://mnstry.com/")

	testCases := []struct {
		name             string
		products         []entity.Product
		wantDeals        int
		wantProducts     int
		wantVariants     int
		wantFirstURL     string
		wantFirstTitle   string
		wantFirstAbs     float64
		wantFirstPct     float64
		wantFirstVariant int64
	}{
		{
			name: "Single discounted variant",
			products: []entity.Product{{
				Title:  "Pre-Workout",
				Handle: "pre-workout",
				Variants: []entity.Variant{
					{ID: 1, Price: ptr(40), CompareAtPrice: ptr(80)},
				},
			}},
			wantDeals:        1,
			wantProducts:     1,
			wantVariants:     1,
			wantFirstURL:     "https://mnstry.com/products/pre-workout",
			wantFirstTitle:   "Pre-Workout",
			wantFirstAbs:     40,
			wantFirstPct:     50,
			wantFirstVariant: 1,
		},
		{
			name: "Equal prices produce no deal",
			products: []entity.Product{{
				Title:  "Creatine",
				Handle: "creatine",
				Variants: []entity.Variant{
					{ID: 2, Price: ptr(30), CompareAtPrice: ptr(30)},
				},
			}},
		},
		{
			name: "Inverted prices produce no deal",
			products: []entity.Product{{
				Title:  "Creatine",
				Handle: "creatine",
				Variants: []entity.Variant{
					{ID: 3, Price: ptr(30), CompareAtPrice: ptr(20)},
				},
			}},
		},
		{
			name: "Missing compare at price skips variant",
			products: []entity.Product{{
				Title:  "Creatine",
				Handle: "creatine",
				Variants: []entity.Variant{
					{ID: 4, Price: ptr(30), CompareAtPrice: nil},
					{ID: 5, Price: nil, CompareAtPrice: ptr(50)},
				},
			}},
		},
		{
			name: "Negative price skips variant",
			products: []entity.Product{{
				Title:  "Creatine",
				Handle: "creatine",
				Variants: []entity.Variant{
					{ID: 6, Price: ptr(-1), CompareAtPrice: ptr(50)},
				},
			}},
		},
		{
			name: "Product with several discounted variants counts once",
			products: []entity.Product{{
				Title:  "Whey",
				Handle: "whey",
				Variants: []entity.Variant{
					{ID: 7, Price: ptr(20), CompareAtPrice: ptr(40)},
					{ID: 8, Price: ptr(25), CompareAtPrice: ptr(40)},
				},
			}},
			wantDeals:        2,
			wantProducts:     1,
			wantVariants:     2,
			wantFirstURL:     "https://mnstry.com/products/whey",
			wantFirstTitle:   "Whey",
			wantFirstAbs:     20,
			wantFirstPct:     50,
			wantFirstVariant: 7,
		},
		{
			name: "Missing title and handle fall back to defaults",
			products: []entity.Product{{
				Variants: []entity.Variant{
					{ID: 9, Price: ptr(10), CompareAtPrice: ptr(20)},
				},
			}},
			wantDeals:        1,
			wantProducts:     1,
			wantVariants:     1,
			wantFirstURL:     "https://mnstry.com/",
			wantFirstTitle:   "Product",
			wantFirstAbs:     10,
			wantFirstPct:     50,
			wantFirstVariant: 9,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			set := extractor.Extract(tc.products)

			rq.Len(set.Deals, tc.wantDeals)
			rq.Equal(tc.wantProducts, set.DiscountedProducts)
			rq.Equal(tc.wantVariants, set.DiscountedVariants)

			if tc.wantDeals > 0 {
				first := set.Deals[0]
				rq.Equal(tc.wantFirstURL, first.URL)
				rq.Equal(tc.wantFirstTitle, first.Title)
				rq.Equal(tc.wantFirstVariant, first.VariantID)
				rq.InDelta(tc.wantFirstAbs, first.DiscountAbs, 1e-9)
				rq.InDelta(tc.wantFirstPct, first.DiscountPct, 1e-9)
			}
		})
	}
}

func TestExtractDeduplicatesVariantIDs(t *testing.T) {
	rq := require.New(t)

	extractor := deal.NewExtractor("https://mnstry.com")

	// Один и тот же вариант попал в фид дважды (пагинация).
	products := []entity.Product{
		{
			Title:  "Whey",
			Handle: "whey",
			Variants: []entity.Variant{
				{ID: 1, Price: ptr(40), CompareAtPrice: ptr(80)},
			},
		},
		{
			Title:  "Whey (repeat page)",
			Handle: "whey",
			Variants: []entity.Variant{
				{ID: 1, Price: ptr(10), CompareAtPrice: ptr(80)},
			},
		},
	}

	set := extractor.Extract(products)

	rq.Len(set.Deals, 1)
	rq.Equal(1, set.DiscountedVariants)
	// Выигрывает первое вхождение.
	rq.Equal("Whey", set.Deals[0].Title)
	rq.InDelta(40.0, set.Deals[0].Price, 1e-9)
}

func TestExtractZeroCompareAtGivesZeroPct(t *testing.T) {
	rq := require.New(t)

	extractor := deal.NewExtractor("https://mnstry.com")

	// CompareAt=0 никогда не больше цены, значит скидки нет
	// и деление на ноль в проценте недостижимо.
	set := extractor.Extract([]entity.Product{{
		Title:  "Free sample",
		Handle: "sample",
		Variants: []entity.Variant{
			{ID: 1, Price: ptr(0), CompareAtPrice: ptr(0)},
		},
	}})

	rq.Empty(set.Deals)
	rq.False(set.SaleNow())
}

func TestRank(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{VariantID: 1, Price: 50, CompareAt: 60, DiscountAbs: 10, DiscountPct: 16.7},
		{VariantID: 2, Price: 40, CompareAt: 80, DiscountAbs: 40, DiscountPct: 50},
		{VariantID: 3, Price: 20, CompareAt: 40, DiscountAbs: 20, DiscountPct: 50},
		{VariantID: 4, Price: 20, CompareAt: 40, DiscountAbs: 20, DiscountPct: 50},
	}

	ranked := deal.Rank(deals)

	// Сначала процент, затем абсолют, затем цена, затем id.
	rq.Equal(int64(2), ranked[0].VariantID) // 50% / 40
	rq.Equal(int64(3), ranked[1].VariantID) // 50% / 20, id 3 < 4
	rq.Equal(int64(4), ranked[2].VariantID)
	rq.Equal(int64(1), ranked[3].VariantID)

	// Вход не мутируется.
	rq.Equal(int64(1), deals[0].VariantID)
}

func TestRankPrefersCheaperOnFullTie(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{VariantID: 1, Price: 30, CompareAt: 60, DiscountAbs: 30, DiscountPct: 50},
		{VariantID: 2, Price: 20, CompareAt: 50, DiscountAbs: 30, DiscountPct: 50},
	}

	ranked := deal.Rank(deals)

	rq.Equal(int64(2), ranked[0].VariantID)
	rq.Equal(int64(1), ranked[1].VariantID)
}

func TestSignature(t *testing.T) {
	rq := require.New(t)

	rq.Equal("", deal.Signature(nil))

	ranked := []entity.Deal{
		{VariantID: 1, Price: 40, CompareAt: 80},
		{VariantID: 2, Price: 10, CompareAt: 15},
	}

	rq.Equal("1|80.00>40.00", deal.Signature(ranked))
}
