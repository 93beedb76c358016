package deal

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"salewatch/internal/domain/entity"
)

// Extractor превращает сырой каталог витрины в набор скидок.
type Extractor struct {
	baseURL       string
	fallbackTitle string
}

func NewExtractor(baseURL string) *Extractor {
	return &Extractor{
		baseURL:       strings.TrimRight(baseURL, "/"),
		fallbackTitle: "Product",
	}
}

func (e *Extractor) WithFallbackTitle(title string) *Extractor {
	e.fallbackTitle = title
	return e
}

// Extract собирает DealSet за один проход по каталогу.
// Правила:
//   - вариант участвует, только если обе цены распарсились и неотрицательны;
//   - скидка есть строго при CompareAt > Price;
//   - id варианта занимается первым вхождением — фиды повторяют записи
//     между страницами пагинации, дубликаты молча выбрасываются;
//   - товар считается рабаттированным один раз, сколько бы вариантов
//     со скидкой у него ни было.
func (e *Extractor) Extract(products []entity.Product) entity.DealSet {
	var set entity.DealSet

	seenVariantIDs := make(map[int64]struct{})

	for _, p := range products {
		title := p.Title
		if title == "" {
			title = e.fallbackTitle
		}

		url := e.productURL(p.Handle)

		productHasDiscount := false

		for _, v := range p.Variants {
			if v.Price == nil || v.CompareAtPrice == nil {
				continue
			}

			price := *v.Price
			compareAt := *v.CompareAtPrice

			if price < 0 || compareAt < 0 {
				continue
			}

			if _, ok := seenVariantIDs[v.ID]; ok {
				continue
			}
			seenVariantIDs[v.ID] = struct{}{}

			if compareAt <= price {
				continue
			}

			productHasDiscount = true
			set.DiscountedVariants++

			discountAbs, discountPct := calcDiscount(compareAt, price)

			set.Deals = append(set.Deals, entity.Deal{
				Title:       title,
				URL:         url,
				VariantID:   v.ID,
				Price:       price,
				CompareAt:   compareAt,
				DiscountAbs: discountAbs,
				DiscountPct: discountPct,
			})
		}

		if productHasDiscount {
			set.DiscountedProducts++
		}
	}

	return set
}

func (e *Extractor) productURL(handle string) string {
	if handle == "" {
		return e.baseURL + "/"
	}

	return e.baseURL + "/products/" + handle
}

func calcDiscount(compareAt, price float64) (discountAbs, discountPct float64) {
	discountAbs = compareAt - price
	if compareAt <= 0 {
		return discountAbs, 0
	}

	return discountAbs, discountAbs / compareAt * 100
}

// Rank возвращает новый срез, упорядоченный по выгодности:
//  1. процент скидки по убыванию;
//  2. абсолютная скидка по убыванию;
//  3. цена по возрастанию (дешёвое предпочтительнее);
//  4. id варианта по возрастанию (детерминированный tie-break).
func Rank(deals []entity.Deal) []entity.Deal {
	ranked := slices.Clone(deals)

	slices.SortStableFunc(ranked, func(a, b entity.Deal) int {
		if c := cmp.Compare(b.DiscountPct, a.DiscountPct); c != 0 {
			return c
		}
		if c := cmp.Compare(b.DiscountAbs, a.DiscountAbs); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Price, b.Price); c != 0 {
			return c
		}
		return cmp.Compare(a.VariantID, b.VariantID)
	})

	return ranked
}

// Signature — короткий отпечаток топовой скидки вида "id|80.00>40.00".
// Пишется в состояние исключительно для диагностики: решения о
// нотификации принимает только булев флаг sale_active.
func Signature(ranked []entity.Deal) string {
	if len(ranked) == 0 {
		return ""
	}

	top := ranked[0]

	return fmt.Sprintf("%d|%.2f>%.2f", top.VariantID, top.CompareAt, top.Price)
}
