package shopify

import (
	"math"
	"strconv"
	"strings"

	"salewatch/internal/domain/entity"
)

// feedSchema — внешняя форма products.json.
// Цены у Shopify приходят строками, но встречаются и числа, и null —
// поэтому сырое значение парсится отдельным шагом в parseAmount.
type feedSchema struct {
	Products []productSchema `json:"products"`
}

type productSchema struct {
	Title    string          `json:"title"`
	Handle   string          `json:"handle"`
	Variants []variantSchema `json:"variants"`
}

type variantSchema struct {
	ID             int64 `json:"id"`
	Price          any   `json:"price"`
	CompareAtPrice any   `json:"compare_at_price"`
}

func (s feedSchema) toDomain() []entity.Product {
	products := make([]entity.Product, 0, len(s.Products))

	for _, p := range s.Products {
		products = append(products, p.toDomain())
	}

	return products
}

func (s productSchema) toDomain() entity.Product {
	variants := make([]entity.Variant, 0, len(s.Variants))

	for _, v := range s.Variants {
		variants = append(variants, entity.Variant{
			ID:             v.ID,
			Price:          parseAmount(v.Price),
			CompareAtPrice: parseAmount(v.CompareAtPrice),
		})
	}

	return entity.Product{
		Title:    s.Title,
		Handle:   s.Handle,
		Variants: variants,
	}
}

// parseAmount превращает сырое значение цены в число или nil.
// nil — это явная ветка «пропустить вариант», а не ошибка.
func parseAmount(raw any) *float64 {
	var value float64

	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		value = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		value = parsed
	default:
		return nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}
