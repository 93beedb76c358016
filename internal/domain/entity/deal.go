package entity

// Deal — рабаттированный вариант с посчитанной выгодой.
type Deal struct {
	Title     string
	URL       string
	VariantID int64

	Price     float64
	CompareAt float64

	// Экономика сделки
	DiscountAbs float64 // CompareAt - Price
	DiscountPct float64 // 0, если CompareAt <= 0
}

// DealSet — дедуплицированный результат одного прохода по фиду.
type DealSet struct {
	Deals []Deal

	// Сводные счётчики для заголовка уведомления
	DiscountedProducts int // товары с >=1 рабаттированным вариантом
	DiscountedVariants int // всего рабаттированных вариантов
}

// SaleNow — есть ли сейчас хоть одна скидка.
func (s DealSet) SaleNow() bool {
	return len(s.Deals) > 0
}
