package entity

// Variant — один вариант товара из фида витрины.
// Цены приходят строками, числами или null; всё, что не распарсилось,
// остаётся nil и вариант просто не участвует в поиске скидок.
type Variant struct {
	ID             int64
	Price          *float64
	CompareAtPrice *float64
}

// Product — товар из products.json вместе с его вариантами.
type Product struct {
	Title    string
	Handle   string
	Variants []Variant
}
