package sale

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"salewatch/internal/domain/entity"
)

// Composer рендерит эпизод в готовые тексты для чата.
type Composer struct {
	homeURL string
	topN    int
}

func NewComposer(homeURL string, topN int) *Composer {
	return &Composer{
		homeURL: homeURL,
		topN:    topN,
	}
}

// SaleStarted всегда возвращает ровно два сообщения:
// первое — сводка и топ-N скидок, второе — счётчик оставшихся
// вариантов и следующий срез топа (или явное «больше ничего нет»).
func (c *Composer) SaleStarted(set entity.DealSet, ranked []entity.Deal) []string {
	top := ranked[:min(c.topN, len(ranked))]
	nextTop := ranked[len(top):min(c.topN*2, len(ranked))]

	return []string{
		c.summaryMessage(set, top),
		c.overflowMessage(set, top, nextTop),
	}
}

// SaleEnded — короткое уведомление о завершении акции.
func (c *Composer) SaleEnded() string {
	return "✅ Sale seems to be over (no discounted variants found anymore)."
}

func (c *Composer) summaryMessage(set entity.DealSet, top []entity.Deal) string {
	shown := c.topN
	if len(top) > 0 {
		shown = len(top)
	}

	header := fmt.Sprintf(
		"🚨 Sale detected!\n\n"+
			"📦 Discounted products: %d\n"+
			"🏷️ Discounted variants: %d\n"+
			"🔗 %s\n\n"+
			"🔥 Top %d deals:\n",
		set.DiscountedProducts,
		set.DiscountedVariants,
		c.homeURL,
		shown,
	)

	if len(top) == 0 {
		// saleNow=true без сделок невозможен, но плейсхолдер дешевле паники.
		return header + "• (no details available)"
	}

	return header + joinDealLines(top)
}

func (c *Composer) overflowMessage(set entity.DealSet, top, nextTop []entity.Deal) string {
	remaining := max(0, set.DiscountedVariants-len(top))

	header := fmt.Sprintf(
		"📩 More details:\n"+
			"• Further discounted variants (after top %d): %d\n",
		len(top),
		remaining,
	)

	if len(nextTop) == 0 {
		return header + "\n(No further deals in the next slots.)"
	}

	return header + "\n➡️ Next top deals:\n" + joinDealLines(nextTop)
}

func joinDealLines(deals []entity.Deal) string {
	return strings.Join(lo.Map(deals, func(d entity.Deal, _ int) string {
		return formatDealLine(d)
	}), "\n\n")
}

// formatDealLine: название, старая цена, стрелка, новая цена,
// абсолютная и процентная скидка, ссылка — порядок фиксирован.
func formatDealLine(d entity.Deal) string {
	return fmt.Sprintf(
		"• %s\n  %.2f → %.2f  (-%.2f / %.1f%%)\n  %s",
		d.Title,
		d.CompareAt,
		d.Price,
		d.DiscountAbs,
		d.DiscountPct,
		d.URL,
	)
}
