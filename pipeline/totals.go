package pipeline

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"seroter.com/ordersheet/model"
)

// totals sums total_price per currency. Prices that do not parse are
// logged and left out.
func totals(log *slog.Logger, orders []model.Order) map[string]string {
	if len(orders) == 0 {
		return nil
	}

	sums := make(map[string]decimal.Decimal)
	for _, o := range orders {
		price, err := decimal.NewFromString(o.TotalPrice)
		if err != nil {
			log.Warn("unparsable order total", "order_id", o.Id, "total_price", o.TotalPrice)
			continue
		}
		sums[o.Currency] = sums[o.Currency].Add(price)
	}

	out := make(map[string]string, len(sums))
	for currency, sum := range sums {
		out[currency] = sum.StringFixed(2)
	}
	return out
}
