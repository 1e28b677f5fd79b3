package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/feed"
)

// buyBoxWaterfall is the fixed business priority for choosing the
// effective market price: current Buy Box first, then the 30/90/180-day
// historical averages. The order is auditable here and not configurable.
var buyBoxWaterfall = []string{
	feed.FieldBuyBox,
	feed.FieldBuyBox30,
	feed.FieldBuyBox90,
	feed.FieldBuyBox180,
}

// waterfallPrice returns the first usable candidate price, walking the
// waterfall in priority order. A candidate is usable only when it parses
// to a strictly positive number; zero and negative prices count as absent.
func waterfallPrice(rec feed.Record) (decimal.Decimal, bool) {
	for _, field := range buyBoxWaterfall {
		if price, ok := parseOrAbsent(rec.Value(field)); ok {
			return price, true
		}
	}
	return decimal.Decimal{}, false
}
