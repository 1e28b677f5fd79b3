package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/feed"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	defaultReferralFeeRate = decimal.NewFromFloat(0.15)
	defaultFulfillmentCost = decimal.NewFromFloat(7.00)
)

// parseOrDefault returns def when the raw value is absent, empty, or not
// numeric. Feed data is noisy; parsing never fails outward.
func parseOrDefault(v any, def decimal.Decimal) decimal.Decimal {
	d, ok := feed.Coerce(v)
	if !ok {
		return def
	}
	return d
}

// parseOrAbsent returns the parsed value only when it is strictly
// positive. Absent, empty, non-numeric, and zero-or-negative values all
// report absent, as does the NoBuybox sentinel written by earlier runs.
func parseOrAbsent(v any) (decimal.Decimal, bool) {
	if s, isStr := v.(string); isStr && s == NoBuybox {
		return decimal.Decimal{}, false
	}
	d, ok := feed.Coerce(v)
	if !ok || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// resolveReferralFeeRate normalizes the marketplace referral fee to a
// fraction. "15", "15.0", and "0.15" all mean 15%. A literal 0 is treated
// as not provided and takes the 15% default; a legitimate zero fee is
// indistinguishable from missing data in the feed.
func resolveReferralFeeRate(v any) decimal.Decimal {
	rate := parseOrDefault(v, defaultReferralFeeRate)
	if rate.IsZero() {
		return defaultReferralFeeRate
	}
	if rate.GreaterThan(one) {
		return rate.Div(hundred)
	}
	return rate
}

// resolveFulfillmentCost resolves the per-unit pick & pack cost. Zero is
// treated as not provided, not as free fulfillment.
func resolveFulfillmentCost(v any) decimal.Decimal {
	cost := parseOrDefault(v, decimal.Zero)
	if cost.IsZero() {
		return defaultFulfillmentCost
	}
	return cost
}

// resolveBaseCost resolves the unit cost of goods. Zero is a legitimate
// cost here; no substitution.
func resolveBaseCost(v any) decimal.Decimal {
	return parseOrDefault(v, decimal.Zero)
}
