// Package metrics derives profitability columns for a single product row
// from an e-commerce price-monitoring feed:
//
//  1. Profit
//  2. ROI
//  3. Profit Margin (Buybox)
//  4. Profit Margin (MSRP)
//  5. MSRP Difference
//
// plus a diagnostic column recording which price the Buy Box waterfall
// selected. All parsing is fail-soft: malformed or missing fields degrade
// to documented defaults or sentinel outputs, never to an error.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/feed"
)

// Output column names.
const (
	KeyProfit       = "Profit"
	KeyROI          = "ROI"
	KeyMarginBuyBox = "Profit Margin (Buybox)"
	KeyMarginMSRP   = "Profit Margin (MSRP)"
	KeyMSRPDiff     = "MSRP Difference"
	KeyPriceUsed    = "Price Used For BB Profit"
)

// NoBuybox marks metrics that need a market price when the waterfall
// found none.
const NoBuybox = "No Buybox"

// OutputKeys lists every column Calculate emits, in report order.
var OutputKeys = []string{
	KeyPriceUsed,
	KeyProfit,
	KeyROI,
	KeyMarginBuyBox,
	KeyMarginMSRP,
	KeyMSRPDiff,
}

// Result maps output column names to formatted values. Values are always
// strings: a currency amount, a plain or grouped decimal, a percentage,
// or a sentinel ("No Buybox", "") when a metric does not apply.
type Result map[string]string

// Calculator computes the profitability columns. It is stateless and safe
// for concurrent use across independent records.
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

// Calculate derives all metrics for one product row. Every key in
// OutputKeys is present in the result for every input.
func (c *Calculator) Calculate(rec feed.Record) Result {
	res := make(Result, len(OutputKeys))

	price, havePrice := waterfallPrice(rec)
	if havePrice {
		res[KeyPriceUsed] = formatPlain(price)
	} else {
		res[KeyPriceUsed] = NoBuybox
	}

	// Profit first: ROI consumes its raw value.
	profit := c.profit(rec, price, havePrice)
	res[KeyProfit] = formatCurrency(profit)
	res[KeyROI] = c.roi(rec, profit)

	res[KeyMarginBuyBox] = c.marginBuyBox(rec, price, havePrice)
	res[KeyMarginMSRP] = c.marginMSRP(rec)
	res[KeyMSRPDiff] = c.msrpDifference(rec, price, havePrice)

	return res
}

// totalCost is base cost plus fulfillment cost. ROI deliberately does not
// use it; see roi.
func (c *Calculator) totalCost(rec feed.Record) decimal.Decimal {
	base := resolveBaseCost(rec.Value(feed.FieldCost))
	fulfillment := resolveFulfillmentCost(rec.Value(feed.FieldPickPack))
	return base.Add(fulfillment)
}

// netProfitAt computes revenue after the referral fee at the given sale
// price, minus total cost.
func (c *Calculator) netProfitAt(rec feed.Record, salePrice decimal.Decimal) decimal.Decimal {
	feeRate := resolveReferralFeeRate(rec.Value(feed.FieldReferralFee))
	revenue := salePrice.Mul(one.Sub(feeRate))
	return revenue.Sub(c.totalCost(rec))
}

// profit uses the waterfall price, falling back to MSRP when no Buy Box
// price exists. With no sale price at all, revenue is zero but total cost
// is still incurred.
func (c *Calculator) profit(rec feed.Record, price decimal.Decimal, havePrice bool) decimal.Decimal {
	sale, haveSale := price, havePrice
	if !haveSale {
		sale, haveSale = parseOrAbsent(rec.Value(feed.FieldMSRP))
	}
	if !haveSale {
		return c.totalCost(rec).Neg()
	}
	return c.netProfitAt(rec, sale)
}

// roi is profit over base COST only, excluding Pick & Pack. The asymmetry
// with the margin metrics (which divide total cost into revenue) is the
// established business rule. Undefined when COST is zero.
func (c *Calculator) roi(rec feed.Record, profit decimal.Decimal) string {
	cost := resolveBaseCost(rec.Value(feed.FieldCost))
	if cost.IsZero() {
		return ""
	}
	return formatGrouped(profit.Div(cost).Mul(hundred))
}

func (c *Calculator) marginBuyBox(rec feed.Record, price decimal.Decimal, havePrice bool) string {
	if !havePrice {
		return NoBuybox
	}
	margin := c.netProfitAt(rec, price).Div(price).Mul(hundred)
	return formatPercent(margin)
}

// marginMSRP prices the row at MSRP regardless of what the waterfall
// selected.
func (c *Calculator) marginMSRP(rec feed.Record) string {
	msrp, ok := parseOrAbsent(rec.Value(feed.FieldMSRP))
	if !ok {
		return ""
	}
	margin := c.netProfitAt(rec, msrp).Div(msrp).Mul(hundred)
	return formatPercent(margin)
}

func (c *Calculator) msrpDifference(rec feed.Record, price decimal.Decimal, havePrice bool) string {
	msrp, ok := parseOrAbsent(rec.Value(feed.FieldMSRP))
	if !ok {
		return ""
	}
	if !havePrice {
		return NoBuybox
	}
	return formatPlain(price.Sub(msrp))
}
