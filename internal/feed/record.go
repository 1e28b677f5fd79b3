// Package feed defines the row contract for price-monitoring feed data.
// A Record is one product row as delivered by an upstream source
// (spreadsheet row, CSV row, JSON object); values arrive as strings or
// numbers and are frequently missing or malformed.
package feed

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names recognized by the metrics calculator. No field is required.
const (
	FieldBuyBox      = "Buy Box"
	FieldBuyBox30    = "Buy Box 30"
	FieldBuyBox90    = "Buy Box 90"
	FieldBuyBox180   = "Buy Box 180"
	FieldMSRP        = "MSRP"
	FieldReferralFee = "Referral Fee %"
	FieldCost        = "COST"
	FieldPickPack    = "Pick & Pack"
)

// Record is one raw product row keyed by field name.
type Record map[string]any

// Value returns the raw value for a field, or nil when the field is absent.
func (r Record) Value(name string) any {
	if r == nil {
		return nil
	}
	return r[name]
}

// Coerce converts a raw feed value to a decimal. The second return is
// false when the value is absent, empty, or not numeric; callers decide
// how to degrade.
func Coerce(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Decimal{}, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case decimal.Decimal:
		return val, true
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
