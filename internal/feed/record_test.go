package feed

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
		ok   bool
	}{
		{"string", "50.00", "50", true},
		{"padded string", "  7.5 ", "7.5", true},
		{"negative string", "-8.00", "-8", true},
		{"float64", 6.5, "6.5", true},
		{"int", 18, "18", true},
		{"int64", int64(42), "42", true},
		{"json number", json.Number("19.99"), "19.99", true},
		{"decimal passthrough", decimal.NewFromInt(3), "3", true},
		{"nil", nil, "", false},
		{"empty string", "", "", false},
		{"blank string", "   ", "", false},
		{"garbage", "No Buybox", "", false},
		{"unsupported type", []int{1}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Coerce(tc.raw)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				want, err := decimal.NewFromString(tc.want)
				assert.NoError(t, err)
				assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			}
		})
	}
}

func TestRecordValue(t *testing.T) {
	var nilRec Record
	assert.Nil(t, nilRec.Value(FieldBuyBox))

	rec := Record{FieldBuyBox: "50.00"}
	assert.Equal(t, "50.00", rec.Value(FieldBuyBox))
	assert.Nil(t, rec.Value(FieldMSRP))
}
