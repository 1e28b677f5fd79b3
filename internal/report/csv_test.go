package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/metrics"
)

func TestEnrich(t *testing.T) {
	in := strings.Join([]string{
		"ASIN,Buy Box,Buy Box 90,MSRP,Referral Fee %,COST,Pick & Pack",
		"B000TEST01,50.00,45.00,,15,18.00,6.50",
		"B000TEST02,,100.00,,,10.00,",
		"B000TEST03,,,,,10.00,",
	}, "\n") + "\n"

	var out bytes.Buffer
	summary, err := NewEnricher(nil).Enrich(strings.NewReader(in), &out)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Rows)

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	header := rows[0]
	assert.Equal(t, append([]string{
		"ASIN", "Buy Box", "Buy Box 90", "MSRP", "Referral Fee %", "COST", "Pick & Pack",
	}, metrics.OutputKeys...), header)

	byName := func(row []string, name string) string {
		for i, col := range header {
			if col == name {
				return row[i]
			}
		}
		t.Fatalf("column %q not found", name)
		return ""
	}

	assert.Equal(t, "$18.00", byName(rows[1], metrics.KeyProfit))
	assert.Equal(t, "100.00", byName(rows[1], metrics.KeyROI))
	assert.Equal(t, "50.00", byName(rows[1], metrics.KeyPriceUsed))

	assert.Equal(t, "$68.00", byName(rows[2], metrics.KeyProfit))
	assert.Equal(t, "100.00", byName(rows[2], metrics.KeyPriceUsed))

	assert.Equal(t, "$-17.00", byName(rows[3], metrics.KeyProfit))
	assert.Equal(t, metrics.NoBuybox, byName(rows[3], metrics.KeyMarginBuyBox))
	assert.Equal(t, "", byName(rows[3], metrics.KeyMSRPDiff))
}

func TestEnrich_DropsStaleMetricColumns(t *testing.T) {
	in := strings.Join([]string{
		"Buy Box,COST,Profit,Price Used For BB Profit",
		"50.00,18.00,$999.99,No Buybox",
	}, "\n") + "\n"

	var out bytes.Buffer
	_, err := NewEnricher(nil).Enrich(strings.NewReader(in), &out)
	require.NoError(t, err)

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Stale Profit column replaced, not duplicated.
	count := 0
	for _, col := range rows[0] {
		if col == metrics.KeyProfit {
			count++
		}
	}
	assert.Equal(t, 1, count)
	// 50 * 0.85 - (18 + 7) = 17.50 with the default fee and pick & pack.
	assert.Contains(t, rows[1], "$17.50")
	assert.Contains(t, rows[1], "50.00")
}

func TestEnrich_RaggedRows(t *testing.T) {
	in := "Buy Box,COST\n50.00\n"

	var out bytes.Buffer
	summary, err := NewEnricher(nil).Enrich(strings.NewReader(in), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Rows)

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	// Absent COST means zero base cost: 50 * 0.85 - 7 = 35.50, ROI empty.
	assert.Contains(t, rows[1], "$35.50")
	assert.Contains(t, rows[1], "")
}

func TestEnrich_EmptyInputFails(t *testing.T) {
	var out bytes.Buffer
	_, err := NewEnricher(nil).Enrich(strings.NewReader(""), &out)
	assert.Error(t, err)
}
