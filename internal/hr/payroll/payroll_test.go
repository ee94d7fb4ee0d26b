package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

func TestSeedAmountsAreConsistent(t *testing.T) {
	items := Seed()
	require.Len(t, items, 120)
	assert.Equal(t, items, Seed())
	for _, item := range items {
		assert.InDelta(t, item.Gross-item.Deductions, item.Net, 0.001)
		assert.Contains(t, Statuses, item.Status)
	}
}

func TestNetIsReadOnly(t *testing.T) {
	schema := Schema()
	item := Seed()[0]
	err := schema.SetField(&item, "net", "9999")
	assert.ErrorIs(t, err, browse.ErrFieldReadOnly)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12,345.50", FormatAmount(12345.5))
	assert.Equal(t, "0.00", FormatAmount(0))
}

func TestMonetaryFieldsExportFormatted(t *testing.T) {
	schema := Schema()
	item := Item{ID: "pay-0001", Employee: "emp-0001", Gross: 12345.5, Deductions: 2345.5, Net: 10000}

	assert.Equal(t, "12,345.50", schema.ValueString(item, "gross"))

	out := schema.Export(item)
	assert.Equal(t, "2,345.50", out["deductions"])
	assert.Equal(t, "10,000.00", out["net"])
	assert.Equal(t, "emp-0001", out["employee"])
}

func TestAuditEntriesCarryFormattedAmounts(t *testing.T) {
	schema := Schema()
	orig := Item{ID: "pay-0001", Deductions: 2345.5}
	draft := orig
	draft.Deductions = 2400

	entries := schema.DiffEntries(orig, draft, "hr.lead", time.Now())
	require.Len(t, entries, 1)
	assert.Equal(t, "deductions", entries[0].Field)
	assert.Equal(t, "2,345.50", entries[0].From)
	assert.Equal(t, "2,400.00", entries[0].To)
}

func TestMonetaryFieldsStillFilterAndSortNumerically(t *testing.T) {
	schema := Schema()
	items := []Item{
		{ID: "a", Gross: 12345.5},
		{ID: "b", Gross: 9000},
	}

	got := schema.Filter(items, browse.Criteria{"gross": {Value: "12345.5"}})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	ordered := schema.Sort(items, &browse.SortSpec{Field: "gross", Direction: browse.Asc})
	assert.Equal(t, "b", ordered[0].ID)
	assert.Equal(t, "a", ordered[1].ID)
}
