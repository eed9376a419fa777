package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusSent, StatusAccepted, true},
		{StatusSent, StatusRejected, true},
		{StatusDraft, StatusAccepted, false},
		{StatusDraft, StatusRejected, false},
		{StatusSent, StatusDraft, false},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusSent, false},
		{StatusRejected, StatusAccepted, false},
		// Staying put is always fine.
		{StatusDraft, StatusDraft, true},
		{StatusAccepted, StatusAccepted, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("converted").Valid())
	assert.False(t, Status("").Valid())
}

func TestNormalizeItemsRecomputesSubtotals(t *testing.T) {
	items := NormalizeItems([]QuotationItem{
		{ProductID: "p1", Quantity: 3, Price: 100, Subtotal: 999},
		{ProductID: "p2", Quantity: 2, Price: 50},
	})
	assert.Equal(t, 300.0, items[0].Subtotal, "submitted subtotal must be overwritten")
	assert.Equal(t, 100.0, items[1].Subtotal)
	assert.Equal(t, 400.0, SumItems(items))
}
