package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Widget", Price: 100, CostPrice: 60, Stock: 10, ReorderPoint: 5},
		{ID: "p2", Name: "Gadget", Price: 50, CostPrice: 20, Stock: 3, ReorderPoint: 4},
	}
}

func billFor(items ...billing.BillItem) billing.Bill {
	return billing.Bill{ID: "b1", BillNumber: "INV-0503-01", Items: items}
}

func TestApplyBillDecrementsMatchingProducts(t *testing.T) {
	ledger := NewLedger(StockPolicyAllow, OrphanPolicyIgnore, nil)
	products := testProducts()

	updated, err := ledger.ApplyBill(products, billFor(
		billing.BillItem{ProductID: "p1", Quantity: 3},
	))
	require.NoError(t, err)

	assert.Equal(t, 7, updated[0].Stock)
	assert.Equal(t, 3, updated[1].Stock, "unmatched product must be unchanged")
	assert.Equal(t, 10, products[0].Stock, "input slice must not be mutated")
}

func TestApplyBillAllowsNegativeStockByDefault(t *testing.T) {
	ledger := NewLedger(StockPolicyAllow, OrphanPolicyIgnore, nil)

	updated, err := ledger.ApplyBill(testProducts(), billFor(
		billing.BillItem{ProductID: "p2", Quantity: 8},
	))
	require.NoError(t, err)
	assert.Equal(t, -5, updated[1].Stock)
}

func TestApplyBillClampPolicy(t *testing.T) {
	ledger := NewLedger(StockPolicyClamp, OrphanPolicyIgnore, nil)

	updated, err := ledger.ApplyBill(testProducts(), billFor(
		billing.BillItem{ProductID: "p2", Quantity: 8},
	))
	require.NoError(t, err)
	assert.Equal(t, 0, updated[1].Stock)
}

func TestApplyBillRejectPolicy(t *testing.T) {
	ledger := NewLedger(StockPolicyReject, OrphanPolicyIgnore, nil)

	_, err := ledger.ApplyBill(testProducts(), billFor(
		billing.BillItem{ProductID: "p2", Quantity: 8},
	))
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestApplyBillOrphanLineIgnored(t *testing.T) {
	ledger := NewLedger(StockPolicyAllow, OrphanPolicyIgnore, nil)

	updated, err := ledger.ApplyBill(testProducts(), billFor(
		billing.BillItem{ProductID: "ghost", Quantity: 2},
		billing.BillItem{ProductID: "p1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, 9, updated[0].Stock, "valid lines still apply")
}

func TestApplyBillOrphanLineRejected(t *testing.T) {
	ledger := NewLedger(StockPolicyAllow, OrphanPolicyReject, nil)

	_, err := ledger.ApplyBill(testProducts(), billFor(
		billing.BillItem{ProductID: "ghost", Quantity: 2},
	))
	require.ErrorIs(t, err, ErrUnknownProduct)
}

func TestComputeAlerts(t *testing.T) {
	products := []catalog.Product{
		{ID: "p1", Name: "Widget", Stock: 7, ReorderPoint: 5},
		{ID: "p2", Name: "Gadget", Stock: 3, ReorderPoint: 4},
		{ID: "p3", Name: "Gizmo", Stock: 5, ReorderPoint: 5},
	}

	alerts := ComputeAlerts(products)
	require.Len(t, alerts, 2)
	assert.Equal(t, "p2", alerts[0].ProductID)
	assert.Equal(t, "p3", alerts[1].ProductID, "stock equal to reorder point alerts")
}

func TestComputeAlertsIdempotent(t *testing.T) {
	products := testProducts()
	first := ComputeAlerts(products)
	second := ComputeAlerts(products)
	assert.Equal(t, first, second)
}

func TestComputeAlertsEmpty(t *testing.T) {
	alerts := ComputeAlerts(nil)
	require.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
