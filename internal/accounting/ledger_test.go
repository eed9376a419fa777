package accounting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saral-app/saral/internal/billing"
)

func testBills() []billing.Bill {
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	return []billing.Bill{
		{BillNumber: "INV-0503-01", Date: day, Total: 300},
		{BillNumber: "INV-0503-02", Date: day, Total: 150},
	}
}

func TestProjectTwoEntriesPerBill(t *testing.T) {
	entries := Project(testBills())
	require.Len(t, entries, 4)

	credit, debit := entries[0], entries[1]
	assert.Equal(t, AccountSalesRevenue, credit.Account)
	assert.Equal(t, 300.0, credit.Credit)
	assert.Equal(t, 0.0, credit.Debit)
	assert.Equal(t, "Sale - INV-0503-01", credit.Description)

	assert.Equal(t, AccountAccountsReceivable, debit.Account)
	assert.Equal(t, 300.0, debit.Debit)
	assert.Equal(t, 0.0, debit.Credit)
	assert.Equal(t, credit.Description, debit.Description)
	assert.Equal(t, credit.Date, debit.Date)
}

func TestProjectBalances(t *testing.T) {
	entries := Project(testBills())
	var debits, credits float64
	for _, e := range entries {
		debits += e.Debit
		credits += e.Credit
	}
	assert.Equal(t, credits, debits)
	assert.Equal(t, 450.0, debits)
}

func TestProjectDeterministic(t *testing.T) {
	bills := testBills()
	assert.Equal(t, Project(bills), Project(bills))
}

func TestProjectEmpty(t *testing.T) {
	entries := Project(nil)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFilterByAccount(t *testing.T) {
	entries := Project(testBills())
	got := Filter{Account: AccountSalesRevenue}.Apply(entries)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, AccountSalesRevenue, e.Account)
	}
}

func TestFilterByQuery(t *testing.T) {
	entries := Project(testBills())

	got := Filter{Query: "inv-0503-02"}.Apply(entries)
	require.Len(t, got, 2)
	assert.Equal(t, "Sale - INV-0503-02", got[0].Description)

	got = Filter{Query: "receivable"}.Apply(entries)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, AccountAccountsReceivable, e.Account)
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	entries := Project(testBills())
	assert.Equal(t, entries, Filter{}.Apply(entries))
}
