package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger_Reconciles_ValidChain(t *testing.T) {
	// GIVEN a ledger whose balances chain from the opening cash
	ledger := Ledger{
		{Day: 1, Kind: TxnMachinePurchase, Amount: -20000, Balance: 30000},
		{Day: 1, Kind: TxnOrderRevenue, Amount: 5000, Balance: 35000},
		{Day: 2, Kind: TxnOrderRevenue, Amount: 7500, Balance: 42500},
	}

	// THEN it reconciles against the final cash
	assert.True(t, ledger.Reconciles(50000, 42500))
}

func TestLedger_Reconciles_BrokenChain(t *testing.T) {
	// GIVEN a ledger with one corrupted running balance
	ledger := Ledger{
		{Day: 1, Kind: TxnOrderRevenue, Amount: 5000, Balance: 55000},
		{Day: 2, Kind: TxnOrderRevenue, Amount: 1000, Balance: 57000}, // should be 56000
	}

	assert.False(t, ledger.Reconciles(50000, 57000))
}

func TestLedger_Reconciles_FinalBalanceMismatch(t *testing.T) {
	// GIVEN a consistent chain that disagrees with the campaign's cash
	ledger := Ledger{
		{Day: 1, Kind: TxnOrderRevenue, Amount: 5000, Balance: 55000},
	}

	assert.False(t, ledger.Reconciles(50000, 54000))
}

func TestLedger_Reconciles_Empty(t *testing.T) {
	var ledger Ledger

	assert.True(t, ledger.Reconciles(50000, 50000))
	assert.False(t, ledger.Reconciles(50000, 49000))
}

func TestLedger_TotalByKind(t *testing.T) {
	ledger := Ledger{
		{Day: 1, Kind: TxnMachinePurchase, Amount: -20000, Balance: 30000},
		{Day: 1, Kind: TxnOrderRevenue, Amount: 5000, Balance: 35000},
		{Day: 2, Kind: TxnOrderRevenue, Amount: 7500, Balance: 42500},
		{Day: 3, Kind: TxnMachinePurchase, Amount: -40000, Balance: 2500},
	}

	assert.Equal(t, int64(12500), ledger.TotalByKind(TxnOrderRevenue))
	assert.Equal(t, int64(-60000), ledger.TotalByKind(TxnMachinePurchase))
	assert.Equal(t, int64(0), ledger.TotalByKind(TransactionKind("unknown")))
}

func TestCashTransaction_IncomeAndExpense(t *testing.T) {
	income := CashTransaction{Day: 1, Kind: TxnOrderRevenue, Amount: 1000, Balance: 51000}
	expense := CashTransaction{Day: 1, Kind: TxnMachinePurchase, Amount: -20000, Balance: 31000}

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
}

func TestCashTransaction_String(t *testing.T) {
	txn := CashTransaction{Day: 3, Kind: TxnOrderRevenue, Amount: 2500, Balance: 52500}

	s := txn.String()
	assert.Contains(t, s, "day=3")
	assert.Contains(t, s, "order-revenue")
	assert.Contains(t, s, "2500")
}
