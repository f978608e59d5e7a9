// Append-only cash ledger for a campaign. Every cash movement books one
// immutable entry; the running balances must reconcile with CampaignState.Cash
// at all times.

package sim

import "fmt"

// TransactionKind labels where a ledger entry came from.
type TransactionKind string

const (
	TxnOrderRevenue    TransactionKind = "order-revenue"
	TxnMachinePurchase TransactionKind = "machine-purchase"
)

// CashTransaction is one immutable ledger entry. Amount is signed: positive
// for income, negative for expenses. Balance is the cash after applying.
type CashTransaction struct {
	Day     int // 1-based campaign day the movement happened on
	Kind    TransactionKind
	Amount  int64
	Balance int64
}

// IsIncome returns true if the transaction added cash.
func (t CashTransaction) IsIncome() bool {
	return t.Amount > 0
}

// IsExpense returns true if the transaction removed cash.
func (t CashTransaction) IsExpense() bool {
	return t.Amount < 0
}

func (t CashTransaction) String() string {
	return fmt.Sprintf("Txn[day=%d %s amount=%d balance=%d]", t.Day, t.Kind, t.Amount, t.Balance)
}

// Ledger is the append-only audit trail of a campaign's cash movements.
type Ledger []CashTransaction

// Reconciles checks the chain invariant: starting from openingBalance, each
// entry's balance equals the previous balance plus its amount, and the final
// balance equals cash. An empty ledger reconciles iff cash == openingBalance.
func (l Ledger) Reconciles(openingBalance, cash int64) bool {
	balance := openingBalance
	for _, t := range l {
		balance += t.Amount
		if t.Balance != balance {
			return false
		}
	}
	return balance == cash
}

// TotalByKind sums the amounts of all entries of the given kind.
func (l Ledger) TotalByKind(kind TransactionKind) int64 {
	var total int64
	for _, t := range l {
		if t.Kind == kind {
			total += t.Amount
		}
	}
	return total
}
