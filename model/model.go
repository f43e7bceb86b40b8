package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the factor applied to wire amounts to obtain minor
// units. 100 keeps two decimal places of the ledger currency.
const DefaultPrecision = 100

// TransactionKind identifies the ledger operation a transaction records.
type TransactionKind string

const (
	KindCreateAccount TransactionKind = "create_account"
	KindPayment       TransactionKind = "payment"
	KindCheckBalance  TransactionKind = "check_balance"
)

// Account is a named balance-holding entity with a credential. The
// balance is stored in minor units and must stay non-negative.
type Account struct {
	Name       string    `json:"name"`
	Credential string    `json:"-"`
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}

// Transaction is an immutable audit record of one accepted ledger
// operation. Amount is nil for balance checks; Receiver is set only for
// payments.
type Transaction struct {
	TransactionID string          `json:"id"`
	Kind          TransactionKind `json:"kind"`
	Sender        string          `json:"sender"`
	Receiver      string          `json:"receiver,omitempty"`
	Amount        *int64          `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GenerateUUIDWithSuffix generates a UUID prefixed with a module name,
// e.g. "txn_6d0c...". Useful for context-specific identifiers.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// ToMinorUnits converts a wire amount in currency units to minor units
// using decimal arithmetic, so 19.99 at precision 100 is exactly 1999.
func ToMinorUnits(amount float64, precision float64) int64 {
	if precision == 0 {
		precision = 1
	}
	d := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(precision))
	return d.Round(0).IntPart()
}

// FromMinorUnits converts minor units back to currency units for
// responses and reports.
func FromMinorUnits(amount int64, precision float64) float64 {
	if precision == 0 {
		precision = 1
	}
	d := decimal.NewFromInt(amount).Div(decimal.NewFromFloat(precision))
	f, _ := d.Float64()
	return f
}

// AmountValue returns the transaction amount or 0 when the record
// carries no amount, which is how balance checks contribute to
// aggregates.
func (transaction *Transaction) AmountValue() int64 {
	if transaction.Amount == nil {
		return 0
	}
	return *transaction.Amount
}

// Int64Ptr returns a pointer to v. Transactions store amounts as
// pointers so audit records of reads can carry a null amount.
func Int64Ptr(v int64) *int64 {
	return &v
}
