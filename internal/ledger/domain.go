package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field limits for the text fields of a Transaction.
const (
	DateLen         = 10
	ProductLen      = 49
	CounterpartyLen = 99
)

// Bounds on the digits of an amount.
const (
	MaxIntegerDigits  = 15
	MaxFractionDigits = 15
)

// ValidAmount reports whether amount is positive and within the digit bounds.
// Only the coefficient and exponent are inspected, never rescaled: comparing
// against a bound would expand amounts such as 1e100000000 digit by digit.
func ValidAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	exp := int(amount.Exponent())
	return amount.NumDigits()+exp <= MaxIntegerDigits && -exp <= MaxFractionDigits
}

// Kind tells purchases and sales apart.
type Kind string

const (
	Purchase Kind = "Compra"
	Sale     Kind = "Venda"
)

// CounterpartyLabel is how the other party is named in the cash summary.
func (k Kind) CounterpartyLabel() string {
	if k == Sale {
		return "Cliente"
	}
	return "Fornecedor"
}

// Transaction represents a purchase or a sale recorded in a ledger.
type Transaction struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // DD/MM/AAAA, not validated
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	Counterparty string          `json:"counterparty"`
	RecordedAt   time.Time       `json:"recorded_at"`
}
