package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultCapacity is the maximum number of transactions a ledger holds.
const DefaultCapacity = 100

// ErrCapacityExceeded is returned when appending to a full ledger.
var ErrCapacityExceeded = errors.New("ledger capacity exceeded")

// ErrEmptyID is returned when trying to store a transaction with an empty ID.
var ErrEmptyID = errors.New("empty transaction ID")

// Storage is the interface of a bounded, append-only ledger.
type Storage interface {
	Append(tx Transaction) error
	All() []Transaction
	Total() decimal.Decimal
	Len() int
	Full() bool
}

// LocalStorage keeps transactions in memory, in insertion order.
type LocalStorage struct {
	capacity int
	txs      []Transaction
}

// NewLocalStorage instantiates an empty ledger holding at most capacity
// transactions. A non-positive capacity means DefaultCapacity.
func NewLocalStorage(capacity int) *LocalStorage {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LocalStorage{
		capacity: capacity,
		txs:      make([]Transaction, 0, capacity),
	}
}

// Append stores tx at the end of the ledger.
// Returns ErrCapacityExceeded if the ledger is full, leaving it unchanged.
func (l *LocalStorage) Append(tx Transaction) error {
	if tx.ID == "" {
		return ErrEmptyID
	}
	if l.Full() {
		return ErrCapacityExceeded
	}
	l.txs = append(l.txs, tx)
	return nil
}

// All returns a copy of the stored transactions in insertion order.
func (l *LocalStorage) All() []Transaction {
	out := make([]Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Total sums the amount of every stored transaction.
func (l *LocalStorage) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.txs {
		total = total.Add(tx.Amount)
	}
	return total
}

func (l *LocalStorage) Len() int { return len(l.txs) }

func (l *LocalStorage) Full() bool { return len(l.txs) >= l.capacity }
