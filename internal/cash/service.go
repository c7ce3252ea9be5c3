package cash

import (
	"errors"
	"fmt"
	"time"

	"caixa/internal/ledger"
	"caixa/internal/receipt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error para montos fuera de rango
var ErrInvalidAmount = errors.New("amount must be greater than zero and below the maximum")

// Error para tipos de transacción desconocidos
var ErrUnknownKind = errors.New("unknown transaction kind")

// Service owns the purchase and sale ledgers and the receipt counter of one session.
type Service struct {
	purchases ledger.Storage
	sales     ledger.Storage
	receipts  *receipt.Writer
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(purchases, sales ledger.Storage, receipts *receipt.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		purchases: purchases,
		sales:     sales,
		receipts:  receipts,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) storage(kind ledger.Kind) (ledger.Storage, error) {
	switch kind {
	case ledger.Purchase:
		return s.purchases, nil
	case ledger.Sale:
		return s.sales, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Full reports whether the ledger of kind accepts no more transactions.
func (s *Service) Full(kind ledger.Kind) bool {
	st, err := s.storage(kind)
	if err != nil {
		return true
	}
	return st.Full()
}

// Record appends tx to the ledger of kind and writes its receipt.
//
// A full ledger yields ledger.ErrCapacityExceeded and nothing is stored.
// When only the receipt fails the transaction stays recorded: the stored
// transaction and receipt name are returned along with an error wrapping
// receipt.ErrReceiptCreate.
//
// The amount is normally validated by the input collector already; Record
// checks it again because callers may build transactions without it.
// Amounts outside ledger.ValidAmount yield ErrInvalidAmount.
func (s *Service) Record(kind ledger.Kind, tx ledger.Transaction) (ledger.Transaction, string, error) {
	st, err := s.storage(kind)
	if err != nil {
		return ledger.Transaction{}, "", err
	}
	if !ledger.ValidAmount(tx.Amount) {
		return ledger.Transaction{}, "", ErrInvalidAmount
	}

	tx.ID = uuid.NewString()
	tx.RecordedAt = s.now()

	if err := st.Append(tx); err != nil {
		s.logger.Warn("transaction rejected",
			zap.String("kind", string(kind)),
			zap.Int("ledger_size", st.Len()),
			zap.Error(err),
		)
		return ledger.Transaction{}, "", err
	}
	s.logger.Info("transaction recorded",
		zap.String("transaction_id", tx.ID),
		zap.String("kind", string(kind)),
		zap.String("amount", tx.Amount.StringFixed(2)),
	)

	name, err := s.receipts.Write(tx, kind)
	if err != nil {
		s.logger.Error("receipt not written",
			zap.String("transaction_id", tx.ID),
			zap.String("receipt", name),
			zap.Int("next_receipt", s.receipts.Next()),
			zap.Error(err),
		)
		return tx, name, err
	}
	return tx, name, nil
}

// RealizePurchase records a purchase.
func (s *Service) RealizePurchase(tx ledger.Transaction) (ledger.Transaction, string, error) {
	return s.Record(ledger.Purchase, tx)
}

// RealizeSale records a sale.
func (s *Service) RealizeSale(tx ledger.Transaction) (ledger.Transaction, string, error) {
	return s.Record(ledger.Sale, tx)
}
