// Package receipt writes one plain-text "Nota Fiscal" file per transaction.
package receipt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"caixa/internal/ledger"

	"go.uber.org/zap"
)

// ErrReceiptCreate is returned when a receipt file cannot be created or written.
var ErrReceiptCreate = errors.New("could not create receipt")

const (
	header = "---- Nota Fiscal ----"
	footer = "---------------------"
)

// Writer numbers receipts with a counter shared by purchases and sales.
type Writer struct {
	dir    string
	next   int
	logger *zap.Logger
}

// NewWriter creates a Writer storing files in dir. An empty dir means the
// working directory. Numbering starts at 1.
func NewWriter(dir string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		dir:    dir,
		next:   1,
		logger: logger,
	}
}

// Filename returns the receipt file name for kind and number n.
func Filename(kind ledger.Kind, n int) string {
	return fmt.Sprintf("NotaFiscal_%s_%d.txt", kind, n)
}

// Next returns the number the next receipt will get.
func (w *Writer) Next() int { return w.next }

// Write creates the receipt file for tx and returns its name.
// The counter advances even when the file cannot be created, leaving a gap.
// An existing file with the same name is overwritten.
func (w *Writer) Write(tx ledger.Transaction, kind ledger.Kind) (name string, err error) {
	name = Filename(kind, w.next)
	w.next++

	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		w.logger.Error("failed to create receipt", zap.String("path", path), zap.Error(err))
		return name, fmt.Errorf("%w %s: %w", ErrReceiptCreate, name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			w.logger.Error("failed to close receipt", zap.String("path", path), zap.Error(cerr))
			err = fmt.Errorf("%w %s: %w", ErrReceiptCreate, name, cerr)
		}
	}()

	if err := Format(f, tx, kind); err != nil {
		w.logger.Error("failed to write receipt", zap.String("path", path), zap.Error(err))
		return name, fmt.Errorf("%w %s: %w", ErrReceiptCreate, name, err)
	}

	w.logger.Info("receipt written", zap.String("path", path), zap.String("transaction_id", tx.ID))
	return name, nil
}

// Format writes the fixed receipt layout of tx to out.
func Format(out io.Writer, tx ledger.Transaction, kind ledger.Kind) error {
	_, err := fmt.Fprintf(out,
		"%s\nTipo: %s\nData: %s\nProduto: %s\nQuantidade: %d\nValor: R$%s\nCliente/Fornecedor: %s\n%s\n",
		header,
		kind,
		tx.Date,
		tx.Product,
		tx.Quantity,
		tx.Amount.StringFixed(2),
		tx.Counterparty,
		footer,
	)
	return err
}
