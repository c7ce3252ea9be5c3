package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"caixa/internal/cash"
	"caixa/internal/input"
	"caixa/internal/ledger"
	"caixa/internal/receipt"

	"go.uber.org/zap"
)

// cashHandler holds the cash service and implements the menu options.
type cashHandler struct {
	cashService *cash.Service
	input       *input.Collector
	out         io.Writer
	logger      *zap.Logger
}

// NewCashHandler creates a new cash handler.
func NewCashHandler(cashService *cash.Service, in *input.Collector, out io.Writer, logger *zap.Logger) *cashHandler {
	return &cashHandler{
		cashService: cashService,
		input:       in,
		out:         out,
		logger:      logger,
	}
}

func (h *cashHandler) handlePurchase() error { return h.handleRecord(ledger.Purchase) }

func (h *cashHandler) handleSale() error { return h.handleRecord(ledger.Sale) }

// handleRecord collects one transaction of kind and records it.
// Only input errors (end of input) are returned; everything else is reported on out.
func (h *cashHandler) handleRecord(kind ledger.Kind) error {
	name := strings.ToLower(string(kind))

	if h.cashService.Full(kind) {
		fmt.Fprintf(h.out, "Limite de transações de %s alcançado.\n", name)
		return nil
	}

	h.input.Prompt(fmt.Sprintf("Informe o valor da %s (use duas casas decimais): ", name))
	amount, err := h.input.ReadPositiveAmount()
	for errors.Is(err, input.ErrInvalidAmount) {
		h.input.Prompt("Tente novamente: ")
		amount, err = h.input.ReadPositiveAmount()
	}
	if err != nil {
		return err
	}

	tx, err := h.input.ReadTransaction(amount)
	if err != nil {
		return err
	}

	stored, file, err := h.cashService.Record(kind, tx)
	switch {
	case errors.Is(err, ledger.ErrCapacityExceeded):
		fmt.Fprintf(h.out, "Limite de transações de %s alcançado.\n", name)
		return nil
	case err != nil && !errors.Is(err, receipt.ErrReceiptCreate):
		h.logger.Error("failed to record transaction", zap.String("kind", string(kind)), zap.Error(err))
		fmt.Fprintf(h.out, "Não foi possível registrar a %s.\n", name)
		return nil
	}

	fmt.Fprintf(h.out, "%s de R$%s realizada com sucesso!\n", kind, stored.Amount.StringFixed(2))
	if err != nil {
		fmt.Fprintln(h.out, "Não foi possível criar a nota fiscal.")
		return nil
	}
	fmt.Fprintf(h.out, "Nota fiscal %s criada.\n", file)
	return nil
}

// handleViewCash prints every transaction and the cash totals.
// A failed write is logged; the session goes on.
func (h *cashHandler) handleViewCash() error {
	if err := h.cashService.Summary().Render(h.out); err != nil {
		h.logger.Error("failed to render cash summary", zap.Error(err))
	}
	return nil
}
