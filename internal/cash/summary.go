package cash

import (
	"fmt"
	"io"

	"caixa/internal/ledger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Summary is the cash position of a session.
type Summary struct {
	Purchases      []ledger.Transaction `json:"purchases"`
	Sales          []ledger.Transaction `json:"sales"`
	PurchasesTotal decimal.Decimal      `json:"purchases_total"`
	SalesTotal     decimal.Decimal      `json:"sales_total"`
	Balance        decimal.Decimal      `json:"balance"` // sales minus purchases, may be negative
}

// Summary collects both ledgers and their totals.
func (s *Service) Summary() Summary {
	sm := Summary{
		Purchases:      s.purchases.All(),
		Sales:          s.sales.All(),
		PurchasesTotal: s.purchases.Total(),
		SalesTotal:     s.sales.Total(),
	}
	sm.Balance = sm.SalesTotal.Sub(sm.PurchasesTotal)

	s.logger.Debug("cash summary computed",
		zap.Int("purchases", len(sm.Purchases)),
		zap.Int("sales", len(sm.Sales)),
		zap.String("balance", sm.Balance.StringFixed(2)),
	)
	return sm
}

// Render writes every transaction then the three totals.
func (sm Summary) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Transações de Compra:"); err != nil {
		return err
	}
	if err := renderEntries(w, sm.Purchases, ledger.Purchase); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Transações de Venda:"); err != nil {
		return err
	}
	if err := renderEntries(w, sm.Sales, ledger.Sale); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total em Compras: R$ %s\nTotal em Vendas: R$ %s\nTotal em Caixa: R$ %s\n",
		sm.PurchasesTotal.StringFixed(2),
		sm.SalesTotal.StringFixed(2),
		sm.Balance.StringFixed(2),
	)
	return err
}

func renderEntries(w io.Writer, txs []ledger.Transaction, kind ledger.Kind) error {
	for _, tx := range txs {
		_, err := fmt.Fprintf(w, "- Data: %s, Produto: %s, Quantidade: %d, %s: %s, Valor: R$ %s\n",
			tx.Date, tx.Product, tx.Quantity, kind.CounterpartyLabel(), tx.Counterparty, tx.Amount.StringFixed(2))
		if err != nil {
			return err
		}
	}
	return nil
}
