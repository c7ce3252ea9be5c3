// Package console runs the interactive purchase/sale menu.
package console

import (
	"errors"
	"fmt"
	"io"

	"caixa/internal/cash"
	"caixa/internal/input"
	"caixa/internal/ledger"
	"caixa/internal/receipt"

	"go.uber.org/zap"
)

const clearScreen = "\033[H\033[2J"

// Menu options.
const (
	optionPurchase = 1
	optionSale     = 2
	optionViewCash = 3
	optionExit     = 4
)

// Config holds the settings of one session. Zero values are usable.
type Config struct {
	ReceiptDir  string // empty means the working directory
	Capacity    int    // per ledger; zero means ledger.DefaultCapacity
	ClearScreen bool
}

// Menu drives the read-choice, dispatch, pause cycle.
type Menu struct {
	handler *cashHandler
	input   *input.Collector
	out     io.Writer
	clear   bool
	logger  *zap.Logger
}

// InitMenu wires the ledgers, the receipt writer, the cash service and the
// handler for one session reading from in and printing to out.
func InitMenu(in io.Reader, out io.Writer, cfg Config, logger *zap.Logger) *Menu {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	// Inicialización de la lógica de caja
	purchases := ledger.NewLocalStorage(cfg.Capacity)
	sales := ledger.NewLocalStorage(cfg.Capacity)
	receipts := receipt.NewWriter(cfg.ReceiptDir, logger)
	cashService := cash.NewService(purchases, sales, receipts, logger)

	collector := input.NewCollector(in, out)

	return &Menu{
		handler: NewCashHandler(cashService, collector, out, logger),
		input:   collector,
		out:     out,
		clear:   cfg.ClearScreen,
		logger:  logger,
	}
}

func (m *Menu) show() {
	if m.clear {
		fmt.Fprint(m.out, clearScreen)
	}
	fmt.Fprint(m.out, "SISTEMA DE COMPRAS E CONTROLE DE CAIXA\n"+
		"======================================\n"+
		"1. Realizar compra\n"+
		"2. Realizar venda\n"+
		"3. Ver caixa\n"+
		"4. Sair\n"+
		"======================================\n"+
		"Escolha uma opção: ")
}

// Run loops until the exit option is chosen or input ends.
func (m *Menu) Run() error {
	for {
		m.show()

		choice, err := m.input.ReadChoice()
		if errors.Is(err, input.ErrInvalidChoice) {
			fmt.Fprintln(m.out, "Opção inválida! Por favor, insira um número.")
			continue
		}
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case optionPurchase:
			err = m.handler.handlePurchase()
		case optionSale:
			err = m.handler.handleSale()
		case optionViewCash:
			err = m.handler.handleViewCash()
		case optionExit:
			fmt.Fprintln(m.out, "Saindo...")
		default:
			fmt.Fprintln(m.out, "Opção inválida! Tente novamente.")
		}
		if err != nil {
			return ignoreEOF(err)
		}

		fmt.Fprintln(m.out, "Pressione qualquer tecla para continuar...")
		if _, err := m.input.ReadLine(); err != nil {
			return ignoreEOF(err)
		}
		if choice == optionExit {
			m.logger.Info("session finished")
			return nil
		}
	}
}

// ignoreEOF treats the end of input as a normal exit.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
