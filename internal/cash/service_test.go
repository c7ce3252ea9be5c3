package cash

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"caixa/internal/ledger"
	"caixa/internal/receipt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T, capacity int, dir string) *Service {
	t.Helper()
	logger := zaptest.NewLogger(t)
	return NewService(
		ledger.NewLocalStorage(capacity),
		ledger.NewLocalStorage(capacity),
		receipt.NewWriter(dir, logger),
		logger,
	)
}

func tx(amount, date, product string, qty int, party string) ledger.Transaction {
	return ledger.Transaction{
		Amount:       decimal.RequireFromString(amount),
		Date:         date,
		Product:      product,
		Quantity:     qty,
		Counterparty: party,
	}
}

// TestNewService verifica la inicialización del servicio.
func TestNewService(t *testing.T) {
	svc := NewService(ledger.NewLocalStorage(1), ledger.NewLocalStorage(1), receipt.NewWriter(t.TempDir(), nil), nil)

	if svc == nil {
		t.Fatal("NewService returned nil")
	}
	if svc.purchases == nil || svc.sales == nil {
		t.Error("Service ledgers were not initialized")
	}
	if svc.logger == nil {
		t.Error("Service logger was not initialized")
	}
}

func TestRecord_StoresAndWritesReceipt(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t, ledger.DefaultCapacity, dir)

	stored, name, err := svc.RealizePurchase(tx("50", "01/01/2024", "Widget", 10, "Acme"))
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.RecordedAt.IsZero())
	assert.Equal(t, "NotaFiscal_Compra_1.txt", name)
	assert.FileExists(t, filepath.Join(dir, name))
	assert.Equal(t, 1, svc.purchases.Len())
	assert.Equal(t, 0, svc.sales.Len())

	_, name, err = svc.RealizeSale(tx("80", "02/01/2024", "Widget", 5, "Bob"))
	require.NoError(t, err)
	assert.Equal(t, "NotaFiscal_Venda_2.txt", name)
	assert.Equal(t, 1, svc.sales.Len())
}

func TestRecord_CapacityExceeded(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(t, 2, dir)

	for i := 0; i < 2; i++ {
		_, _, err := svc.RealizeSale(tx("1", "01/01/2024", "p", 1, "c"))
		require.NoError(t, err)
	}
	require.True(t, svc.Full(ledger.Sale))
	require.False(t, svc.Full(ledger.Purchase))

	_, name, err := svc.RealizeSale(tx("1", "01/01/2024", "p", 1, "c"))

	assert.ErrorIs(t, err, ledger.ErrCapacityExceeded)
	assert.Empty(t, name)
	assert.Equal(t, 2, svc.sales.Len())
	assert.NoFileExists(t, filepath.Join(dir, "NotaFiscal_Venda_3.txt"), "rejected transactions get no receipt")
}

// TestRecord_ReceiptFailureKeepsTransaction: si la nota fiscal falla, la transacción queda registrada.
func TestRecord_ReceiptFailureKeepsTransaction(t *testing.T) {
	svc := newTestService(t, 5, filepath.Join(t.TempDir(), "missing"))

	stored, name, err := svc.RealizePurchase(tx("10", "01/01/2024", "p", 1, "c"))

	assert.ErrorIs(t, err, receipt.ErrReceiptCreate)
	assert.Equal(t, "NotaFiscal_Compra_1.txt", name)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, 1, svc.purchases.Len())
	assert.Equal(t, "10.00", svc.Summary().PurchasesTotal.StringFixed(2))
}

func TestRecord_Rejects(t *testing.T) {
	svc := newTestService(t, 5, t.TempDir())

	_, _, err := svc.RealizePurchase(tx("0", "01/01/2024", "p", 1, "c"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.RealizeSale(ledger.Transaction{Amount: decimal.New(1, 100000000), Date: "01/01/2024"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = svc.Record(ledger.Kind("Troca"), tx("1", "01/01/2024", "p", 1, "c"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.True(t, svc.Full(ledger.Kind("Troca")))

	assert.Zero(t, svc.purchases.Len())
	assert.Zero(t, svc.sales.Len())
}

func TestSummary_Balance(t *testing.T) {
	svc := newTestService(t, 5, t.TempDir())

	_, _, err := svc.RealizePurchase(tx("10.00", "01/01/2024", "p", 1, "c"))
	require.NoError(t, err)
	_, _, err = svc.RealizeSale(tx("25.00", "01/01/2024", "p", 1, "c"))
	require.NoError(t, err)

	sm := svc.Summary()
	assert.Equal(t, "10.00", sm.PurchasesTotal.StringFixed(2))
	assert.Equal(t, "25.00", sm.SalesTotal.StringFixed(2))
	assert.Equal(t, "15.00", sm.Balance.StringFixed(2))
}

func TestSummary_NegativeBalance(t *testing.T) {
	svc := newTestService(t, 5, t.TempDir())

	_, _, err := svc.RealizePurchase(tx("40", "01/01/2024", "p", 1, "c"))
	require.NoError(t, err)

	assert.Equal(t, "-40.00", svc.Summary().Balance.StringFixed(2))
}

func TestSummary_Render(t *testing.T) {
	svc := newTestService(t, 5, t.TempDir())
	_, _, err := svc.RealizePurchase(tx("50", "01/01/2024", "Widget", 10, "Acme"))
	require.NoError(t, err)
	_, _, err = svc.RealizeSale(tx("80", "02/01/2024", "Widget", 5, "Bob"))
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, svc.Summary().Render(&b))

	want := strings.Join([]string{
		"Transações de Compra:",
		"- Data: 01/01/2024, Produto: Widget, Quantidade: 10, Fornecedor: Acme, Valor: R$ 50.00",
		"Transações de Venda:",
		"- Data: 02/01/2024, Produto: Widget, Quantidade: 5, Cliente: Bob, Valor: R$ 80.00",
		"Total em Compras: R$ 50.00",
		"Total em Vendas: R$ 80.00",
		"Total em Caixa: R$ 30.00",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestSummary_RenderEmpty(t *testing.T) {
	svc := newTestService(t, 5, t.TempDir())

	var b bytes.Buffer
	require.NoError(t, svc.Summary().Render(&b))

	assert.Equal(t, "Transações de Compra:\nTransações de Venda:\nTotal em Compras: R$ 0.00\nTotal em Vendas: R$ 0.00\nTotal em Caixa: R$ 0.00\n", b.String())
}
