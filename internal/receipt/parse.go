package receipt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"caixa/internal/ledger"

	"github.com/shopspring/decimal"
)

// ErrMalformed is returned by Parse when the input does not follow the receipt layout.
var ErrMalformed = errors.New("malformed receipt")

// Parse reads back a receipt written by Format.
func Parse(r io.Reader) (ledger.Transaction, ledger.Kind, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return ledger.Transaction{}, "", err
	}
	if len(lines) != 8 || lines[0] != header || lines[7] != footer {
		return ledger.Transaction{}, "", fmt.Errorf("%w: unexpected frame", ErrMalformed)
	}

	fields := make([]string, 0, 6)
	for i, prefix := range []string{"Tipo: ", "Data: ", "Produto: ", "Quantidade: ", "Valor: R$", "Cliente/Fornecedor: "} {
		line := lines[i+1]
		if !strings.HasPrefix(line, prefix) {
			return ledger.Transaction{}, "", fmt.Errorf("%w: line %d: want prefix %q", ErrMalformed, i+2, prefix)
		}
		fields = append(fields, strings.TrimPrefix(line, prefix))
	}

	kind := ledger.Kind(fields[0])
	if kind != ledger.Purchase && kind != ledger.Sale {
		return ledger.Transaction{}, "", fmt.Errorf("%w: unknown kind %q", ErrMalformed, fields[0])
	}
	qty, err := strconv.Atoi(fields[3])
	if err != nil {
		return ledger.Transaction{}, "", fmt.Errorf("%w: quantity: %w", ErrMalformed, err)
	}
	amount, err := decimal.NewFromString(fields[4])
	if err != nil {
		return ledger.Transaction{}, "", fmt.Errorf("%w: amount: %w", ErrMalformed, err)
	}

	return ledger.Transaction{
		Date:         fields[1],
		Product:      fields[2],
		Quantity:     qty,
		Amount:       amount,
		Counterparty: fields[5],
	}, kind, nil
}
