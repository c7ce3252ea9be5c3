// Package input reads transaction fields from an interactive, line-oriented
// console. Every read consumes exactly one full line.
package input

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

// ErrInvalidAmount is returned when a line is not a positive decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidQuantity is returned when a line is not an integer.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrInvalidChoice is returned when a menu line is not a number.
var ErrInvalidChoice = errors.New("invalid menu choice")

// Collector prompts on w and reads answers from r.
type Collector struct {
	r *bufio.Reader
	w io.Writer
}

// NewCollector creates a Collector reading from r and prompting on w.
func NewCollector(r io.Reader, w io.Writer) *Collector {
	return &Collector{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Prompt writes msg without a trailing newline.
func (c *Collector) Prompt(msg string) {
	fmt.Fprint(c.w, msg)
}

// ReadLine returns the next line without its line terminator.
// A last line without newline is returned as is; io.EOF only once nothing is left.
func (c *Collector) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPositiveAmount reads one line and parses its first token as a decimal.
// On a non-numeric, zero or negative value it prints an error message and
// returns ErrInvalidAmount; callers loop until it succeeds.
func (c *Collector) ReadPositiveAmount() (decimal.Decimal, error) {
	line, err := c.ReadLine()
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := ParseAmount(line)
	if err != nil {
		fmt.Fprintln(c.w, "Entrada inválida, por favor insira um número positivo.")
		return decimal.Zero, err
	}
	return amount, nil
}

// ParseAmount parses the first whitespace-separated token of line as a
// strictly positive decimal in plain notation within the ledger.ValidAmount
// digit bounds.
func ParseAmount(line string) (decimal.Decimal, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.ContainsAny(fields[0], "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q uses exponent notation", ErrInvalidAmount, fields[0])
	}
	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, fields[0])
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, amount)
	}
	if !ledger.ValidAmount(amount) {
		return decimal.Zero, fmt.Errorf("%w: %q has too many digits", ErrInvalidAmount, fields[0])
	}
	return amount, nil
}

// ReadQuantity reads one line as an integer. Negative values are accepted.
func (c *Collector) ReadQuantity() (int, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	q, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, line)
	}
	return q, nil
}

// ReadChoice reads one line as a menu option number. The range is not checked.
func (c *Collector) ReadChoice() (int, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}
	return n, nil
}

// ReadTransaction prompts for date, product, quantity and counterparty and
// returns them with amount. Text fields longer than their limit are cut.
func (c *Collector) ReadTransaction(amount decimal.Decimal) (ledger.Transaction, error) {
	tx := ledger.Transaction{Amount: amount}

	c.Prompt("Informe a data da transação (DD/MM/AAAA): ")
	date, err := c.ReadLine()
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx.Date = truncate(date, ledger.DateLen)

	c.Prompt("Informe o tipo de produto: ")
	product, err := c.ReadLine()
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx.Product = truncate(product, ledger.ProductLen)

	for {
		c.Prompt("Informe a quantidade: ")
		tx.Quantity, err = c.ReadQuantity()
		if err == nil {
			break
		}
		if !errors.Is(err, ErrInvalidQuantity) {
			return ledger.Transaction{}, err
		}
		fmt.Fprintln(c.w, "Quantidade inválida, por favor insira um número inteiro.")
	}

	c.Prompt("Informe o cliente/fornecedor: ")
	counterparty, err := c.ReadLine()
	if err != nil {
		return ledger.Transaction{}, err
	}
	tx.Counterparty = truncate(counterparty, ledger.CounterpartyLen)

	return tx, nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
