package entries

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

// ErrIncomplete means the form lacks a field or a field does not parse. The
// submission is dropped without writing anything.
var ErrIncomplete = errors.New("entry is incomplete")

type IncomeForm struct {
	Date    string `json:"date"`
	Service string `json:"service"`
	Amount  string `json:"amount"`
}

type ExpenseForm struct {
	Date         string `json:"date"`
	PaidTo       string `json:"paid_to"`
	CustomPaidTo string `json:"custom_paid_to"`
	Amount       string `json:"amount"`
}

func (f IncomeForm) Income() (ledger.Income, error) {
	date, err := parseDate(f.Date)
	if err != nil {
		return ledger.Income{}, err
	}
	service := strings.TrimSpace(f.Service)
	if service == "" {
		return ledger.Income{}, errors.Wrap(ErrIncomplete, "service is empty")
	}
	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return ledger.Income{}, err
	}
	return ledger.Income{
		Date:        date,
		Service:     service,
		Amount:      amount,
		GivenToHome: decimal.Zero,
	}, nil
}

func (f ExpenseForm) Expense() (ledger.Expense, error) {
	date, err := parseDate(f.Date)
	if err != nil {
		return ledger.Expense{}, err
	}
	paidTo := ledger.ResolvePaidTo(f.PaidTo, f.CustomPaidTo)
	if paidTo == "" {
		return ledger.Expense{}, errors.Wrap(ErrIncomplete, "paid to is empty")
	}
	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return ledger.Expense{}, err
	}
	return ledger.Expense{
		Date:   date,
		PaidTo: paidTo,
		Amount: amount,
	}, nil
}

// ParseAmount reads a non-negative amount rounded to cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.Wrap(ErrIncomplete, "amount is empty")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrIncomplete, "amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.Wrapf(ErrIncomplete, "amount %q is negative", s)
	}
	return amount.Round(2), nil
}

func parseDate(s string) (ledger.Date, error) {
	if strings.TrimSpace(s) == "" {
		return "", errors.Wrap(ErrIncomplete, "date is empty")
	}
	d, err := ledger.ParseDate(s)
	if err != nil {
		return "", errors.Wrap(ErrIncomplete, err.Error())
	}
	return d, nil
}
