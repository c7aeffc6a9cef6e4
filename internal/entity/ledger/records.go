package ledger

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

var ErrUnknownKind = errors.New("kind must be income or expense")

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "incomes":
		return KindIncome, nil
	case "expense", "expenses":
		return KindExpense, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "parse %q", s)
}

// Table is the store table holding records of this kind.
func (k Kind) Table() string {
	return string(k)
}

type Income struct {
	ID          int64           `json:"id"`
	Date        Date            `json:"date"`
	Service     string          `json:"service"`
	Amount      decimal.Decimal `json:"amount"`
	GivenToHome decimal.Decimal `json:"given_to_home"`
	GivenTo     Recipient       `json:"given_to,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Available is the part of the income not yet given to home.
func (i Income) Available() decimal.Decimal {
	left := i.Amount.Sub(i.GivenToHome)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

func (i Income) Disbursed() bool {
	return i.GivenToHome.IsPositive()
}

type Expense struct {
	ID        int64           `json:"id"`
	Date      Date            `json:"date"`
	PaidTo    string          `json:"paid_to"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
