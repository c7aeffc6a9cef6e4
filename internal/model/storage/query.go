package storage

import (
	"github.com/pkg/errors"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

const (
	OrderByID      = "id"
	OrderByCreated = "created_at"
	OrderByDate    = "date"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrUnsupportedOrder = errors.New("unsupported order column")
)

var orderColumns = map[string]bool{
	OrderByID:      true,
	OrderByCreated: true,
	OrderByDate:    true,
}

// Query filters a select. Zero fields are not applied; Disbursed only affects
// incomes.
type Query struct {
	ID        int64
	Date      ledger.Date
	From      ledger.Date
	To        ledger.Date
	Disbursed bool
	OrderBy   string
	Desc      bool
	Limit     uint64
}

func ByID(id int64) Query {
	return Query{ID: id}
}

func ByDate(d ledger.Date) Query {
	return Query{Date: d}
}

func Between(from, to ledger.Date) Query {
	return Query{From: from, To: to}
}

func (q Query) Ordered(column string, desc bool) Query {
	q.OrderBy = column
	q.Desc = desc
	return q
}

func (q Query) validate() error {
	if q.OrderBy != "" && !orderColumns[q.OrderBy] {
		return errors.Wrap(ErrUnsupportedOrder, q.OrderBy)
	}
	return nil
}

func (q Query) matches(id int64, d ledger.Date) bool {
	if q.ID != 0 && id != q.ID {
		return false
	}
	if q.Date != "" && d != q.Date {
		return false
	}
	if q.From != "" && d < q.From {
		return false
	}
	if q.To != "" && d > q.To {
		return false
	}
	return true
}
