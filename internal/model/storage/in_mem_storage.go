package storage

import (
	"cmp"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

type InMemStorage struct {
	mu       sync.RWMutex
	incomes  map[int64]ledger.Income
	expenses map[int64]ledger.Expense
	lastID   int64
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		incomes:  make(map[int64]ledger.Income),
		expenses: make(map[int64]ledger.Expense),
	}
}

func (s *InMemStorage) SelectIncomes(_ context.Context, q Query) ([]ledger.Income, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]ledger.Income, 0)
	for _, inc := range s.incomes {
		if !q.matches(inc.ID, inc.Date) || (q.Disbursed && !inc.Disbursed()) {
			continue
		}
		res = append(res, inc)
	}
	sortRecords(res, q, func(inc ledger.Income) sortKey {
		return sortKey{inc.ID, inc.Date, inc.CreatedAt}
	})
	return limit(res, q.Limit), nil
}

func (s *InMemStorage) SelectExpenses(_ context.Context, q Query) ([]ledger.Expense, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]ledger.Expense, 0)
	for _, exp := range s.expenses {
		if q.matches(exp.ID, exp.Date) {
			res = append(res, exp)
		}
	}
	sortRecords(res, q, func(exp ledger.Expense) sortKey {
		return sortKey{exp.ID, exp.Date, exp.CreatedAt}
	})
	return limit(res, q.Limit), nil
}

func (s *InMemStorage) InsertIncome(_ context.Context, rec ledger.Income) (ledger.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	rec.ID = s.lastID
	rec.CreatedAt = createdNow(rec.CreatedAt)
	s.incomes[rec.ID] = rec
	return rec, nil
}

func (s *InMemStorage) InsertExpense(_ context.Context, rec ledger.Expense) (ledger.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	rec.ID = s.lastID
	rec.CreatedAt = createdNow(rec.CreatedAt)
	s.expenses[rec.ID] = rec
	return rec, nil
}

func (s *InMemStorage) UpdateIncome(_ context.Context, rec ledger.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.incomes[rec.ID]
	if !ok {
		return errors.Wrap(ErrNotFound, "update income")
	}
	rec.CreatedAt = old.CreatedAt
	s.incomes[rec.ID] = rec
	return nil
}

func (s *InMemStorage) UpdateExpense(_ context.Context, rec ledger.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.expenses[rec.ID]
	if !ok {
		return errors.Wrap(ErrNotFound, "update expense")
	}
	rec.CreatedAt = old.CreatedAt
	s.expenses[rec.ID] = rec
	return nil
}

func (s *InMemStorage) Delete(_ context.Context, kind ledger.Kind, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case ledger.KindIncome:
		if _, ok := s.incomes[id]; ok {
			delete(s.incomes, id)
			return nil
		}
	case ledger.KindExpense:
		if _, ok := s.expenses[id]; ok {
			delete(s.expenses, id)
			return nil
		}
	default:
		return ledger.ErrUnknownKind
	}
	return errors.Wrap(ErrNotFound, "delete "+string(kind))
}

func (s *InMemStorage) Ping(context.Context) error {
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}

type sortKey struct {
	id      int64
	date    ledger.Date
	created time.Time
}

// sortRecords orders like the SQL backend does: by the query column, then by
// id in the same direction. Without an order column records come by id.
func sortRecords[T any](records []T, q Query, key func(T) sortKey) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := key(records[i]), key(records[j])
		var c int
		switch q.OrderBy {
		case OrderByDate:
			c = cmp.Compare(a.date, b.date)
		case OrderByCreated:
			c = a.created.Compare(b.created)
		}
		if c == 0 {
			c = cmp.Compare(a.id, b.id)
		}
		if q.Desc {
			return c > 0
		}
		return c < 0
	})
}

func limit[T any](records []T, n uint64) []T {
	if n > 0 && uint64(len(records)) > n {
		return records[:n]
	}
	return records
}
