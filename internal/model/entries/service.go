package entries

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/events"
	"max.ks1230/home-ledger/internal/model/storage"
	"max.ks1230/home-ledger/internal/tracing"
)

var (
	ErrNotConfirmed = errors.New("delete must be confirmed")
	ErrBelowGiven   = errors.New("amount is below what was already given to home")
)

type recordStorage interface {
	SelectIncomes(ctx context.Context, q storage.Query) ([]ledger.Income, error)
	SelectExpenses(ctx context.Context, q storage.Query) ([]ledger.Expense, error)
	InsertIncome(ctx context.Context, rec ledger.Income) (ledger.Income, error)
	InsertExpense(ctx context.Context, rec ledger.Expense) (ledger.Expense, error)
	UpdateIncome(ctx context.Context, rec ledger.Income) error
	UpdateExpense(ctx context.Context, rec ledger.Expense) error
	Delete(ctx context.Context, kind ledger.Kind, id int64) error
}

// Records is what the store holds for a day or a range.
type Records struct {
	Incomes  []ledger.Income  `json:"incomes"`
	Expenses []ledger.Expense `json:"expenses"`
}

type Service struct {
	storage   recordStorage
	publisher events.Publisher
}

func NewService(storage recordStorage, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		storage:   storage,
		publisher: publisher,
	}
}

func (s *Service) AddIncome(ctx context.Context, form IncomeForm) (rec ledger.Income, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addIncome")
	defer tracing.Finish(span, &err)

	rec, err = form.Income()
	if err != nil {
		return ledger.Income{}, err
	}
	rec, err = s.storage.InsertIncome(ctx, rec)
	if err != nil {
		logger.Error("insert income", zap.Error(err))
		return ledger.Income{}, errors.Wrap(err, "add income")
	}

	s.publish(ctx, events.Event{
		Kind:     events.RecordCreated,
		Table:    ledger.KindIncome,
		RecordID: rec.ID,
		Date:     rec.Date,
		Amount:   rec.Amount,
	})
	return rec, nil
}

func (s *Service) AddExpense(ctx context.Context, form ExpenseForm) (rec ledger.Expense, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer tracing.Finish(span, &err)

	rec, err = form.Expense()
	if err != nil {
		return ledger.Expense{}, err
	}
	rec, err = s.storage.InsertExpense(ctx, rec)
	if err != nil {
		logger.Error("insert expense", zap.Error(err))
		return ledger.Expense{}, errors.Wrap(err, "add expense")
	}

	s.publish(ctx, events.Event{
		Kind:     events.RecordCreated,
		Table:    ledger.KindExpense,
		RecordID: rec.ID,
		Date:     rec.Date,
		Amount:   rec.Amount,
	})
	return rec, nil
}

// UpdateAmount rewrites the amount of one record. An income may not drop
// below what has already been given to home from it.
func (s *Service) UpdateAmount(ctx context.Context, kind ledger.Kind, id int64, amount string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "updateAmount")
	defer tracing.Finish(span, &err)

	value, err := ParseAmount(amount)
	if err != nil {
		return err
	}

	var date ledger.Date
	switch kind {
	case ledger.KindIncome:
		rec, err := s.income(ctx, id)
		if err != nil {
			return err
		}
		if value.LessThan(rec.GivenToHome) {
			return errors.Wrapf(ErrBelowGiven, "income %d has %s given", id, rec.GivenToHome)
		}
		rec.Amount = value
		if err = s.storage.UpdateIncome(ctx, rec); err != nil {
			return errors.Wrap(err, "update income")
		}
		date = rec.Date
	case ledger.KindExpense:
		rec, err := s.expense(ctx, id)
		if err != nil {
			return err
		}
		rec.Amount = value
		if err = s.storage.UpdateExpense(ctx, rec); err != nil {
			return errors.Wrap(err, "update expense")
		}
		date = rec.Date
	default:
		return ledger.ErrUnknownKind
	}

	s.publish(ctx, events.Event{
		Kind:     events.RecordUpdated,
		Table:    kind,
		RecordID: id,
		Date:     date,
		Amount:   value,
	})
	return nil
}

// Delete removes one record. Nothing happens unless confirmed is set.
func (s *Service) Delete(ctx context.Context, kind ledger.Kind, id int64, confirmed bool) (err error) {
	if !confirmed {
		return ErrNotConfirmed
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteRecord")
	defer tracing.Finish(span, &err)

	var (
		date   ledger.Date
		amount decimal.Decimal
	)
	switch kind {
	case ledger.KindIncome:
		rec, err := s.income(ctx, id)
		if err != nil {
			return err
		}
		date, amount = rec.Date, rec.Amount
	case ledger.KindExpense:
		rec, err := s.expense(ctx, id)
		if err != nil {
			return err
		}
		date, amount = rec.Date, rec.Amount
	default:
		return ledger.ErrUnknownKind
	}

	if err = s.storage.Delete(ctx, kind, id); err != nil {
		return errors.Wrapf(err, "delete %s", kind)
	}

	s.publish(ctx, events.Event{
		Kind:     events.RecordDeleted,
		Table:    kind,
		RecordID: id,
		Date:     date,
		Amount:   amount,
	})
	return nil
}

// Day returns the records of one day, newest first.
func (s *Service) Day(ctx context.Context, date ledger.Date) (Records, error) {
	return s.fetch(ctx, storage.ByDate(date).Ordered(storage.OrderByID, true))
}

// Range returns the records dated from..to inclusive in date order.
func (s *Service) Range(ctx context.Context, from, to ledger.Date) (Records, error) {
	return s.fetch(ctx, storage.Between(from, to).Ordered(storage.OrderByDate, false))
}

func (s *Service) fetch(ctx context.Context, q storage.Query) (Records, error) {
	var res Records

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		res.Incomes, err = s.storage.SelectIncomes(ctx, q)
		return errors.Wrap(err, "select incomes")
	})
	eg.Go(func() (err error) {
		res.Expenses, err = s.storage.SelectExpenses(ctx, q)
		return errors.Wrap(err, "select expenses")
	})
	if err := eg.Wait(); err != nil {
		return Records{}, err
	}
	return res, nil
}

func (s *Service) income(ctx context.Context, id int64) (ledger.Income, error) {
	found, err := s.storage.SelectIncomes(ctx, storage.ByID(id))
	if err != nil {
		return ledger.Income{}, errors.Wrap(err, "select income")
	}
	if len(found) == 0 {
		return ledger.Income{}, errors.Wrapf(storage.ErrNotFound, "income %d", id)
	}
	return found[0], nil
}

func (s *Service) expense(ctx context.Context, id int64) (ledger.Expense, error) {
	found, err := s.storage.SelectExpenses(ctx, storage.ByID(id))
	if err != nil {
		return ledger.Expense{}, errors.Wrap(err, "select expense")
	}
	if len(found) == 0 {
		return ledger.Expense{}, errors.Wrapf(storage.ErrNotFound, "expense %d", id)
	}
	return found[0], nil
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	ev.At = time.Now().UTC()
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logger.Error("publish event", zap.String("kind", string(ev.Kind)), zap.Error(err))
	}
}
