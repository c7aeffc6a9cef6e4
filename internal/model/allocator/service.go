package allocator

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/events"
	"max.ks1230/home-ledger/internal/model/storage"
	"max.ks1230/home-ledger/internal/model/summary"
	"max.ks1230/home-ledger/internal/tracing"
)

var givenToHome = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledger",
		Subsystem: "home",
		Name:      "given_total",
		Help:      "Amount handed over to home, by recipient.",
	},
	[]string{"recipient"},
)

type recordStorage interface {
	SelectIncomes(ctx context.Context, q storage.Query) ([]ledger.Income, error)
	SelectExpenses(ctx context.Context, q storage.Query) ([]ledger.Expense, error)
	UpdateIncome(ctx context.Context, rec ledger.Income) error
}

type notifier interface {
	NotifyDisbursement(ctx context.Context, d Disbursement) error
}

type calendar interface {
	Today() ledger.Date
}

// Disbursement is the outcome of a give-to-home or undo operation.
type Disbursement struct {
	Date      ledger.Date      `json:"date"`
	Recipient ledger.Recipient `json:"recipient,omitempty"`
	Given     decimal.Decimal  `json:"given"`
	Remaining decimal.Decimal  `json:"remaining"`
	Updates   []Update         `json:"updates"`
	Undo      bool             `json:"undo,omitempty"`
}

type Service struct {
	calendar  calendar
	storage   recordStorage
	notifier  notifier
	publisher events.Publisher
}

// NewService wires the allocator to storage. notifier and publisher may be nil.
func NewService(calendar calendar, storage recordStorage, notifier notifier, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		calendar:  calendar,
		storage:   storage,
		notifier:  notifier,
		publisher: publisher,
	}
}

// GiveToHome hands today's balance to the recipient. A valid amount overrides
// the balance derived from today's records.
func (s *Service) GiveToHome(ctx context.Context, to ledger.Recipient, amount decimal.NullDecimal) (res Disbursement, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "giveToHome")
	defer tracing.Finish(span, &err)

	today := s.calendar.Today()
	incomes, expenses, err := s.todays(ctx, today)
	if err != nil {
		return Disbursement{}, err
	}

	balance := summary.Summarize(incomes, expenses, today).Undisbursed()
	if amount.Valid {
		balance = amount.Decimal
	}

	alloc, err := Allocate(incomes, today, balance, to)
	if err != nil {
		return Disbursement{}, err
	}
	if applied, err := s.apply(ctx, incomes, alloc.Updates); err != nil {
		if len(applied) > 0 {
			partial := Allocation{Updates: applied}
			logger.Warn("give to home partially applied",
				zap.Int("applied", len(applied)),
				zap.Int("planned", len(alloc.Updates)),
				zap.Error(err))
			s.publish(ctx, events.Event{
				Kind:      events.HomeGiven,
				Table:     ledger.KindIncome,
				Date:      today,
				Amount:    partial.Given(),
				Recipient: to,
			})
		}
		return Disbursement{}, err
	}

	res = Disbursement{
		Date:      today,
		Recipient: to,
		Given:     alloc.Given(),
		Remaining: alloc.Remaining,
		Updates:   alloc.Updates,
	}
	givenToHome.WithLabelValues(string(to)).Add(res.Given.InexactFloat64())
	logger.Info("given to home",
		zap.String("recipient", string(to)),
		zap.String("given", res.Given.String()),
		zap.String("remaining", res.Remaining.String()))

	s.publish(ctx, events.Event{
		Kind:      events.HomeGiven,
		Table:     ledger.KindIncome,
		Date:      today,
		Amount:    res.Given,
		Recipient: to,
	})
	s.notify(ctx, res)
	return res, nil
}

// UndoLast clears the disbursement of the most recently created income that
// has one.
func (s *Service) UndoLast(ctx context.Context) (res Disbursement, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "undoHome")
	defer tracing.Finish(span, &err)

	incomes, err := s.storage.SelectIncomes(ctx, storage.Query{Disbursed: true})
	if err != nil {
		return Disbursement{}, errors.Wrap(err, "select disbursed incomes")
	}

	u, err := Undo(incomes)
	if err != nil {
		return Disbursement{}, err
	}
	rec, _ := Apply(incomes, u)
	if err = s.storage.UpdateIncome(ctx, rec); err != nil {
		return Disbursement{}, errors.Wrap(err, "reset income")
	}

	res = Disbursement{
		Date:      rec.Date,
		Given:     u.Increment,
		Remaining: decimal.Zero,
		Updates:   []Update{u},
		Undo:      true,
	}
	logger.Info("home disbursement undone",
		zap.Int64("income", rec.ID),
		zap.String("amount", u.Increment.Neg().String()))

	s.publish(ctx, events.Event{
		Kind:     events.HomeUndone,
		Table:    ledger.KindIncome,
		RecordID: rec.ID,
		Date:     rec.Date,
		Amount:   u.Increment,
	})
	s.notify(ctx, res)
	return res, nil
}

func (s *Service) todays(ctx context.Context, today ledger.Date) ([]ledger.Income, []ledger.Expense, error) {
	var (
		incomes  []ledger.Income
		expenses []ledger.Expense
	)
	q := storage.ByDate(today)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		incomes, err = s.storage.SelectIncomes(ctx, q)
		return errors.Wrap(err, "select todays incomes")
	})
	eg.Go(func() (err error) {
		expenses, err = s.storage.SelectExpenses(ctx, q)
		return errors.Wrap(err, "select todays expenses")
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}

// apply writes updates in order and returns the ones stored before the first
// failure.
func (s *Service) apply(ctx context.Context, incomes []ledger.Income, updates []Update) ([]Update, error) {
	for i, u := range updates {
		rec, ok := Apply(incomes, u)
		if !ok {
			return updates[:i], errors.Errorf("income %d vanished during allocation", u.IncomeID)
		}
		if err := s.storage.UpdateIncome(ctx, rec); err != nil {
			return updates[:i], errors.Wrapf(err, "update income %d", u.IncomeID)
		}
	}
	return updates, nil
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	ev.At = time.Now().UTC()
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logger.Error("publish event", zap.String("kind", string(ev.Kind)), zap.Error(err))
	}
}

func (s *Service) notify(ctx context.Context, d Disbursement) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyDisbursement(ctx, d); err != nil {
		logger.Error("notify disbursement", zap.Error(err))
	}
}
