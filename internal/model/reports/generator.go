package reports

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/storage"
	"max.ks1230/home-ledger/internal/model/summary"
	"max.ks1230/home-ledger/internal/tracing"
)

// maxRangeDays bounds the day grid of a range report.
const maxRangeDays = 3660

var (
	ErrBadRange      = errors.New("report range is invalid")
	ErrUnknownPeriod = errors.New("report period is not supported")
)

var reportPeriods = map[string]func(today time.Time) time.Time{
	"week":  func(t time.Time) time.Time { return now.With(t).BeginningOfWeek() },
	"month": func(t time.Time) time.Time { return now.With(t).BeginningOfMonth() },
	"year":  func(t time.Time) time.Time { return now.With(t).BeginningOfYear() },
}

type recordStorage interface {
	SelectIncomes(ctx context.Context, q storage.Query) ([]ledger.Income, error)
	SelectExpenses(ctx context.Context, q storage.Query) ([]ledger.Expense, error)
}

type reportCache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

type DailyReport struct {
	Date     ledger.Date      `json:"date"`
	Summary  summary.Summary  `json:"summary"`
	Incomes  []ledger.Income  `json:"incomes"`
	Expenses []ledger.Expense `json:"expenses"`
}

type Changes struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

type MonthlyReport struct {
	Month    ledger.Month     `json:"month"`
	Totals   Totals           `json:"totals"`
	Previous Totals           `json:"previous"`
	Changes  Changes          `json:"changes"`
	Days     []DayBucket      `json:"days"`
	Trend    []DayBucket      `json:"trend"`
	Incomes  []ledger.Income  `json:"incomes"`
	Expenses []ledger.Expense `json:"expenses"`
}

type RangeReport struct {
	From   ledger.Date   `json:"from"`
	To     ledger.Date   `json:"to"`
	Totals Totals        `json:"totals"`
	Days   []DayBucket   `json:"days"`
	Trend  []DayBucket   `json:"trend"`
	Months []MonthBucket `json:"months"`
}

type Generator struct {
	storage recordStorage
	cache   reportCache
}

// NewGenerator builds a report generator. A nil cache disables caching of
// monthly reports.
func NewGenerator(storage recordStorage, cache reportCache) *Generator {
	return &Generator{
		storage: storage,
		cache:   cache,
	}
}

func (g *Generator) Daily(ctx context.Context, date ledger.Date) (report *DailyReport, err error) {
	logger.Info("Daily report - start", zap.String("date", date.String()))
	defer logger.Info("Daily report - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "dailyReport")
	defer tracing.Finish(span, &err)

	q := storage.Between(summary.WeekStart(date), date).Ordered(storage.OrderByID, true)
	incomes, expenses, err := g.fetch(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "daily report")
	}

	report = &DailyReport{
		Date:     date,
		Summary:  summary.Summarize(incomes, expenses, date),
		Incomes:  make([]ledger.Income, 0),
		Expenses: make([]ledger.Expense, 0),
	}
	for _, inc := range incomes {
		if inc.Date == date {
			report.Incomes = append(report.Incomes, inc)
		}
	}
	for _, exp := range expenses {
		if exp.Date == date {
			report.Expenses = append(report.Expenses, exp)
		}
	}
	return report, nil
}

func (g *Generator) Monthly(ctx context.Context, month ledger.Month) (report *MonthlyReport, err error) {
	logger.Info("Monthly report - start", zap.String("month", month.String()))
	defer logger.Info("Monthly report - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "monthlyReport")
	defer tracing.Finish(span, &err)

	key := MonthlyKey(month)
	if cached, ok := g.cachedMonthly(key); ok {
		span.SetTag("cache", "hit")
		return cached, nil
	}

	prev := month.Prev()
	q := storage.Between(prev.First(), month.Last()).Ordered(storage.OrderByDate, false)
	incomes, expenses, err := g.fetch(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "monthly report")
	}

	curIncomes, prevIncomes := splitIncomes(incomes, month)
	curExpenses, prevExpenses := splitExpenses(expenses, month)

	totals := Total(curIncomes, curExpenses)
	previous := Total(prevIncomes, prevExpenses)
	report = &MonthlyReport{
		Month:    month,
		Totals:   totals,
		Previous: previous,
		Changes: Changes{
			Income:  PercentChange(totals.Income, previous.Income),
			Expense: PercentChange(totals.Expense, previous.Expense),
			Balance: PercentChange(totals.Balance, previous.Balance),
		},
		Days:     BucketByDay(curIncomes, curExpenses, month.First(), month.Last()),
		Trend:    NetTrend(curIncomes, curExpenses),
		Incomes:  curIncomes,
		Expenses: curExpenses,
	}

	g.cacheMonthly(key, report)
	return report, nil
}

func (g *Generator) Range(ctx context.Context, from, to ledger.Date) (report *RangeReport, err error) {
	logger.Info("Range report - start", zap.String("from", from.String()), zap.String("to", to.String()))
	defer logger.Info("Range report - end")

	if from.IsZero() || to.IsZero() || to < from || from.AddDays(maxRangeDays) < to {
		return nil, errors.Wrapf(ErrBadRange, "%s .. %s", from, to)
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "rangeReport")
	defer tracing.Finish(span, &err)

	incomes, expenses, err := g.fetch(ctx, storage.Between(from, to).Ordered(storage.OrderByDate, false))
	if err != nil {
		return nil, errors.Wrap(err, "range report")
	}

	return &RangeReport{
		From:   from,
		To:     to,
		Totals: Total(incomes, expenses),
		Days:   BucketByDay(incomes, expenses, from, to),
		Trend:  NetTrend(incomes, expenses),
		Months: BucketByMonth(incomes, expenses, from.Month(), to.Month()),
	}, nil
}

// Period builds a range report from the start of the named period up to today.
func (g *Generator) Period(ctx context.Context, period string, today ledger.Date) (*RangeReport, error) {
	start, ok := reportPeriods[period]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPeriod, "period %q", period)
	}
	return g.Range(ctx, ledger.DateOf(start(today.Time())), today)
}

func ReportPeriods() []string {
	res := make([]string, 0, len(reportPeriods))
	for k := range reportPeriods {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func MonthlyKey(month ledger.Month) string {
	return "monthly:" + month.String()
}

func (g *Generator) fetch(ctx context.Context, q storage.Query) ([]ledger.Income, []ledger.Expense, error) {
	var (
		incomes  []ledger.Income
		expenses []ledger.Expense
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		incomes, err = g.storage.SelectIncomes(ctx, q)
		return errors.Wrap(err, "select incomes")
	})
	eg.Go(func() (err error) {
		expenses, err = g.storage.SelectExpenses(ctx, q)
		return errors.Wrap(err, "select expenses")
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return incomes, expenses, nil
}

func (g *Generator) cachedMonthly(key string) (*MonthlyReport, bool) {
	if g.cache == nil {
		return nil, false
	}
	raw, err := g.cache.Get(key)
	if err != nil {
		logger.Debug("monthly report not cached", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	var report MonthlyReport
	if err = json.Unmarshal(raw, &report); err != nil {
		logger.Warn("broken cached report", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &report, true
}

func (g *Generator) cacheMonthly(key string, report *MonthlyReport) {
	if g.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		logger.Error("marshal report", zap.Error(err))
		return
	}
	if err = g.cache.Set(key, raw); err != nil {
		logger.Error("cache report", zap.String("key", key), zap.Error(err))
	}
}

func splitIncomes(incomes []ledger.Income, month ledger.Month) (cur, prev []ledger.Income) {
	cur, prev = make([]ledger.Income, 0), make([]ledger.Income, 0)
	for _, inc := range incomes {
		if inc.Date.Month() == month {
			cur = append(cur, inc)
		} else {
			prev = append(prev, inc)
		}
	}
	return cur, prev
}

func splitExpenses(expenses []ledger.Expense, month ledger.Month) (cur, prev []ledger.Expense) {
	cur, prev = make([]ledger.Expense, 0), make([]ledger.Expense, 0)
	for _, exp := range expenses {
		if exp.Date.Month() == month {
			cur = append(cur, exp)
		} else {
			prev = append(prev, exp)
		}
	}
	return cur, prev
}
