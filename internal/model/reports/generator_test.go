package reports

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/events"
	"max.ks1230/home-ledger/internal/model/reports/mock"
	"max.ks1230/home-ledger/internal/model/storage"
)

func Test_OnDailyReport_ShouldSummarizeDayAndWeek(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.
		SelectIncomesMock.
		Inspect(func(_ context.Context, q storage.Query) {
			assert.Equal(m, ledger.Date("2024-02-28"), q.From)
			assert.Equal(m, ledger.Date("2024-03-05"), q.To)
			assert.Equal(m, storage.OrderByID, q.OrderBy)
			assert.True(m, q.Desc)
		}).
		Return([]ledger.Income{
			{ID: 3, Date: "2024-03-05", Service: "Tailoring", Amount: dec("300")},
			{ID: 1, Date: "2024-03-01", Service: "Stitching", Amount: dec("200")},
		}, nil).
		SelectExpensesMock.
		Return([]ledger.Expense{
			{ID: 2, Date: "2024-03-05", PaidTo: "SAI FIN", Amount: dec("120")},
		}, nil)

	generator := NewGenerator(store, nil)
	report, err := generator.Daily(ctx, "2024-03-05")

	require.NoError(m, err)
	assert.True(m, dec("300").Equal(report.Summary.DailyIncome))
	assert.True(m, dec("120").Equal(report.Summary.DailyExpense))
	assert.True(m, dec("180").Equal(report.Summary.DailyBalance))
	assert.True(m, dec("380").Equal(report.Summary.WeeklyBalance))
	require.Len(m, report.Incomes, 1)
	assert.Equal(m, int64(3), report.Incomes[0].ID)
	require.Len(m, report.Expenses, 1)
}

func Test_OnMonthlyReport_ShouldCompareWithPreviousMonthAndCache(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)
	cache := mock.NewReportCacheMock(m)

	store.
		SelectIncomesMock.
		Inspect(func(_ context.Context, q storage.Query) {
			assert.Equal(m, ledger.Date("2024-01-01"), q.From)
			assert.Equal(m, ledger.Date("2024-02-29"), q.To)
			assert.Equal(m, storage.OrderByDate, q.OrderBy)
		}).
		Return([]ledger.Income{
			{ID: 1, Date: "2024-01-10", Amount: dec("100")},
			{ID: 2, Date: "2024-02-01", Amount: dec("100")},
			{ID: 3, Date: "2024-02-03", Amount: dec("50")},
		}, nil).
		SelectExpensesMock.
		Return([]ledger.Expense{
			{ID: 4, Date: "2024-02-03", Amount: dec("30")},
		}, nil)

	cache.GetMock.Expect("monthly:2024-02").Return(nil, errors.New("cache miss"))
	cache.SetMock.
		Inspect(func(key string, value []byte) {
			assert.Equal(m, "monthly:2024-02", key)
			var cached MonthlyReport
			assert.NoError(m, json.Unmarshal(value, &cached))
			assert.Equal(m, ledger.Month("2024-02"), cached.Month)
		}).
		Return(nil)

	generator := NewGenerator(store, cache)
	report, err := generator.Monthly(ctx, "2024-02")

	require.NoError(m, err)
	assert.True(m, dec("150").Equal(report.Totals.Income))
	assert.True(m, dec("100").Equal(report.Previous.Income))
	assert.True(m, dec("50").Equal(report.Changes.Income))
	assert.True(m, dec("100").Equal(report.Changes.Expense))
	assert.Len(m, report.Days, 29)
	assert.Len(m, report.Trend, 2)
	assert.Len(m, report.Incomes, 2)
}

func Test_OnMonthlyReport_ShouldServeFromCache(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)
	cache := mock.NewReportCacheMock(m)

	raw, err := json.Marshal(MonthlyReport{Month: "2024-02", Totals: Totals{Income: dec("42")}})
	require.NoError(t, err)
	cache.GetMock.Expect("monthly:2024-02").Return(raw, nil)

	generator := NewGenerator(store, cache)
	report, err := generator.Monthly(ctx, "2024-02")

	require.NoError(m, err)
	assert.True(m, dec("42").Equal(report.Totals.Income))
}

func Test_OnRangeReport_ShouldPropagateStoreErrors(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.
		SelectIncomesMock.Return(nil, errors.New("connection refused")).
		SelectExpensesMock.Return([]ledger.Expense{}, nil)

	generator := NewGenerator(store, nil)
	_, err := generator.Range(ctx, "2024-01-01", "2024-01-31")

	assert.ErrorContains(m, err, "connection refused")
}

func Test_OnRangeReport_ShouldRejectInvertedRange(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	generator := NewGenerator(mock.NewRecordStorageMock(m), nil)
	_, err := generator.Range(context.Background(), "2024-02-01", "2024-01-31")

	assert.ErrorIs(m, err, ErrBadRange)
}

func Test_OnPeriodReport_ShouldStartAtBeginningOfMonth(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.
		SelectIncomesMock.
		Inspect(func(_ context.Context, q storage.Query) {
			assert.Equal(m, ledger.Date("2024-03-01"), q.From)
			assert.Equal(m, ledger.Date("2024-03-05"), q.To)
		}).
		Return([]ledger.Income{{Date: "2024-03-02", Amount: dec("10")}}, nil).
		SelectExpensesMock.
		Return([]ledger.Expense{}, nil)

	generator := NewGenerator(store, nil)
	report, err := generator.Period(ctx, "month", "2024-03-05")

	require.NoError(m, err)
	assert.Len(m, report.Days, 5)
	assert.Len(m, report.Months, 1)
	assert.True(m, dec("10").Equal(report.Totals.Balance))

	_, err = generator.Period(ctx, "decade", "2024-03-05")
	assert.ErrorIs(m, err, ErrUnknownPeriod)
}

type deletedKeys []string

func (d *deletedKeys) Delete(key string) error {
	*d = append(*d, key)
	return nil
}

func Test_Invalidator_ShouldDropChangedAndFollowingMonth(t *testing.T) {
	var deleted deletedKeys

	err := NewInvalidator(&deleted).Publish(context.Background(), events.Event{Date: "2023-12-15"})

	require.NoError(t, err)
	assert.Equal(t, deletedKeys{"monthly:2023-12", "monthly:2024-01"}, deleted)
}
