package allocator_test

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/allocator/mock"
	"max.ks1230/home-ledger/internal/model/events"
	eventsmock "max.ks1230/home-ledger/internal/model/events/mock"
	"max.ks1230/home-ledger/internal/model/storage"
)

type fixedDay ledger.Date

func (d fixedDay) Today() ledger.Date {
	return ledger.Date(d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seed(t *testing.T, store *storage.InMemStorage) {
	ctx := context.Background()
	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	for i, inc := range []ledger.Income{
		{Date: "2024-03-05", Service: "Tailoring", Amount: dec("300")},
		{Date: "2024-03-05", Service: "Alteration", Amount: dec("200")},
		{Date: "2024-03-04", Service: "Stitching", Amount: dec("999")},
	} {
		inc.CreatedAt = at.Add(time.Duration(i) * time.Minute)
		_, err := store.InsertIncome(ctx, inc)
		require.NoError(t, err)
	}
	_, err := store.InsertExpense(ctx, ledger.Expense{Date: "2024-03-05", PaidTo: "SAI FIN", Amount: dec("100")})
	require.NoError(t, err)
}

func Test_OnGiveToHome_ShouldSpreadTodaysBalance(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	notifier := mock.NewNotifierMock(m)

	store := storage.NewInMemStorage()
	seed(t, store)

	notifier.NotifyDisbursementMock.
		Inspect(func(_ context.Context, d allocator.Disbursement) {
			assert.Equal(m, ledger.Mom, d.Recipient)
			assert.True(m, dec("400").Equal(d.Given))
		}).
		Return(nil)

	service := allocator.NewService(fixedDay("2024-03-05"), store, notifier, nil)
	res, err := service.GiveToHome(ctx, ledger.Mom, decimal.NullDecimal{})

	require.NoError(t, err)
	assert.True(t, dec("400").Equal(res.Given))
	assert.True(t, res.Remaining.IsZero())
	require.Len(t, res.Updates, 2)

	incomes, err := store.SelectIncomes(ctx, storage.ByDate("2024-03-05").Ordered(storage.OrderByID, false))
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(incomes[0].GivenToHome))
	assert.True(t, dec("100").Equal(incomes[1].GivenToHome))
	assert.Equal(t, ledger.Mom, incomes[1].GivenTo)
}

func Test_OnGiveToHome_ExplicitAmountShouldOverrideBalance(t *testing.T) {
	ctx := context.Background()

	store := storage.NewInMemStorage()
	seed(t, store)

	service := allocator.NewService(fixedDay("2024-03-05"), store, nil, nil)
	res, err := service.GiveToHome(ctx, ledger.Dad, decimal.NewNullDecimal(dec("250")))

	require.NoError(t, err)
	assert.True(t, dec("250").Equal(res.Given))
	require.Len(t, res.Updates, 1)
	assert.Equal(t, int64(1), res.Updates[0].IncomeID)
}

func Test_OnGiveToHome_ShouldFailWithoutBalance(t *testing.T) {
	ctx := context.Background()

	store := storage.NewInMemStorage()
	service := allocator.NewService(fixedDay("2024-03-05"), store, nil, nil)

	_, err := service.GiveToHome(ctx, ledger.Mom, decimal.NullDecimal{})

	assert.True(t, errors.Is(err, allocator.ErrNoBalance))
}

func Test_OnGiveToHome_NotifierFailureShouldNotFail(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	notifier := mock.NewNotifierMock(m)
	notifier.NotifyDisbursementMock.Return(errors.New("telegram is down"))

	store := storage.NewInMemStorage()
	seed(t, store)

	service := allocator.NewService(fixedDay("2024-03-05"), store, notifier, nil)
	_, err := service.GiveToHome(ctx, ledger.Dad, decimal.NullDecimal{})

	assert.NoError(t, err)
}

// failingUpdates lets the first ok updates through and rejects the rest.
type failingUpdates struct {
	*storage.InMemStorage
	ok int
}

func (f *failingUpdates) UpdateIncome(ctx context.Context, rec ledger.Income) error {
	if f.ok == 0 {
		return errors.New("connection reset")
	}
	f.ok--
	return f.InMemStorage.UpdateIncome(ctx, rec)
}

func Test_OnGiveToHome_PartialFailureShouldPublishAppliedUpdates(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	publisher := eventsmock.NewPublisherMock(m)
	publisher.PublishMock.
		Inspect(func(_ context.Context, ev events.Event) {
			assert.Equal(m, events.HomeGiven, ev.Kind)
			assert.Equal(m, ledger.Date("2024-03-05"), ev.Date)
			assert.Equal(m, ledger.Mom, ev.Recipient)
			assert.True(m, dec("300").Equal(ev.Amount))
		}).
		Return(nil)

	mem := storage.NewInMemStorage()
	seed(t, mem)
	store := &failingUpdates{InMemStorage: mem, ok: 1}

	service := allocator.NewService(fixedDay("2024-03-05"), store, nil, publisher)
	_, err := service.GiveToHome(ctx, ledger.Mom, decimal.NullDecimal{})
	require.Error(t, err)

	assert.Equal(t, uint64(1), publisher.PublishAfterCounter())
	incomes, err := mem.SelectIncomes(ctx, storage.ByDate("2024-03-05").Ordered(storage.OrderByID, false))
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(incomes[0].GivenToHome))
	assert.True(t, incomes[1].GivenToHome.IsZero())
}

func Test_OnGiveToHome_FirstUpdateFailureShouldPublishNothing(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	publisher := eventsmock.NewPublisherMock(m)

	mem := storage.NewInMemStorage()
	seed(t, mem)

	service := allocator.NewService(fixedDay("2024-03-05"), &failingUpdates{InMemStorage: mem}, nil, publisher)
	_, err := service.GiveToHome(ctx, ledger.Mom, decimal.NullDecimal{})

	require.Error(t, err)
	assert.Zero(t, publisher.PublishAfterCounter())
}

func Test_OnUndoLast_ShouldResetLatestDisbursedIncome(t *testing.T) {
	ctx := context.Background()

	store := storage.NewInMemStorage()
	seed(t, store)

	service := allocator.NewService(fixedDay("2024-03-05"), store, nil, nil)
	_, err := service.GiveToHome(ctx, ledger.Mom, decimal.NullDecimal{})
	require.NoError(t, err)

	res, err := service.UndoLast(ctx)
	require.NoError(t, err)
	assert.True(t, res.Undo)
	assert.True(t, dec("-100").Equal(res.Given))

	incomes, err := store.SelectIncomes(ctx, storage.Query{Disbursed: true})
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, int64(1), incomes[0].ID)

	_, err = service.UndoLast(ctx)
	require.NoError(t, err)
	_, err = service.UndoLast(ctx)
	assert.True(t, errors.Is(err, allocator.ErrNothingToUndo))
}
