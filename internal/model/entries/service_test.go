package entries

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/customerr"
	"max.ks1230/home-ledger/internal/model/entries/mock"
	"max.ks1230/home-ledger/internal/model/events"
	eventsmock "max.ks1230/home-ledger/internal/model/events/mock"
	"max.ks1230/home-ledger/internal/model/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnAddIncome_ShouldInsertAndPublish(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)
	publisher := eventsmock.NewPublisherMock(m)

	store.InsertIncomeMock.
		Inspect(func(_ context.Context, rec ledger.Income) {
			assert.Equal(m, ledger.Date("2024-03-05"), rec.Date)
			assert.Equal(m, "Tailoring", rec.Service)
			assert.True(m, dec("300.5").Equal(rec.Amount))
			assert.True(m, rec.GivenToHome.IsZero())
		}).
		Set(func(_ context.Context, rec ledger.Income) (ledger.Income, error) {
			rec.ID = 7
			return rec, nil
		})
	publisher.PublishMock.
		Inspect(func(_ context.Context, ev events.Event) {
			assert.Equal(m, events.RecordCreated, ev.Kind)
			assert.Equal(m, ledger.KindIncome, ev.Table)
			assert.Equal(m, int64(7), ev.RecordID)
		}).
		Return(nil)

	service := NewService(store, publisher)
	rec, err := service.AddIncome(ctx, IncomeForm{Date: "2024-03-05", Service: " Tailoring ", Amount: "300.50"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
}

func Test_OnAddIncome_IncompleteFormShouldWriteNothing(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	service := NewService(store, nil)
	forms := []IncomeForm{
		{Service: "Tailoring", Amount: "300"},
		{Date: "2024-03-05", Amount: "300"},
		{Date: "2024-03-05", Service: "Tailoring"},
		{Date: "2024-03-05", Service: "Tailoring", Amount: "three hundred"},
		{Date: "2024-3-5x", Service: "Tailoring", Amount: "300"},
		{Date: "2024-03-05", Service: "Tailoring", Amount: "-1"},
	}
	for _, form := range forms {
		_, err := service.AddIncome(ctx, form)
		assert.True(t, errors.Is(err, ErrIncomplete), "%+v", form)
	}
}

func Test_OnAddExpense_StoreFailureShouldKeepMessage(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	storeErr := customerr.Store("insert expense", &pq.Error{Message: "relation \"expense\" does not exist"})
	store.InsertExpenseMock.Return(ledger.Expense{}, storeErr)

	service := NewService(store, nil)
	_, err := service.AddExpense(ctx, ExpenseForm{Date: "2024-03-05", PaidTo: "SAI FIN", Amount: "120"})

	var se *customerr.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "pq: relation \"expense\" does not exist", se.Error())
}

func Test_OnAddExpense_OthersShouldStoreCustomPayee(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.InsertExpenseMock.
		Inspect(func(_ context.Context, rec ledger.Expense) {
			assert.Equal(m, "Ravi", rec.PaidTo)
		}).
		Return(ledger.Expense{ID: 1}, nil)

	service := NewService(store, nil)
	_, err := service.AddExpense(ctx, ExpenseForm{
		Date: "2024-03-05", PaidTo: ledger.PayeeOthers, CustomPaidTo: "Ravi", Amount: "50",
	})
	require.NoError(t, err)

	_, err = service.AddExpense(ctx, ExpenseForm{Date: "2024-03-05", PaidTo: ledger.PayeeOthers, Amount: "50"})
	assert.True(t, errors.Is(err, ErrIncomplete))
}

func Test_OnUpdateAmount_ShouldRejectAmountBelowGiven(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.SelectIncomesMock.
		Inspect(func(_ context.Context, q storage.Query) {
			assert.Equal(m, int64(3), q.ID)
		}).
		Return([]ledger.Income{{ID: 3, Date: "2024-03-05", Amount: dec("500"), GivenToHome: dec("200")}}, nil)

	service := NewService(store, nil)
	err := service.UpdateAmount(ctx, ledger.KindIncome, 3, "150")

	assert.True(t, errors.Is(err, ErrBelowGiven))
}

func Test_OnUpdateAmount_ShouldRewriteWholeRecord(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	store.SelectExpensesMock.
		Return([]ledger.Expense{{ID: 4, Date: "2024-03-05", PaidTo: "SAI FIN", Amount: dec("120")}}, nil).
		UpdateExpenseMock.
		Inspect(func(_ context.Context, rec ledger.Expense) {
			assert.Equal(m, int64(4), rec.ID)
			assert.Equal(m, "SAI FIN", rec.PaidTo)
			assert.True(m, dec("99.99").Equal(rec.Amount))
		}).
		Return(nil)

	service := NewService(store, nil)
	err := service.UpdateAmount(ctx, ledger.KindExpense, 4, "99.99")

	assert.NoError(t, err)
}

func Test_OnUpdateAmount_MissingRecordShouldBeNotFound(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)
	store.SelectIncomesMock.Return([]ledger.Income{}, nil)

	service := NewService(store, nil)
	err := service.UpdateAmount(ctx, ledger.KindIncome, 42, "10")

	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func Test_OnDelete_ShouldRequireConfirmation(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)

	service := NewService(store, nil)
	err := service.Delete(ctx, ledger.KindIncome, 1, false)

	assert.True(t, errors.Is(err, ErrNotConfirmed))
}

func Test_OnDelete_ShouldRemoveAndPublishDate(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewRecordStorageMock(m)
	publisher := eventsmock.NewPublisherMock(m)

	store.SelectExpensesMock.
		Return([]ledger.Expense{{ID: 4, Date: "2024-02-29", Amount: dec("120")}}, nil).
		DeleteMock.
		Inspect(func(_ context.Context, kind ledger.Kind, id int64) {
			assert.Equal(m, ledger.KindExpense, kind)
			assert.Equal(m, int64(4), id)
		}).
		Return(nil)
	publisher.PublishMock.
		Inspect(func(_ context.Context, ev events.Event) {
			assert.Equal(m, events.RecordDeleted, ev.Kind)
			assert.Equal(m, ledger.Date("2024-02-29"), ev.Date)
		}).
		Return(errors.New("broker is down"))

	service := NewService(store, publisher)
	err := service.Delete(ctx, ledger.KindExpense, 4, true)

	assert.NoError(t, err)
}

func Test_OnRange_ShouldFetchInDateOrder(t *testing.T) {
	ctx := context.Background()

	store := storage.NewInMemStorage()
	service := NewService(store, nil)
	for _, d := range []string{"2024-03-03", "2024-03-01", "2024-03-09"} {
		_, err := service.AddIncome(ctx, IncomeForm{Date: d, Service: "Tailoring", Amount: "10"})
		require.NoError(t, err)
	}

	res, err := service.Range(ctx, "2024-03-01", "2024-03-05")

	require.NoError(t, err)
	require.Len(t, res.Incomes, 2)
	assert.Equal(t, ledger.Date("2024-03-01"), res.Incomes[0].Date)
	assert.Equal(t, ledger.Date("2024-03-03"), res.Incomes[1].Date)
	assert.Empty(t, res.Expenses)
}
