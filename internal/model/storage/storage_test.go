package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

type recordStore interface {
	SelectIncomes(ctx context.Context, q Query) ([]ledger.Income, error)
	SelectExpenses(ctx context.Context, q Query) ([]ledger.Expense, error)
	InsertIncome(ctx context.Context, rec ledger.Income) (ledger.Income, error)
	InsertExpense(ctx context.Context, rec ledger.Expense) (ledger.Expense, error)
	UpdateIncome(ctx context.Context, rec ledger.Income) error
	UpdateExpense(ctx context.Context, rec ledger.Expense) error
	Delete(ctx context.Context, kind ledger.Kind, id int64) error
}

type sqlitePath string

func (p sqlitePath) Path() string {
	return string(p)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSQLite(t *testing.T) *SQLStorage {
	t.Helper()
	cfg := sqlitePath(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, RunMigrations(DriverSQLite, SQLiteDSN(cfg)))

	s, err := NewSQLiteStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func backends(t *testing.T) map[string]recordStore {
	return map[string]recordStore{
		"memory": NewInMemStorage(),
		"sqlite": newSQLite(t),
	}
}

func Test_Storage_ShouldRoundTripIncomes(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 5, 9, 30, 0, 123, time.UTC)

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.InsertIncome(ctx, ledger.Income{
				Date: "2024-03-05", Service: "Tailoring", Amount: dec("300.50"), CreatedAt: created,
			})
			require.NoError(t, err)
			second, err := s.InsertIncome(ctx, ledger.Income{
				Date: "2024-03-05", Service: "Stitching", Amount: dec("200"), CreatedAt: created.Add(time.Hour),
			})
			require.NoError(t, err)
			_, err = s.InsertIncome(ctx, ledger.Income{
				Date: "2024-03-06", Service: "Other day", Amount: dec("5"),
			})
			require.NoError(t, err)
			assert.Greater(t, second.ID, first.ID)

			got, err := s.SelectIncomes(ctx, ByDate("2024-03-05").Ordered(OrderByID, true))
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, second.ID, got[0].ID)
			assert.Equal(t, "Tailoring", got[1].Service)
			assert.True(t, dec("300.50").Equal(got[1].Amount))
			assert.True(t, got[1].GivenToHome.IsZero())
			assert.Equal(t, ledger.NoRecipient, got[1].GivenTo)
			assert.True(t, created.Equal(got[1].CreatedAt))

			first.GivenToHome = dec("100")
			first.GivenTo = ledger.Mom
			require.NoError(t, s.UpdateIncome(ctx, first))

			disbursed, err := s.SelectIncomes(ctx, Query{Disbursed: true})
			require.NoError(t, err)
			require.Len(t, disbursed, 1)
			assert.Equal(t, ledger.Mom, disbursed[0].GivenTo)
			assert.True(t, dec("100").Equal(disbursed[0].GivenToHome))
		})
	}
}

func Test_Storage_ShouldFilterByRangeAndOrderByCreated(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i, d := range []ledger.Date{"2024-01-31", "2024-02-29", "2024-02-01", "2024-03-01"} {
				_, err := s.InsertExpense(ctx, ledger.Expense{
					Date: d, PaidTo: "SAI FIN", Amount: dec("10"), CreatedAt: created.Add(-time.Duration(i) * time.Minute),
				})
				require.NoError(t, err)
			}

			got, err := s.SelectExpenses(ctx, Between("2024-02-01", "2024-02-29").Ordered(OrderByDate, false))
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, ledger.Date("2024-02-01"), got[0].Date)
			assert.Equal(t, ledger.Date("2024-02-29"), got[1].Date)

			byCreated, err := s.SelectExpenses(ctx, Query{OrderBy: OrderByCreated, Limit: 2})
			require.NoError(t, err)
			require.Len(t, byCreated, 2)
			assert.Equal(t, ledger.Date("2024-03-01"), byCreated[0].Date)
			assert.Equal(t, ledger.Date("2024-02-01"), byCreated[1].Date)
		})
	}
}

func Test_Storage_UpdateAndDeleteShouldReportMissingRecords(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			exp, err := s.InsertExpense(ctx, ledger.Expense{Date: "2024-03-05", PaidTo: "Corner shop", Amount: dec("42")})
			require.NoError(t, err)

			exp.Amount = dec("40")
			require.NoError(t, s.UpdateExpense(ctx, exp))

			got, err := s.SelectExpenses(ctx, ByID(exp.ID))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.True(t, dec("40").Equal(got[0].Amount))

			require.NoError(t, s.Delete(ctx, ledger.KindExpense, exp.ID))
			assert.ErrorIs(t, s.Delete(ctx, ledger.KindExpense, exp.ID), ErrNotFound)
			assert.ErrorIs(t, s.UpdateIncome(ctx, ledger.Income{ID: 999, Date: "2024-03-05"}), ErrNotFound)
		})
	}
}

func Test_Storage_ShouldRejectUnknownOrderColumn(t *testing.T) {
	_, err := NewInMemStorage().SelectIncomes(context.Background(), Query{OrderBy: "amount; DROP TABLE income"})
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}

func Test_SQLStorage_ShouldUseDriverPlaceholders(t *testing.T) {
	q := Between("2024-03-01", "2024-03-31")

	for driver, want := range map[string][]string{
		DriverPostgres: {"date >= $1", "date <= $2"},
		DriverSQLite:   {"date >= ?", "date <= ?"},
	} {
		s := newSQLStorage(nil, driver)
		query, args, err := s.filter(s.builder.Select("id").From("income"), q).ToSql()
		require.NoError(t, err, driver)

		for _, part := range want {
			assert.Contains(t, query, part, driver)
		}
		assert.Len(t, args, 2, driver)
	}
}
