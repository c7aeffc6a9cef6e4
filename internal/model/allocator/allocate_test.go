package allocator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

var base = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_Allocate_SingleIncomeShouldTakeWholeBalance(t *testing.T) {
	incomes := []ledger.Income{{ID: 1, Date: "2024-03-05", Amount: dec("500"), CreatedAt: base}}

	alloc, err := Allocate(incomes, "2024-03-05", dec("500"), ledger.Mom)

	require.NoError(t, err)
	require.Len(t, alloc.Updates, 1)
	assert.Equal(t, int64(1), alloc.Updates[0].IncomeID)
	assert.True(t, dec("500").Equal(alloc.Updates[0].GivenToHome))
	assert.Equal(t, ledger.Mom, alloc.Updates[0].GivenTo)
	assert.True(t, alloc.Remaining.IsZero())
}

func Test_Allocate_ShouldFillOldestIncomeFirst(t *testing.T) {
	incomes := []ledger.Income{
		{ID: 2, Date: "2024-03-05", Amount: dec("400"), CreatedAt: base.Add(time.Hour)},
		{ID: 1, Date: "2024-03-05", Amount: dec("300"), GivenToHome: dec("100"), CreatedAt: base},
		{ID: 3, Date: "2024-03-04", Amount: dec("900"), CreatedAt: base.Add(-24 * time.Hour)},
	}

	alloc, err := Allocate(incomes, "2024-03-05", dec("350"), ledger.Dad)

	require.NoError(t, err)
	require.Len(t, alloc.Updates, 2)

	assert.Equal(t, int64(1), alloc.Updates[0].IncomeID)
	assert.True(t, dec("200").Equal(alloc.Updates[0].Increment))
	assert.True(t, dec("300").Equal(alloc.Updates[0].GivenToHome))

	assert.Equal(t, int64(2), alloc.Updates[1].IncomeID)
	assert.True(t, dec("150").Equal(alloc.Updates[1].Increment))
	assert.True(t, dec("150").Equal(alloc.Updates[1].GivenToHome))

	assert.True(t, alloc.Remaining.IsZero())
	assert.True(t, dec("350").Equal(alloc.Given()))
}

func Test_Allocate_ShouldNeverExceedBalanceOrAvailable(t *testing.T) {
	incomes := []ledger.Income{
		{ID: 1, Date: "2024-03-05", Amount: dec("100"), GivenToHome: dec("100"), CreatedAt: base},
		{ID: 2, Date: "2024-03-05", Amount: dec("70.50"), CreatedAt: base.Add(time.Minute)},
		{ID: 3, Date: "2024-03-05", Amount: dec("20"), CreatedAt: base.Add(2 * time.Minute)},
	}

	alloc, err := Allocate(incomes, "2024-03-05", dec("1000"), ledger.Mom)

	require.NoError(t, err)
	assert.True(t, alloc.Given().LessThanOrEqual(dec("1000")))
	byID := map[int64]ledger.Income{}
	for _, inc := range incomes {
		byID[inc.ID] = inc
	}
	for _, u := range alloc.Updates {
		assert.True(t, u.Increment.LessThanOrEqual(byID[u.IncomeID].Available()))
		assert.True(t, u.GivenToHome.LessThanOrEqual(byID[u.IncomeID].Amount))
	}
	assert.True(t, dec("909.50").Equal(alloc.Remaining))
	assert.Len(t, alloc.Updates, 2)
}

func Test_Allocate_ShouldRejectNonPositiveBalance(t *testing.T) {
	incomes := []ledger.Income{{ID: 1, Date: "2024-03-05", Amount: dec("500"), CreatedAt: base}}

	_, err := Allocate(incomes, "2024-03-05", decimal.Zero, ledger.Mom)
	assert.ErrorIs(t, err, ErrNoBalance)
	assert.Equal(t, "no balance available", err.Error())

	_, err = Allocate(incomes, "2024-03-05", dec("-5"), ledger.Mom)
	assert.ErrorIs(t, err, ErrNoBalance)
}

func Test_Allocate_ShouldRejectUnknownRecipient(t *testing.T) {
	_, err := Allocate(nil, "2024-03-05", dec("5"), ledger.NoRecipient)
	assert.ErrorIs(t, err, ledger.ErrUnknownRecipient)
}

func Test_Undo_ShouldResetOnlyLatestDisbursedIncome(t *testing.T) {
	incomes := []ledger.Income{
		{ID: 1, Date: "2024-03-04", Amount: dec("100"), GivenToHome: dec("100"), GivenTo: ledger.Mom, CreatedAt: base},
		{ID: 2, Date: "2024-03-05", Amount: dec("100"), GivenToHome: dec("40"), GivenTo: ledger.Dad, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Date: "2024-03-05", Amount: dec("100"), CreatedAt: base.Add(2 * time.Hour)},
	}

	u, err := Undo(incomes)

	require.NoError(t, err)
	assert.Equal(t, int64(2), u.IncomeID)
	assert.True(t, u.GivenToHome.IsZero())
	assert.Equal(t, ledger.NoRecipient, u.GivenTo)
	assert.True(t, dec("-40").Equal(u.Increment))

	rec, ok := Apply(incomes, u)
	require.True(t, ok)
	assert.True(t, rec.GivenToHome.IsZero())
	assert.True(t, dec("100").Equal(rec.Amount))
}

func Test_Undo_ShouldBreakTiesByID(t *testing.T) {
	incomes := []ledger.Income{
		{ID: 7, Amount: dec("10"), GivenToHome: dec("10"), CreatedAt: base},
		{ID: 9, Amount: dec("10"), GivenToHome: dec("5"), CreatedAt: base},
	}

	u, err := Undo(incomes)

	require.NoError(t, err)
	assert.Equal(t, int64(9), u.IncomeID)
}

func Test_Undo_ShouldFailWithoutDisbursedIncome(t *testing.T) {
	_, err := Undo([]ledger.Income{{ID: 1, Amount: dec("10")}})
	assert.ErrorIs(t, err, ErrNothingToUndo)
}
