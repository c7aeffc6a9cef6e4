package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_BucketByDay_ShouldIncludeEmptyDays(t *testing.T) {
	incomes := []ledger.Income{
		{Date: "2024-03-01", Amount: dec("100")},
		{Date: "2024-03-03", Amount: dec("50")},
		{Date: "2024-03-09", Amount: dec("999")},
	}
	expenses := []ledger.Expense{{Date: "2024-03-03", Amount: dec("80")}}

	got := BucketByDay(incomes, expenses, "2024-03-01", "2024-03-04")

	require.Len(t, got, 4)
	assert.Equal(t, ledger.Date("2024-03-01"), got[0].Date)
	assert.True(t, dec("100").Equal(got[0].Net))
	assert.Equal(t, ledger.Date("2024-03-02"), got[1].Date)
	assert.True(t, got[1].Income.IsZero())
	assert.True(t, got[1].Net.IsZero())
	assert.True(t, dec("-30").Equal(got[2].Net))
	assert.Equal(t, ledger.Date("2024-03-04"), got[3].Date)
}

func Test_NetTrend_ShouldOnlyKeepDaysWithRecords(t *testing.T) {
	incomes := []ledger.Income{
		{Date: "2024-03-03", Amount: dec("100")},
		{Date: "2024-03-01", Amount: dec("40")},
	}
	expenses := []ledger.Expense{{Date: "2024-03-03", Amount: dec("30")}}

	got := NetTrend(incomes, expenses)

	require.Len(t, got, 2)
	assert.Equal(t, ledger.Date("2024-03-01"), got[0].Date)
	assert.True(t, dec("40").Equal(got[0].Net))
	assert.Equal(t, ledger.Date("2024-03-03"), got[1].Date)
	assert.True(t, dec("70").Equal(got[1].Net))
}

func Test_BucketByMonth_ShouldCoverEveryMonth(t *testing.T) {
	incomes := []ledger.Income{
		{Date: "2023-12-31", Amount: dec("10")},
		{Date: "2024-02-29", Amount: dec("20")},
	}
	expenses := []ledger.Expense{{Date: "2024-02-01", Amount: dec("5")}}

	got := BucketByMonth(incomes, expenses, "2023-12", "2024-02")

	require.Len(t, got, 3)
	assert.Equal(t, ledger.Month("2023-12"), got[0].Month)
	assert.True(t, dec("10").Equal(got[0].Income))
	assert.Equal(t, ledger.Month("2024-01"), got[1].Month)
	assert.True(t, got[1].Net.IsZero())
	assert.True(t, dec("15").Equal(got[2].Net))
}

func Test_PercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"zero over zero", "0", "0", "100"},
		{"growth from zero", "250", "0", "100"},
		{"drop from zero", "-40", "0", "100"},
		{"half again", "150", "100", "50"},
		{"fell by a quarter", "75", "100", "-25"},
		{"thirds are rounded", "400", "300", "33.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(dec(tt.current), dec(tt.previous))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func Test_Total_ShouldSumCollections(t *testing.T) {
	incomes := []ledger.Income{
		{Amount: dec("300"), GivenToHome: dec("100")},
		{Amount: dec("20.50")},
	}
	expenses := []ledger.Expense{{Amount: dec("120")}}

	got := Total(incomes, expenses)

	assert.True(t, dec("320.50").Equal(got.Income))
	assert.True(t, dec("120").Equal(got.Expense))
	assert.True(t, dec("200.50").Equal(got.Balance))
	assert.True(t, dec("100").Equal(got.GivenToHome))
}
