package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_Summarize_ShouldComputeDailyTotals(t *testing.T) {
	incomes := []ledger.Income{{ID: 1, Date: "2024-03-05", Service: "Tailoring", Amount: dec("300")}}
	expenses := []ledger.Expense{{ID: 1, Date: "2024-03-05", PaidTo: "SAI FIN", Amount: dec("120")}}

	s := Summarize(incomes, expenses, "2024-03-05")

	assert.True(t, dec("300").Equal(s.DailyIncome))
	assert.True(t, dec("120").Equal(s.DailyExpense))
	assert.True(t, dec("180").Equal(s.DailyBalance))
	assert.True(t, dec("180").Equal(s.WeeklyBalance))
}

func Test_Summarize_ShouldReturnZerosWithoutMatches(t *testing.T) {
	incomes := []ledger.Income{{Date: "2024-01-01", Amount: dec("50")}}

	s := Summarize(incomes, nil, "2024-03-05")

	assert.True(t, s.DailyIncome.IsZero())
	assert.True(t, s.DailyExpense.IsZero())
	assert.True(t, s.DailyBalance.IsZero())
	assert.True(t, s.WeeklyIncome.IsZero())
}

func Test_Summarize_WeeklyWindowShouldCrossYearBoundary(t *testing.T) {
	incomes := []ledger.Income{
		{Date: "2023-12-26", Amount: dec("1")},
		{Date: "2023-12-27", Amount: dec("10")},
		{Date: "2023-12-31", Amount: dec("100")},
		{Date: "2024-01-02", Amount: dec("1000")},
		{Date: "2024-01-03", Amount: dec("10000")},
	}
	expenses := []ledger.Expense{
		{Date: "2023-12-27", Amount: dec("5")},
		{Date: "2023-12-26", Amount: dec("7")},
	}

	s := Summarize(incomes, expenses, "2024-01-02")

	assert.Equal(t, ledger.Date("2023-12-27"), s.WeekStart)
	assert.True(t, dec("1110").Equal(s.WeeklyIncome))
	assert.True(t, dec("5").Equal(s.WeeklyExpense))
	assert.True(t, dec("1105").Equal(s.WeeklyBalance))
	assert.True(t, dec("1000").Equal(s.DailyIncome))
}

func Test_Undisbursed_ShouldSubtractGivenToHome(t *testing.T) {
	incomes := []ledger.Income{
		{Date: "2024-03-05", Amount: dec("300"), GivenToHome: dec("100"), GivenTo: ledger.Mom},
		{Date: "2024-03-05", Amount: dec("200")},
	}
	expenses := []ledger.Expense{{Date: "2024-03-05", Amount: dec("50")}}

	s := Summarize(incomes, expenses, "2024-03-05")

	assert.True(t, dec("450").Equal(s.DailyBalance))
	assert.True(t, dec("100").Equal(s.DailyGivenToHome))
	assert.True(t, dec("350").Equal(s.Undisbursed()))
}
