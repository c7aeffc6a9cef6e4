package summary

import (
	"github.com/shopspring/decimal"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

// WindowDays is the length of the trailing window, reference day included.
const WindowDays = 7

type Summary struct {
	Date             ledger.Date     `json:"date"`
	WeekStart        ledger.Date     `json:"week_start"`
	DailyIncome      decimal.Decimal `json:"daily_income"`
	DailyExpense     decimal.Decimal `json:"daily_expense"`
	DailyBalance     decimal.Decimal `json:"daily_balance"`
	DailyGivenToHome decimal.Decimal `json:"daily_given_to_home"`
	WeeklyIncome     decimal.Decimal `json:"weekly_income"`
	WeeklyExpense    decimal.Decimal `json:"weekly_expense"`
	WeeklyBalance    decimal.Decimal `json:"weekly_balance"`
}

// Undisbursed is the part of the daily balance not yet given to home.
func (s Summary) Undisbursed() decimal.Decimal {
	return s.DailyBalance.Sub(s.DailyGivenToHome)
}

func WeekStart(ref ledger.Date) ledger.Date {
	return ref.AddDays(-(WindowDays - 1))
}

// Summarize totals the records dated ref and the records in the inclusive
// window ref-6 .. ref. Records outside both are ignored.
func Summarize(incomes []ledger.Income, expenses []ledger.Expense, ref ledger.Date) Summary {
	s := Summary{
		Date:      ref,
		WeekStart: WeekStart(ref),
	}

	for _, inc := range incomes {
		if inc.Date == ref {
			s.DailyIncome = s.DailyIncome.Add(inc.Amount)
			s.DailyGivenToHome = s.DailyGivenToHome.Add(inc.GivenToHome)
		}
		if inc.Date.Between(s.WeekStart, ref) {
			s.WeeklyIncome = s.WeeklyIncome.Add(inc.Amount)
		}
	}
	for _, exp := range expenses {
		if exp.Date == ref {
			s.DailyExpense = s.DailyExpense.Add(exp.Amount)
		}
		if exp.Date.Between(s.WeekStart, ref) {
			s.WeeklyExpense = s.WeeklyExpense.Add(exp.Amount)
		}
	}

	s.DailyBalance = s.DailyIncome.Sub(s.DailyExpense)
	s.WeeklyBalance = s.WeeklyIncome.Sub(s.WeeklyExpense)
	return s
}
