package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

var hundred = decimal.NewFromInt(100)

type DayBucket struct {
	Date    ledger.Date     `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type MonthBucket struct {
	Month   ledger.Month    `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type Totals struct {
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Balance     decimal.Decimal `json:"balance"`
	GivenToHome decimal.Decimal `json:"given_to_home"`
}

func Total(incomes []ledger.Income, expenses []ledger.Expense) Totals {
	var t Totals
	for _, inc := range incomes {
		t.Income = t.Income.Add(inc.Amount)
		t.GivenToHome = t.GivenToHome.Add(inc.GivenToHome)
	}
	for _, exp := range expenses {
		t.Expense = t.Expense.Add(exp.Amount)
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// BucketByDay returns one bucket for every day from..to, days without records
// included with zero totals. Records outside the range are ignored.
func BucketByDay(incomes []ledger.Income, expenses []ledger.Expense, from, to ledger.Date) []DayBucket {
	if to < from {
		return []DayBucket{}
	}
	buckets := make([]DayBucket, 0)
	index := make(map[ledger.Date]int)
	for d := from; d <= to; d = d.AddDays(1) {
		index[d] = len(buckets)
		buckets = append(buckets, DayBucket{Date: d})
	}

	for _, inc := range incomes {
		if i, ok := index[inc.Date]; ok {
			buckets[i].Income = buckets[i].Income.Add(inc.Amount)
		}
	}
	for _, exp := range expenses {
		if i, ok := index[exp.Date]; ok {
			buckets[i].Expense = buckets[i].Expense.Add(exp.Amount)
		}
	}
	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expense)
	}
	return buckets
}

// NetTrend returns a bucket for each distinct date present in either
// collection, in date order. Days with no records are left out.
func NetTrend(incomes []ledger.Income, expenses []ledger.Expense) []DayBucket {
	byDate := make(map[ledger.Date]*DayBucket)
	bucket := func(d ledger.Date) *DayBucket {
		b, ok := byDate[d]
		if !ok {
			b = &DayBucket{Date: d}
			byDate[d] = b
		}
		return b
	}

	for _, inc := range incomes {
		b := bucket(inc.Date)
		b.Income = b.Income.Add(inc.Amount)
	}
	for _, exp := range expenses {
		b := bucket(exp.Date)
		b.Expense = b.Expense.Add(exp.Amount)
	}

	res := make([]DayBucket, 0, len(byDate))
	for _, b := range byDate {
		b.Net = b.Income.Sub(b.Expense)
		res = append(res, *b)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date < res[j].Date
	})
	return res
}

// BucketByMonth returns one bucket for every month from..to, empty months
// included.
func BucketByMonth(incomes []ledger.Income, expenses []ledger.Expense, from, to ledger.Month) []MonthBucket {
	if to < from {
		return []MonthBucket{}
	}
	buckets := make([]MonthBucket, 0)
	index := make(map[ledger.Month]int)
	for m := from; m <= to; m = m.Next() {
		index[m] = len(buckets)
		buckets = append(buckets, MonthBucket{Month: m})
	}

	for _, inc := range incomes {
		if i, ok := index[inc.Date.Month()]; ok {
			buckets[i].Income = buckets[i].Income.Add(inc.Amount)
		}
	}
	for _, exp := range expenses {
		if i, ok := index[exp.Date.Month()]; ok {
			buckets[i].Expense = buckets[i].Expense.Add(exp.Amount)
		}
	}
	for i := range buckets {
		buckets[i].Net = buckets[i].Income.Sub(buckets[i].Expense)
	}
	return buckets
}

// PercentChange is (current - previous) / previous * 100. A zero previous
// value always yields 100.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Mul(hundred).DivRound(previous, 2)
}
