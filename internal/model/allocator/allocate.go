package allocator

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

var (
	ErrNoBalance     = errors.New("no balance available")
	ErrNothingToUndo = errors.New("nothing given to home yet")
)

// Update is the new disbursement state of one income record.
type Update struct {
	IncomeID    int64            `json:"income_id"`
	GivenToHome decimal.Decimal  `json:"given_to_home"`
	GivenTo     ledger.Recipient `json:"given_to,omitempty"`
	Increment   decimal.Decimal  `json:"increment"`
}

type Allocation struct {
	Updates   []Update        `json:"updates"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Given is the total handed out by this allocation.
func (a Allocation) Given() decimal.Decimal {
	total := decimal.Zero
	for _, u := range a.Updates {
		total = total.Add(u.Increment)
	}
	return total
}

// Allocate spreads balance over incomes dated today, oldest first. Each income
// takes at most what is still available on it; the walk stops once the balance
// is used up.
func Allocate(incomes []ledger.Income, today ledger.Date, balance decimal.Decimal, to ledger.Recipient) (Allocation, error) {
	if !balance.IsPositive() {
		return Allocation{}, ErrNoBalance
	}
	if !to.Valid() {
		return Allocation{}, ledger.ErrUnknownRecipient
	}

	todays := make([]ledger.Income, 0, len(incomes))
	for _, inc := range incomes {
		if inc.Date == today {
			todays = append(todays, inc)
		}
	}
	sort.SliceStable(todays, func(i, j int) bool {
		if todays[i].CreatedAt.Equal(todays[j].CreatedAt) {
			return todays[i].ID < todays[j].ID
		}
		return todays[i].CreatedAt.Before(todays[j].CreatedAt)
	})

	res := Allocation{Remaining: balance}
	for _, inc := range todays {
		if !res.Remaining.IsPositive() {
			break
		}
		available := inc.Available()
		if !available.IsPositive() {
			continue
		}
		share := decimal.Min(available, res.Remaining)
		res.Updates = append(res.Updates, Update{
			IncomeID:    inc.ID,
			GivenToHome: inc.GivenToHome.Add(share),
			GivenTo:     to,
			Increment:   share,
		})
		res.Remaining = res.Remaining.Sub(share)
	}
	return res, nil
}

// Undo resets the most recently created income that has something given to
// home. Only that one record changes.
func Undo(incomes []ledger.Income) (Update, error) {
	var (
		last  ledger.Income
		found bool
	)
	for _, inc := range incomes {
		if !inc.Disbursed() {
			continue
		}
		if !found || inc.CreatedAt.After(last.CreatedAt) ||
			(inc.CreatedAt.Equal(last.CreatedAt) && inc.ID > last.ID) {
			last = inc
			found = true
		}
	}
	if !found {
		return Update{}, ErrNothingToUndo
	}
	return Update{
		IncomeID:    last.ID,
		GivenToHome: decimal.Zero,
		GivenTo:     ledger.NoRecipient,
		Increment:   last.GivenToHome.Neg(),
	}, nil
}

// Apply returns the income with id u.IncomeID carrying the update.
func Apply(incomes []ledger.Income, u Update) (ledger.Income, bool) {
	for _, inc := range incomes {
		if inc.ID == u.IncomeID {
			inc.GivenToHome = u.GivenToHome
			inc.GivenTo = u.GivenTo
			return inc, true
		}
	}
	return ledger.Income{}, false
}
