package reports

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/home-ledger/internal/model/events"
)

type cacheDeleter interface {
	Delete(key string) error
}

// Invalidator drops cached monthly reports touched by a ledger change. The
// following month is dropped too because it compares against the changed one.
type Invalidator struct {
	cache cacheDeleter
}

func NewInvalidator(cache cacheDeleter) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Publish(_ context.Context, ev events.Event) error {
	if ev.Date.IsZero() {
		return nil
	}
	month := ev.Date.Month()
	for _, key := range []string{MonthlyKey(month), MonthlyKey(month.Next())} {
		if err := i.cache.Delete(key); err != nil {
			return errors.Wrap(err, "invalidate report cache")
		}
	}
	return nil
}
