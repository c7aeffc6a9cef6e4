package ledger

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrBadDate  = errors.New("date must be YYYY-MM-DD")
	ErrBadMonth = errors.New("month must be YYYY-MM")
)

// Date is a calendar day kept in zero-padded ISO form. Every Date produced by
// ParseDate or DateOf has the same width, so string order is calendar order and
// range filters may compare dates lexically.
type Date string

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", errors.Wrapf(ErrBadDate, "parse %q", s)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today is the current day in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Between(from, to Date) bool {
	return d >= from && d <= to
}

func (d Date) Month() Month {
	if len(d) < len(MonthLayout) {
		return ""
	}
	return Month(d[:len(MonthLayout)])
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	}
	return fmt.Errorf("cannot scan %T into ledger.Date", src)
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

// Month is a calendar month in YYYY-MM form.
type Month string

func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return "", errors.Wrapf(ErrBadMonth, "parse %q", s)
	}
	return MonthOf(t), nil
}

func MonthOf(t time.Time) Month {
	return Month(t.Format(MonthLayout))
}

func (m Month) Start() time.Time {
	t, _ := time.Parse(MonthLayout, string(m))
	return t
}

func (m Month) First() Date {
	return DateOf(m.Start())
}

func (m Month) Last() Date {
	return DateOf(now.With(m.Start()).EndOfMonth())
}

func (m Month) Prev() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}

func (m Month) Next() Month {
	return MonthOf(m.Start().AddDate(0, 1, 0))
}

func (m Month) String() string {
	return string(m)
}
