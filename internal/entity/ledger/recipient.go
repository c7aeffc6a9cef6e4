package ledger

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Recipient string

const (
	NoRecipient Recipient = ""
	Mom         Recipient = "Mom"
	Dad         Recipient = "Dad"
)

var Recipients = []Recipient{Mom, Dad}

var ErrUnknownRecipient = errors.New("recipient must be Mom or Dad")

func ParseRecipient(s string) (Recipient, error) {
	s = strings.TrimSpace(s)
	for _, r := range Recipients {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return NoRecipient, errors.Wrapf(ErrUnknownRecipient, "parse %q", s)
}

func (r Recipient) Valid() bool {
	return r == Mom || r == Dad
}

func (r *Recipient) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = NoRecipient
	case string:
		*r = Recipient(v)
	case []byte:
		*r = Recipient(v)
	default:
		return fmt.Errorf("cannot scan %T into ledger.Recipient", src)
	}
	return nil
}

// Value stores an absent recipient as NULL.
func (r Recipient) Value() (driver.Value, error) {
	if r == NoRecipient {
		return nil, nil
	}
	return string(r), nil
}
