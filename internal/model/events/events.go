package events

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"max.ks1230/home-ledger/internal/entity/ledger"
)

type Kind string

const (
	RecordCreated Kind = "record.created"
	RecordUpdated Kind = "record.updated"
	RecordDeleted Kind = "record.deleted"
	HomeGiven     Kind = "home.given"
	HomeUndone    Kind = "home.undone"
)

// Event describes one change to the ledger.
type Event struct {
	Kind      Kind             `json:"kind"`
	Table     ledger.Kind      `json:"table,omitempty"`
	RecordID  int64            `json:"record_id,omitempty"`
	Date      ledger.Date      `json:"date,omitempty"`
	Amount    decimal.Decimal  `json:"amount"`
	Recipient ledger.Recipient `json:"recipient,omitempty"`
	At        time.Time        `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Marshal encodes the event as a protobuf Struct.
func (e Event) Marshal() ([]byte, error) {
	st, err := structpb.NewStruct(map[string]interface{}{
		"kind":      string(e.Kind),
		"table":     string(e.Table),
		"record_id": e.RecordID,
		"date":      string(e.Date),
		"amount":    e.Amount.String(),
		"recipient": string(e.Recipient),
		"at":        e.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, errors.Wrap(err, "build event struct")
	}
	return proto.Marshal(st)
}

func Unmarshal(b []byte) (Event, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(b, &st); err != nil {
		return Event{}, errors.Wrap(err, "unmarshal event")
	}
	fields := st.GetFields()

	amount, err := decimal.NewFromString(fields["amount"].GetStringValue())
	if err != nil {
		return Event{}, errors.Wrap(err, "event amount")
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return Event{}, errors.Wrap(err, "event time")
	}
	return Event{
		Kind:      Kind(fields["kind"].GetStringValue()),
		Table:     ledger.Kind(fields["table"].GetStringValue()),
		RecordID:  int64(fields["record_id"].GetNumberValue()),
		Date:      ledger.Date(fields["date"].GetStringValue()),
		Amount:    amount,
		Recipient: ledger.Recipient(fields["recipient"].GetStringValue()),
		At:        at,
	}, nil
}

// Multi fans an event out to every publisher and returns all their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var err error
	for _, p := range m {
		err = multierr.Append(err, p.Publish(ctx, ev))
	}
	return err
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}
