package events

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/entity/ledger"
)

type recorder struct {
	got []Event
	err error
}

func (r *recorder) Publish(_ context.Context, ev Event) error {
	r.got = append(r.got, ev)
	return r.err
}

func Test_Event_ShouldSurviveProtobufEncoding(t *testing.T) {
	ev := Event{
		Kind:      HomeGiven,
		Table:     ledger.KindIncome,
		RecordID:  42,
		Date:      "2024-03-05",
		Amount:    decimal.RequireFromString("180.25"),
		Recipient: ledger.Dad,
		At:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	raw, err := ev.Marshal()
	require.NoError(t, err)
	got, err := Unmarshal(raw)
	require.NoError(t, err)

	assert.Equal(t, ev.Kind, got.Kind)
	assert.Equal(t, ev.RecordID, got.RecordID)
	assert.Equal(t, ev.Recipient, got.Recipient)
	assert.True(t, ev.Amount.Equal(got.Amount))
	assert.True(t, ev.At.Equal(got.At))
}

func Test_Multi_ShouldPublishToAllAndCollectErrors(t *testing.T) {
	failing := &recorder{err: errors.New("broker down")}
	ok := &recorder{}

	err := Multi{failing, ok}.Publish(context.Background(), Event{Kind: RecordCreated})

	assert.EqualError(t, err, "broker down")
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
}
