package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDate_ShouldRejectUnpaddedDates(t *testing.T) {
	_, err := ParseDate("2024-3-5")
	assert.ErrorIs(t, err, ErrBadDate)

	d, err := ParseDate(" 2024-03-05 ")
	require.NoError(t, err)
	assert.Equal(t, Date("2024-03-05"), d)
}

func Test_AddDays_ShouldCrossYearBoundary(t *testing.T) {
	assert.Equal(t, Date("2023-12-27"), Date("2024-01-02").AddDays(-6))
	assert.Equal(t, Date("2024-03-01"), Date("2024-02-29").AddDays(1))
}

func Test_LexicalOrder_ShouldMatchCalendarOrder(t *testing.T) {
	assert.True(t, Date("2023-12-31") < Date("2024-01-01"))
	assert.True(t, Date("2024-02-09") < Date("2024-02-10"))
	assert.True(t, Date("2024-02-10").Between("2024-02-01", "2024-02-29"))
	assert.False(t, Date("2024-03-01").Between("2024-02-01", "2024-02-29"))
}

func Test_Month_ShouldKnowItsBounds(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)

	assert.Equal(t, Date("2024-02-01"), m.First())
	assert.Equal(t, Date("2024-02-29"), m.Last())
	assert.Equal(t, Month("2024-01"), m.Prev())
	assert.Equal(t, Month("2023-12"), Month("2024-01").Prev())
	assert.Equal(t, Month("2024-03"), m.Next())
	assert.Equal(t, Month("2024-04"), Date("2024-04-30").Month())
}

func Test_DateScan_ShouldAcceptDriverValues(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2024-03-05"), d)

	require.NoError(t, d.Scan([]byte("2024-03-06")))
	assert.Equal(t, Date("2024-03-06"), d)

	require.NoError(t, d.Scan("2024-03-07T00:00:00Z"))
	assert.Equal(t, Date("2024-03-07"), d)

	assert.Error(t, d.Scan(42))
}

func Test_ParseRecipient_ShouldIgnoreCase(t *testing.T) {
	r, err := ParseRecipient("mom")
	require.NoError(t, err)
	assert.Equal(t, Mom, r)

	_, err = ParseRecipient("aunt")
	assert.ErrorIs(t, err, ErrUnknownRecipient)

	v, err := NoRecipient.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func Test_ResolvePaidTo_ShouldUseCustomNameForOthers(t *testing.T) {
	assert.Equal(t, "SAI FIN", ResolvePaidTo("SAI FIN", "ignored"))
	assert.Equal(t, "Corner shop", ResolvePaidTo("Others", " Corner shop "))
	assert.Equal(t, "", ResolvePaidTo("Others", ""))
}
