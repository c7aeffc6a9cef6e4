package session

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authStub struct {
	hash string
}

func (a authStub) Email() string                { return "owner@example.com" }
func (a authStub) PasswordHash() string         { return a.hash }
func (a authStub) SessionTTL() time.Duration    { return time.Hour }
func (a authStub) SweepInterval() time.Duration { return time.Minute }

func newProvider(t *testing.T) *LocalProvider {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewLocalProvider(authStub{hash: string(hash)})
}

func Test_SignIn_ShouldCheckCredentials(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	_, err := p.SignIn(ctx, "owner@example.com", "wrong")
	assert.True(t, errors.Is(err, ErrBadCredentials))
	_, err = p.SignIn(ctx, "someone@example.com", "hunter2")
	assert.True(t, errors.Is(err, ErrBadCredentials))

	s, err := p.SignIn(ctx, " Owner@Example.com ", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)

	user, err := p.GetUser(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
}

func Test_Subscribe_ShouldReceiveChangesUntilUnsubscribed(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	var got []ChangeKind
	unsubscribe := p.Subscribe(func(c Change) {
		got = append(got, c.Kind)
	})

	s, err := p.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx, s.Token))

	unsubscribe()
	_, err = p.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, []ChangeKind{SignedIn, SignedOut}, got)
}

func Test_Sweep_ShouldExpireOldSessions(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return start }

	s, err := p.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)

	var expired []string
	p.Subscribe(func(c Change) {
		if c.Kind == Expired {
			expired = append(expired, c.Session.Token)
		}
	})

	p.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = p.GetSession(ctx, s.Token)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	p.sweepOnce()
	assert.Equal(t, []string{s.Token}, expired)
	assert.Empty(t, p.sessions)
}

func Test_SignOut_UnknownTokenShouldBeUnauthorized(t *testing.T) {
	p := newProvider(t)

	err := p.SignOut(context.Background(), "nope")

	assert.True(t, errors.Is(err, ErrUnauthorized))
}
