package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/home-ledger/internal/model/session"
	"max.ks1230/home-ledger/internal/model/session/mock"
)

func Test_OnAuthorize_ShouldAskProviderOnce(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewProviderMock(m)

	live := session.Session{Token: "t1", Email: "owner@example.com", ExpiresAt: time.Now().Add(time.Hour)}
	provider.
		SubscribeMock.Return(func() {}).
		GetSessionMock.Expect(ctx, "t1").Return(live, nil)

	c := session.NewController(provider)
	defer c.Close()

	for i := 0; i < 3; i++ {
		s, err := c.Authorize(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", s.Email)
	}
	assert.Equal(t, uint64(1), provider.GetSessionAfterCounter())
}

func Test_OnAuthorize_EmptyTokenShouldBeUnauthorized(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewProviderMock(m)
	provider.SubscribeMock.Return(func() {})

	c := session.NewController(provider)

	_, err := c.Authorize(context.Background(), "")
	assert.True(t, errors.Is(err, session.ErrUnauthorized))
}

func Test_OnProviderChange_ShouldDropSignedOutSession(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewProviderMock(m)

	var push func(session.Change)
	live := session.Session{Token: "t1", Email: "owner@example.com", ExpiresAt: time.Now().Add(time.Hour)}
	provider.
		SubscribeMock.
		Set(func(fn func(session.Change)) func() {
			push = fn
			return func() {}
		}).
		SignInMock.Return(live, nil).
		GetSessionMock.Return(session.Session{}, session.ErrUnauthorized)

	c := session.NewController(provider)
	_, err := c.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)

	_, err = c.Authorize(ctx, "t1")
	require.NoError(t, err)

	push(session.Change{Kind: session.Expired, Session: live})

	_, err = c.Authorize(ctx, "t1")
	assert.True(t, errors.Is(err, session.ErrUnauthorized))
}

func Test_OnSignOut_ShouldForgetSessionEvenIfProviderFails(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewProviderMock(m)

	live := session.Session{Token: "t1", ExpiresAt: time.Now().Add(time.Hour)}
	provider.
		SubscribeMock.Return(func() {}).
		SignInMock.Return(live, nil).
		SignOutMock.Return(errors.New("provider is down")).
		GetSessionMock.Return(session.Session{}, session.ErrUnauthorized)

	c := session.NewController(provider)
	_, err := c.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)

	assert.Error(t, c.SignOut(ctx, "t1"))

	_, err = c.Authorize(ctx, "t1")
	assert.True(t, errors.Is(err, session.ErrUnauthorized))
}
