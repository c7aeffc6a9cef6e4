package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Controller gates access. It keeps the sessions it has seen and drops them
// when the provider reports a sign out or expiry.
type Controller struct {
	provider    Provider
	unsubscribe func()
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewController(provider Provider) *Controller {
	c := &Controller{
		provider: provider,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
	c.unsubscribe = provider.Subscribe(c.apply)
	return c
}

func (c *Controller) apply(change Change) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch change.Kind {
	case SignedIn:
		c.sessions[change.Session.Token] = change.Session
	case SignedOut, Expired:
		delete(c.sessions, change.Session.Token)
	}
}

func (c *Controller) SignIn(ctx context.Context, email, password string) (Session, error) {
	s, err := c.provider.SignIn(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	c.apply(Change{Kind: SignedIn, Session: s})
	return s, nil
}

func (c *Controller) SignOut(ctx context.Context, token string) error {
	c.apply(Change{Kind: SignedOut, Session: Session{Token: token}})
	return c.provider.SignOut(ctx, token)
}

// Authorize returns the live session for token. Unknown tokens are checked
// with the provider once and remembered.
func (c *Controller) Authorize(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrUnauthorized
	}

	c.mu.RLock()
	s, ok := c.sessions[token]
	c.mu.RUnlock()
	if ok {
		if s.Expired(c.now()) {
			c.apply(Change{Kind: Expired, Session: s})
			return Session{}, ErrUnauthorized
		}
		return s, nil
	}

	s, err := c.provider.GetSession(ctx, token)
	if err != nil {
		return Session{}, errors.Wrap(err, "authorize")
	}
	c.apply(Change{Kind: SignedIn, Session: s})
	return s, nil
}

func (c *Controller) Close() {
	c.unsubscribe()
}
