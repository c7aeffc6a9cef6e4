package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized   = errors.New("not signed in")
	ErrBadCredentials = errors.New("email or password is wrong")
)

type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(at time.Time) bool {
	return !at.Before(s.ExpiresAt)
}

type User struct {
	Email string `json:"email"`
}

type ChangeKind string

const (
	SignedIn  ChangeKind = "signed_in"
	SignedOut ChangeKind = "signed_out"
	Expired   ChangeKind = "expired"
)

type Change struct {
	Kind    ChangeKind
	Session Session
}

// Provider is the identity backend. Subscribe returns a func that removes the
// subscription.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	GetUser(ctx context.Context, token string) (User, error)
	SignOut(ctx context.Context, token string) error
	Subscribe(fn func(Change)) (unsubscribe func())
}
