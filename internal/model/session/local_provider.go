package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/home-ledger/internal/logger"
)

type authConfig interface {
	Email() string
	PasswordHash() string
	SessionTTL() time.Duration
	SweepInterval() time.Duration
}

// LocalProvider signs in the single account from the config file and keeps
// its sessions in memory.
type LocalProvider struct {
	email string
	hash  []byte
	ttl   time.Duration
	sweep time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
	subs     map[int]func(Change)
	nextSub  int
}

func NewLocalProvider(config authConfig) *LocalProvider {
	return &LocalProvider{
		email:    config.Email(),
		hash:     []byte(config.PasswordHash()),
		ttl:      config.SessionTTL(),
		sweep:    config.SweepInterval(),
		now:      time.Now,
		sessions: make(map[string]Session),
		subs:     make(map[int]func(Change)),
	}
}

func (p *LocalProvider) SignIn(_ context.Context, email, password string) (Session, error) {
	if !strings.EqualFold(strings.TrimSpace(email), p.email) {
		return Session{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		return Session{}, ErrBadCredentials
	}

	s := Session{
		Token:     uuid.NewString(),
		Email:     p.email,
		ExpiresAt: p.now().Add(p.ttl),
	}
	p.mu.Lock()
	p.sessions[s.Token] = s
	p.mu.Unlock()

	logger.Info("signed in", zap.String("email", s.Email))
	p.notify(Change{Kind: SignedIn, Session: s})
	return s, nil
}

func (p *LocalProvider) GetSession(_ context.Context, token string) (Session, error) {
	p.mu.Lock()
	s, ok := p.sessions[token]
	p.mu.Unlock()

	if !ok || s.Expired(p.now()) {
		return Session{}, ErrUnauthorized
	}
	return s, nil
}

func (p *LocalProvider) GetUser(ctx context.Context, token string) (User, error) {
	s, err := p.GetSession(ctx, token)
	if err != nil {
		return User{}, err
	}
	return User{Email: s.Email}, nil
}

func (p *LocalProvider) SignOut(_ context.Context, token string) error {
	p.mu.Lock()
	s, ok := p.sessions[token]
	delete(p.sessions, token)
	p.mu.Unlock()

	if !ok {
		return errors.Wrap(ErrUnauthorized, "sign out")
	}
	p.notify(Change{Kind: SignedOut, Session: s})
	return nil
}

func (p *LocalProvider) Subscribe(fn func(Change)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Sweep drops expired sessions every sweep interval until ctx is done.
func (p *LocalProvider) Sweep(ctx context.Context) {
	ticker := time.NewTicker(p.sweep)
	defer ticker.Stop()

	logger.Info("Start sweeping sessions")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop sweeping sessions")
			return
		case <-ticker.C:
			p.sweepOnce()
		}
	}
}

func (p *LocalProvider) sweepOnce() {
	at := p.now()

	var expired []Session
	p.mu.Lock()
	for token, s := range p.sessions {
		if s.Expired(at) {
			delete(p.sessions, token)
			expired = append(expired, s)
		}
	}
	p.mu.Unlock()

	for _, s := range expired {
		p.notify(Change{Kind: Expired, Session: s})
	}
	if len(expired) > 0 {
		logger.Info("sessions expired", zap.Int("count", len(expired)))
	}
}

func (p *LocalProvider) notify(c Change) {
	p.mu.Lock()
	subs := make([]func(Change), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(c)
	}
}
