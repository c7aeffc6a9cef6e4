package config

import "time"

type AuthConfig struct {
	UserEmail string        `yaml:"email"`
	Hash      string        `yaml:"password-hash"`
	TTL       time.Duration `yaml:"session-ttl"`
	Sweep     time.Duration `yaml:"sweep-interval"`
}

func (s *AuthConfig) applyDefaults() {
	if s.TTL == 0 {
		s.TTL = 12 * time.Hour
	}
	if s.Sweep == 0 {
		s.Sweep = time.Minute
	}
}

func (s *AuthConfig) Email() string {
	return s.UserEmail
}

// PasswordHash is a bcrypt hash, see `tracker hash-password`.
func (s *AuthConfig) PasswordHash() string {
	return s.Hash
}

func (s *AuthConfig) SessionTTL() time.Duration {
	return s.TTL
}

func (s *AuthConfig) SweepInterval() time.Duration {
	return s.Sweep
}
