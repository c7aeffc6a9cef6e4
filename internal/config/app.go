package config

import (
	"time"
	// zone database for hosts without one
	_ "time/tzdata"

	"max.ks1230/home-ledger/internal/entity/ledger"
)

const defaultTimezone = "Local"

type AppConfig struct {
	Timezone string   `yaml:"timezone"`
	PaidTo   []string `yaml:"paid-to-options"`

	loc *time.Location
}

func (s *AppConfig) applyDefaults() {
	if s.Timezone == "" {
		s.Timezone = defaultTimezone
	}
	if len(s.PaidTo) == 0 {
		s.PaidTo = ledger.PaidToOptions
	}
	s.loc, _ = s.location()
}

func (s *AppConfig) location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

func (s *AppConfig) Location() *time.Location {
	if s.loc == nil {
		return time.Local
	}
	return s.loc
}

// Today is the current day in the configured timezone.
func (s *AppConfig) Today() ledger.Date {
	return ledger.Today(s.Location())
}

func (s *AppConfig) PaidToOptions() []string {
	return s.PaidTo
}
