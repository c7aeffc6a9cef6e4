package config

import "time"

type HTTPConfig struct {
	Address      string        `yaml:"addr"`
	Read         time.Duration `yaml:"read-timeout"`
	Write        time.Duration `yaml:"write-timeout"`
	ShutdownWait time.Duration `yaml:"shutdown-timeout"`
}

func (s *HTTPConfig) applyDefaults() {
	if s.Address == "" {
		s.Address = ":8080"
	}
	if s.Read == 0 {
		s.Read = 10 * time.Second
	}
	if s.Write == 0 {
		s.Write = 10 * time.Second
	}
	if s.ShutdownWait == 0 {
		s.ShutdownWait = 5 * time.Second
	}
}

func (s *HTTPConfig) Addr() string {
	return s.Address
}

func (s *HTTPConfig) ReadTimeout() time.Duration {
	return s.Read
}

func (s *HTTPConfig) WriteTimeout() time.Duration {
	return s.Write
}

func (s *HTTPConfig) ShutdownTimeout() time.Duration {
	return s.ShutdownWait
}
