package config

type JaegerConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent"`
}

func (s *JaegerConfig) applyDefaults() {
	if s.Service == "" {
		s.Service = "home-ledger"
	}
	if s.Agent == "" {
		s.Agent = "localhost:6831"
	}
}

func (s *JaegerConfig) Enabled() bool {
	return s.On
}

func (s *JaegerConfig) ServiceName() string {
	return s.Service
}

func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}
