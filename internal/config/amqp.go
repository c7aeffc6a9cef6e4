package config

type AMQPConfig struct {
	On       bool   `yaml:"enabled"`
	Address  string `yaml:"url"`
	Exchange string `yaml:"exchange"`
	Queue    string `yaml:"queue"`
}

func (s *AMQPConfig) applyDefaults() {
	if s.Exchange == "" {
		s.Exchange = "ledger"
	}
	if s.Queue == "" {
		s.Queue = "ledger-events"
	}
}

func (s *AMQPConfig) Enabled() bool {
	return s.On
}

func (s *AMQPConfig) URL() string {
	return s.Address
}

func (s *AMQPConfig) ExchangeName() string {
	return s.Exchange
}

func (s *AMQPConfig) QueueName() string {
	return s.Queue
}
