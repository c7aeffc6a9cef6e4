package config

type KafkaConfig struct {
	On         bool     `yaml:"enabled"`
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	EvTopic    string   `yaml:"events-topic"`
}

func (s *KafkaConfig) applyDefaults() {
	if s.EvTopic == "" {
		s.EvTopic = "ledger-events"
	}
	if s.Consumer == "" {
		s.Consumer = "ledger-tail"
	}
}

func (s *KafkaConfig) Enabled() bool {
	return s.On
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) EventsTopic() string {
	return s.EvTopic
}
