package config

type MemcachedConfig struct {
	On        bool     `yaml:"enabled"`
	NodeHosts []string `yaml:"hosts"`
	TTL       int32    `yaml:"ttl-seconds"`
}

func (s *MemcachedConfig) applyDefaults() {
	if s.TTL == 0 {
		s.TTL = 3600
	}
}

func (s *MemcachedConfig) Enabled() bool {
	return s.On
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) ExpirationSeconds() int32 {
	return s.TTL
}
