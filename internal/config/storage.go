package config

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type StorageConfig struct {
	Kind    string `yaml:"backend"`
	Migrate bool   `yaml:"auto-migrate"`
}

func (s *StorageConfig) applyDefaults() {
	if s.Kind == "" {
		s.Kind = BackendMemory
	}
}

func (s *StorageConfig) Backend() string {
	return s.Kind
}

func (s *StorageConfig) AutoMigrate() bool {
	return s.Migrate
}

type SQLiteConfig struct {
	DBPath string `yaml:"path"`
}

func (s *SQLiteConfig) applyDefaults() {
	if s.DBPath == "" {
		s.DBPath = "data/ledger.db"
	}
}

func (s *SQLiteConfig) Path() string {
	return s.DBPath
}
