package commands

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/clients/amqp"
	"max.ks1230/home-ledger/internal/clients/cache"
	"max.ks1230/home-ledger/internal/clients/kafka"
	"max.ks1230/home-ledger/internal/clients/tg"
	"max.ks1230/home-ledger/internal/config"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/entries"
	"max.ks1230/home-ledger/internal/model/events"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/storage"
)

type ledgerStore interface {
	SelectIncomes(ctx context.Context, q storage.Query) ([]ledger.Income, error)
	SelectExpenses(ctx context.Context, q storage.Query) ([]ledger.Expense, error)
	InsertIncome(ctx context.Context, rec ledger.Income) (ledger.Income, error)
	InsertExpense(ctx context.Context, rec ledger.Expense) (ledger.Expense, error)
	UpdateIncome(ctx context.Context, rec ledger.Income) error
	UpdateExpense(ctx context.Context, rec ledger.Expense) error
	Delete(ctx context.Context, kind ledger.Kind, id int64) error
	Ping(ctx context.Context) error
	Close() error
}

type reportCache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

type disbursementNotifier interface {
	NotifyDisbursement(ctx context.Context, d allocator.Disbursement) error
}

// app holds everything a command may need. Optional clients stay nil when
// switched off in the config.
type app struct {
	conf      *config.Service
	store     ledgerStore
	entries   *entries.Service
	reports   *reports.Generator
	allocator *allocator.Service
	telegram  *tg.Client

	closers []func() error
}

func newApp(configPath string) (*app, error) {
	conf, err := config.New(config.File(configPath))
	if err != nil {
		return nil, errors.Wrap(err, "init config")
	}

	a := &app{conf: conf}
	if err = a.wire(); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire() error {
	store, err := openStore(a.conf)
	if err != nil {
		return err
	}
	a.store = store
	a.closers = append(a.closers, store.Close)

	var publishers events.Multi

	var reportsCache reportCache
	if a.conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(a.conf.Memcached())
		if err != nil {
			return errors.Wrap(err, "init memcached")
		}
		reportsCache = mc
		publishers = append(publishers, reports.NewInvalidator(mc))
	}

	if a.conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(a.conf.Kafka())
		if err != nil {
			return errors.Wrap(err, "init kafka producer")
		}
		a.closers = append(a.closers, func() error {
			producer.Close()
			return nil
		})
		publishers = append(publishers, producer)
	}

	if a.conf.AMQP().Enabled() {
		client, err := amqp.NewClient(a.conf.AMQP())
		if err != nil {
			return errors.Wrap(err, "init amqp")
		}
		a.closers = append(a.closers, client.Close)
		publishers = append(publishers, client)
	}

	var notifier disbursementNotifier
	if a.conf.Telegram().Enabled() {
		a.telegram, err = tg.New(a.conf.Telegram())
		if err != nil {
			return errors.Wrap(err, "init telegram")
		}
		notifier = a.telegram
	}

	var publisher events.Publisher = events.Nop{}
	if len(publishers) > 0 {
		publisher = publishers
	}

	a.entries = entries.NewService(store, publisher)
	a.reports = reports.NewGenerator(store, reportsCache)
	a.allocator = allocator.NewService(a.conf.App(), store, notifier, publisher)

	logger.Info("app wired",
		zap.String("storage", a.conf.Storage().Backend()),
		zap.Int("publishers", len(publishers)),
		zap.Bool("cache", reportsCache != nil),
		zap.Bool("telegram", a.telegram != nil))
	return nil
}

// Close releases clients in reverse order of creation.
func (a *app) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}

func openStore(conf *config.Service) (ledgerStore, error) {
	switch conf.Storage().Backend() {
	case config.BackendMemory:
		logger.Warn("using in-memory storage, records are lost on exit")
		return storage.NewInMemStorage(), nil
	case config.BackendSQLite:
		if conf.Storage().AutoMigrate() {
			if err := storage.RunMigrations(storage.DriverSQLite, storage.SQLiteDSN(conf.SQLite())); err != nil {
				return nil, err
			}
		}
		store, err := storage.NewSQLiteStorage(conf.SQLite())
		if err != nil {
			return nil, errors.Wrap(err, "init sqlite")
		}
		return store, nil
	case config.BackendPostgres:
		if conf.Storage().AutoMigrate() {
			if err := storage.RunMigrations(storage.DriverPostgres, storage.PostgresDSN(conf.Postgres())); err != nil {
				return nil, err
			}
		}
		store, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			return nil, errors.Wrap(err, "init postgres")
		}
		return store, nil
	}
	return nil, errors.Errorf("unknown storage backend %s", conf.Storage().Backend())
}
