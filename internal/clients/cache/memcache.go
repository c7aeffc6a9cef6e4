package cache

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/logger"
)

type config interface {
	Hosts() []string
	ExpirationSeconds() int32
}

// MemcacheClient stores rendered reports under plain string keys.
type MemcacheClient struct {
	client     *memcache.Client
	expiration int32
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, expiration: config.ExpirationSeconds()}, mc.Ping()
}

func (mc *MemcacheClient) Get(key string) ([]byte, error) {
	item, err := mc.client.Get(key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) Set(key string, value []byte) error {
	logger.Debug("cache set", zap.String("key", key))
	return mc.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: mc.expiration,
	})
}

// Delete drops key. A key that is not cached is not an error.
func (mc *MemcacheClient) Delete(key string) error {
	logger.Debug("cache delete", zap.String("key", key))
	err := mc.client.Delete(key)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
