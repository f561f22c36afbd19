package redisimpls

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libsketch/assetstore"
)

// NewRedisCatalogStorage keeps the whole catalog as one json snapshot under
// redisKey.
func NewRedisCatalogStorage(redisKey string, redisCli *redis.Client, logger l.Wrapper) assetstore.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "catalogStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	if redisKey == "" {
		redisKey = "assetstore:catalog"
	}

	return &catalogStorage{
		logger:   logger,
		redisKey: redisKey,
		redisCli: redisCli,
	}
}

type catalogStorage struct {
	logger   l.Wrapper
	redisKey string
	redisCli *redis.Client
}

func (impl *catalogStorage) Load() (catalog assetstore.Catalog, err error) {
	d, err := impl.redisCli.Get(context.Background(), impl.redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return assetstore.Catalog{}, nil
		}

		return
	}

	err = json.Unmarshal(d, &catalog)

	return
}

func (impl *catalogStorage) Save(catalog assetstore.Catalog) (err error) {
	d, err := json.Marshal(catalog)
	if err != nil {
		return
	}

	err = impl.redisCli.Set(context.Background(), impl.redisKey, d, 0).Err()

	return
}
