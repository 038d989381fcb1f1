package initial

import (
	"errors"
	"fmt"

	"OssLarare/internal/config"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	contactPersistence "OssLarare/internal/modules/contact/infrastructure/persistence"
	"OssLarare/pkg/zlog"

	"go.uber.org/zap"
)

// NewContactEdgeRepository 按 storeConfig.backend 选择关系存储
func NewContactEdgeRepository(conf *config.Config) (contactRepository.ContactEdgeRepository, error) {
	backend := conf.StoreConfig.Backend
	zlog.Info("contact edge store", zap.String("backend", backend))

	switch backend {
	case config.StoreBackendGorm:
		db, err := NewGormDB(conf.DatabaseConfig)
		if err != nil {
			return nil, err
		}
		return contactPersistence.NewContactEdgeRepository(db), nil
	case config.StoreBackendRedis:
		client, err := NewRedisClient(conf.RedisConfig)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, errors.New("redis store selected but redisConfig.host is empty")
		}
		return contactPersistence.NewContactEdgeRedisRepository(client), nil
	case config.StoreBackendMemory:
		return contactPersistence.NewContactEdgeMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
