package database

import (
	client "recruithub/internal/database/client"
	fluentdRepo "recruithub/internal/database/fluentd/repository"
	mongoRepo "recruithub/internal/database/mongodb/repository"
	redisRepo "recruithub/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
