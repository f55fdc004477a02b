package repository

import (
	"context"
	"fmt"
	"time"

	"recruithub/internal/core"
	client "recruithub/internal/database/client"
	"recruithub/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// RevokedTokenRepository 登出後的 token jti 黑名單；
// TTL 設為 token 剩餘效期，過期自動清除
type RevokedTokenRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRevokedTokenRepository(trace *telemetry.Trace, client *client.RedisClient) *RevokedTokenRepository {
	return &RevokedTokenRepository{trace: trace, client: client.Client()}
}

func (repository *RevokedTokenRepository) Revoke(contextValue context.Context, tokenID string, timeToLive time.Duration) (returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	if timeToLive <= 0 {
		// token 已過期，無需入黑名單
		return nil
	}
	returnedError = repository.client.Set(contextValue, repository.buildKey(tokenID), 1, timeToLive).Err()
	return returnedError
}

func (repository *RevokedTokenRepository) IsRevoked(contextValue context.Context, tokenID string) (revoked bool, returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	_, getError := repository.client.Get(contextValue, repository.buildKey(tokenID)).Result()
	if getError == redis.Nil {
		return false, nil
	}
	if getError != nil {
		returnedError = getError
		return false, returnedError
	}
	return true, nil
}

func (repository *RevokedTokenRepository) buildKey(tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyRevokedToken, tokenID)
}
