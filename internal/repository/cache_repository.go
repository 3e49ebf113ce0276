package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// SetChannelProfile : кэширует профиль канала без признака подписки зрителя
func (r *CacheRepository) SetChannelProfile(ctx context.Context, profile *model.ChannelProfile) error {
	cached := *profile
	cached.IsSubscribed = false

	data, err := json.Marshal(&cached)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации профиля канала", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(profile.Username), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetChannelProfile(ctx context.Context, username string) (*model.ChannelProfile, error) {
	val, err := r.client.Client.Get(ctx, r.key(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения профиля из Redis", err)
	}

	var profile model.ChannelProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации профиля из кэша", err)
	}
	return &profile, nil
}

func (r *CacheRepository) DeleteChannelProfile(ctx context.Context, username string) error {
	if err := r.client.Client.Del(ctx, r.key(username)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления профиля из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(username string) string {
	return fmt.Sprintf("channel:%s", username)
}
