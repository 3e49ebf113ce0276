package repository

import (
	"context"
	"video-hosting-server/config"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type SubscriptionRepository struct {
	*config.Database
}

func NewSubscriptionRepository(database *config.Database) *SubscriptionRepository {
	return &SubscriptionRepository{database}
}

func (r *SubscriptionRepository) Create(ctx context.Context, exec sqlx.ExtContext, subscription *model.Subscription) (*model.Subscription, error) {
	query := `
	INSERT INTO subscriptions (uuid, subscriber_uuid, channel_uuid)
	VALUES ($1, $2, $3)
	RETURNING uuid, subscriber_uuid, channel_uuid, created_at`

	var created model.Subscription
	err := sqlx.GetContext(ctx, exec, &created, query,
		subscription.UUID, subscription.SubscriberUUID, subscription.ChannelUUID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ConflictError("already subscribed to this channel")
		}
		return nil, internal("[SubscriptionRepo] ошибка вставки подписки", err)
	}
	return &created, nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, exec sqlx.ExtContext, subscriberUUID, channelUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_uuid = $1 AND channel_uuid = $2)`
	if err := sqlx.GetContext(ctx, exec, &exists, query, subscriberUUID, channelUUID); err != nil {
		return false, internal("[SubscriptionRepo] ошибка проверки подписки", err)
	}
	return exists, nil
}

// ListByChannel : подписчики канала
func (r *SubscriptionRepository) ListByChannel(ctx context.Context, exec sqlx.ExtContext, channelUUID string) ([]model.Subscription, error) {
	query := `
	SELECT uuid, subscriber_uuid, channel_uuid, created_at
	FROM subscriptions WHERE channel_uuid = $1 ORDER BY created_at DESC`
	subscriptions := []model.Subscription{}
	if err := sqlx.SelectContext(ctx, exec, &subscriptions, query, channelUUID); err != nil {
		return nil, internal("[SubscriptionRepo] не удалось получить подписчиков", err)
	}
	return subscriptions, nil
}

// ListBySubscriber : каналы, на которые подписан пользователь
func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, exec sqlx.ExtContext, subscriberUUID string) ([]model.Subscription, error) {
	query := `
	SELECT uuid, subscriber_uuid, channel_uuid, created_at
	FROM subscriptions WHERE subscriber_uuid = $1 ORDER BY created_at DESC`
	subscriptions := []model.Subscription{}
	if err := sqlx.SelectContext(ctx, exec, &subscriptions, query, subscriberUUID); err != nil {
		return nil, internal("[SubscriptionRepo] не удалось получить подписки", err)
	}
	return subscriptions, nil
}
