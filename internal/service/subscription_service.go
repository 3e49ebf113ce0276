package service

import (
	"context"
	"log"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SubscriptionService struct {
	db                     sqlx.ExtContext
	subscriptionRepository ports.SubscriptionRepository
	userRepository         ports.UserRepository
	cache                  ports.CacheRepository
}

func NewSubscriptionService(
	db sqlx.ExtContext,
	subscriptionRepository ports.SubscriptionRepository,
	userRepository ports.UserRepository,
	cache ports.CacheRepository,
) *SubscriptionService {
	return &SubscriptionService{
		db:                     db,
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		cache:                  cache,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberUUID, channelUUID string) (*model.Subscription, error) {
	if err := requireUUID(channelUUID, "channel id"); err != nil {
		return nil, err
	}
	if subscriberUUID == channelUUID {
		return nil, apperror.Validation("cannot subscribe to your own channel")
	}

	channel, err := s.requireUser(ctx, channelUUID, "channel not found")
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptionRepository.Exists(ctx, s.db, subscriberUUID, channelUUID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ConflictError("already subscribed to this channel")
	}

	subscription, err := s.subscriptionRepository.Create(ctx, s.db, &model.Subscription{
		UUID:           uuid.NewString(),
		SubscriberUUID: subscriberUUID,
		ChannelUUID:    channelUUID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, channel.Username)
	if subscriber, err := s.userRepository.FindPublicByUUID(ctx, s.db, subscriberUUID); err == nil {
		s.invalidate(ctx, subscriber.Username)
	}

	return subscription, nil
}

func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelUUID string) ([]model.Subscription, error) {
	if err := requireUUID(channelUUID, "channel id"); err != nil {
		return nil, err
	}
	if _, err := s.requireUser(ctx, channelUUID, "channel not found"); err != nil {
		return nil, err
	}
	return s.subscriptionRepository.ListByChannel(ctx, s.db, channelUUID)
}

func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.Subscription, error) {
	if err := requireUUID(subscriberUUID, "subscriber id"); err != nil {
		return nil, err
	}
	if _, err := s.requireUser(ctx, subscriberUUID, "subscriber not found"); err != nil {
		return nil, err
	}
	return s.subscriptionRepository.ListBySubscriber(ctx, s.db, subscriberUUID)
}

// requireUser : пользователь по UUID, отсутствие превращается в NotFound с понятным сообщением
func (s *SubscriptionService) requireUser(ctx context.Context, userUUID, notFoundMessage string) (*model.User, error) {
	user, err := s.userRepository.FindPublicByUUID(ctx, s.db, userUUID)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return nil, apperror.NotFoundError(notFoundMessage)
		}
		return nil, err
	}
	return user, nil
}

// invalidate : счётчики подписок в кэше устарели
func (s *SubscriptionService) invalidate(ctx context.Context, username string) {
	if err := s.cache.DeleteChannelProfile(ctx, username); err != nil {
		log.Printf("[SubscriptionService] не удалось сбросить кэш канала %s: %v", username, err)
	}
}
