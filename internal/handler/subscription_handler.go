package handler

import (
	"net/http"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type SubscriptionHandler struct {
	ports.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService}
}

// Subscribe godoc
// @Summary Подписка на канал
// @Tags Subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param channelId path string true "UUID канала"
// @Success 201 {object} requestresponse.ApiResponse{data=model.Subscription}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/v1/subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	subscription, err := h.SubscriptionService.Subscribe(r.Context(), user.UUID, chi.URLParam(r, "channelId"))
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusCreated, subscription, "Subscribed successfully")
}

// ListSubscribers godoc
// @Summary Подписчики канала
// @Tags Subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param channelId path string true "UUID канала"
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Subscription}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.SubscriptionService.ListSubscribers(r.Context(), chi.URLParam(r, "channelId"))
	writeSubscriptions(w, subscriptions, err, "Subscribers fetched successfully")
}

// ListSubscribedChannels godoc
// @Summary Каналы, на которые подписан пользователь
// @Tags Subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param subscriberId path string true "UUID пользователя"
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Subscription}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) ListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.SubscriptionService.ListSubscribedChannels(r.Context(), chi.URLParam(r, "subscriberId"))
	writeSubscriptions(w, subscriptions, err, "Subscribed channels fetched successfully")
}

func writeSubscriptions(w http.ResponseWriter, subscriptions []model.Subscription, err error, message string) {
	if err != nil {
		util.HandleError(w, err)
		return
	}
	if subscriptions == nil {
		subscriptions = []model.Subscription{}
	}
	util.WriteResponse(w, http.StatusOK, subscriptions, message)
}
