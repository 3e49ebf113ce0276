package handler

import (
	"net/http"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"
)

type DashboardHandler struct {
	ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService}
}

// GetChannelStats godoc
// @Summary Статистика канала
// @Description Число видео, сумма просмотров, подписчики и лайки на видео текущего пользователя
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=model.ChannelStats}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	stats, err := h.DashboardService.GetChannelStats(r.Context(), user.UUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, stats, "Channel stats retrieved successfully")
}

// GetChannelVideos godoc
// @Summary Видео канала
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Video}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	videos, err := h.DashboardService.GetChannelVideos(r.Context(), user.UUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	message := "Channel videos retrieved successfully"
	if len(videos) == 0 {
		message = "No videos found for this channel"
	}
	util.WriteResponse(w, http.StatusOK, videos, message)
}
