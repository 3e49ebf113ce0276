package handler

import (
	"net/http"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type LikeHandler struct {
	ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService}
}

// ToggleVideoLike godoc
// @Summary Лайк видео
// @Description Повторный вызов снимает лайк
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.ApiResponse{data=requestresponse.LikeToggleData}
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeTargetVideo, chi.URLParam(r, "videoId"))
}

// ToggleCommentLike godoc
// @Summary Лайк комментария
// @Description Повторный вызов снимает лайк
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Success 200 {object} requestresponse.ApiResponse{data=requestresponse.LikeToggleData}
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, model.LikeTargetComment, chi.URLParam(r, "commentId"))
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, target model.LikeTarget, targetUUID string) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	liked, err := h.LikeService.Toggle(r.Context(), user.UUID, target, targetUUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	message := "Like removed"
	if liked {
		message = "Like added"
	}
	util.WriteResponse(w, http.StatusOK, requestresponse.LikeToggleData{Liked: liked}, message)
}

// ListLikedVideos godoc
// @Summary Понравившиеся видео
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Like}
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) ListLikedVideos(w http.ResponseWriter, r *http.Request) {
	h.listLiked(w, r, model.LikeTargetVideo, "Liked videos fetched successfully")
}

// ListLikedComments godoc
// @Summary Понравившиеся комментарии
// @Tags Likes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Like}
// @Router /api/v1/likes/comments [get]
func (h *LikeHandler) ListLikedComments(w http.ResponseWriter, r *http.Request) {
	h.listLiked(w, r, model.LikeTargetComment, "Liked comments fetched successfully")
}

func (h *LikeHandler) listLiked(w http.ResponseWriter, r *http.Request, target model.LikeTarget, message string) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	likes, err := h.LikeService.ListLiked(r.Context(), user.UUID, target)
	if err != nil {
		util.HandleError(w, err)
		return
	}
	if likes == nil {
		likes = []model.Like{}
	}

	util.WriteResponse(w, http.StatusOK, likes, message)
}
