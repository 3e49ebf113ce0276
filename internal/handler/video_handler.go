package handler

import (
	"net/http"
	"video-hosting-server/config"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type VideoHandler struct {
	ports.VideoService
	upload config.UploadConfig
}

func NewVideoHandler(videoService ports.VideoService, upload config.UploadConfig) *VideoHandler {
	return &VideoHandler{videoService, upload}
}

// PublishVideo godoc
// @Summary Загрузка видео
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Название"
// @Param description formData string true "Описание"
// @Param videoFile formData file true "Видео"
// @Param thumbnail formData file false "Превью"
// @Success 201 {object} requestresponse.ApiResponse{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 502 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos [post]
func (h *VideoHandler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	if err := parseMultipart(r, h.upload.MaxMemory); err != nil {
		util.HandleError(w, err)
		return
	}

	req := requestresponse.UploadVideoRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if err := validateStruct(&req); err != nil {
		util.HandleError(w, err)
		return
	}

	videoPath, err := util.SaveFormFile(r, "videoFile", h.upload.TempDir)
	if err != nil {
		util.HandleError(w, apperror.Validation("invalid video file"))
		return
	}
	thumbnailPath, err := util.SaveFormFile(r, "thumbnail", h.upload.TempDir)
	if err != nil {
		util.RemoveFiles(videoPath)
		util.HandleError(w, apperror.Validation("invalid thumbnail file"))
		return
	}

	video, err := h.VideoService.UploadVideo(r.Context(), user.UUID, req.Title, req.Description, videoPath, thumbnailPath)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusCreated, video, "Video uploaded successfully")
}

// GetVideoByID godoc
// @Summary Просмотр видео
// @Description Увеличивает счётчик просмотров и добавляет видео в историю
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.ApiResponse{data=model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/{videoId} [get]
func (h *VideoHandler) GetVideoByID(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	video, err := h.VideoService.GetVideo(r.Context(), chi.URLParam(r, "videoId"), user.UUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, video, "Video fetched successfully")
}

// ListUserVideos godoc
// @Summary Видео пользователя
// @Tags Videos
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "UUID пользователя"
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.Video}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/videos/user/{userId} [get]
func (h *VideoHandler) ListUserVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.VideoService.ListUserVideos(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		util.HandleError(w, err)
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}

	util.WriteResponse(w, http.StatusOK, videos, "Videos fetched successfully")
}
