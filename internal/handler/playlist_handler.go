package handler

import (
	"net/http"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"
)

type PlaylistHandler struct {
	ports.PlaylistService
}

func NewPlaylistHandler(playlistService ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService}
}

// CreatePlaylist godoc
// @Summary Новый плейлист
// @Description Имя плейлиста уникально среди плейлистов пользователя
// @Tags Playlists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.PlaylistRequest true "Тело запроса"
// @Success 201 {object} requestresponse.ApiResponse{data=model.Playlist}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	var req requestresponse.PlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	playlist, err := h.PlaylistService.Create(r.Context(), user.UUID, req.Name, req.Description)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusCreated, playlist, "Playlist created successfully")
}
