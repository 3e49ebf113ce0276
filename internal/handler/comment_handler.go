package handler

import (
	"net/http"
	"strconv"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type CommentHandler struct {
	ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService}
}

// queryInt : необязательный числовой параметр строки запроса
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("invalid query parameter",
			apperror.FieldError{Field: name, Message: "must be an integer"})
	}
	return value, nil
}

// ListComments godoc
// @Summary Комментарии к видео
// @Tags Comments
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (не больше 100)" default(10)
// @Success 200 {object} requestresponse.ApiResponse{data=requestresponse.CommentsPage}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/{videoId} [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		util.HandleError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		util.HandleError(w, err)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), chi.URLParam(r, "videoId"), page, limit)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, requestresponse.CommentsPageFromModel(comments), "Comments fetched successfully")
}

// AddComment godoc
// @Summary Новый комментарий
// @Tags Comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path string true "UUID видео"
// @Param body body requestresponse.CommentRequest true "Тело запроса"
// @Success 201 {object} requestresponse.ApiResponse{data=model.Comment}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/{videoId} [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	var req requestresponse.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), chi.URLParam(r, "videoId"), user.UUID, req.Content)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment godoc
// @Summary Изменение комментария
// @Description Доступно только автору
// @Tags Comments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Param body body requestresponse.CommentRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse{data=model.Comment}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [patch]
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	var req requestresponse.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), chi.URLParam(r, "commentId"), user.UUID, req.Content)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary Удаление комментария
// @Description Доступно только автору
// @Tags Comments
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path string true "UUID комментария"
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/comments/c/{commentId} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), chi.URLParam(r, "commentId"), user.UUID); err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, struct{}{}, "Comment deleted successfully")
}
