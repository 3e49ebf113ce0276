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

type UserHandler struct {
	ports.UserService
	upload config.UploadConfig
}

func NewUserHandler(userService ports.UserService, upload config.UploadConfig) *UserHandler {
	return &UserHandler{userService, upload}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description multipart форма: fullName, email, username, password и файлы avatar (обязателен), coverImage
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Полное имя"
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Пароль"
// @Param avatar formData file true "Аватар"
// @Param coverImage formData file false "Обложка канала"
// @Success 201 {object} requestresponse.ApiResponse{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 502 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r, h.upload.MaxMemory); err != nil {
		util.HandleError(w, err)
		return
	}

	req := requestresponse.RegisterRequest{
		FullName: r.FormValue("fullName"),
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := validateStruct(&req); err != nil {
		util.HandleError(w, err)
		return
	}

	avatarPath, err := util.SaveFormFile(r, "avatar", h.upload.TempDir)
	if err != nil {
		util.HandleError(w, apperror.Validation("invalid avatar file"))
		return
	}
	coverImagePath, err := util.SaveFormFile(r, "coverImage", h.upload.TempDir)
	if err != nil {
		util.RemoveFiles(avatarPath)
		util.HandleError(w, apperror.Validation("invalid cover image file"))
		return
	}

	user := &model.User{FullName: req.FullName, Email: req.Email, Username: req.Username}
	created, err := h.UserService.Register(r.Context(), user, req.Password, avatarPath, coverImagePath)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusCreated, created, "User registered successfully")
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description После смены пароля refresh токен отзывается, нужен повторный вход
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/change-password [post]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), user.UUID, req.OldPassword, req.NewPassword); err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, struct{}{}, "Password changed successfully")
}

// UpdateAccount godoc
// @Summary Обновление данных аккаунта
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body requestresponse.UpdateAccountRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/update-account [patch]
func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	var req requestresponse.UpdateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	updated, err := h.UserService.UpdateAccount(r.Context(), user.UUID, req.FullName, req.Email)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, updated, "Account details updated successfully")
}

// UpdateAvatar godoc
// @Summary Замена аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param avatar formData file true "Аватар"
// @Success 200 {object} requestresponse.ApiResponse{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 502 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", model.UserImageAvatar, "Avatar image updated successfully")
}

// UpdateCoverImage godoc
// @Summary Замена обложки канала
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param coverImage formData file true "Обложка"
// @Success 200 {object} requestresponse.ApiResponse{data=model.User}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 502 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", model.UserImageCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(w http.ResponseWriter, r *http.Request, formField string, field model.UserImage, message string) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	if err := parseMultipart(r, h.upload.MaxMemory); err != nil {
		util.HandleError(w, err)
		return
	}

	localPath, err := util.SaveFormFile(r, formField, h.upload.TempDir)
	if err != nil {
		util.HandleError(w, apperror.Validation("invalid "+formField+" file"))
		return
	}

	updated, err := h.UserService.UpdateImage(r.Context(), user.UUID, field, localPath)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, updated, message)
}

// GetChannelProfile godoc
// @Summary Профиль канала
// @Description Счётчики подписчиков и подписок, признак подписки текущего пользователя
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param username path string true "Username канала"
// @Success 200 {object} requestresponse.ApiResponse{data=model.ChannelProfile}
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/c/{username} [get]
func (h *UserHandler) GetChannelProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	profile, err := h.UserService.GetChannelProfile(r.Context(), chi.URLParam(r, "username"), user.UUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	util.WriteResponse(w, http.StatusOK, profile, "User channel fetched successfully")
}

// GetWatchHistory godoc
// @Summary История просмотров
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=[]model.WatchedVideo}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/history [get]
func (h *UserHandler) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	history, err := h.UserService.GetWatchHistory(r.Context(), user.UUID)
	if err != nil {
		util.HandleError(w, err)
		return
	}
	if history == nil {
		history = []model.WatchedVideo{}
	}

	util.WriteResponse(w, http.StatusOK, history, "Watch history fetched successfully")
}
