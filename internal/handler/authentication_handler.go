package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"video-hosting-server/internal/apperror"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookies CookieSettings
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, cookies CookieSettings) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService, cookies}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход по username или email и паролю. Токены возвращаются в теле и в HttpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse{data=requestresponse.LoginData}
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		util.HandleError(w, err)
		return
	}

	if req.Username == "" && req.Email == "" {
		util.HandleError(w, apperror.Validation("username or email is required",
			apperror.FieldError{Field: "username", Message: "username or email is required"}))
		return
	}

	session, err := h.AuthenticationService.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	h.cookies.setTokens(w, session.Tokens)
	util.WriteResponse(w, http.StatusOK, requestresponse.LoginData{
		User:         session.User,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}, "User logged in successfully")
}

// Logout godoc
// @Summary Выход
// @Description Отзывает refresh токен пользователя и очищает cookie
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), user.UUID); err != nil {
		util.HandleError(w, err)
		return
	}

	h.cookies.clearTokens(w)
	util.WriteResponse(w, http.StatusOK, struct{}{}, "User logged out")
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Ротация пары токенов. Refresh токен берётся из cookie или из тела запроса
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse{data=requestresponse.TokensData}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/refresh-token [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" && r.Body != nil {
		var req requestresponse.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			util.HandleError(w, apperror.Validation("invalid request body"))
			return
		}
		refreshToken = req.RefreshToken
	}

	session, err := h.AuthenticationService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		util.HandleError(w, err)
		return
	}

	h.cookies.setTokens(w, session.Tokens)
	util.WriteResponse(w, http.StatusOK, requestresponse.TokensData{
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	}, "Access token refreshed")
}

// CurrentUser godoc
// @Summary Текущий пользователь
// @Description Пользователь, которому принадлежит access токен
// @Tags Authentication
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} requestresponse.ApiResponse{data=model.User}
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/users/current-user [get]
func (h *AuthenticationHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		util.HandleError(w, err)
		return
	}
	util.WriteResponse(w, http.StatusOK, user, "Current user fetched successfully")
}
