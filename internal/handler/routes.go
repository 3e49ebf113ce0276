package handler

import (
	"net/http"
	"video-hosting-server/internal/security"

	"github.com/go-chi/chi/v5"
)

// Handlers : все HTTP обработчики API
type Handlers struct {
	Auth          *AuthenticationHandler
	Users         *UserHandler
	Videos        *VideoHandler
	Subscriptions *SubscriptionHandler
	Comments      *CommentHandler
	Likes         *LikeHandler
	Playlists     *PlaylistHandler
	Dashboard     *DashboardHandler
}

// Mount : регистрирует маршруты /api/v1. Всё, кроме регистрации, входа и ротации токенов,
// закрыто JWTMiddleware
func (h *Handlers) Mount(r chi.Router, authenticator security.Authenticator) {
	guard := security.JWTMiddleware(authenticator)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.Users.RegisterUser)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh-token", h.Auth.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(guard)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/current-user", h.Auth.CurrentUser)
				r.Post("/change-password", h.Users.ChangePassword)
				r.Patch("/update-account", h.Users.UpdateAccount)
				r.Patch("/avatar", h.Users.UpdateAvatar)
				r.Patch("/cover-image", h.Users.UpdateCoverImage)
				r.Get("/c/{username}", h.Users.GetChannelProfile)
				r.Get("/history", h.Users.GetWatchHistory)
			})
		})

		r.Route("/videos", func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Videos.PublishVideo)
			r.Get("/{videoId}", h.Videos.GetVideoByID)
			r.Get("/user/{userId}", h.Videos.ListUserVideos)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Use(guard)
			r.Post("/c/{channelId}", h.Subscriptions.Subscribe)
			r.Get("/c/{channelId}", h.Subscriptions.ListSubscribers)
			r.Get("/u/{subscriberId}", h.Subscriptions.ListSubscribedChannels)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(guard)
			r.Get("/{videoId}", h.Comments.ListComments)
			r.Post("/{videoId}", h.Comments.AddComment)
			r.Patch("/c/{commentId}", h.Comments.UpdateComment)
			r.Delete("/c/{commentId}", h.Comments.DeleteComment)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(guard)
			r.Post("/toggle/v/{videoId}", h.Likes.ToggleVideoLike)
			r.Post("/toggle/c/{commentId}", h.Likes.ToggleCommentLike)
			r.Get("/videos", h.Likes.ListLikedVideos)
			r.Get("/comments", h.Likes.ListLikedComments)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Use(guard)
			r.Post("/", h.Playlists.CreatePlaylist)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(guard)
			r.Get("/stats", h.Dashboard.GetChannelStats)
			r.Get("/videos", h.Dashboard.GetChannelVideos)
		})
	})
}
