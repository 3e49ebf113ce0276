package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"video-hosting-server/config"
	_ "video-hosting-server/docs"
	"video-hosting-server/internal/handler"
	"video-hosting-server/internal/repository"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/service"

	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Video-hosting-server
// @version 1.0
// @description REST API видеохостинга: пользователи, видео, подписки, комментарии, лайки, плейлисты и панель автора

// @host localhost:8000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.ChannelProfile)*time.Second)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}
	mediaService := service.NewMediaService(s3Service, nil, time.Duration(cfg.TTL.PresignedURL)*time.Second)

	accessCodec, err := security.NewTokenCodecFromTTL(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Ошибка настройки access токенов: %v", err)
	}
	refreshCodec, err := security.NewTokenCodecFromTTL(cfg.JWT.RefreshSecret, cfg.JWT.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("Ошибка настройки refresh токенов: %v", err)
	}

	authService := service.NewAuthenticationService(db, userRepo, accessCodec, refreshCodec)
	userService := service.NewUserService(db, userRepo, subscriptionRepo, cacheRepo, mediaService)
	videoService := service.NewVideoService(db, videoRepo, mediaService)
	subscriptionService := service.NewSubscriptionService(db, subscriptionRepo, userRepo, cacheRepo)
	commentService := service.NewCommentService(db, commentRepo, videoRepo)
	likeService := service.NewLikeService(db, likeRepo, videoRepo, commentRepo)
	playlistService := service.NewPlaylistService(db, playlistRepo)
	dashboardService := service.NewDashboardService(db, dashboardRepo, videoRepo)

	cookies := handler.CookieSettings{
		Secure:     cfg.Cookie.Secure,
		Domain:     cfg.Cookie.Domain,
		AccessTTL:  accessCodec.Expiry(),
		RefreshTTL: refreshCodec.Expiry(),
	}

	handlers := &handler.Handlers{
		Auth:          handler.NewAuthenticationHandler(authService, cookies),
		Users:         handler.NewUserHandler(userService, cfg.Upload),
		Videos:        handler.NewVideoHandler(videoService, cfg.Upload),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionService),
		Comments:      handler.NewCommentHandler(commentService),
		Likes:         handler.NewLikeHandler(likeService),
		Playlists:     handler.NewPlaylistHandler(playlistService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	handlers.Mount(router, authService)

	runServer(ctx, srv)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
