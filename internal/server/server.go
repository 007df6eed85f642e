// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"clipstream/internal/cache"
	"clipstream/internal/config"
	"clipstream/internal/database"
	"clipstream/internal/middleware"
	"clipstream/internal/models"
	"clipstream/internal/repository"
	"clipstream/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo         repository.UserRepository
	videoRepo        repository.VideoRepository
	commentRepo      repository.CommentRepository
	tweetRepo        repository.TweetRepository
	reactionRepo     repository.ReactionRepository
	subscriptionRepo repository.SubscriptionRepository
	playlistRepo     repository.PlaylistRepository
	historyRepo      repository.WatchHistoryRepository
	laterRepo        repository.WatchLaterRepository

	cascader            *service.Cascader
	videoService        *service.VideoService
	commentService      *service.CommentService
	tweetService        *service.TweetService
	reactionService     *service.ReactionService
	subscriptionService *service.SubscriptionService
	playlistService     *service.PlaylistService
	watchService        *service.WatchService
	dashboardService    *service.DashboardService
	userService         *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	historyRepo := repository.NewWatchHistoryRepository(db)
	laterRepo := repository.NewWatchLaterRepository(db)

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("clipstream-api")

	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   prom,
		userRepo:         userRepo,
		videoRepo:        videoRepo,
		commentRepo:      commentRepo,
		tweetRepo:        tweetRepo,
		reactionRepo:     reactionRepo,
		subscriptionRepo: subscriptionRepo,
		playlistRepo:     playlistRepo,
		historyRepo:      historyRepo,
		laterRepo:        laterRepo,
	}

	server.cascader = service.NewCascader(reactionRepo, commentRepo, historyRepo, laterRepo, playlistRepo)
	server.videoService = service.NewVideoService(videoRepo, userRepo, historyRepo, server.cascader)
	server.commentService = service.NewCommentService(commentRepo, videoRepo, server.cascader)
	server.tweetService = service.NewTweetService(tweetRepo, userRepo, server.cascader)
	server.reactionService = service.NewReactionService(reactionRepo, videoRepo, commentRepo, tweetRepo)
	server.subscriptionService = service.NewSubscriptionService(subscriptionRepo, userRepo, videoRepo)
	server.playlistService = service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	server.watchService = service.NewWatchService(historyRepo, laterRepo, videoRepo)
	server.dashboardService = service.NewDashboardService(videoRepo, subscriptionRepo, userRepo)
	server.userService = service.NewUserService(userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Backwards-compatible legacy route: map /health to readiness
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Clipstream Backend Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, "signup", 3, 10*time.Minute, middleware.FailClosed), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, "login", 10, 5*time.Minute, middleware.FailClosed), s.Login)

	// Public browse routes. OptionalAuth resolves the viewer so per-viewer
	// flags (is_liked, is_subscribed) are scoped to the caller; anonymous
	// requests get them as false.
	videos := api.Group("/videos", middleware.OptionalAuth)
	videos.Get("/", s.GetVideos)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	videos.Get("/:id/comments", s.GetComments)
	videos.Get("/:id/reactions", s.GetVideoReactions)
	videos.Get("/:id", s.GetVideo)

	api.Get("/channels/:name", middleware.OptionalAuth, s.GetChannelByName)
	api.Get("/comments/:id/reactions", middleware.OptionalAuth, s.GetCommentReactions)
	api.Get("/tweets/:id/reactions", middleware.OptionalAuth, s.GetTweetReactions)
	api.Get("/playlists/:id", middleware.OptionalAuth, s.GetPlaylist)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes. /users/me must be registered before the public generic
	// /users/:id routes below so "me" never parses as an ID.
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Put("/me/password", s.ChangePassword)

	// Public user routes (generic, registered after /users/me)
	api.Get("/users/:id/tweets", middleware.OptionalAuth, s.GetChannelTweets)
	api.Get("/users/:id/subscribers", middleware.OptionalAuth, s.GetSubscribers)
	api.Get("/users/:id/playlists", middleware.OptionalAuth, s.GetUserPlaylists)
	api.Get("/users/:id", middleware.OptionalAuth, s.GetUserProfile)

	// Protected video routes
	videosProtected := protected.Group("/videos")
	videosProtected.Post("/", middleware.RateLimit(
		s.redis, "create_video", 5, 5*time.Minute, middleware.FailOpen), s.CreateVideo)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	videosProtected.Post("/:id/like", s.ToggleVideoLike)
	videosProtected.Post("/:id/dislike", s.ToggleVideoDislike)
	videosProtected.Post("/:id/comments", middleware.RateLimit(
		s.redis, "create_comment", 15, time.Minute, middleware.FailOpen), s.CreateComment)
	videosProtected.Patch("/:id/publish", s.TogglePublish)
	videosProtected.Put("/:id", s.UpdateVideo)
	videosProtected.Delete("/:id", s.DeleteVideo)

	// Comment routes
	comments := protected.Group("/comments")
	comments.Post("/:id/like", s.ToggleCommentLike)
	comments.Post("/:id/dislike", s.ToggleCommentDislike)
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Tweet routes
	tweets := protected.Group("/tweets")
	tweets.Post("/", middleware.RateLimit(
		s.redis, "create_tweet", 10, time.Minute, middleware.FailOpen), s.CreateTweet)
	tweets.Post("/:id/like", s.ToggleTweetLike)
	tweets.Post("/:id/dislike", s.ToggleTweetDislike)
	tweets.Put("/:id", s.UpdateTweet)
	tweets.Delete("/:id", s.DeleteTweet)

	// Reaction catalogues
	protected.Get("/likes/videos", s.GetLikedVideos)
	protected.Get("/dislikes/videos", s.GetDislikedVideos)

	// Subscription routes
	subscriptions := protected.Group("/subscriptions")
	subscriptions.Get("/", s.GetSubscribedChannels)
	subscriptions.Get("/:channelId/status", s.GetSubscriptionStatus)
	subscriptions.Post("/:channelId", s.ToggleSubscription)

	// Playlist routes
	playlists := protected.Group("/playlists")
	playlists.Post("/", s.CreatePlaylist)
	playlists.Get("/", s.GetMyPlaylists)
	playlists.Post("/:id/videos/:videoId", s.AddPlaylistVideo)
	playlists.Delete("/:id/videos/:videoId", s.RemovePlaylistVideo)
	playlists.Put("/:id", s.UpdatePlaylist)
	playlists.Delete("/:id", s.DeletePlaylist)

	// Watch history routes
	history := protected.Group("/history")
	history.Get("/", s.GetWatchHistory)
	history.Delete("/:videoId", s.RemoveFromHistory)
	history.Delete("/", s.ClearWatchHistory)

	// Watch later routes
	watchLater := protected.Group("/watch-later")
	watchLater.Get("/", s.GetWatchLater)
	watchLater.Post("/:videoId", s.SaveToWatchLater)
	watchLater.Delete("/:videoId", s.RemoveFromWatchLater)

	// Creator dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", s.GetChannelStats)
	dashboard.Get("/videos", s.GetChannelVideos)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis only backs caching and rate limiting; the API serves
		// reads and writes without it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overallStatus,
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Clipstream API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
