package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"time"

	"gamehub/auth"
	"gamehub/cache"
	"gamehub/config"
	"gamehub/db"
	"gamehub/external"
	"gamehub/handlers"
	"gamehub/middleware"
	"gamehub/monitoring"
	"gamehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.NewLogger(cfg.LogLevel, cfg.GinMode)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to the database: ", err)
	}
	logger.Info("Database connected and migrated")

	redisCache, err := cache.New(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache: ", err)
	} else {
		defer redisCache.Close()
	}

	monitoring.InitMetrics()

	authSvc := auth.NewService(cfg.JWTSecret)
	h := handlers.New(
		database,
		redisCache,
		logger,
		authSvc,
		external.NewGiantBombClient(cfg.GiantBombAPIKey),
		external.NewSteamClient(),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestLogger(logger))
	r.Use(monitoring.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDKey},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", monitoring.PrometheusHandler())

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/profile/:id", h.GetProfile)
		api.GET("/profile/:id/connections", h.GetConnections)
		api.GET("/profile/:id/quiz", h.GetQuiz)
		api.GET("/profile/:id/comments", h.ListComments)

		api.GET("/reviews", h.GetReviews)
		api.GET("/search", h.SearchGames)
		api.GET("/games/:id", h.GetGame)
		api.GET("/steam/:appid/players", h.SteamPlayers)
		api.GET("/steam/:appid/news", h.SteamNews)
		api.GET("/tierlist/:userID", h.GetTierList)
		api.GET("/users/:id/followers", h.ListFollowers)
		api.GET("/users/:id/following", h.ListFollowing)
		api.GET("/community/stats", h.CommunityStats)

		protected := api.Group("/")
		protected.Use(auth.Middleware(authSvc, database))
		protected.Use(middleware.RateLimit(redisCache, 300, time.Hour))
		{
			protected.PUT("/profile", h.UpdateProfile)
			protected.POST("/profile/:id/comments", h.CreateComment)
			protected.POST("/reviews", h.UpsertReview)
			protected.POST("/reviews/:gameID/favorite", h.ToggleFavorite)
			protected.POST("/tierlist", h.UpsertTierEntry)
			protected.DELETE("/tierlist/:gameID", h.DeleteTierEntry)
			protected.POST("/users/:id/follow", h.FollowUser)
			protected.DELETE("/users/:id/follow", h.UnfollowUser)
		}
	}

	if cfg.UseHTTPS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		logger.Info("Starting server with HTTPS on port ", cfg.Port)

		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
		}
		server := &http.Server{
			Addr:      ":" + cfg.Port,
			Handler:   r,
			TLSConfig: tlsConfig,
		}
		if err := server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
			logger.Fatal("Failed to start HTTPS server: ", err)
		}
		return
	}

	logger.Info("Starting server with HTTP on port ", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server: ", err)
	}
}
