package server

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/greensteps/greensteps-api/internal/agent"
	"github.com/greensteps/greensteps-api/internal/agent/agents"
	"github.com/greensteps/greensteps-api/internal/handler"
	"github.com/greensteps/greensteps-api/internal/middleware"
	"github.com/greensteps/greensteps-api/internal/repository"
	"github.com/greensteps/greensteps-api/internal/service"
	"github.com/greensteps/greensteps-api/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	scheduler   *agent.Scheduler
}

func NewServer(db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	travelRepo := repository.NewTravelRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Optional integrations degrade to nil; the services handle absence.
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("cloudinary storage unavailable, avatar uploads disabled: %v", err)
		imageStorage = nil
	}

	meiliHost := os.Getenv("MEILISEARCH_HOST")
	if meiliHost == "" {
		meiliHost = "http://localhost:7700"
	}
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(os.Getenv("MEILI_MASTER_KEY")))
	searchSvc := service.NewSearchService(meiliClient)

	var llmProvider service.LLMProvider
	geminiModel := os.Getenv("GEMINI_MODEL")
	provider, err := service.NewGeminiProvider(context.Background(), geminiModel)
	if err != nil {
		log.Printf("gemini provider unavailable, recommendations fall back to static tip: %v", err)
	} else {
		llmProvider = provider
	}

	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)
	authSvc := service.NewAuthService(userRepo, searchSvc)
	profileSvc := service.NewProfileService(userRepo, imageStorage, searchSvc)
	travelSvc := service.NewTravelService(travelRepo, userRepo, notificationSvc)
	leaderboardSvc := service.NewLeaderboardService(leaderboardRepo, redisClient)
	recommendationSvc := service.NewRecommendationService(llmProvider)

	authHandler := handler.NewAuthHandler(authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	travelHandler := handler.NewTravelHandler(travelSvc, redisClient)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardSvc, userRepo)
	recommendationHandler := handler.NewRecommendationHandler(travelSvc, recommendationSvc)
	userHandler := handler.NewUserHandler(searchSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)

	scheduler := agent.NewScheduler()
	scheduler.RegisterAgent(agents.NewDailyRolloverAgent(userRepo, leaderboardRepo))
	scheduler.Start()

	router := gin.New()

	setupCORS(router)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Profile routes
		protected.GET("/profile/me", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// Travel log routes
		protected.POST("/travel", travelHandler.LogTravel)
		protected.GET("/travel/today", travelHandler.Today)
		protected.GET("/travel/history", travelHandler.History)

		// AI recommendations
		protected.GET("/recommendations", recommendationHandler.GetRecommendations)

		// Leaderboard routes
		protected.GET("/leaderboard/department", leaderboardHandler.DepartmentLeaderboard)
		protected.GET("/leaderboard/campus", leaderboardHandler.CampusLeaderboard)

		// Member directory
		protected.GET("/users/search", userHandler.SearchUsers)

		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		scheduler:   scheduler,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func setupCORS(router *gin.Engine) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
