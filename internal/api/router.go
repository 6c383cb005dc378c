package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrohelp/agrohelp-api/internal/api/handler"
	"github.com/agrohelp/agrohelp-api/internal/api/middleware"
	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
	"github.com/agrohelp/agrohelp-api/internal/core/service"
	mongodb "github.com/agrohelp/agrohelp-api/internal/infrastructure/db/mongo"
	redisdb "github.com/agrohelp/agrohelp-api/internal/infrastructure/db/redis"
)

const (
	aiRateLimit       = 30
	aiRateLimitWindow = time.Minute
)

// Options carries everything the router needs. External providers are built
// by the caller so they can be faked in tests.
type Options struct {
	DB         *mongo.Database
	Redis      *redis.Client
	JWTSecret  string
	AIProvider ports.AIProvider
	Detector   ports.InsectDetector
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("agrohelp"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	questionRepo := mongodb.NewQuestionRepository(opts.DB)
	advisoryRepo := mongodb.NewAdvisoryRepository(opts.DB)
	marketRepo := mongodb.NewMarketRepository(opts.DB)
	inputRepo := mongodb.NewFarmInputRepository(opts.DB)
	storyRepo := mongodb.NewStoryRepository(opts.DB)

	// --- Services ---
	tokenService := service.NewTokenService(opts.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, opts.Logger)
	userService := service.NewUserService(userRepo, storyRepo, opts.Logger)
	questionService := service.NewQuestionService(questionRepo, userRepo, opts.Logger)
	advisoryService := service.NewAdvisoryService(advisoryRepo, opts.Logger)
	marketService := service.NewMarketService(marketRepo, opts.Logger)
	inputService := service.NewFarmInputService(inputRepo, opts.Logger)
	storyService := service.NewStoryService(storyRepo, userRepo, opts.Logger)
	aiService := service.NewAIService(opts.AIProvider, opts.Logger)
	detectionService := service.NewDetectionService(opts.Detector, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	expertHandler := handler.NewExpertHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService)
	advisoryHandler := handler.NewAdvisoryHandler(advisoryService)
	marketHandler := handler.NewMarketHandler(marketService)
	inputHandler := handler.NewFarmInputHandler(inputService)
	storyHandler := handler.NewStoryHandler(storyService)
	adminHandler := handler.NewAdminHandler(userService, storyService)
	aiHandler := handler.NewAIHandler(aiService)
	insectHandler := handler.NewInsectHandler(detectionService)

	// --- Route middleware ---
	authRequired := middleware.Auth(tokenService, userRepo)
	expertOnly := middleware.RequireRole(domain.RoleExpert)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	limiter := redisdb.NewFixedWindowLimiter(opts.Redis, "ratelimit:ai", aiRateLimit, aiRateLimitWindow)
	aiRateLimited := middleware.RateLimit(limiter, opts.Logger)

	// --- Health, metrics, docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.DB, opts.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authRequired)
	e.PATCH("/auth/profile", authHandler.UpdateProfile, authRequired)
	e.POST("/auth/change-password", authHandler.ChangePassword, authRequired)

	// --- Experts and questions ---
	e.GET("/experts", expertHandler.List)
	e.POST("/questions", questionHandler.Ask, authRequired)
	e.GET("/questions/me", questionHandler.MyQuestions, authRequired)
	e.GET("/expert/questions", questionHandler.Inbox, authRequired, expertOnly)
	e.PATCH("/questions/:id/reply", questionHandler.Reply, authRequired, expertOnly)

	// --- Advisories ---
	e.GET("/advisories", advisoryHandler.List)
	e.POST("/advisories", advisoryHandler.Create, authRequired, adminOnly)
	e.PUT("/advisories/:id", advisoryHandler.Update, authRequired, adminOnly)
	e.DELETE("/advisories/:id", advisoryHandler.Delete, authRequired, adminOnly)

	// --- Markets ---
	e.GET("/markets", marketHandler.List)
	e.POST("/markets", marketHandler.Create, authRequired, adminOnly)
	e.PUT("/markets/:id", marketHandler.Update, authRequired, adminOnly)
	e.DELETE("/markets/:id", marketHandler.Delete, authRequired, adminOnly)

	// --- Farm inputs ---
	e.GET("/inputs", inputHandler.List)
	e.POST("/inputs", inputHandler.Create, authRequired, adminOnly)
	e.PUT("/inputs/:id", inputHandler.Update, authRequired, adminOnly)
	e.DELETE("/inputs/:id", inputHandler.Delete, authRequired, adminOnly)

	// --- Stories ---
	e.GET("/stories/public", storyHandler.PublicList)
	e.GET("/stories/me", storyHandler.MyStories, authRequired)
	e.POST("/stories", storyHandler.Create, authRequired)
	e.PATCH("/stories/:id", storyHandler.Update, authRequired)

	// --- Admin ---
	e.GET("/admin/users", adminHandler.ListUsers, authRequired, adminOnly)
	e.PATCH("/admin/users/:id", adminHandler.UpdateUserRole, authRequired, adminOnly)
	e.DELETE("/admin/users/:id", adminHandler.DeleteUser, authRequired, adminOnly)
	e.GET("/admin/stats", adminHandler.Stats, authRequired, adminOnly)
	e.GET("/admin/stories", adminHandler.ListStories, authRequired, adminOnly)
	e.POST("/admin/stories", adminHandler.CreateStory, authRequired, adminOnly)
	e.PATCH("/admin/stories/:id", adminHandler.UpdateStory, authRequired, adminOnly)
	e.DELETE("/admin/stories/:id", adminHandler.DeleteStory, authRequired, adminOnly)

	// --- AI proxy (public, rate limited per IP) ---
	ai := e.Group("/ai", aiRateLimited)
	ai.POST("/gemini/chat", aiHandler.Chat)
	ai.POST("/gemini/vision", aiHandler.Vision)

	e.POST("/insects/detect", insectHandler.Detect)

	return e
}
