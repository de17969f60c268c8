package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adsapp "github.com/kenhgt247/me-be-sub001/internal/application/ads"
	blogapp "github.com/kenhgt247/me-be-sub001/internal/application/blog"
	forumapp "github.com/kenhgt247/me-be-sub001/internal/application/forum"
	gameapp "github.com/kenhgt247/me-be-sub001/internal/application/game"
	identityapp "github.com/kenhgt247/me-be-sub001/internal/application/identity"
	libraryapp "github.com/kenhgt247/me-be-sub001/internal/application/library"
	"github.com/kenhgt247/me-be-sub001/internal/application/suggest"
	domainads "github.com/kenhgt247/me-be-sub001/internal/domain/ads"
	domainidentity "github.com/kenhgt247/me-be-sub001/internal/domain/identity"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/auth"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/config"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/logger"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/persistence"
	"github.com/kenhgt247/me-be-sub001/internal/infrastructure/storage"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/handler"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/middleware"
	"github.com/kenhgt247/me-be-sub001/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting nuoicon backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist falls back to in-memory storage when Redis is not
	// reachable; revocations then do not survive a restart.
	var blacklist auth.TokenBlacklist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewMemoryTokenBlacklist()
	} else {
		log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	}
	cancelPing()

	// Object storage for library documents. Without credentials the stub
	// keeps uploads working in development.
	var objectStorage libraryapp.ObjectStorageService
	if cfg.Storage.Bucket != "" && cfg.Storage.AccessKeyID != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(bucketCtx); err != nil {
			cancelBucket()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancelBucket()
		objectStorage = s3Storage
		log.Info("Object storage initialized", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		log.Warn("Object storage not configured, using stub storage")
		objectStorage = storage.NewStubObjectStorage()
	}

	// Title suggester backed by Gemini when enabled
	var titleSuggester suggest.TitleSuggester = suggest.NoopSuggester{}
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := suggest.NewGeminiSuggester(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, log)
		if err != nil {
			log.Warn("Failed to initialize title suggester, suggestions disabled", zap.Error(err))
		} else {
			titleSuggester = gemini
			log.Info("Title suggester initialized", zap.String("model", cfg.AI.Model))
		}
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	expertAppRepo := persistence.NewGormExpertApplicationRepository(db.DB)
	questionRepo := persistence.NewGormQuestionRepository(db.DB)
	answerRepo := persistence.NewGormAnswerRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	rotationRepo := persistence.NewGormRotationConfigRepository(db.DB)
	gameRepo := persistence.NewGormGameRepository(db.DB)
	gameQuestionRepo := persistence.NewGormGameQuestionRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	expertService := identityapp.NewExpertService(expertAppRepo, userRepo, log)
	questionService := forumapp.NewQuestionService(questionRepo, answerRepo, categoryRepo, log)
	answerService := forumapp.NewAnswerService(answerRepo, questionRepo, userRepo, log)
	categoryService := forumapp.NewCategoryService(categoryRepo, log)
	reportService := forumapp.NewReportService(reportRepo, questionRepo, answerRepo, commentRepo, log)
	liveSearchService := forumapp.NewLiveSearchService(questionRepo, log)
	postService := blogapp.NewPostService(postRepo, commentRepo, log)
	commentService := blogapp.NewCommentService(commentRepo, postRepo, log)
	documentService := libraryapp.NewDocumentService(documentRepo, objectStorage, cfg.Storage.PresignExpiry, log)
	reviewService := libraryapp.NewReviewService(reviewRepo, documentRepo, log)
	adsService := adsapp.NewService(campaignRepo, rotationRepo, domainads.NewSelector(), cfg.Ads.DefaultInterval, log)
	gameService := gameapp.NewService(gameRepo, gameQuestionRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	expertHandler := handler.NewExpertHandler(expertService)
	questionHandler := handler.NewQuestionHandler(questionService, liveSearchService)
	answerHandler := handler.NewAnswerHandler(answerService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reportHandler := handler.NewReportHandler(reportService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	documentHandler := handler.NewDocumentHandler(documentService, reviewService)
	adsHandler := handler.NewAdsHandler(adsService)
	gameHandler := handler.NewGameHandler(gameService)
	suggestHandler := handler.NewSuggestHandler(titleSuggester)
	adminHandler := handler.NewAdminHandler(userService, questionService, answerService, commentService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Public GET endpoints carry optional identity so viewers see their own
	// hidden or pending content; everything mutating requires a valid token.
	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})
	optionalAuth := middleware.OptionalJWTAuthMiddleware(jwtService)
	requireAdmin := middleware.RequireRoles(string(domainidentity.RoleAdmin))

	// Auth domain
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", requireAuth, authHandler.Logout)
	authRoutes.POST("/change-password", requireAuth, authHandler.ChangePassword)

	// User profiles
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.GET("/me", requireAuth, userHandler.Me)
	userRoutes.PUT("/me", requireAuth, userHandler.UpdateProfile)
	userRoutes.GET("/:publicId", userHandler.GetByPublicID)

	// Expert applications
	expertRoutes := router.NewDomainGroup("experts", "/experts")
	expertRoutes.POST("/applications", requireAuth, expertHandler.Apply)
	expertRoutes.GET("/applications/me", requireAuth, expertHandler.GetOwn)

	// Forum domain (questions, answers, categories, reports)
	forumRoutes := router.NewDomainGroup("forum", "/forum")
	forumRoutes.GET("/questions", optionalAuth, questionHandler.List)
	forumRoutes.GET("/questions/search", optionalAuth, questionHandler.LiveSearch)
	forumRoutes.GET("/questions/:slug", optionalAuth, questionHandler.GetBySlug)
	forumRoutes.POST("/questions", requireAuth, questionHandler.Ask)
	forumRoutes.PUT("/questions/:id", requireAuth, questionHandler.Update)
	forumRoutes.POST("/questions/:id/resolve", requireAuth, questionHandler.Resolve)
	forumRoutes.POST("/questions/:id/answers", requireAuth, answerHandler.Post)
	forumRoutes.PUT("/answers/:id", requireAuth, answerHandler.Update)
	forumRoutes.POST("/answers/:id/verify", requireAuth, answerHandler.Verify)
	forumRoutes.GET("/categories", categoryHandler.List)
	forumRoutes.GET("/categories/:slug", categoryHandler.GetBySlug)
	forumRoutes.POST("/reports", requireAuth, reportHandler.Create)

	// Blog domain (posts, comments)
	blogRoutes := router.NewDomainGroup("blog", "/blog")
	blogRoutes.GET("/posts", postHandler.List)
	blogRoutes.GET("/posts/:slug", optionalAuth, postHandler.GetBySlug)
	blogRoutes.GET("/comments/post/:id", commentHandler.ListByPost)
	blogRoutes.POST("/comments/post/:id", requireAuth, commentHandler.Add)
	blogRoutes.PUT("/comments/:id", requireAuth, commentHandler.Update)

	// Library domain (documents, reviews)
	libraryRoutes := router.NewDomainGroup("library", "/library")
	libraryRoutes.GET("/documents", documentHandler.List)
	libraryRoutes.GET("/documents/:slug", optionalAuth, documentHandler.GetBySlug)
	libraryRoutes.POST("/documents", requireAuth, documentHandler.RequestUpload)
	libraryRoutes.PUT("/documents/:id", requireAuth, documentHandler.Update)
	libraryRoutes.DELETE("/documents/:id", requireAuth, documentHandler.Delete)
	libraryRoutes.POST("/documents/:id/download", documentHandler.Download)
	libraryRoutes.GET("/reviews", documentHandler.ListReviews)
	libraryRoutes.POST("/documents/:id/reviews", requireAuth, documentHandler.SubmitReview)

	// Quiz games
	gameRoutes := router.NewDomainGroup("games", "/games")
	gameRoutes.GET("", gameHandler.List)
	gameRoutes.GET("/:slug/play", gameHandler.Play)
	gameRoutes.POST("/answers", gameHandler.Answer)

	// Ad serving (management lives under /admin)
	adsRoutes := router.NewDomainGroup("ads", "/ads")
	adsRoutes.GET("/serve/:placement", adsHandler.Serve)

	// AI-assisted suggestions
	suggestRoutes := router.NewDomainGroup("suggest", "/suggest")
	suggestRoutes.POST("/titles", requireAuth, suggestHandler.SuggestTitles)

	// Admin domain: member management, moderation, editorial and campaign tools
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(requireAuth, requireAdmin)
	adminRoutes.GET("/users", adminHandler.ListUsers)
	adminRoutes.POST("/users/:id/unlock", adminHandler.UnlockUser)
	adminRoutes.POST("/users/:id/deactivate", adminHandler.DeactivateUser)
	adminRoutes.GET("/questions", adminHandler.ListQuestionsForModeration)
	adminRoutes.POST("/questions/:id/hide", adminHandler.HideQuestion)
	adminRoutes.POST("/questions/:id/restore", adminHandler.RestoreQuestion)
	adminRoutes.POST("/answers/:id/hide", adminHandler.HideAnswer)
	adminRoutes.POST("/comments/:id/hide", adminHandler.HideComment)
	adminRoutes.GET("/reports", reportHandler.List)
	adminRoutes.POST("/reports/:id/resolve", reportHandler.Resolve)
	adminRoutes.GET("/expert-applications", expertHandler.List)
	adminRoutes.POST("/expert-applications/:id/review", expertHandler.Review)
	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.PUT("/categories/:id/active", categoryHandler.SetActive)
	adminRoutes.GET("/posts", postHandler.ListForEditors)
	adminRoutes.POST("/posts", postHandler.Create)
	adminRoutes.PUT("/posts/:id", postHandler.Update)
	adminRoutes.POST("/posts/:id/publish", postHandler.Publish)
	adminRoutes.POST("/posts/:id/archive", postHandler.Archive)
	adminRoutes.DELETE("/posts/:id", postHandler.Delete)
	adminRoutes.GET("/documents", documentHandler.ListByStatus)
	adminRoutes.POST("/documents/:id/publish", documentHandler.Publish)
	adminRoutes.POST("/documents/:id/reject", documentHandler.Reject)
	adminRoutes.GET("/campaigns", adsHandler.ListCampaigns)
	adminRoutes.POST("/campaigns", adsHandler.CreateCampaign)
	adminRoutes.PUT("/campaigns/:id", adsHandler.UpdateCampaign)
	adminRoutes.PUT("/campaigns/:id/active", adsHandler.SetCampaignActive)
	adminRoutes.DELETE("/campaigns/:id", adsHandler.DeleteCampaign)
	adminRoutes.GET("/rotations", adsHandler.ListRotations)
	adminRoutes.PUT("/rotations/:placement", adsHandler.ConfigureRotation)
	adminRoutes.GET("/games", gameHandler.ListForEditors)
	adminRoutes.POST("/games", gameHandler.Create)
	adminRoutes.PUT("/games/:id", gameHandler.Update)
	adminRoutes.POST("/games/:id/publish", gameHandler.Publish)
	adminRoutes.POST("/games/:id/unpublish", gameHandler.Unpublish)
	adminRoutes.GET("/games/:id/questions", gameHandler.ListQuestions)
	adminRoutes.POST("/games/:id/questions", gameHandler.AddQuestion)
	adminRoutes.PUT("/games/questions/:questionId", gameHandler.UpdateQuestion)
	adminRoutes.DELETE("/games/questions/:questionId", gameHandler.RemoveQuestion)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/health", systemHandler.Health)

	// Register all domain groups
	r.Register(authRoutes).
		Register(userRoutes).
		Register(expertRoutes).
		Register(forumRoutes).
		Register(blogRoutes).
		Register(libraryRoutes).
		Register(gameRoutes).
		Register(adsRoutes).
		Register(suggestRoutes).
		Register(adminRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing redis client", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for the root health check endpoint
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
