package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/dashboard-backend/docs"
	httphandlers "github.com/rafabene/dashboard-backend/internal/handlers/http"
	"github.com/rafabene/dashboard-backend/internal/handlers/middleware"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/config"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/i18n"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/logging"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
	"github.com/rafabene/dashboard-backend/internal/services"
)

// @title           Dashboard Backend API
// @version         1.0
// @description     Backend do dashboard: autenticação com dois fatores, usuários, perfis e blog

// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Bearer token obtido no login

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting dashboard backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	postRepo := postgres.NewPostRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar infraestrutura de segurança
	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	totp := security.NewTOTPManager(cfg.TwoFactor.Issuer)

	// Inicializar services
	authService := services.NewAuthService(userRepo, uow, hasher, tokens, totp, logger)
	userService := services.NewUserService(userRepo, hasher, logger)
	profileService := services.NewProfileService(profileRepo, userRepo, uow, logger)
	postService := services.NewPostService(postRepo, tagRepo, categoryRepo, uow, logger)
	categoryService := services.NewCategoryService(categoryRepo, uow, logger)
	tagService := services.NewTagService(tagRepo, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	profileHandler := httphandlers.NewProfileHandler(profileService)
	postHandler := httphandlers.NewPostHandler(postService)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService, tagService)
	commentHandler := httphandlers.NewCommentHandler(commentService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	// Health checks
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Documentação OpenAPI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)

			// Rotas que aceitam o token pendente do segundo fator
			pending := auth.Group("", authMiddleware.AllowPendingTwoFactor())
			{
				pending.GET("/me", authHandler.Me)
				pending.POST("/2fa/setup", authHandler.SetupTwoFactor)
				pending.POST("/2fa/enable", authHandler.EnableTwoFactor)
				pending.POST("/2fa/verify", authHandler.VerifyTwoFactor)
			}
		}

		// Users (admin)
		users := api.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.PATCH("/:id/toggle-active", userHandler.ToggleActive)
			users.PATCH("/:id/toggle-admin", userHandler.ToggleAdmin)
		}

		// Profiles
		profiles := api.Group("/profiles", authMiddleware.RequireAuth())
		{
			profiles.GET("/me", profileHandler.GetMyProfile)
			profiles.PUT("/me", profileHandler.UpdateMyProfile)
			profiles.GET("/:user_id", profileHandler.GetProfile)
			profiles.PUT("/:user_id", profileHandler.UpdateProfile)
		}

		// Posts, categorias, tags e comentários
		posts := api.Group("/posts", authMiddleware.RequireAuth())
		{
			posts.GET("", postHandler.ListPosts)
			posts.POST("", postHandler.CreatePost)

			posts.GET("/tags", categoryHandler.ListTags)

			posts.GET("/categories", categoryHandler.ListCategories)
			posts.POST("/categories", categoryHandler.CreateCategory)
			posts.GET("/categories/:id", categoryHandler.GetCategory)
			posts.PUT("/categories/:id", categoryHandler.UpdateCategory)
			posts.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			posts.GET("/comments/all", commentHandler.ListAllComments)
			posts.PUT("/comments/:id", commentHandler.UpdateComment)
			posts.DELETE("/comments/:id", commentHandler.DeleteComment)

			posts.GET("/:id", postHandler.GetPost)
			posts.PUT("/:id", postHandler.UpdatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.PATCH("/:id/toggle-publish", postHandler.TogglePublish)
			posts.GET("/:id/comments", commentHandler.ListComments)
			posts.POST("/:id/comments", commentHandler.CreateComment)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
