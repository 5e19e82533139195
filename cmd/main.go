package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/embarkhq/embark/config"
	"github.com/embarkhq/embark/database"
	_ "github.com/embarkhq/embark/docs" // Swagger docs - auto-generated
	"github.com/embarkhq/embark/internal/controller/admin"
	authctrl "github.com/embarkhq/embark/internal/controller/auth"
	userctrl "github.com/embarkhq/embark/internal/controller/user"
	"github.com/embarkhq/embark/internal/logger"
	"github.com/embarkhq/embark/internal/middleware"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/embarkhq/embark/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Embark Onboarding API
// @version 1.0
// @description Employee onboarding API with gamified questions, XP, levels and badges.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewBadgeRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewProgressionService,
			service.NewAuthService,
			service.NewQuestionService,
			service.NewAnswerService,
			service.NewUserService,
			service.NewBadgeService,
			service.NewAssistantService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			admin.NewQuestionAdminController,
			admin.NewUserAdminController,
			admin.NewBadgeAdminController,
			userctrl.NewOnboardingController,
			userctrl.NewAssistantController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route requests through zerolog instead of Gin's default logger.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authCtrl *authctrl.AuthController,
	questionAdminCtrl *admin.QuestionAdminController,
	userAdminCtrl *admin.UserAdminController,
	badgeAdminCtrl *admin.BadgeAdminController,
	onboardingCtrl *userctrl.OnboardingController,
	assistantCtrl *userctrl.AssistantController,
) {
	// Health check
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	api := router.Group("/api")

	// Public auth routes
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)

	// Authenticated routes
	authed := api.Group("", middleware.AuthRequired(cfg, userRepo))
	{
		authed.GET("/auth/me", authCtrl.Me)

		authed.GET("/questions", onboardingCtrl.GetQuestions)
		authed.POST("/answers", onboardingCtrl.SubmitAnswer)
		authed.GET("/answers/user/:userId", onboardingCtrl.GetUserAnswers)
		authed.GET("/badges", onboardingCtrl.GetBadges)
		authed.PUT("/users/:id", onboardingCtrl.UpdateUser) // self-or-admin, enforced in service
		authed.POST("/chatbot/message", assistantCtrl.Chat)
	}

	// Admin-gated routes
	adminRoutes := authed.Group("", middleware.AdminRequired())
	{
		adminRoutes.POST("/questions", questionAdminCtrl.CreateQuestion)
		adminRoutes.PUT("/questions/reorder", questionAdminCtrl.ReorderQuestions)
		adminRoutes.PUT("/questions/:id", questionAdminCtrl.UpdateQuestion)
		adminRoutes.DELETE("/questions/:id", questionAdminCtrl.DeleteQuestion)

		adminRoutes.GET("/users", userAdminCtrl.GetAllUsers)
		adminRoutes.POST("/users", userAdminCtrl.CreateUser)
		adminRoutes.DELETE("/users/:id", userAdminCtrl.DeleteUser)

		adminRoutes.POST("/badges", badgeAdminCtrl.CreateBadge)
		adminRoutes.PUT("/badges/:id", badgeAdminCtrl.UpdateBadge)
		adminRoutes.DELETE("/badges/:id", badgeAdminCtrl.DeleteBadge)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Onboarding API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.Question{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedDB(db *gorm.DB) error {
	return database.Seed(db)
}
