package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nexori/backend/config"
	"github.com/nexori/backend/database"
	_ "github.com/nexori/backend/docs" // Swagger docs - auto-generated
	adminctrl "github.com/nexori/backend/internal/controller/admin"
	userctrl "github.com/nexori/backend/internal/controller/user"
	"github.com/nexori/backend/internal/logger"
	"github.com/nexori/backend/internal/middleware"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/repository"
	"github.com/nexori/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Nexori Survey API
// @version 1.0
// @description Survey backend: admins define surveys with scored questions and result ranges, respondents submit answers and receive a recommendation resolved from their total score.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
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
			repository.NewSurveyRepository,
			repository.NewResponseRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewSurveyAdminService,
			service.NewSurveyQueryService,
			service.NewSubmissionService,
			service.NewAnalyticsService,
			service.NewUserAdminService,
		),

		// Middleware and API Controllers Layer
		fx.Provide(
			middleware.NewAuthMiddleware,
			adminctrl.NewAdminSurveyController,
			adminctrl.NewAdminUserController,
			userctrl.NewSurveyController,
			userctrl.NewAuthController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route request logs through zerolog instead of Gin's default logger.
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
	authMw *middleware.AuthMiddleware,
	adminSurveyCtrl *adminctrl.AdminSurveyController,
	adminUserCtrl *adminctrl.AdminUserController,
	surveyCtrl *userctrl.SurveyController,
	authCtrl *userctrl.AuthController,
) {
	api := router.Group("/api/v1")

	api.GET("/health", func(ctx *gin.Context) {
		log.Info().Msg("Health check accessed")
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/token", authCtrl.Login)
		authGroup.GET("/me", authMw.RequireAuth(), authCtrl.Me)
	}

	// Public survey reads and submissions
	api.GET("/surveys", surveyCtrl.GetAllSurveys)
	api.GET("/surveys/:survey_id", surveyCtrl.GetSurveyDetails)
	api.POST("/surveys/:survey_id/responses", authMw.OptionalAuth(), surveyCtrl.SubmitSurveyResponse)

	// Every mutating or sensitive route goes through the same admin gate.
	adminGroup := api.Group("", authMw.RequireAuth(), authMw.RequireAdmin())
	{
		adminGroup.POST("/surveys", adminSurveyCtrl.CreateSurvey)
		adminGroup.PUT("/surveys/:survey_id", adminSurveyCtrl.UpdateSurvey)
		adminGroup.DELETE("/surveys/:survey_id", adminSurveyCtrl.DeleteSurvey)
		adminGroup.GET("/surveys/:survey_id/responses", adminSurveyCtrl.GetSurveyResponses)
		adminGroup.GET("/responses/:response_id", adminSurveyCtrl.GetResponse)
		adminGroup.GET("/analytics/surveys", adminUserCtrl.GetSurveyAnalytics)
		adminGroup.GET("/admin/users", adminUserCtrl.ListUsers)
		adminGroup.PATCH("/admin/users/:user_id/role", adminUserCtrl.UpdateUserRole)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Nexori Survey API server starting on port %s", cfg.Server.Port)
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
		&model.Survey{},
		&model.Question{},
		&model.ResultRange{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
