package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/database"
	_ "github.com/lshigami/examprep/docs" // Swagger docs
	"github.com/lshigami/examprep/internal/controller"
	adminctrl "github.com/lshigami/examprep/internal/controller/admin"
	userctrl "github.com/lshigami/examprep/internal/controller/user"
	"github.com/lshigami/examprep/internal/logger"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/lshigami/examprep/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Exam Prep Practice API
// @version 1.0
// @description Daily deterministic question sets per faculty, graded submissions, wrong-answer review, streaks and admin question management.
// @description Callers are identified by the X-User-ID, X-User-Faculty and X-User-Role headers set by the upstream auth proxy.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
			func() service.Clock { return time.Now },
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewTestAttemptRepository,
			repository.NewDailySetRepository,
			repository.NewStreakRepository,
			repository.NewStreakLeaderboardRepository,
			repository.NewBookmarkRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewDailySetService,
			service.NewStreakService,
			service.NewTestSubmissionService,
			service.NewWrongPoolService,
			service.NewAttemptService,
			service.NewQuestionService,
			service.NewUserTestService,
			service.NewBookmarkService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuestionController,
			userctrl.NewUserTestController,
			userctrl.NewProgressController,
			userctrl.NewBookmarkController,
		),

		fx.Invoke(database.Migrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

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
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization",
			controller.HeaderUserID, controller.HeaderFaculty, controller.HeaderRole},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(controller.Identity())

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller under /api/v1 and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
	userTestCtrl *userctrl.UserTestController,
	progressCtrl *userctrl.ProgressController,
	bookmarkCtrl *userctrl.BookmarkController,
) {
	api := router.Group("/api/v1")
	adminQuestionCtrl.RegisterRoutes(api)
	userTestCtrl.RegisterRoutes(api)
	progressCtrl.RegisterRoutes(api)
	bookmarkCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam prep API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
