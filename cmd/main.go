package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/database"
	_ "github.com/itianclub/aptitude-quiz/docs" // Swagger docs - auto-generated
	"github.com/itianclub/aptitude-quiz/internal/auth"
	adminctrl "github.com/itianclub/aptitude-quiz/internal/controller/admin"
	userctrl "github.com/itianclub/aptitude-quiz/internal/controller/user"
	"github.com/itianclub/aptitude-quiz/internal/logger"
	"github.com/itianclub/aptitude-quiz/internal/model"
	"github.com/itianclub/aptitude-quiz/internal/notify"
	"github.com/itianclub/aptitude-quiz/internal/quizbank"
	"github.com/itianclub/aptitude-quiz/internal/repository"
	"github.com/itianclub/aptitude-quiz/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ITian Club Aptitude Quiz API
// @version 1.0
// @description One-shot aptitude quiz with Google login, per-category scoring and an admin leaderboard.
// @contact.name ITian Club
// @contact.email itianclub@gmail.com
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewQuizBank,
		),

		// Identity and notification infrastructure
		fx.Provide(
			auth.NewSessionManager,
			auth.NewGoogleAuthenticator,
			notify.NewSMTPMailer,
			func(mailer *notify.SMTPMailer) *notify.CronDispatcher {
				return notify.NewCronDispatcher(mailer)
			},
			func(dispatcher *notify.CronDispatcher) notify.Dispatcher {
				return dispatcher
			},
		),

		// Repositories layer
		fx.Provide(
			repository.NewParticipantRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizAssemblerService,
			service.NewScoringService,
			service.NewQuizSessionService,
			service.NewLeaderboardService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			adminctrl.NewLeaderboardController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartDispatcher),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewQuizBank loads the configured question bank file, falling back to the
// built-in catalog when none is set.
func NewQuizBank(cfg *config.Config) (*quizbank.Bank, error) {
	if cfg.Quiz.BankPath != "" {
		bank, err := quizbank.LoadFile(cfg.Quiz.BankPath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Quiz.BankPath).Int("questions", bank.Size()).Msg("Question bank loaded from file")
		return bank, nil
	}
	bank := quizbank.DefaultBank()
	log.Info().Int("questions", bank.Size()).Msg("Using built-in question bank")
	return bank, nil
}

func NewGinEngine() *gin.Engine {
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions *auth.SessionManager,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	leaderboardCtrl *adminctrl.LeaderboardController,
) {
	// Identity federation round trip; no session required.
	router.GET("/auth/google/login", authCtrl.GoogleLogin)
	router.GET("/auth/google/callback", authCtrl.GoogleCallback)
	router.GET("/auth/logout", authCtrl.Logout)

	// Participant routes; every step requires an identity session.
	apiGroup := router.Group("/api/v1", auth.RequireAuth(sessions))
	{
		apiGroup.GET("/me", authCtrl.Me)
		apiGroup.POST("/profile", quizCtrl.CompleteProfile)
		apiGroup.GET("/instructions", quizCtrl.Instructions)
		apiGroup.GET("/quiz", quizCtrl.GetQuiz)
		apiGroup.POST("/quiz", quizCtrl.SubmitQuiz)
		apiGroup.GET("/results", quizCtrl.Results)
		apiGroup.POST("/results/email", quizCtrl.EmailResults)
	}

	// Admin routes layer an admin-email check on top of the auth guard.
	adminGroup := router.Group("/api/v1/admin", auth.RequireAuth(sessions), auth.RequireAdmin(cfg))
	{
		adminGroup.GET("/leaderboard", leaderboardCtrl.Leaderboard)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Aptitude quiz server starting on port %s", cfg.Server.Port)
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

// StartDispatcher ties the notification dispatcher to the process lifecycle.
func StartDispatcher(lc fx.Lifecycle, dispatcher *notify.CronDispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return dispatcher.Start()
		},
		OnStop: func(ctx context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Participant{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
