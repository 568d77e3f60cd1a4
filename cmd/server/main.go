package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/JoshD94/triviargh/internal/config"
	"github.com/JoshD94/triviargh/internal/database"
	"github.com/JoshD94/triviargh/internal/genai"
	"github.com/JoshD94/triviargh/internal/logger"
	"github.com/JoshD94/triviargh/internal/metrics"
	"github.com/JoshD94/triviargh/internal/middleware"
	"github.com/JoshD94/triviargh/internal/routes"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	timeout, err := time.ParseDuration(cfg.GeminiTimeoutSeconds + "s")
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}
	generator := genai.NewClient(genai.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: timeout,
	})
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; generation will always fall back")
	}

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Env))
	r.Use(metrics.GinMiddleware())
	routes.Register(r, db, generator)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
