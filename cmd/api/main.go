package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/repositories/postgres"
	"jobboard/internal/services"
	"jobboard/internal/wages"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	jobsRepo := postgres.NewJobsRepository(db)
	wageValidator := wages.NewValidator(cfg.Wages)
	jobService := services.NewJobService(jobsRepo, wageValidator, logger)
	jobHandler := handlers.NewJobHandler(logger, jobService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)

	jobs := r.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.GetJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
