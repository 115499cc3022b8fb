package main

import (
	"log"
	"net/http"

	"crowdreport-be/config"
	"crowdreport-be/controllers"
	"crowdreport-be/middlewares"
	"crowdreport-be/routes"
	"crowdreport-be/services"
	"crowdreport-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	reportStore := store.New()
	if cfg.SeedDemoData {
		if err := store.SeedDemoData(reportStore); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		logrus.WithField("reports", reportStore.Len()).Info("Seeded demo data")
	}

	reportService := services.NewReportService(reportStore)
	voteEngine := services.NewVoteEngine(reportStore)
	statsAggregator := services.NewStatsAggregator(reportStore, cfg.StatsAvgResponseTime, cfg.StatsTopHotspots)
	reportController := controllers.NewReportController(reportService, voteEngine, statsAggregator)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-User-ID"},
	}))

	routes.ReportRoutes(r, reportController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	logrus.WithField("port", cfg.Port).Info("Starting crowdreport API")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
