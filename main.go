package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hranalyzer/config"
	"hranalyzer/controllers"
	"hranalyzer/middleware"
	"hranalyzer/parsers"
	"hranalyzer/services"
	"hranalyzer/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.GetAppConfig()
	logger := utils.NewLogger("main")

	// S3 mirroring is optional; without AWS credentials reports stay local.
	s3Service, err := services.NewS3Service()
	if err != nil {
		logger.Warn("S3 not configured, reports stay on local disk")
		s3Service = nil
	}

	credentials := services.NewCredentialStore(cfg.Users)
	jwtService := services.NewJWTService(cfg.JWTSecret)
	reportService := services.NewReportService(cfg.ReportsDir, s3Service)

	loader := parsers.NewDocumentLoader()
	extractor := parsers.NewFactExtractor(parsers.NewProseRecognizer())

	authController := controllers.NewAuthController(credentials, jwtService)
	analysisController := controllers.NewAnalysisController(
		loader,
		extractor,
		services.NewMatcherService(),
		services.NewRoleService(nil),
		reportService,
	)
	reportController := controllers.NewReportController(reportService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.MaxRequestSize(10 << 20))

	limiters := middleware.CreateRateLimiters()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/login",
		limiters["auth"].Limit(),
		middleware.ValidateContentType("application/json"),
		authController.Login,
	)

	protected := api.Group("", middleware.RequireAuth(jwtService), limiters["general"].Limit())
	protected.POST("/analysis",
		limiters["analysis"].Limit(),
		middleware.ValidateContentType("multipart/form-data"),
		analysisController.Analyze,
	)
	protected.GET("/reports/:filename", reportController.Download)

	logger.Info("Starting HR resume analyzer", gin.H{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
