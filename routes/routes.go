package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lminimalist/promesse-finance-api/client"
	"github.com/lminimalist/promesse-finance-api/controller"
	"github.com/lminimalist/promesse-finance-api/model"
	"github.com/lminimalist/promesse-finance-api/repository"
	"github.com/lminimalist/promesse-finance-api/scheduler"
	"github.com/lminimalist/promesse-finance-api/service"
)

const defaultFetchTimeout = 30 * time.Second

func SetupRouter(db *mongo.Database, cfg *model.EnvConfig) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// --- 1. Clients ---
	fetchTimeout := defaultFetchTimeout
	if cfg.FetchTimeoutSeconds > 0 {
		fetchTimeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	}
	yahooClient := client.NewYahooClient(fetchTimeout)

	// --- 2. Repositories ---
	assetRepo := repository.NewAssetRepository(db)

	// --- 3. Services (Dependency Injection) ---
	assetSvc := service.NewAssetService(assetRepo, yahooClient)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewAssetController(assetSvc).RegisterRoutes(api)
	}

	// --- 5. Background refresh (optional) ---
	if cfg.RefreshCron != "" {
		refresher, err := scheduler.NewRefresher(cfg.RefreshCron, assetSvc, assetRepo)
		if err != nil {
			log.Fatal().Msgf("Invalid refresh cron %q: %v", cfg.RefreshCron, err)
		}
		refresher.Start()
	}

	return r
}
