package main

import (
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lminimalist/promesse-finance-api/config"
	"github.com/lminimalist/promesse-finance-api/database"
	_ "github.com/lminimalist/promesse-finance-api/docs"
	"github.com/lminimalist/promesse-finance-api/routes"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().AnErr("Error loading configuration: ", err)
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if sysConfigs.Config.RedisUrl != "" {
		database.InitRedis(sysConfigs.Config.RedisUrl)
	}

	_, db := database.InitMongoClient(sysConfigs.Config)

	router := routes.SetupRouter(db, sysConfigs.Config)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().AnErr("Server failed to start: ", err)
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
