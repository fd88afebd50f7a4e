package main

import (
	"log"

	"github.com/ItsMeSoumo/admindashboard/config"
	"github.com/ItsMeSoumo/admindashboard/internal/api"
	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/models"
	"github.com/ItsMeSoumo/admindashboard/pkg/logger"
)

// @title admindashboard API
// @version 1.0
// @description Back-office API for the trading platform: users, traders, trade history and inbound leads.

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Trader{},
		&models.TradeRecord{},
		&models.Contact{},
		&models.SMMLead{},
		&models.DevLead{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
