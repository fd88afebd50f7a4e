package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ItsMeSoumo/admindashboard/config"
	_ "github.com/ItsMeSoumo/admindashboard/docs"
	"github.com/ItsMeSoumo/admindashboard/internal/api/v1/lead"
	"github.com/ItsMeSoumo/admindashboard/internal/api/v1/trader"
	"github.com/ItsMeSoumo/admindashboard/internal/api/v1/tradehistory"
	"github.com/ItsMeSoumo/admindashboard/internal/api/v1/user"
	"github.com/ItsMeSoumo/admindashboard/internal/database"
	"github.com/ItsMeSoumo/admindashboard/internal/middleware"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root := router.Group("/")
	{
		user.RegisterRoutes(root)
		trader.RegisterRoutes(root)
		tradehistory.RegisterRoutes(root)
		lead.RegisterRoutes(root)
	}

	return router, nil
}
