package trader

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/traders", ListTraders)
	router.POST("/traders", CreateTrader)
	router.DELETE("/traders", DeleteTraderByQuery)
	router.GET("/traders/:id", GetTrader)
	router.PUT("/traders/:id", UpdateTrader)
	router.DELETE("/traders/:id", DeleteTrader)
}
