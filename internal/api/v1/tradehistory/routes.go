package tradehistory

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tradeHistory", ListTradeHistory)
	router.POST("/tradeHistory", CreateTrade)
	router.DELETE("/tradeHistory", DeleteTrade)
	router.GET("/tradeHistory/export", ExportTradeHistory)
}
