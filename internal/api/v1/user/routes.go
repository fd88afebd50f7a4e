package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users", ListUsers)
	router.POST("/users", CreateUser)
	router.PATCH("/users", UpdateUser)
	router.DELETE("/users", DeleteUser)
	router.GET("/users/transactions/export", ExportTransactions)
}
