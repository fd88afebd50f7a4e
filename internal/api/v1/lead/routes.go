package lead

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/contact", ListContacts)
	router.POST("/contact", CreateContact)
	router.DELETE("/contact", DeleteContact)

	router.GET("/smm", ListSMMLeads)
	router.POST("/smm", CreateSMMLead)
	router.DELETE("/smm", DeleteSMMLead)

	router.GET("/dev", ListDevLeads)
	router.POST("/dev", CreateDevLead)
	router.DELETE("/dev", DeleteDevLead)
}
