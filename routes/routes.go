package routes

import (
	"net/http"

	"meditrack/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MediTrack API is running")
	})
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend server is running!"})
	})

	controllers.Patient(r)
	controllers.Doctor(r)
}
