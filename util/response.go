package util

import "github.com/gin-gonic/gin"

// FailedResponse is the error body the frontend expects on every failure.
func FailedResponse(err error) gin.H {
	return gin.H{"message": err.Error()}
}
