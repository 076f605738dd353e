package utils

import "github.com/gin-gonic/gin"

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"detail": msg,
	})
}
