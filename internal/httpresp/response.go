package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every 2xx body carries ok:true plus the handler's fields.

func payload(fields gin.H) gin.H {
	out := gin.H{"ok": true}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func OK(c *gin.Context, fields gin.H) {
	c.JSON(http.StatusOK, payload(fields))
}

func Created(c *gin.Context, fields gin.H) {
	c.JSON(http.StatusCreated, payload(fields))
}
