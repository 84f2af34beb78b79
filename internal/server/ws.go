package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires the table lifecycle and websocket endpoints.
func RegisterRoutes(r *gin.Engine, reg *Registry) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/tables", func(c *gin.Context) {
		t := reg.CreateTable()
		c.JSON(http.StatusOK, gin.H{"tableId": t.ID()})
	})

	r.GET("/ws/:table", func(c *gin.Context) {
		t, ok := reg.Table(c.Param("table"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
			return
		}
		seat, err := strconv.Atoi(c.DefaultQuery("seat", "0"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seat"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			reg.log.Warn("ws upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()
		t.HandleConnection(conn, seat)
	})
}
