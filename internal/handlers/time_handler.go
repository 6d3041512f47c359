package handlers

import (
	"net/http"
	"time"

	"exam-service/internal/timesync"

	"github.com/gin-gonic/gin"
)

// ServerTime is the public clock-sync endpoint. Clients echo their send
// timestamp so they can halve the round trip when computing their offset.
func ServerTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server_time":            time.Now().UTC(),
		"client_sent_at":         c.Query("sent_at"),
		"resync_interval_seconds": int(timesync.ResyncInterval / time.Second),
		"drift_tolerance_seconds": int(timesync.DriftTolerance / time.Second),
	})
}
