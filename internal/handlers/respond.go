package handlers

import (
	"log"
	"net/http"

	"exam-service/internal/apperror"

	"github.com/gin-gonic/gin"
)

// writeError maps service error kinds onto HTTP statuses. Ownership failures
// surface as 404 so callers cannot distinguish "not yours" from "not there",
// and policy violations are logged before being rejected.
func writeError(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperror.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperror.KindInvalidState:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperror.KindPolicyViolation:
		log.Printf("policy violation on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		// Storage detail stays in the log, not the body.
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func callerID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
