package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds carried in every error body alongside the human-readable
// message, so clients can branch without string matching.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindInvalidID  = "invalid_id"
	KindStore      = "store"
)

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": message, "kind": kind})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
