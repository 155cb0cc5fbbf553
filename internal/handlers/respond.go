package handlers

import (
	"errors"
	"log"
	"net/http"

	"sentinelrisk/internal/risk"

	"github.com/gin-gonic/gin"
)

// writeError — единая точка маппинга доменных ошибок на HTTP-статусы.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, risk.ErrRiskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "risk not found"})
	case errors.Is(err, risk.ErrEvaluationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
	case errors.Is(err, risk.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "status transition not allowed"})
	case errors.Is(err, risk.ErrTransitionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "risk status changed concurrently, retry"})
	default:
		// ошибки хранилища наружу не детализируем
		log.Printf("storage error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
