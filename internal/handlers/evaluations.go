package handlers

import (
	"net/http"

	"sentinelrisk/internal/risk"

	"github.com/gin-gonic/gin"
)

type evaluationInput struct {
	Severity      int `json:"severity"`
	Likelihood    int `json:"likelihood"`
	Detectability int `json:"detectability"`
}

// CreateEvaluation создаёт (или перезаписывает — связь 1:1) оценку риска.
// Score считает сервер, клиентское значение не принимается.
func (h *RiskHandler) CreateEvaluation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in evaluationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	for _, v := range []int{in.Severity, in.Likelihood, in.Detectability} {
		if !risk.RatingInRange(v) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "severity, likelihood and detectability must be between 1 and 5",
			})
			return
		}
	}

	ev, err := h.workflow.Evaluate(c.Request.Context(), id, in.Severity, in.Likelihood, in.Detectability)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *RiskHandler) GetEvaluation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ev, err := h.workflow.Evaluation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}
