package handlers

import (
	"net/http"
	"strings"

	"sentinelrisk/internal/database"
	"sentinelrisk/internal/models"
	"sentinelrisk/internal/risk"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RiskHandler — JSON-обработчики по рискам. Хранилище и workflow
// внедряются конструктором, без пакетных глобалов.
type RiskHandler struct {
	store    *database.Store
	workflow *risk.Service
}

func NewRiskHandler(store *database.Store, workflow *risk.Service) *RiskHandler {
	return &RiskHandler{store: store, workflow: workflow}
}

type riskInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Impact           int    `json:"impact"`
	Probability      int    `json:"probability"`
	ExternalID       string `json:"external_id"`
	Category         string `json:"category"`
	Location         string `json:"location"`
	Regulation       string `json:"regulation"`
	ControlMeasureID string `json:"control_measure_id"`
}

func (in *riskInput) validate() (string, bool) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return "title is required", false
	}
	if !risk.RatingInRange(in.Impact) {
		return "impact must be between 1 and 5", false
	}
	if !risk.RatingInRange(in.Probability) {
		return "probability must be between 1 and 5", false
	}
	return "", true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk id"})
		return uuid.Nil, false
	}
	return id, true
}

// ====== CRUD ======

func (h *RiskHandler) List(c *gin.Context) {
	risks, err := h.store.ListRisks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, risks)
}

func (h *RiskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r, err := h.store.GetRisk(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RiskHandler) Create(c *gin.Context) {
	var in riskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg, ok := in.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// новый риск всегда стартует в Identified, статус из payload игнорируем
	r := models.Risk{
		Title:            in.Title,
		Description:      in.Description,
		Impact:           in.Impact,
		Probability:      in.Probability,
		Status:           models.StatusIdentified,
		ExternalID:       in.ExternalID,
		Category:         in.Category,
		Location:         in.Location,
		Regulation:       in.Regulation,
		ControlMeasureID: in.ControlMeasureID,
	}

	if err := h.store.CreateRisk(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RiskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in riskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg, ok := in.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	r := models.Risk{
		ID:               id,
		Title:            in.Title,
		Description:      in.Description,
		Impact:           in.Impact,
		Probability:      in.Probability,
		ExternalID:       in.ExternalID,
		Category:         in.Category,
		Location:         in.Location,
		Regulation:       in.Regulation,
		ControlMeasureID: in.ControlMeasureID,
	}

	if err := h.store.UpdateRisk(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.store.GetRisk(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RiskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteRisk(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "risk deleted"})
}

// ====== WORKFLOW ======

type updateStatusPayload struct {
	Status models.RiskStatus `json:"status"`
}

func (h *RiskHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !payload.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	r, err := h.workflow.ApplyStatusTransition(c.Request.Context(), id, payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RiskHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// сначала убеждаемся, что риск существует — иначе 404
	if _, err := h.store.GetRiskStatus(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	entries, err := h.store.ListHistory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *RiskHandler) Critical(c *gin.Context) {
	ranking, err := h.workflow.CriticalRisks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
