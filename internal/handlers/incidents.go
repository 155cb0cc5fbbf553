package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sentinelrisk/internal/database"
	"sentinelrisk/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncidentHandler — обычный CRUD по инцидентам, без workflow-логики.
type IncidentHandler struct {
	store *database.Store
}

func NewIncidentHandler(store *database.Store) *IncidentHandler {
	return &IncidentHandler{store: store}
}

type incidentInput struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Severity      string     `json:"severity"`
	Status        string     `json:"status"`
	RelatedRiskID *uuid.UUID `json:"related_risk_id"`
}

func (in *incidentInput) validate() (string, bool) {
	in.Title = strings.TrimSpace(in.Title)
	in.Severity = strings.TrimSpace(in.Severity)
	in.Status = strings.TrimSpace(in.Status)
	if in.Title == "" {
		return "title is required", false
	}
	if in.Severity == "" {
		return "severity is required", false
	}
	if in.Status == "" {
		return "status is required", false
	}
	return "", true
}

func parseIncidentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.store.ListIncidents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *IncidentHandler) Get(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}

	in, err := h.store.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *IncidentHandler) Create(c *gin.Context) {
	var in incidentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg, ok := in.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	incident := models.Incident{
		Title:         in.Title,
		Description:   in.Description,
		Severity:      in.Severity,
		Status:        in.Status,
		RelatedRiskID: in.RelatedRiskID,
	}

	if err := h.store.CreateIncident(c.Request.Context(), &incident); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, incident)
}

func (h *IncidentHandler) Update(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}

	var in incidentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg, ok := in.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	incident := models.Incident{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Severity:      in.Severity,
		Status:        in.Status,
		RelatedRiskID: in.RelatedRiskID,
	}

	affected, err := h.store.UpdateIncident(c.Request.Context(), &incident)
	if err != nil {
		writeError(c, err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "incident updated"})
}

func (h *IncidentHandler) Delete(c *gin.Context) {
	id, ok := parseIncidentID(c)
	if !ok {
		return
	}

	affected, err := h.store.DeleteIncident(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "incident deleted"})
}
