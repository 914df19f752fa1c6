package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_response_system/internal/config"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

const serviceName = "Emergency Response System with JamAI"

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Submit an emergency report
// @Description Submit an emergency report for AI analysis. Creates an ACTIVE incident with analysis, resources and a dispatch plan.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body ReportRequest true "Emergency report"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/report [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input ReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := DTOToReportModel(input)
	incident, err := h.incidentService.SubmitReport(c.Request.Context(), report)
	if err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(incident))
}

// @Summary Get incident by ID
// @Description Get a single incident with its current analysis and status.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/incident/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("incident_id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get all tracked incidents
// @Description Get the count and summaries of all tracked incidents in creation order.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ActiveIncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/active-incidents [get]
func (h *Handler) activeIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "activeIncidents")

	summaries, err := h.incidentService.ActiveIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ActiveIncidentsResponse{
		TotalActive: len(summaries),
		Incidents:   summaries,
	})
}

// @Summary Update incident status
// @Description Move an incident to a new lifecycle status. Transitions follow the status table; RESOLVED and CANCELLED are terminal.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/incident/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateStatus").WithField("incident_id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateStatus(c.Request.Context(), id, models.IncidentStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrIncidentNotFound):
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			log.WithError(err).Warn("Unknown incident status")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status, must be one of ACTIVE, IN_PROGRESS, RESOLVED, CANCELLED"})
		case errors.Is(err, models.ErrInvalidTransition):
			log.WithError(err).Warn("Illegal status transition")
			c.JSON(http.StatusConflict, gin.H{"error": "illegal status transition"})
		default:
			log.WithError(err).Error("Failed to update incident status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateStatusResponse{
		IncidentID: incident.ID,
		Status:     string(incident.Status),
		UpdatedAt:  incident.UpdatedAt,
	})
}

// @Summary Update incident analysis
// @Description Merge additional details into the original report and re-run the AI analysis and dispatch plan.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param details body map[string]any true "Additional details to merge"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency/update-analysis/{id} [post]
func (h *Handler) updateAnalysis(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAnalysis").WithField("incident_id", id)

	var details map[string]any
	if err := c.ShouldBindJSON(&details); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	incident, err := h.incidentService.UpdateAnalysis(c.Request.Context(), id, details)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident analysis in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get application health status
// @Description Get health status of the application and the count of tracked incidents
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	summaries, err := h.incidentService.ActiveIncidents(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "healthCheck").WithError(err).Error("Failed to count incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:          "healthy",
		Service:         serviceName,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		ActiveIncidents: len(summaries),
	})
}

// @Summary API index
// @Description Root endpoint with the list of available endpoints
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /api/emergency/report":               "Submit emergency report",
			"GET /api/emergency/incident/{id}":         "Get incident details",
			"GET /api/emergency/active-incidents":      "Get all active incidents",
			"PUT /api/emergency/incident/{id}/status":  "Update incident status",
			"POST /api/emergency/update-analysis/{id}": "Update analysis with new information",
			"GET /api/health":                          "Health check",
		},
	})
}
