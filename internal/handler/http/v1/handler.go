package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vish-34/PulseIQ/internal/config"
	"github.com/vish-34/PulseIQ/internal/models"
	"github.com/vish-34/PulseIQ/internal/service"
)

type Handler struct {
	crashService service.Orchestrator
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(crashService service.Orchestrator, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		crashService: crashService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Trigger crash response
// @Description Submit a sensor reading and run the full emergency response protocol. Blocks until the protocol finishes. Requires trigger token.
// @Tags Trigger
// @Accept json
// @Produce json
// @Security TriggerTokenAuth
// @Param reading body CrashTriggerRequest true "Sensor reading"
// @Success 200 {object} CrashTriggerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} CrashTriggerResponse "Incident cancelled mid-protocol"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trigger/crash [post]
func (h *Handler) triggerCrash(c *gin.Context) {
	var input CrashTriggerRequest
	log := h.logger.WithField("method", "triggerCrash")

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

	h.runProtocol(c, DTOToCrashReading(input))
}

// @Summary Trigger demo crash response
// @Description Run the full emergency response protocol with a built-in demo reading that passes all three confirmations. Requires trigger token.
// @Tags Trigger
// @Produce json
// @Security TriggerTokenAuth
// @Success 200 {object} CrashTriggerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} CrashTriggerResponse "Incident cancelled mid-protocol"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trigger/crash [get]
func (h *Handler) triggerCrashDemo(c *gin.Context) {
	h.runProtocol(c, demoReading())
}

// demoReading - встроенный сценарий: показания, проходящие все три
// подтверждения триангуляции
func demoReading() *models.CrashReading {
	after := 45.0
	return &models.CrashReading{
		UserID:         "user_001",
		GForce:         5.2,
		HeartRate:      145,
		HeartRateAfter: &after,
		VoiceDecibels:  0.0,
		GPS:            models.GPSLocation{Lat: 19.1680, Lon: 72.8500},
		BloodType:      "O+",
		Allergies:      []string{"penicillin"},
		UserConsent:    true,
	}
}

func (h *Handler) runProtocol(c *gin.Context, reading *models.CrashReading) {
	log := h.logger.WithField("method", "runProtocol")

	outcome, err := h.crashService.HandleCrash(c.Request.Context(), reading)
	if err != nil {
		log.WithError(err).Error("Crash protocol failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if outcome.Outcome == service.OutcomeCancelled {
		c.JSON(http.StatusConflict, OutcomeToTriggerResponse(outcome))
		return
	}
	c.JSON(http.StatusOK, OutcomeToTriggerResponse(outcome))
}

// @Summary Cancel an incident
// @Description Request cancellation of an active incident. Requires trigger token.
// @Tags Incidents
// @Produce json
// @Security TriggerTokenAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} CancelResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found or already finished"
// @Router /incidents/{id}/cancel [post]
func (h *Handler) cancelIncident(c *gin.Context) {
	id := c.Param("id")
	if !h.crashService.CancelIncident(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found or already finished"})
		return
	}
	c.JSON(http.StatusOK, CancelResponse{IncidentID: id, Cancelled: true})
}

// @Summary Cancel all incidents
// @Description Request cancellation of all active incidents. Requires trigger token.
// @Tags Incidents
// @Produce json
// @Security TriggerTokenAuth
// @Success 200 {object} CancelAllResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/cancel-all [post]
func (h *Handler) cancelAll(c *gin.Context) {
	count := h.crashService.CancelAll()
	c.JSON(http.StatusOK, CancelAllResponse{CancelledCount: count})
}

// @Summary List active incidents
// @Description Get identifiers of all incidents currently in flight. Requires trigger token.
// @Tags Incidents
// @Produce json
// @Security TriggerTokenAuth
// @Success 200 {object} ActiveIncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/active [get]
func (h *Handler) listActiveIncidents(c *gin.Context) {
	active := h.crashService.ActiveIncidents()
	c.JSON(http.StatusOK, ActiveIncidentsResponse{Active: active, Count: len(active)})
}

// @Summary Get incident status
// @Description Get a snapshot of the current incident state. Requires trigger token.
// @Tags Incidents
// @Produce json
// @Security TriggerTokenAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.IncidentStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [get]
func (h *Handler) getIncidentStatus(c *gin.Context) {
	log := h.logger.WithField("method", "getIncidentStatus")
	status, err := h.crashService.IncidentStatus(c.Param("id"))
	if err != nil {
		log.WithError(err).Warn("Incident lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Get incident transition log
// @Description Get the most recent transition log entries of an incident. Requires trigger token.
// @Tags Incidents
// @Produce json
// @Security TriggerTokenAuth
// @Param id path string true "Incident ID"
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} IncidentLogsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/logs [get]
func (h *Handler) getIncidentLogs(c *gin.Context) {
	log := h.logger.WithField("method", "getIncidentLogs")
	id := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.crashService.IncidentLogs(id, limit)
	if err != nil {
		log.WithError(err).Warn("Incident lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, IncidentLogsResponse{IncidentID: id, Logs: logs})
}

// @Summary Health check
// @Description Check service health and incident counters.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:          "ok",
		ActiveIncidents: len(h.crashService.ActiveIncidents()),
		TotalIncidents:  h.crashService.IncidentCount(),
	})
}
