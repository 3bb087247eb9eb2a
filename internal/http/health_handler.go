package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"health-report/internal/domain"
	"health-report/internal/events"
	"health-report/internal/service"
)

const (
	analysisIDHeader = "X-Analysis-ID"
	publishTimeout   = 2 * time.Second
)

// HealthHandler mantiene dependencias para los endpoints de evaluacion de salud.
type HealthHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
	publisher   events.Publisher
	publishes   sync.WaitGroup
}

// NewHealthHandler crea el handler; sin publisher los eventos se descartan.
func NewHealthHandler(logger *zap.Logger, assessments *service.AssessmentService, publisher events.Publisher) *HealthHandler {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &HealthHandler{
		logger:      logger,
		assessments: assessments,
		publisher:   publisher,
	}
}

// Assess maneja POST /api/health/assess.
func (h *HealthHandler) Assess(c *gin.Context) {
	var req domain.HealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assess request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.assessments.Assess(c.Request.Context(), req)
	if err != nil {
		h.writeAssessError(c, "assess failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AssessSimple maneja POST /api/health/assess-simple.
func (h *HealthHandler) AssessSimple(c *gin.Context) {
	var req domain.SimpleHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid simple assess request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.assessments.AssessSimple(c.Request.Context(), req)
	if err != nil {
		h.writeAssessError(c, "simple assess failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AssessAdvanced maneja POST /api/health/assess-advanced.
func (h *HealthHandler) AssessAdvanced(c *gin.Context) {
	var req domain.HealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid advanced assess request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.assessments.AssessAdvanced(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		h.logger.Error("advanced assess failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze health"})
		return
	}

	analysisID := uuid.NewString()
	h.publishCompleted(analysisID, result)

	c.Header(analysisIDHeader, analysisID)
	c.JSON(http.StatusOK, result)
}

// Health maneja GET /api/health/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
}

func (h *HealthHandler) writeAssessError(c *gin.Context, msg string, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "model service unavailable"})
}

// publishCompleted emite el evento en segundo plano; un fallo solo se loguea.
func (h *HealthHandler) publishCompleted(analysisID string, result domain.AdvancedHealthAnalysisResult) {
	event := events.NewAnalysisCompleted(analysisID, result)
	h.publishes.Add(1)
	go func() {
		defer h.publishes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := h.publisher.PublishAnalysisCompleted(ctx, event); err != nil {
			h.logger.Warn("publish analysis event failed", zap.Error(err), zap.String("analysis_id", analysisID))
		}
	}()
}

// Wait bloquea hasta que terminan los eventos en vuelo; se llama antes de cerrar el publisher.
func (h *HealthHandler) Wait() {
	h.publishes.Wait()
}
