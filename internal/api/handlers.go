package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plantops/linesight/internal/assistant"
	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/database"
	"github.com/plantops/linesight/internal/export"
	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/rules"
	"github.com/plantops/linesight/internal/session"
)

type Handler struct {
	assistant *assistant.Assistant
	db        *database.DB
	sessions  *session.Store
	config    *config.Config
	logger    *zap.Logger
}

func NewHandler(assistant *assistant.Assistant, db *database.DB, sessions *session.Store, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		assistant: assistant,
		db:        db,
		sessions:  sessions,
		config:    cfg,
		logger:    logger,
	}
}

type AnalyzeRequest struct {
	Domain        string `json:"domain" binding:"required"`
	Issue         string `json:"issue"`
	Station       string `json:"station"`
	WindowMinutes int    `json:"window_minutes"`
	UseGenerator  bool   `json:"use_generator"`
	Condense      bool   `json:"condense"`
}

type AnalyzeResponse struct {
	ID     int64                  `json:"id,omitempty"`
	Result *models.AnalysisResult `json:"result"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assistant.Analyze(c.Request.Context(), models.AnalysisRequest{
		Domain:        req.Domain,
		Issue:         req.Issue,
		Station:       req.Station,
		WindowMinutes: req.WindowMinutes,
		UseGenerator:  req.UseGenerator,
		Condense:      req.Condense,
	})
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		// bad input gets 400; a failing upstream collector is not the
		// caller's fault
		status := http.StatusBadGateway
		if errors.Is(err, rules.ErrUnknownDomain) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	analysesTotal.WithLabelValues(req.Domain, result.Assessment.Source).Inc()
	if result.FellBack {
		generatorFallbacks.Inc()
	}
	if result.Assessment.Anomalous {
		anomaliesDetected.WithLabelValues(req.Domain).Inc()
	}

	resp := AnalyzeResponse{Result: result}
	if h.db != nil {
		id, err := h.db.SaveResult(result)
		if err != nil {
			h.logger.Error("failed to persist assessment", zap.Error(err))
		} else {
			resp.ID = id
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListAssessments(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	assessments, err := h.db.ListAssessments(limit, offset)
	if err != nil {
		h.logger.Error("failed to list assessments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, err := h.db.CountAssessments()
	if err != nil {
		h.logger.Error("failed to count assessments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"assessments": assessments,
	})
}

func (h *Handler) GetAssessment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	stored, err := h.db.GetAssessment(id)
	if err != nil {
		h.logger.Error("failed to get assessment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (h *Handler) DeleteAssessment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assessment id"})
		return
	}

	if err := h.db.DeleteAssessment(id); err != nil {
		h.logger.Error("failed to delete assessment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type ExportRequest struct {
	Issue   string `json:"issue" binding:"required"`
	RULDays int    `json:"rul_days"`
}

// Export appends one issue/rul_days record to the configured export
// file and echoes the record back.
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := export.Record{Issue: req.Issue, RULDays: req.RULDays}
	if err := export.AppendFile(h.config.Export.Path, record); err != nil {
		h.logger.Error("export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":     h.config.Export.Path,
		"issue":    record.Issue,
		"rul_days": record.RULDays,
	})
}

// DownloadExport streams every stored assessment as issue/rul_days CSV.
func (h *Handler) DownloadExport(c *gin.Context) {
	assessments, err := h.db.AllAssessments()
	if err != nil {
		h.logger.Error("failed to list assessments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]export.Record, 0, len(assessments))
	for _, a := range assessments {
		records = append(records, export.Record{Issue: a.Issue, RULDays: a.RULDays})
	}

	c.Header("Content-Disposition", "attachment; filename=rul_export.csv")
	c.Header("Content-Type", "text/csv")
	if err := export.Write(c.Writer, records); err != nil {
		h.logger.Error("failed to stream export", zap.Error(err))
	}
}

type SaveScenarioRequest struct {
	Name            string `json:"name" binding:"required"`
	Domain          string `json:"domain"`
	Issue           string `json:"issue"`
	TimeToAttention string `json:"time_to_attention"`
	RULDays         int    `json:"rul_days"`
}

func (h *Handler) SaveScenario(c *gin.Context) {
	var req SaveScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.sessions.Save(c.Param("session"), session.Snapshot{
		Name:            req.Name,
		Domain:          req.Domain,
		Issue:           req.Issue,
		TimeToAttention: req.TimeToAttention,
		RULDays:         req.RULDays,
		SavedAt:         time.Now(),
	})

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scenarios": h.sessions.List(c.Param("session")),
	})
}

func (h *Handler) EndSession(c *gin.Context) {
	h.sessions.Clear(c.Param("session"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) Domains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"domains": rules.Domains()})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now(),
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
