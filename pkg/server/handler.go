package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/core/allocator"
	"github.com/jakechorley/term-timetable/pkg/core/services"
	"github.com/jakechorley/term-timetable/pkg/db"
)

// ScheduleHandler serves schedule generation
type ScheduleHandler struct {
	cfg     *config.Config
	store   db.CurriculumStore
	metrics *Metrics
	logger  *zap.Logger
}

// Generate allocates a term for the curriculum posted in the body
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid schedule payload: %w", err))
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	params, err := req.RunParams()
	if err != nil {
		badRequest(c, err)
		return
	}

	result, err := services.GenerateScheduleWith(c.Request.Context(), db.NewStaticStore(&req.CurriculumFile), params, h.logger)
	h.respondWithResult(c, result, err)
}

// Current allocates a term from the configured curriculum source
func (h *ScheduleHandler) Current(c *gin.Context) {
	if h.store == nil || h.cfg == nil {
		respondError(c, http.StatusNotFound, codeNotFound, errors.New("no curriculum source is configured"))
		return
	}

	result, err := services.GenerateSchedule(c.Request.Context(), h.store, h.cfg, h.logger)
	h.respondWithResult(c, result, err)
}

func (h *ScheduleHandler) respondWithResult(c *gin.Context, result *services.GenerateScheduleResult, err error) {
	if err != nil {
		if errors.Is(err, allocator.ErrInvalidWeeks) {
			badRequest(c, err)
			return
		}
		h.logger.Error("Schedule generation failed", zap.Error(err))
		internalError(c, err)
		return
	}

	h.metrics.ObserveSchedule(result.Outcome)
	respond(c, http.StatusOK, newScheduleResponse(result), scheduleMeta(result))
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
