package statistics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	httperr "github.com/poststats-lab/project-poststats/internal/core/errors"
	corestats "github.com/poststats-lab/project-poststats/internal/core/statistics"
	"github.com/poststats-lab/project-poststats/internal/core/storage"
)

// RegisterRoutes registers all statistics API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/statistics", s.HandleCompute)
	r.GET("/v1/statistics/catalog", s.HandleCatalog)
	r.GET("/v1/statistics/snapshots/:name", s.HandleLatestSnapshot)
}

// HandleCompute handles GET /v1/statistics
// Query parameters: stat (repeatable), start, end
func (s *Service) HandleCompute(c *gin.Context) {
	var query struct {
		Stats []string  `form:"stat"`
		Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
		End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := s.Compute(c.Request.Context(), Request{
		Stats: query.Stats,
		Start: query.Start,
		End:   query.End,
	})
	if err != nil {
		if errors.Is(err, corestats.ErrUnknownStatistic) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnknownStatisticError,
				Message:   "Unknown statistic",
				Details:   err.Error(),
			})
			return
		}
		if errors.Is(err, ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid statistics request",
				Details:   err.Error(),
			})
			return
		}

		slog.Error("[Statistics] Calculation failed", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to calculate statistics",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleCatalog handles GET /v1/statistics/catalog
// Query parameters: calculator (optional filter)
func (s *Service) HandleCatalog(c *gin.Context) {
	defs, err := s.Definitions(c.Request.Context(), c.Query("calculator"))
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid catalog filter",
				Details:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to list statistics",
		})
		return
	}

	out := make([]DefinitionResponse, 0, len(defs))
	for _, def := range defs {
		out = append(out, DefinitionResponse{
			Name:        def.Name,
			Calculator:  def.Calculator,
			Description: def.Description,
			Fingerprint: def.Fingerprint,
		})
	}
	c.JSON(http.StatusOK, out)
}

// HandleLatestSnapshot handles GET /v1/statistics/snapshots/:name
func (s *Service) HandleLatestSnapshot(c *gin.Context) {
	name := c.Param("name")

	snap, err := s.LatestSnapshot(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, corestats.ErrUnknownStatistic):
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnknownStatisticError,
				Message:   "Unknown statistic",
				Details:   err.Error(),
			})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpSnapshotNotFoundError,
				Message:   "No snapshot has been computed yet",
				Details:   map[string]string{"stat_name": name},
			})
		default:
			slog.Error("[Statistics] Snapshot lookup failed", "error", err, "stat_name", name)
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to load snapshot",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SnapshotResponse{
		ID:         snap.ID,
		StatName:   snap.StatName,
		Start:      snap.StartDate,
		End:        snap.EndDate,
		PostCount:  snap.PostCount,
		ComputedAt: snap.ComputedAt,
		Result:     snap.Result,
	})
}
