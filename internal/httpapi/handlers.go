package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/internal/domain/job"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

// ScrapeHandler serves the per-source scrape endpoints
type ScrapeHandler struct {
	service job.Service
	logger  *logging.Logger
}

func NewScrapeHandler(service job.Service, logger *logging.Logger) *ScrapeHandler {
	return &ScrapeHandler{
		service: service,
		logger:  logger,
	}
}

// Route returns the path serving source
func Route(source domain.Source) string {
	return "/scrape_jobs_" + string(source)
}

// Scrape returns the handler for one job board
func (h *ScrapeHandler) Scrape(source domain.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q domain.SearchQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			writeError(c, domain.ErrMissingParameter)
			return
		}

		req, err := job.Validate(q)
		if err != nil {
			writeError(c, err)
			return
		}

		result, err := h.service.Scrape(c.Request.Context(), source, req)
		if err != nil {
			h.logger.Warn("scrape request failed",
				"source", string(source),
				"request_id", requestID(c),
				"err", err,
			)
			writeError(c, err)
			return
		}

		c.PureJSON(http.StatusOK, result)
	}
}

// Healthz answers liveness probes
func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
