package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobspy-proxy/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindMissingParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error()})
}
