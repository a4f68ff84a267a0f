package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/interfaces/http/handlers/application"
	"weiyue/internal/shared/utils"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsHandler serves the fixed value lists used by form dropdowns.
type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// Severity handles GET /api/options/severity
func (h *OptionsHandler) Severity(c *gin.Context) {
	options := make([]Option, 0, len(defaultapp.Severities))
	for _, s := range defaultapp.Severities {
		options = append(options, Option{Value: s.String(), Label: application.SeverityLabel(s)})
	}
	utils.SuccessResponse(c, http.StatusOK, "", options)
}

// Status handles GET /api/options/status
func (h *OptionsHandler) Status(c *gin.Context) {
	statuses := []review.Status{review.StatusPending, review.StatusApproved, review.StatusRejected}
	options := make([]Option, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, Option{Value: s.String(), Label: application.StatusLabel(s)})
	}
	utils.SuccessResponse(c, http.StatusOK, "", options)
}
