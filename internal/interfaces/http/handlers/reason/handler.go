// Package reason serves the default and recovery reason lists. One Handler
// instance is bound to one list.
package reason

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	reasonApp "weiyue/internal/application/reason"
	"weiyue/internal/application/reason/dto"
	domainReason "weiyue/internal/domain/reason"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
	"weiyue/internal/shared/utils"
)

type Registry interface {
	ListEnabled(ctx context.Context, kind domainReason.Kind) ([]*dto.ReasonDTO, error)
	ListAll(ctx context.Context, kind domainReason.Kind) ([]*dto.ReasonDTO, error)
	Get(ctx context.Context, kind domainReason.Kind, id string) (*dto.ReasonDTO, error)
	Create(ctx context.Context, kind domainReason.Kind, content string) (*dto.ReasonDTO, error)
	Update(ctx context.Context, kind domainReason.Kind, id string, cmd reasonApp.UpdateCommand) (*dto.ReasonDTO, error)
	SetEnabled(ctx context.Context, kind domainReason.Kind, id string, enabled bool) (*dto.ReasonDTO, error)
}

type Handler struct {
	registry Registry
	kind     domainReason.Kind
	logger   logger.Interface
}

func NewHandler(registry Registry, kind domainReason.Kind, logger logger.Interface) *Handler {
	return &Handler{registry: registry, kind: kind, logger: logger}
}

// CreateReasonRequest accepts the content under either key.
type CreateReasonRequest struct {
	Content       string `json:"content"`
	ReasonContent string `json:"reason_content"`
}

func (r CreateReasonRequest) text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.ReasonContent
}

// UpdateReasonRequest keeps is_enabled undecoded so 0/1 and true/false are
// both accepted and anything else is rejected by the registry. An absent key
// leaves the flag alone; an explicit null is rejected.
type UpdateReasonRequest struct {
	Content       *string         `json:"content"`
	ReasonContent *string         `json:"reason_content"`
	IsEnabled     json.RawMessage `json:"is_enabled"`
}

func (r UpdateReasonRequest) ToCommand() (reasonApp.UpdateCommand, error) {
	content := r.Content
	if content == nil {
		content = r.ReasonContent
	}
	cmd := reasonApp.UpdateCommand{Content: content}
	if r.IsEnabled == nil {
		return cmd, nil
	}
	if string(bytes.TrimSpace(r.IsEnabled)) == "null" {
		return cmd, errors.NewValidationError(domainReason.ErrInvalidFlag.Error())
	}
	if err := json.Unmarshal(r.IsEnabled, &cmd.Enabled); err != nil {
		return cmd, errors.NewValidationError(domainReason.ErrInvalidFlag.Error())
	}
	return cmd, nil
}

// ListEnabled handles GET /api/<kind>-reasons
func (h *Handler) ListEnabled(c *gin.Context) {
	result, err := h.registry.ListEnabled(c.Request.Context(), h.kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAll handles GET /api/<kind>-reasons/all
func (h *Handler) ListAll(c *gin.Context) {
	result, err := h.registry.ListAll(c.Request.Context(), h.kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/<kind>-reasons/:id
func (h *Handler) Get(c *gin.Context) {
	result, err := h.registry.Get(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /api/<kind>-reasons
func (h *Handler) Create(c *gin.Context) {
	var req CreateReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create reason", "kind", h.kind, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.registry.Create(c.Request.Context(), h.kind, req.text())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "reason created successfully")
}

// Update handles PATCH and PUT /api/<kind>-reasons/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update reason", "kind", h.kind, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		h.logger.Warnw("invalid is_enabled for update reason", "kind", h.kind, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registry.Update(c.Request.Context(), h.kind, c.Param("id"), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "reason updated successfully", result)
}

// Enable handles POST /api/<kind>-reasons/:id/enable
func (h *Handler) Enable(c *gin.Context) {
	h.setEnabled(c, true)
}

// Disable handles POST /api/<kind>-reasons/:id/disable and DELETE /api/<kind>-reasons/:id.
// Reasons are referenced by applications and are never removed.
func (h *Handler) Disable(c *gin.Context) {
	h.setEnabled(c, false)
}

func (h *Handler) setEnabled(c *gin.Context, enabled bool) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("reason ID is required"))
		return
	}
	result, err := h.registry.SetEnabled(c.Request.Context(), h.kind, id, enabled)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	msg := "reason disabled"
	if enabled {
		msg = "reason enabled"
	}
	utils.SuccessResponse(c, http.StatusOK, msg, result)
}
