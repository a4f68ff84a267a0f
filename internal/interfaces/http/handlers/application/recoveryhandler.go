package application

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weiyue/internal/application/lifecycle/usecases"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
	"weiyue/internal/shared/utils"
)

type RecoveryApplicationHandler struct {
	createUC usecases.CreateRecoveryApplicationExecutor
	auditUC  usecases.AuditRecoveryApplicationExecutor
	getUC    usecases.GetRecoveryApplicationExecutor
	listUC   usecases.ListRecoveryApplicationsExecutor
	logger   logger.Interface
}

func NewRecoveryApplicationHandler(
	createUC usecases.CreateRecoveryApplicationExecutor,
	auditUC usecases.AuditRecoveryApplicationExecutor,
	getUC usecases.GetRecoveryApplicationExecutor,
	listUC usecases.ListRecoveryApplicationsExecutor,
	logger logger.Interface,
) *RecoveryApplicationHandler {
	return &RecoveryApplicationHandler{
		createUC: createUC,
		auditUC:  auditUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /api/recovery-applications
func (h *RecoveryApplicationHandler) Create(c *gin.Context) {
	var req CreateRecoveryApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create recovery application", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	applicantID := utils.ActorID(c, req.ApplicantID)
	if applicantID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("applicant_id is required"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(applicantID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toRecoveryResponse(result), "recovery application submitted")
}

// Audit handles POST /api/recovery-applications/:id/audit
func (h *RecoveryApplicationHandler) Audit(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for audit recovery application", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	auditorID := utils.ActorID(c, req.AuditorID)
	if auditorID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("auditor_id is required"))
		return
	}

	result, err := h.auditUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id"), auditorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "audit recorded", toRecoveryResponse(result))
}

// Get handles GET /api/recovery-applications/:id
func (h *RecoveryApplicationHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toRecoveryResponse(result))
}

// List handles GET /api/recovery-applications
func (h *RecoveryApplicationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRecoveryApplicationsQuery{
		CustomerID:   c.Query("customer_id"),
		CustomerName: c.Query("customer_name"),
		Status:       NormalizeStatus(c.Query("status")),
		Page:         p.Page,
		PageSize:     p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, toRecoveryResponses(result.Applications), result.Total, p.Page, p.PageSize)
}
