package application

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"weiyue/internal/application/lifecycle/usecases"
	"weiyue/internal/infrastructure/export"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
	"weiyue/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportLimit caps the rows written to one workbook.
const exportLimit = 10000

type DefaultApplicationHandler struct {
	createUC usecases.CreateDefaultApplicationExecutor
	auditUC  usecases.AuditDefaultApplicationExecutor
	getUC    usecases.GetDefaultApplicationExecutor
	listUC   usecases.ListDefaultApplicationsExecutor
	logger   logger.Interface
}

func NewDefaultApplicationHandler(
	createUC usecases.CreateDefaultApplicationExecutor,
	auditUC usecases.AuditDefaultApplicationExecutor,
	getUC usecases.GetDefaultApplicationExecutor,
	listUC usecases.ListDefaultApplicationsExecutor,
	logger logger.Interface,
) *DefaultApplicationHandler {
	return &DefaultApplicationHandler{
		createUC: createUC,
		auditUC:  auditUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /api/default-applications
func (h *DefaultApplicationHandler) Create(c *gin.Context) {
	var req CreateDefaultApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create default application", "error", err)
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
	utils.CreatedResponse(c, toDefaultResponse(result), "default application submitted")
}

// Audit handles POST /api/default-applications/:id/audit
func (h *DefaultApplicationHandler) Audit(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for audit default application", "error", err)
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
	utils.SuccessResponse(c, http.StatusOK, "audit recorded", toDefaultResponse(result))
}

// Get handles GET /api/default-applications/:id
func (h *DefaultApplicationHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toDefaultResponse(result))
}

// List handles GET /api/default-applications
func (h *DefaultApplicationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := listQuery(c)
	query.Page, query.PageSize = p.Page, p.PageSize

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, toDefaultResponses(result.Applications), result.Total, p.Page, p.PageSize)
}

// Export handles GET /api/default-applications/export with the List filters.
func (h *DefaultApplicationHandler) Export(c *gin.Context) {
	query := listQuery(c)
	query.Page, query.PageSize = 1, exportLimit

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	content, err := export.DefaultApplications(result.Summaries, exportLabels())
	if err != nil {
		h.logger.Errorw("failed to build export workbook", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to export applications"))
		return
	}

	filename := fmt.Sprintf("default-applications-%s.xlsx", biztime.Format(biztime.NowUTC(), "20060102150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

func listQuery(c *gin.Context) usecases.ListDefaultApplicationsQuery {
	return usecases.ListDefaultApplicationsQuery{
		CustomerName: c.Query("customer_name"),
		Status:       NormalizeStatus(c.Query("status")),
		DateFrom:     c.Query("start_date"),
		DateTo:       c.Query("end_date"),
		AuditorName:  c.Query("auditor_name"),
	}
}
