package usecases

import (
	"context"
	"strings"

	"weiyue/internal/application/lifecycle/dto"
	"weiyue/internal/domain/defaultapp"
	"weiyue/internal/domain/recoveryapp"
	"weiyue/internal/domain/review"
	"weiyue/internal/shared/biztime"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

type GetDefaultApplicationUseCase struct {
	apps   defaultapp.Repository
	logger logger.Interface
}

func NewGetDefaultApplicationUseCase(apps defaultapp.Repository, logger logger.Interface) *GetDefaultApplicationUseCase {
	return &GetDefaultApplicationUseCase{apps: apps, logger: logger}
}

func (uc *GetDefaultApplicationUseCase) Execute(ctx context.Context, appID string) (*dto.DefaultApplicationDTO, error) {
	summary, err := uc.apps.GetSummary(ctx, appID)
	if err != nil {
		uc.logger.Errorw("failed to get default application", "app_id", appID, "error", err)
		return nil, errors.NewInternalError("failed to get default application")
	}
	if summary == nil {
		return nil, errors.NewNotFoundError("default application not found", appID)
	}
	return dto.DefaultSummaryToDTO(summary), nil
}

// ListDefaultApplicationsQuery carries the list filters. Dates are
// YYYY-MM-DD in the business timezone and bound whole days.
type ListDefaultApplicationsQuery struct {
	CustomerName string
	Status       string
	DateFrom     string
	DateTo       string
	AuditorName  string
	Page         int
	PageSize     int
}

type ListDefaultApplicationsResult struct {
	Applications []*dto.DefaultApplicationDTO
	Summaries    []*defaultapp.Summary
	Total        int64
}

type ListDefaultApplicationsUseCase struct {
	apps   defaultapp.Repository
	logger logger.Interface
}

func NewListDefaultApplicationsUseCase(apps defaultapp.Repository, logger logger.Interface) *ListDefaultApplicationsUseCase {
	return &ListDefaultApplicationsUseCase{apps: apps, logger: logger}
}

func (uc *ListDefaultApplicationsUseCase) Execute(ctx context.Context, query ListDefaultApplicationsQuery) (*ListDefaultApplicationsResult, error) {
	filter := defaultapp.Filter{
		CustomerName: strings.TrimSpace(query.CustomerName),
		AuditorName:  strings.TrimSpace(query.AuditorName),
		Page:         query.Page,
		PageSize:     query.PageSize,
	}

	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return nil, err
	}
	filter.Status = status

	if query.DateFrom != "" {
		from, err := biztime.ParseDate(query.DateFrom)
		if err != nil {
			return nil, errors.NewValidationError("start_date must be YYYY-MM-DD")
		}
		start := biztime.StartOfDayUTC(from)
		filter.AppliedFrom = &start
	}
	if query.DateTo != "" {
		to, err := biztime.ParseDate(query.DateTo)
		if err != nil {
			return nil, errors.NewValidationError("end_date must be YYYY-MM-DD")
		}
		end := biztime.EndOfDayUTC(to)
		filter.AppliedTo = &end
	}
	if filter.AppliedFrom != nil && filter.AppliedTo != nil && filter.AppliedTo.Before(*filter.AppliedFrom) {
		return nil, errors.NewValidationError("end_date must not be before start_date")
	}

	summaries, total, err := uc.apps.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list default applications", "error", err)
		return nil, errors.NewInternalError("failed to list default applications")
	}

	return &ListDefaultApplicationsResult{
		Applications: dto.DefaultSummariesToDTO(summaries),
		Summaries:    summaries,
		Total:        total,
	}, nil
}

type GetRecoveryApplicationUseCase struct {
	apps   recoveryapp.Repository
	logger logger.Interface
}

func NewGetRecoveryApplicationUseCase(apps recoveryapp.Repository, logger logger.Interface) *GetRecoveryApplicationUseCase {
	return &GetRecoveryApplicationUseCase{apps: apps, logger: logger}
}

func (uc *GetRecoveryApplicationUseCase) Execute(ctx context.Context, appID string) (*dto.RecoveryApplicationDTO, error) {
	summary, err := uc.apps.GetSummary(ctx, appID)
	if err != nil {
		uc.logger.Errorw("failed to get recovery application", "recovery_app_id", appID, "error", err)
		return nil, errors.NewInternalError("failed to get recovery application")
	}
	if summary == nil {
		return nil, errors.NewNotFoundError("recovery application not found", appID)
	}
	return dto.RecoverySummaryToDTO(summary), nil
}

type ListRecoveryApplicationsQuery struct {
	CustomerID   string
	CustomerName string
	Status       string
	Page         int
	PageSize     int
}

type ListRecoveryApplicationsResult struct {
	Applications []*dto.RecoveryApplicationDTO
	Total        int64
}

type ListRecoveryApplicationsUseCase struct {
	apps   recoveryapp.Repository
	logger logger.Interface
}

func NewListRecoveryApplicationsUseCase(apps recoveryapp.Repository, logger logger.Interface) *ListRecoveryApplicationsUseCase {
	return &ListRecoveryApplicationsUseCase{apps: apps, logger: logger}
}

func (uc *ListRecoveryApplicationsUseCase) Execute(ctx context.Context, query ListRecoveryApplicationsQuery) (*ListRecoveryApplicationsResult, error) {
	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return nil, err
	}

	summaries, total, err := uc.apps.List(ctx, recoveryapp.Filter{
		CustomerID:   strings.TrimSpace(query.CustomerID),
		CustomerName: strings.TrimSpace(query.CustomerName),
		Status:       status,
		Page:         query.Page,
		PageSize:     query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list recovery applications", "error", err)
		return nil, errors.NewInternalError("failed to list recovery applications")
	}

	return &ListRecoveryApplicationsResult{
		Applications: dto.RecoverySummariesToDTO(summaries),
		Total:        total,
	}, nil
}

func parseStatusFilter(s string) (*review.Status, error) {
	if s == "" {
		return nil, nil
	}
	status, err := review.NewStatus(s)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return &status, nil
}

