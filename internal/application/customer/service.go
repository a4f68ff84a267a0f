// Package customer serves read access to corporate customers.
package customer

import (
	"context"
	"strings"

	"weiyue/internal/application/customer/dto"
	domainCustomer "weiyue/internal/domain/customer"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListQuery struct {
	Name      string
	Defaulted *bool
	Page      int
	PageSize  int
}

type Service struct {
	repo   domainCustomer.Repository
	logger logger.Interface
}

func NewService(repo domainCustomer.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Get(ctx context.Context, id string) (*dto.CustomerDTO, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get customer", "customer_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get customer")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found", id)
	}
	return dto.ToCustomerDTO(c), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (*dto.ListCustomersResult, error) {
	page, pageSize := normalizePage(q.Page, q.PageSize)
	customers, total, err := s.repo.List(ctx, domainCustomer.Filter{
		Name:      strings.TrimSpace(q.Name),
		Defaulted: q.Defaulted,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewInternalError("failed to list customers")
	}
	return &dto.ListCustomersResult{
		Customers: dto.ToCustomerDTOs(customers),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *Service) ListDefaulted(ctx context.Context) ([]*dto.CustomerDTO, error) {
	customers, err := s.repo.ListDefaulted(ctx)
	if err != nil {
		s.logger.Errorw("failed to list defaulted customers", "error", err)
		return nil, errors.NewInternalError("failed to list defaulted customers")
	}
	return dto.ToCustomerDTOs(customers), nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
