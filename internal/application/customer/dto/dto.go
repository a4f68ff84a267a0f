package dto

import (
	"time"

	"weiyue/internal/domain/customer"
)

type CustomerDTO struct {
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	ExternalRating string    `json:"current_external_rating"`
	Industry       string    `json:"industry_type"`
	Region         string    `json:"region"`
	IsDefault      bool      `json:"is_default"`
	CreateTime     time.Time `json:"create_time"`
	UpdateTime     time.Time `json:"update_time"`
}

type ListCustomersResult struct {
	Customers []*CustomerDTO `json:"customers"`
	Total     int64          `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		CustomerID:     c.ID(),
		CustomerName:   c.Name(),
		ExternalRating: c.ExternalRating(),
		Industry:       c.Industry(),
		Region:         c.Region(),
		IsDefault:      c.IsDefaulted(),
		CreateTime:     c.CreatedAt(),
		UpdateTime:     c.UpdatedAt(),
	}
}

func ToCustomerDTOs(customers []*customer.Customer) []*CustomerDTO {
	out := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDTO(c))
	}
	return out
}
