package mappers

import (
	"weiyue/internal/domain/customer"
	"weiyue/internal/infrastructure/persistence/models"
)

// CustomerToModel converts a customer entity to its row.
func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		CustomerID:            c.ID(),
		CustomerName:          c.Name(),
		CurrentExternalRating: c.ExternalRating(),
		IndustryType:          c.Industry(),
		Region:                c.Region(),
		IsDefault:             c.IsDefaulted(),
		CreateTime:            c.CreatedAt(),
		UpdateTime:            c.UpdatedAt(),
	}
}

// CustomerToDomain converts a customer row to the entity.
func CustomerToDomain(m *models.CustomerModel) *customer.Customer {
	if m == nil {
		return nil
	}
	return customer.ReconstructCustomer(
		m.CustomerID,
		m.CustomerName,
		m.CurrentExternalRating,
		m.IndustryType,
		m.Region,
		m.IsDefault,
		m.CreateTime,
		m.UpdateTime,
	)
}

func CustomersToDomain(ms []models.CustomerModel) []*customer.Customer {
	out := make([]*customer.Customer, 0, len(ms))
	for i := range ms {
		out = append(out, CustomerToDomain(&ms[i]))
	}
	return out
}
