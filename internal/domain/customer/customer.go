// Package customer holds the corporate customers whose default status is tracked.
package customer

import (
	"context"
	"time"
)

// Customer is created outside the workflow (seed data) and only its default
// flag is changed by audits.
type Customer struct {
	id             string
	name           string
	externalRating string
	industry       string
	region         string
	defaulted      bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCustomer(id, name, externalRating, industry, region string, now time.Time) *Customer {
	return &Customer{
		id:             id,
		name:           name,
		externalRating: externalRating,
		industry:       industry,
		region:         region,
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstructCustomer(id, name, externalRating, industry, region string, defaulted bool, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:             id,
		name:           name,
		externalRating: externalRating,
		industry:       industry,
		region:         region,
		defaulted:      defaulted,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Customer) ID() string             { return c.id }
func (c *Customer) Name() string           { return c.name }
func (c *Customer) ExternalRating() string { return c.externalRating }
func (c *Customer) Industry() string       { return c.industry }
func (c *Customer) Region() string         { return c.region }
func (c *Customer) IsDefaulted() bool      { return c.defaulted }
func (c *Customer) CreatedAt() time.Time   { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time   { return c.updatedAt }

// Filter narrows customer listings.
type Filter struct {
	Name      string
	Defaulted *bool
	Page      int
	PageSize  int
}

type Repository interface {
	// GetByID returns nil, nil when the customer does not exist.
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int64, error)
	// ListDefaulted returns every customer currently flagged as defaulted.
	ListDefaulted(ctx context.Context) ([]*Customer, error)
	// SetDefaulted writes the flag and reports how many rows matched.
	SetDefaulted(ctx context.Context, id string, defaulted bool, at time.Time) (int64, error)
	// Upsert inserts or replaces a customer row.
	Upsert(ctx context.Context, c *Customer) error
}
