// Package reason models the configurable default and recovery reason lists.
package reason

import (
	"context"
	"fmt"
	"time"

	"weiyue/internal/domain/sequence"
)

// Kind selects one of the two reason lists.
type Kind string

const (
	KindDefault  Kind = "default"
	KindRecovery Kind = "recovery"
)

const MaxContentLength = 255

func (k Kind) IsValid() bool {
	return k == KindDefault || k == KindRecovery
}

func (k Kind) String() string {
	return string(k)
}

// Sequence returns the identifier sequence reasons of this kind are minted from.
func (k Kind) Sequence() sequence.Kind {
	if k == KindRecovery {
		return sequence.KindRecoveryReason
	}
	return sequence.KindDefaultReason
}

// Reason is an entry of a reason list. Reasons are disabled, never deleted.
type Reason struct {
	id        string
	kind      Kind
	content   string
	enabled   bool
	createdAt time.Time
	updatedAt time.Time
}

// NewReason creates an enabled reason. content must already be normalised.
func NewReason(kind Kind, id, content string, now time.Time) (*Reason, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid reason kind: %s", kind)
	}
	if id == "" {
		return nil, fmt.Errorf("reason ID is required")
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	return &Reason{
		id:        id,
		kind:      kind,
		content:   content,
		enabled:   true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReason rebuilds a reason from persistence.
func ReconstructReason(kind Kind, id, content string, enabled bool, createdAt, updatedAt time.Time) *Reason {
	return &Reason{
		id:        id,
		kind:      kind,
		content:   content,
		enabled:   enabled,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reason) ID() string           { return r.id }
func (r *Reason) Kind() Kind           { return r.kind }
func (r *Reason) Content() string      { return r.content }
func (r *Reason) IsEnabled() bool      { return r.enabled }
func (r *Reason) CreatedAt() time.Time { return r.createdAt }
func (r *Reason) UpdatedAt() time.Time { return r.updatedAt }

// Apply sets the fields present in p.
func (r *Reason) Apply(p Patch, now time.Time) {
	if p.Content != nil {
		r.content = *p.Content
	}
	if p.Enabled != nil {
		r.enabled = *p.Enabled
	}
	r.updatedAt = now
}

// Repository persists both reason lists.
type Repository interface {
	// ListEnabled returns enabled reasons, newest first.
	ListEnabled(ctx context.Context, kind Kind) ([]*Reason, error)
	// ListAll returns every reason, newest first.
	ListAll(ctx context.Context, kind Kind) ([]*Reason, error)
	// GetByID returns nil, nil when the reason does not exist.
	GetByID(ctx context.Context, kind Kind, id string) (*Reason, error)
	Create(ctx context.Context, r *Reason) error
	// Update writes the patch and reports how many rows matched.
	Update(ctx context.Context, kind Kind, id string, p Patch, updatedAt time.Time) (int64, error)
}
