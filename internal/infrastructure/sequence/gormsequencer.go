// Package sequence mints prefixed identifiers from the rows already stored.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"weiyue/internal/domain/sequence"
	"weiyue/internal/shared/db"
)

// GormSequencer computes max+1 over the numeric suffixes of existing IDs.
// Callers that insert with the result must run in the same transaction and
// retry on a duplicate key, since two transactions can read the same max.
type GormSequencer struct {
	db *gorm.DB
}

func NewGormSequencer(db *gorm.DB) *GormSequencer {
	return &GormSequencer{db: db}
}

func (s *GormSequencer) Next(ctx context.Context, kind sequence.Kind) (string, error) {
	var ids []string
	tx := db.GetTxFromContext(ctx, s.db)

	// Suffixes are compared numerically in Go; LIKE only narrows the scan.
	err := tx.Table(kind.Table).
		Where(kind.Column+" LIKE ?", kind.Prefix+"%").
		Pluck(kind.Column, &ids).Error
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", kind, err)
	}

	return sequence.NextAfter(kind.Prefix, ids), nil
}
