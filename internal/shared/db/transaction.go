// Package db is the persistence gateway: it scopes every logical operation to
// one transaction and hands that transaction to repositories via the context.
package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// Runner executes fn inside a unit of work. Use cases depend on this
// interface so tests can substitute a pass-through implementation.
type Runner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// Gateway owns the connection pool and opens one transaction per Run.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Run executes fn within a transaction. The transaction is committed only
// when fn returns nil; an error or a panic rolls it back. Either way the
// connection goes back to the pool exactly once. A Run nested inside another
// Run joins the outer transaction.
func (g *Gateway) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback().Error
		if r := recover(); r != nil {
			panic(r)
		}
		if rbErr != nil && err != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	err = tx.Commit().Error
	committed = true
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Conn returns the transaction bound to ctx, or the pooled handle.
func (g *Gateway) Conn(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, g.db)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
