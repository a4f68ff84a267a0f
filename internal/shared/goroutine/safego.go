// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"weiyue/internal/shared/logger"
)

// Detach runs fn in the background with a context that keeps parent's values
// but not its cancellation, bounded by timeout. Used for work that must
// outlive the request that triggered it.
func Detach(parent context.Context, log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), timeout)
	go func() {
		defer cancel()
		defer recoverPanic(log, name)
		fn(ctx)
	}()
}

func recoverPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
