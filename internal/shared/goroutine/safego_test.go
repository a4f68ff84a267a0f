package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weiyue/internal/shared/logger"
)

type ctxKey struct{}

func TestDetach_RecoversPanic(t *testing.T) {
	done := make(chan struct{})
	Detach(context.Background(), logger.NewDiscard(), "panicker", time.Second, func(context.Context) {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestDetach_OutlivesParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "v"))
	cancel()

	got := make(chan error, 1)
	vals := make(chan any, 1)
	Detach(parent, logger.NewDiscard(), "detached", time.Second, func(ctx context.Context) {
		vals <- ctx.Value(ctxKey{})
		got <- ctx.Err()
	})

	select {
	case err := <-got:
		require.NoError(t, err)
		assert.Equal(t, "v", <-vals)
	case <-time.After(time.Second):
		t.Fatal("detached goroutine did not run")
	}
}
