package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSendTimeout bounds a single background notification
const DefaultSendTimeout = 30 * time.Second

// Notifier runs fire-and-forget work after a request has been answered
type Notifier interface {
	// Go runs fn in the background. Failures are logged, never returned.
	Go(task string, fn func(ctx context.Context) error)
	// Wait blocks until every task started so far has finished
	Wait()
}

// AsyncNotifier runs each task on its own goroutine with a timeout
type AsyncNotifier struct {
	wg      sync.WaitGroup
	timeout time.Duration
	logger  zerolog.Logger
}

// NewAsyncNotifier creates a notifier whose tasks are cancelled after timeout
func NewAsyncNotifier(timeout time.Duration, logger zerolog.Logger) *AsyncNotifier {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &AsyncNotifier{timeout: timeout, logger: logger}
}

// Go implements Notifier
func (n *AsyncNotifier) Go(task string, fn func(ctx context.Context) error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				n.logger.Error().Str("task", task).Str("panic", fmt.Sprint(r)).Msg("Background task panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		start := time.Now()
		if err := fn(ctx); err != nil {
			n.logger.Error().Err(err).Str("task", task).Msg("Background task failed")
			return
		}
		n.logger.Debug().Str("task", task).Dur("took", time.Since(start)).Msg("Background task finished")
	}()
}

// Wait implements Notifier
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}

// Shutdown waits for pending tasks until ctx is done
func (n *AsyncNotifier) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pending notifications abandoned: %w", ctx.Err())
	}
}
