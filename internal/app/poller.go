package app

import (
	"context"
	"log"
	"time"

	"github.com/hawkerdev/hawker/internal/wishlist"
)

const (
	defaultRefreshInterval = 30 * time.Second
	maxBackoff             = 5 * time.Minute
)

// StartPoller launches a background goroutine that reconciles the wishlist
// cache with the server at a fixed cadence, starting with an immediate
// refresh. It returns immediately.
//
// Consecutive failures back off exponentially so an unreachable server is
// not hammered; the first success resets the cadence.
func StartPoller(ctx context.Context, cache *wishlist.Cache, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		failures := 0
		for {
			if err := cache.Refresh(ctx); err != nil {
				failures++
				log.Printf("wishlist reconcile failed (attempt %d): %v", failures, err)
			} else {
				failures = 0
			}

			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff. Zero failures returns the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
