package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/surveybot/internal/config"
	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/metrics"
	"github.com/heartmarshall/surveybot/pkg/ctxutil"
)

// RateLimiter implements per-user fixed windows, tracked separately for each
// action class. Operators get their own threshold and window.
type RateLimiter struct {
	cfg  config.RateLimitConfig
	now  func() time.Time
	stop chan struct{}
	once sync.Once

	mu      sync.Mutex
	windows map[windowKey]*window
}

type windowKey struct {
	userID int64
	class  string
}

type window struct {
	start time.Time
	count int
	span  time.Duration
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := newRateLimiter(cfg, time.Now)
	go rl.cleanup(cfg.SweepInterval)
	return rl
}

func newRateLimiter(cfg config.RateLimitConfig, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		now:     now,
		stop:    make(chan struct{}),
		windows: make(map[windowKey]*window),
	}
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow records one request and reports whether it fits in the caller's
// current window. A window that has run out restarts with this request.
func (rl *RateLimiter) Allow(userID int64, class string, privileged bool) bool {
	limit, span := rl.cfg.MaxRequests, rl.cfg.Window
	if privileged {
		limit, span = rl.cfg.AdminMaxRequests, rl.cfg.AdminWindow
	}

	now := rl.now()
	key := windowKey{userID: userID, class: class}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) > span {
		rl.windows[key] = &window{start: now, count: 1, span: span}
		return true
	}
	if w.count >= limit {
		return false
	}
	w.count++
	return true
}

// Sweep drops windows that ended more than the retention period ago and
// returns how many were removed.
func (rl *RateLimiter) Sweep() int {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, w := range rl.windows {
		if now.Sub(w.start.Add(w.span)) > rl.cfg.Retention {
			delete(rl.windows, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked windows.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// Limit returns middleware that rejects actions over the caller's limit with
// domain.ErrRateLimited. classify maps an action to its limiter class; an
// empty class is not limited.
func (rl *RateLimiter) Limit(classify func(domain.Action) string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, action domain.Action) error {
			class := classify(action)
			if class == "" {
				return next.Handle(ctx, action)
			}
			if !rl.Allow(action.UserID, class, ctxutil.IsAdminCtx(ctx)) {
				metrics.RateLimited.WithLabelValues(class).Inc()
				return domain.ErrRateLimited
			}
			return next.Handle(ctx, action)
		})
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}
