package resource

import (
	"context"
	"sync/atomic"

	"github.com/hupe1980/wordbloom/internal/conv"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for dictionary fetching.
type Config struct {
	// MaxConcurrentFetches bounds how many dictionary sources are fetched at once.
	// If 0, fetches are unbounded.
	MaxConcurrentFetches int64

	// MemoryLimitBytes bounds the bytes of fetched dictionaries buffered in memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// IOLimitBytesPerSec caps the read throughput of throttled readers.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller enforces fetch concurrency, buffered memory and IO throughput.
// A nil *Controller imposes no limits.
type Controller struct {
	cfg Config

	fetchSem *semaphore.Weighted // nil if unlimited

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	ioLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentFetches > 0 {
		c.fetchSem = semaphore.NewWeighted(cfg.MaxConcurrentFetches)
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), conv.ClampInt64ToInt(cfg.IOLimitBytesPerSec))
	}

	return c
}

// Config returns the limits the controller was created with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireFetch reserves a fetch slot, blocking until one is free or ctx is done.
func (c *Controller) AcquireFetch(ctx context.Context) error {
	if c == nil || c.fetchSem == nil {
		return ctx.Err()
	}
	return c.fetchSem.Acquire(ctx, 1)
}

// ReleaseFetch releases a slot taken by AcquireFetch.
func (c *Controller) ReleaseFetch() {
	if c == nil || c.fetchSem == nil {
		return
	}
	c.fetchSem.Release(1)
}

// AcquireMemory reserves bytes of buffer memory without blocking.
// If a hard limit is configured and the reservation does not fit next to
// the memory already held, it fails with a *LimitError matching
// ErrExceedsLimit.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return &LimitError{Requested: bytes, InUse: c.memUsed.Load(), Limit: c.cfg.MemoryLimitBytes}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases memory reserved by AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the reserved buffer memory in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AcquireIO waits until the IO limit allows n bytes.
func (c *Controller) AcquireIO(ctx context.Context, n int) error {
	if c == nil || c.ioLimiter == nil || n <= 0 {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, n)
}

// ioBurst is the largest single read a throttled reader may issue.
func (c *Controller) ioBurst() int {
	if c == nil || c.ioLimiter == nil {
		return 0
	}
	return c.ioLimiter.Burst()
}
