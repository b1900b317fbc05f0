package executor

import (
	"context"
	"fmt"

	"github.com/zareefahmed/FBSimulatorControl/pool"
)

// PooledConfig configures a Pooled execution context.
type PooledConfig struct {
	// Size is the number of worker goroutines backing the pool.
	Size int
}

func (c PooledConfig) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("PooledConfig.Size must be greater than zero")
	}
	return nil
}

// Pooled is an ExecutionContext backed by a bounded static worker pool, for
// callers who want to cap concurrent callback fan-out instead of spawning a
// goroutine per dispatch.
type Pooled struct {
	cancel context.CancelFunc
	pool   *pool.StaticPool
}

// NewPooled starts a Pooled executor. Panics on an invalid configuration,
// matching the rest of this package's panic-on-invalid-config discipline.
func NewPooled(conf PooledConfig) *Pooled {
	if err := conf.Validate(); err != nil {
		panic("invalid pooled executor configuration: " + err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := pool.StartNewStaticPool(ctx, conf.Size)
	return &Pooled{cancel: cancel, pool: p}
}

// Execute submits fn to the worker pool. Blocks until a worker is free.
func (e *Pooled) Execute(fn func()) {
	e.pool.Submit(func(context.Context) { fn() })
}

// Close stops accepting new work and cancels the pool's context. Returns a
// wait function that blocks until in-flight tasks finish.
func (e *Pooled) Close() (wait func()) {
	wait = e.pool.Close()
	e.cancel()
	return wait
}
