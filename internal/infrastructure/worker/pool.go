package worker

import (
	"context"
	"sync"
	"time"

	"exchangerates-service/internal/infrastructure/logx"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pool runs tasks on at most size goroutines. It is meant to live for one batch:
// submit with Go, wait with Wait, and always release it with Shutdown.
type Pool struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	g      errgroup.Group
	log    *zap.Logger

	once sync.Once
	done chan struct{}
}

func NewPool(parent context.Context, size int, log *zap.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	if log == nil {
		log = logx.L()
	}
	ctx, cancel := context.WithCancel(parent)
	p := &Pool{
		parent: parent,
		ctx:    ctx,
		cancel: cancel,
		log:    log.With(zap.String("component", "worker_pool")),
		done:   make(chan struct{}),
	}
	p.g.SetLimit(size)
	return p
}

// Go blocks while all workers are busy. A panicking task is logged and does not take the pool down.
func (p *Pool) Go(task func(ctx context.Context)) {
	p.g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("worker.task_panic", zap.Any("panic", r))
			}
		}()
		task(p.ctx)
		return nil
	})
}

// Wait blocks until every submitted task has returned. Go must not be called afterwards.
func (p *Pool) Wait() { <-p.finished() }

// Shutdown waits up to grace for running tasks, then cancels their context.
// Cancellation of the parent context cancels immediately. It reports whether all tasks finished in time.
func (p *Pool) Shutdown(grace time.Duration) bool {
	defer p.cancel()
	done := p.finished()
	select {
	case <-done:
		return true
	default:
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		p.log.Warn("worker.shutdown_forced", zap.String("reason", "grace_elapsed"), zap.Duration("grace", grace))
	case <-p.parent.Done():
		p.log.Warn("worker.shutdown_forced", zap.String("reason", "parent_cancelled"))
	}
	return false
}

func (p *Pool) finished() <-chan struct{} {
	p.once.Do(func() {
		go func() {
			_ = p.g.Wait()
			close(p.done)
		}()
	})
	return p.done
}
