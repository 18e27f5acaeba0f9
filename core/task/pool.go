// core/task/pool.go

// Package task provides a fixed-size worker pool whose futures may be
// awaited from inside running tasks. A goroutine blocked in Result
// executes other queued tasks instead of sleeping, so a task can submit
// subtasks and wait for them even when every worker is occupied by one
// of its ancestors.
package task

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrClosed is reported by futures obtained from Submit after Close.
var ErrClosed = errors.New("task: submit on closed pool")

// Pool runs submitted tasks on a fixed set of worker goroutines.
// Tasks are started in submission order.
type Pool[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*Future[T]
	closed bool
	wg     sync.WaitGroup

	workers int
}

// Future is the handle to a task's eventual result.
type Future[T any] struct {
	pool *Pool[T]
	fn   func() (T, error)
	done chan struct{}
	val  T
	err  error
}

// New creates a pool with the given number of workers.
// workers <= 0 selects runtime.NumCPU().
func New[T any](workers int) *Pool[T] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool[T]{workers: workers}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Workers reports the pool size.
func (p *Pool[T]) Workers() int { return p.workers }

// Submit queues fn and returns its Future. It never blocks and is safe
// to call from inside a running task.
func (p *Pool[T]) Submit(fn func() (T, error)) *Future[T] {
	f := &Future[T]{pool: p, fn: fn, done: make(chan struct{})}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		f.err = ErrClosed
		close(f.done)
		return f
	}
	p.queue = append(p.queue, f)
	p.cond.Signal()
	p.mu.Unlock()
	return f
}

// Close stops accepting new tasks and waits for already-submitted ones
// to finish. Idempotent.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.wg.Wait()
}

// Result blocks until the task has run and returns its value and error.
// While the task is still queued or running elsewhere, the calling
// goroutine drains other queued tasks from the same pool.
func (f *Future[T]) Result() (T, error) {
	for {
		select {
		case <-f.done:
			return f.val, f.err
		default:
		}
		g := f.pool.tryPop()
		if g == nil {
			<-f.done
			return f.val, f.err
		}
		f.pool.run(g)
	}
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		f := p.pop()
		p.mu.Unlock()
		p.run(f)
	}
}

// pop removes the queue head. Caller holds p.mu and has checked that
// the queue is non-empty.
func (p *Pool[T]) pop() *Future[T] {
	f := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return f
}

func (p *Pool[T]) tryPop() *Future[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	return p.pop()
}

// run executes f. Whoever dequeued f owns it; each future is dequeued
// exactly once. A panic in the task surfaces as an error on the future.
func (p *Pool[T]) run(f *Future[T]) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.err = fmt.Errorf("task: panic: %v", r)
		}
	}()
	f.val, f.err = f.fn()
	f.fn = nil
}
