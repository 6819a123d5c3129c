// Package loop is the daemon's single cooperative scheduler.
//
// Exactly one goroutine, the owner, drives the loop. It runs ordinary code and
// suspends only inside RunUntil, which processes posted callbacks until a
// predicate holds. Blocking syscalls are moved to helper goroutines by Await;
// they hand their result back as a posted callback, so every piece of daemon
// state is only ever touched by the owner goroutine.
//
// RunUntil may be entered from top-level owner code, and a callback it runs
// may not enter it again. The picker session relies on this: it waits in the
// same primitive the socket server waits in, and a second session started from
// inside the first trips the depth check instead of deadlocking.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MaxDepth is the deepest RunUntil nesting allowed.
const MaxDepth = 1

// ErrClosed is returned by RunUntil once the loop has been closed.
var ErrClosed = errors.New("loop closed")

// Loop is a callback queue drained by its owner goroutine.
type Loop struct {
	tasks chan func()

	done      chan struct{}
	closeOnce sync.Once

	// owner goroutine only
	depth int
}

// New creates a loop whose queue holds up to backlog callbacks before Post blocks.
func New(backlog int) *Loop {
	if backlog <= 0 {
		backlog = 64
	}
	return &Loop{
		tasks: make(chan func(), backlog),
		done:  make(chan struct{}),
	}
}

// Post queues fn to run on the owner goroutine. It is safe from any goroutine
// and reports false when the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// RunUntil runs posted callbacks until done reports true, ctx ends or the
// loop is closed. done is checked before each callback, never concurrently.
//
// Calling RunUntil from a callback that RunUntil is running panics.
func (l *Loop) RunUntil(ctx context.Context, done func() bool) error {
	if l.depth >= MaxDepth {
		panic(fmt.Sprintf("loop: RunUntil entered at depth %d (max %d)", l.depth+1, MaxDepth))
	}
	l.depth++
	defer func() { l.depth-- }()

	for !done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return ErrClosed
		case fn := <-l.tasks:
			fn()
		}
	}
	return nil
}

// Depth reports how many RunUntil calls are active. Owner goroutine only.
func (l *Loop) Depth() int {
	return l.depth
}

// Close stops every RunUntil and makes Post fail. Safe to call twice.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// Await runs op on a helper goroutine and keeps the loop turning until op
// finishes. If ctx ends first, Await returns ctx.Err() and op's result is
// dropped when it eventually arrives; the caller must unblock op (for example
// by closing a listener).
func Await[T any](ctx context.Context, l *Loop, op func() (T, error)) (T, error) {
	var (
		res      T
		opErr    error
		finished bool
	)

	go func() {
		r, err := op()
		l.Post(func() {
			res, opErr, finished = r, err, true
		})
	}()

	if err := l.RunUntil(ctx, func() bool { return finished }); err != nil {
		var zero T
		return zero, err
	}
	return res, opErr
}
