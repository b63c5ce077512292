package store

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/muurk/sportsdash/internal/logging"
)

const (
	// DefaultMaxConcurrent is the task pool size when Options leaves it unset
	DefaultMaxConcurrent = 4

	// DefaultInboxSize is the completed-action buffer when Options leaves it unset
	DefaultInboxSize = 64
)

// Options configures a Runtime
type Options struct {
	// MaxConcurrent bounds how many RunAsync tasks execute at once
	MaxConcurrent int64

	// InboxSize is the buffer for actions produced off the dispatch loop
	InboxSize int
}

// Runtime owns the application state and runs the dispatch loop.
//
// Dispatch, Step and Run must all be called from a single goroutine (the
// dispatch loop). Send is the only method that is safe to call from other
// goroutines; it queues an action for the loop to apply.
type Runtime[S, A any] struct {
	reduce    Reducer[S, A]
	state     S
	observers []func(S)

	inbox  chan A
	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group
	pool   *semaphore.Weighted

	pending    atomic.Int64
	dispatched uint64
}

// New creates a runtime holding initial and applying reduce to every action
func New[S, A any](initial S, reduce Reducer[S, A], opts Options) *Runtime[S, A] {
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = DefaultMaxConcurrent
	}
	if opts.InboxSize < 1 {
		opts.InboxSize = DefaultInboxSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Runtime[S, A]{
		reduce: reduce,
		state:  initial,
		inbox:  make(chan A, opts.InboxSize),
		ctx:    ctx,
		cancel: cancel,
		pool:   semaphore.NewWeighted(opts.MaxConcurrent),
	}
}

// State returns the current state. Callers receive a copy and must treat
// any maps or slices inside it as read-only.
func (r *Runtime[S, A]) State() S {
	return r.state
}

// Observe registers fn to be called with the new state after every
// transition, before the transition's effect runs
func (r *Runtime[S, A]) Observe(fn func(S)) {
	r.observers = append(r.observers, fn)
}

// Dispatch applies one action: exactly one reducer call, then the state is
// replaced, then the effect is executed.
func (r *Runtime[S, A]) Dispatch(action A) {
	logging.LogAction(action)

	next, effect := r.reduce(r.state, action)
	r.state = next
	r.dispatched++

	for _, fn := range r.observers {
		fn(next)
	}

	r.execute(effect)
}

// execute interprets an effect. Dispatch members run synchronously in
// order; RunAsync members are handed to the task pool and run concurrently.
func (r *Runtime[S, A]) execute(effect Effect[A]) {
	if effect.kind == KindNone {
		return
	}
	logging.LogEffect(effect.kind.String(), effect.Size())

	switch effect.kind {
	case KindDispatch:
		r.Dispatch(effect.action)
	case KindAsync:
		r.spawn(effect.task)
	case KindBatch:
		for _, member := range effect.batch {
			r.execute(member)
		}
	}
}

// spawn runs task on the pool and delivers its action to the inbox
func (r *Runtime[S, A]) spawn(task Task[A]) {
	r.pending.Add(1)
	r.group.Go(func() error {
		defer r.pending.Add(-1)

		if err := r.pool.Acquire(r.ctx, 1); err != nil {
			// Runtime closed before the task got a slot
			return nil
		}
		action := task(r.ctx)
		r.pool.Release(1)

		r.deliver(action)
		return nil
	})
}

func (r *Runtime[S, A]) deliver(action A) bool {
	select {
	case r.inbox <- action:
		return true
	case <-r.ctx.Done():
		return false
	}
}

// Send queues an action for the dispatch loop. It is safe for concurrent
// use and reports false if the runtime was closed first.
func (r *Runtime[S, A]) Send(action A) bool {
	return r.deliver(action)
}

// Inbox exposes queued actions to an external loop (the TUI program)
// which must pass each one to Dispatch.
func (r *Runtime[S, A]) Inbox() <-chan A {
	return r.inbox
}

// Step waits for one queued action and dispatches it. It returns false if
// ctx ends or the runtime is closed first.
func (r *Runtime[S, A]) Step(ctx context.Context) bool {
	select {
	case action := <-r.inbox:
		r.Dispatch(action)
		return true
	case <-ctx.Done():
		return false
	case <-r.ctx.Done():
		return false
	}
}

// Run is the headless dispatch loop. It applies queued actions until ctx
// ends or Close is called.
func (r *Runtime[S, A]) Run(ctx context.Context) error {
	for {
		if !r.Step(ctx) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
	}
}

// Pending returns the number of async tasks not yet delivered
func (r *Runtime[S, A]) Pending() int {
	return int(r.pending.Load())
}

// Dispatched returns how many actions have been applied
func (r *Runtime[S, A]) Dispatched() uint64 {
	return r.dispatched
}

// Context is canceled when the runtime closes; tasks receive it
func (r *Runtime[S, A]) Context() context.Context {
	return r.ctx
}

// Close cancels in-flight tasks. Their results are dropped.
func (r *Runtime[S, A]) Close() {
	r.cancel()
}

// Wait blocks until every spawned task has returned
func (r *Runtime[S, A]) Wait() error {
	return r.group.Wait()
}
