package store

import (
	"context"
	"fmt"
)

// Task is an asynchronous operation that eventually produces an action.
// It runs outside the dispatch loop and must not touch state.
type Task[A any] func(ctx context.Context) A

// Kind identifies an effect variant
type Kind uint8

const (
	KindNone Kind = iota
	KindAsync
	KindDispatch
	KindBatch
)

// String returns the variant name used in logs
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAsync:
		return "async"
	case KindDispatch:
		return "dispatch"
	case KindBatch:
		return "batch"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Effect describes a side effect to perform after a state transition.
// The zero value is None.
type Effect[A any] struct {
	kind   Kind
	task   Task[A]
	action A
	batch  []Effect[A]
}

// None returns an effect that does nothing
func None[A any]() Effect[A] {
	return Effect[A]{}
}

// RunAsync schedules task on the task pool; its action is fed back into
// dispatch when it completes
func RunAsync[A any](task Task[A]) Effect[A] {
	if task == nil {
		return Effect[A]{}
	}
	return Effect[A]{kind: KindAsync, task: task}
}

// Dispatch applies action immediately after the current transition
func Dispatch[A any](action A) Effect[A] {
	return Effect[A]{kind: KindDispatch, action: action}
}

// Batch runs effects in order. None members are dropped; an empty batch is
// None and a single member is returned unwrapped.
func Batch[A any](effects ...Effect[A]) Effect[A] {
	members := make([]Effect[A], 0, len(effects))
	for _, e := range effects {
		if e.kind != KindNone {
			members = append(members, e)
		}
	}
	switch len(members) {
	case 0:
		return Effect[A]{}
	case 1:
		return members[0]
	}
	return Effect[A]{kind: KindBatch, batch: members}
}

// Kind returns the effect variant
func (e Effect[A]) Kind() Kind {
	return e.kind
}

// IsNone reports whether the effect does nothing
func (e Effect[A]) IsNone() bool {
	return e.kind == KindNone
}

// Action returns the action of a Dispatch effect
func (e Effect[A]) Action() (A, bool) {
	return e.action, e.kind == KindDispatch
}

// Task returns the task of a RunAsync effect
func (e Effect[A]) Task() Task[A] {
	return e.task
}

// Effects returns the members of a Batch effect
func (e Effect[A]) Effects() []Effect[A] {
	return e.batch
}

// Size counts the leaf effects, for logging
func (e Effect[A]) Size() int {
	switch e.kind {
	case KindNone:
		return 0
	case KindBatch:
		n := 0
		for _, m := range e.batch {
			n += m.Size()
		}
		return n
	default:
		return 1
	}
}
