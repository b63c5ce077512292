package store

// Reducer turns the current state and an action into the next state and the
// effect to run. Reducers are pure: no I/O, no clock reads, and they never
// modify the state they were given in place.
type Reducer[S, A any] func(state S, action A) (S, Effect[A])

// SubReducer is one link of a Chain. It reports whether it claimed the
// action; unclaimed actions are passed to the next link.
type SubReducer[S, A any] func(state S, action A) (S, Effect[A], bool)

// Chain composes sub-reducers. The first sub-reducer that claims an action
// handles it; an action nobody claims leaves the state unchanged with no
// effect.
func Chain[S, A any](subs ...SubReducer[S, A]) Reducer[S, A] {
	return func(state S, action A) (S, Effect[A]) {
		for _, sub := range subs {
			next, effect, ok := sub(state, action)
			if ok {
				return next, effect
			}
		}
		return state, None[A]()
	}
}
