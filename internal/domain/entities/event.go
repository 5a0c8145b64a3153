package entities

// Disposable releases whatever it was handed out for. Disposing twice is
// allowed; implementations decide whether the second call has an effect.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a plain function to the Disposable interface.
type DisposableFunc func()

// Dispose calls the function.
func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Event is the subscribe side of an Emitter. Calling it registers a listener
// and returns the Disposable that removes it again.
type Event[T any] func(listener func(T)) Disposable

// Emitter owns a list of listeners and delivers every fired value to each of
// them synchronously, in subscription order.
type Emitter[T any] struct {
	listeners []*emitterListener[T]
}

type emitterListener[T any] struct {
	fn func(T)
}

// NewEmitter creates an emitter with no listeners.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Event returns the subscribe function handed out to consumers.
func (it *Emitter[T]) Event() Event[T] {
	return it.subscribe
}

func (it *Emitter[T]) subscribe(listener func(T)) Disposable {
	entry := &emitterListener[T]{fn: listener}
	it.listeners = append(it.listeners, entry)

	return DisposableFunc(func() {
		for i, current := range it.listeners {
			if current == entry {
				it.listeners = append(it.listeners[:i:i], it.listeners[i+1:]...)
				return
			}
		}
	})
}

// Fire delivers value to the listeners registered when Fire was called.
// Listeners added or removed by a handler take effect on the next Fire.
func (it *Emitter[T]) Fire(value T) {
	if len(it.listeners) == 0 {
		return
	}

	snapshot := make([]*emitterListener[T], len(it.listeners))
	copy(snapshot, it.listeners)
	for _, entry := range snapshot {
		entry.fn(value)
	}
}

// ListenerCount returns how many listeners are currently subscribed.
func (it *Emitter[T]) ListenerCount() int {
	return len(it.listeners)
}

// Dispose drops every listener.
func (it *Emitter[T]) Dispose() {
	it.listeners = nil
}
