//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/scmbridge/internal/domain/entities"
)

func TestEmitter(t *testing.T) {
	t.Parallel()

	t.Run("should deliver fired values to listeners in subscription order", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[string]()
		var received []string
		emitter.Event()(func(v string) { received = append(received, "first:"+v) })
		emitter.Event()(func(v string) { received = append(received, "second:"+v) })

		// when
		emitter.Fire("a")
		emitter.Fire("b")

		// then
		assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, received)
	})

	t.Run("should stop delivering after the subscription is disposed", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[int]()
		calls := 0
		subscription := emitter.Event()(func(int) { calls++ })
		emitter.Fire(1)

		// when
		subscription.Dispose()
		subscription.Dispose()
		emitter.Fire(2)

		// then
		assert.Equal(t, 1, calls)
		assert.Zero(t, emitter.ListenerCount())
	})

	t.Run("should only remove the disposed listener when the same function is subscribed twice", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[int]()
		calls := 0
		listener := func(int) { calls++ }
		first := emitter.Event()(listener)
		emitter.Event()(listener)

		// when
		first.Dispose()
		emitter.Fire(1)

		// then
		assert.Equal(t, 1, calls)
	})

	t.Run("should not call listeners added during a fire until the next fire", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[int]()
		lateCalls := 0
		emitter.Event()(func(int) {
			emitter.Event()(func(int) { lateCalls++ })
		})

		// when
		emitter.Fire(1)

		// then
		assert.Zero(t, lateCalls)
		assert.Equal(t, 2, emitter.ListenerCount())
	})

	t.Run("should keep delivering the current fire when a listener unsubscribes another", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[int]()
		var second entities.Disposable
		secondCalls := 0
		emitter.Event()(func(int) { second.Dispose() })
		second = emitter.Event()(func(int) { secondCalls++ })

		// when
		emitter.Fire(1)
		emitter.Fire(2)

		// then
		assert.Equal(t, 1, secondCalls)
	})

	t.Run("should drop every listener on dispose", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := entities.NewEmitter[struct{}]()
		calls := 0
		emitter.Event()(func(struct{}) { calls++ })

		// when
		emitter.Dispose()
		emitter.Fire(struct{}{})

		// then
		assert.Zero(t, calls)
	})
}

func TestDisposableFunc(t *testing.T) {
	t.Parallel()

	t.Run("should call the wrapped function", func(t *testing.T) {
		t.Parallel()

		// given
		calls := 0
		disposable := entities.DisposableFunc(func() { calls++ })

		// when
		disposable.Dispose()

		// then
		assert.Equal(t, 1, calls)
	})

	t.Run("should tolerate a nil function", func(t *testing.T) {
		t.Parallel()

		// given
		var disposable entities.DisposableFunc

		// when / then
		assert.NotPanics(t, disposable.Dispose)
	})
}
