package eventbus

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowMoved struct {
	from, to string
}

type recordsLoaded struct {
	count int
}

func bufferLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func TestPublisher_Publish_NoMatchingSubscriber(t *testing.T) {
	log, buf := bufferLogger()
	bus := NewEventPublisher(log)
	bus.Subscribe(func(e *windowMoved) {
		t.Error("should not be called")
	})

	bus.Publish(&recordsLoaded{count: 1})

	assert.Contains(t, buf.String(), "no matching subscribers")
}

func TestPublisher_Subscribe(t *testing.T) {
	bus := NewEventPublisher(nil)
	var got *windowMoved
	bus.Subscribe(func(e *windowMoved) { got = e })

	bus.Publish(&windowMoved{from: "2024-01", to: "2024-12"})

	require.NotNil(t, got)
	assert.Equal(t, "2024-12", got.to)
}

func TestPublisher_Publish_RecoversPanics(t *testing.T) {
	log, buf := bufferLogger()
	bus := NewEventPublisher(log)
	second := false
	bus.Subscribe(func(e *recordsLoaded) { panic("boom") })
	bus.Subscribe(func(e *recordsLoaded) { second = true })

	require.NotPanics(t, func() { bus.Publish(&recordsLoaded{count: 3}) })
	assert.True(t, second)
	assert.Contains(t, buf.String(), "handler panicked")
}

func TestPublisher_PublishE(t *testing.T) {
	t.Run("no subscribers", func(t *testing.T) {
		bus := NewEventPublisher(nil)
		require.ErrorIs(t, bus.PublishE(&recordsLoaded{}), ErrNoSubscribers)
	})

	t.Run("joins handler errors", func(t *testing.T) {
		bus := NewEventPublisher(nil)
		first := errors.New("first")
		bus.Subscribe(func(e *recordsLoaded) error { return first })
		bus.Subscribe(func(e *recordsLoaded) error { return nil })
		bus.Subscribe(func(e *recordsLoaded) { panic("late") })

		err := bus.PublishE(&recordsLoaded{})
		require.Error(t, err)
		assert.ErrorIs(t, err, first)
		assert.Contains(t, err.Error(), "panicked: late")
	})

	t.Run("rejects unexpected return values", func(t *testing.T) {
		bus := NewEventPublisher(nil)
		bus.Subscribe(func(e *recordsLoaded) (int, error) { return 0, nil })

		require.ErrorIs(t, bus.PublishE(&recordsLoaded{}), ErrInvalidHandlerReturn)
	})
}

func TestMatchSignature(t *testing.T) {
	cases := []struct {
		name    string
		handler any
		args    []any
		want    bool
	}{
		{"exact pointer", func(e *windowMoved) {}, []any{&windowMoved{}}, true},
		{"other type", func(e *windowMoved) {}, []any{&recordsLoaded{}}, false},
		{"too few args", func(e *windowMoved) {}, []any{}, false},
		{"too many args", func(e *windowMoved) {}, []any{&windowMoved{}, &windowMoved{}}, false},
		{"interface param", func(ctx context.Context) {}, []any{context.Background()}, true},
		{"nil pointer arg", func(e *windowMoved) {}, []any{nil}, true},
		{"nil value arg", func(n int) {}, []any{nil}, false},
		{"not a func", 42, []any{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchSignature(tc.handler, tc.args))
		})
	}
}

func TestPublisher_UnsubscribeAndClear(t *testing.T) {
	bus := NewEventPublisher(nil)
	h1 := func(e *windowMoved) {}
	h2 := func(e *recordsLoaded) {}
	bus.Subscribe(h1)
	bus.Subscribe(h2)
	require.Equal(t, 2, bus.SubscribersCount())

	bus.Unsubscribe(h1)
	assert.Equal(t, 1, bus.SubscribersCount())

	bus.Clear()
	assert.Equal(t, 0, bus.SubscribersCount())
}
