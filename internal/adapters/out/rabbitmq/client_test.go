package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConfirmation resolves when the test sends on result, the way the
// broker resolves the confirmation of one delivery tag.
type fakeConfirmation struct {
	result chan bool
}

func newFakeConfirmation() *fakeConfirmation {
	return &fakeConfirmation{result: make(chan bool, 1)}
}

func (f *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case ack := <-f.result:
		return ack, nil
	}
}

type fakeChannel struct {
	confirmations []*fakeConfirmation
	published     []amqp.Publishing
	publishErr    error
	closed        bool
}

func (f *fakeChannel) PublishWithDeferredConfirmWithContext(
	_ context.Context,
	_, _ string,
	_, _ bool,
	msg amqp.Publishing,
) (confirmation, error) {
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	f.published = append(f.published, msg)
	conf := f.confirmations[0]
	f.confirmations = f.confirmations[1:]
	return conf, nil
}

func (f *fakeChannel) ExchangeDeclare(string, string, bool, bool, bool, bool, amqp.Table) error {
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestClient_Publish(t *testing.T) {
	t.Run("ack returns nil", func(t *testing.T) {
		conf := newFakeConfirmation()
		conf.result <- true
		ch := &fakeChannel{confirmations: []*fakeConfirmation{conf}}

		err := newClient(ch).Publish(context.Background(), "ex", "key", []byte(`{}`))

		require.NoError(t, err)
		require.Len(t, ch.published, 1)
		assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
		assert.Equal(t, "application/json", ch.published[0].ContentType)
		assert.Equal(t, []byte(`{}`), ch.published[0].Body)
	})

	t.Run("nack returns ErrPublishNacked", func(t *testing.T) {
		conf := newFakeConfirmation()
		conf.result <- false
		ch := &fakeChannel{confirmations: []*fakeConfirmation{conf}}

		err := newClient(ch).Publish(context.Background(), "ex", "key", nil)

		assert.ErrorIs(t, err, ErrPublishNacked)
	})

	t.Run("closed channel returns publish error", func(t *testing.T) {
		ch := &fakeChannel{publishErr: amqp.ErrClosed}

		err := newClient(ch).Publish(context.Background(), "ex", "key", nil)

		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ch := &fakeChannel{confirmations: []*fakeConfirmation{newFakeConfirmation()}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newClient(ch).Publish(ctx, "ex", "key", nil)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("late ack of an abandoned publish does not confirm the next one", func(t *testing.T) {
		first, second := newFakeConfirmation(), newFakeConfirmation()
		ch := &fakeChannel{confirmations: []*fakeConfirmation{first, second}}
		client := newClient(ch)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := client.Publish(ctx, "ex", "key", []byte(`1`))
		require.ErrorIs(t, err, context.Canceled)

		first.result <- true
		second.result <- false
		err = client.Publish(context.Background(), "ex", "key", []byte(`2`))

		assert.ErrorIs(t, err, ErrPublishNacked)
	})
}

func TestClient_Close(t *testing.T) {
	ch := &fakeChannel{}

	err := newClient(ch).Close()

	require.NoError(t, err)
	assert.True(t, ch.closed)
}
