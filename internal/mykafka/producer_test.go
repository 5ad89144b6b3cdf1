package mykafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewProducer_NoBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	require.Error(t, err)
}

func TestPublishEvent_WritesKeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	err := p.PublishEvent(context.Background(), TopicOrderEvents, "user-1", map[string]any{"type": "order_created", "total": "132"})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, TopicOrderEvents, msg.Topic)
	assert.Equal(t, "user-1", string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "order_created", got["type"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishEvent_WriteError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.PublishEvent(context.Background(), TopicCartEvents, "k", struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart_events")
}

func TestPublishEvent_MarshalError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{}}

	err := p.PublishEvent(context.Background(), TopicCartEvents, "k", make(chan int))
	require.Error(t, err)
}
