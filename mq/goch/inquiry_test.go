package goch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolo/mq/mq"
)

// Helper to receive a message from a channel with a timeout.
func receiveMsgWithTimeout[T any](tb testing.TB, ch <-chan T, timeout time.Duration) (T, bool) {
	tb.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			var zero T
			return zero, false // Channel closed
		}
		return msg, true
	case <-time.After(timeout):
		var zero T
		return zero, false // Timeout
	}
}

func newTestMessage(id int64) mq.InquiryMessage {
	return mq.InquiryMessage{
		ID:        id,
		Type:      "일반문의",
		Content:   "문의합니다",
		Status:    "pending",
		CreatedAt: time.Now(),
	}
}

func TestPublishAndSubscribe(t *testing.T) {
	queue := NewChannelInquiryMessageQueue(mq.ActionCreate)
	assert.Equal(t, mq.ActionCreate, queue.GetAction())

	// Test 1: A subscriber receives the published message
	id, ch, err := queue.Subscribe()
	require.NoError(t, err)

	msg := newTestMessage(1)
	require.NoError(t, queue.Publish(msg))

	received, ok := receiveMsgWithTimeout(t, ch, time.Second)
	assert.True(t, ok)
	assert.Equal(t, msg.ID, received.ID)
	assert.Equal(t, msg.Content, received.Content)

	// Test 2: Every subscriber gets every message
	_, ch2, err := queue.Subscribe()
	require.NoError(t, err)

	msg2 := newTestMessage(2)
	require.NoError(t, queue.Publish(msg2))

	received, ok = receiveMsgWithTimeout(t, ch, time.Second)
	assert.True(t, ok)
	assert.Equal(t, msg2.ID, received.ID)

	received, ok = receiveMsgWithTimeout(t, ch2, time.Second)
	assert.True(t, ok)
	assert.Equal(t, msg2.ID, received.ID)

	// Test 3: DeSubscribe closes the channel
	require.NoError(t, queue.DeSubscribe(id))
	_, ok = receiveMsgWithTimeout(t, ch, 100*time.Millisecond)
	assert.False(t, ok)

	// Test 4: DeSubscribe twice fails
	assert.ErrorIs(t, queue.DeSubscribe(id), ErrSubscriberNotFound)
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	queue := NewChannelInquiryMessageQueue(mq.ActionCreate)

	_, ch, err := queue.Subscribe()
	require.NoError(t, err)

	// Fill the buffer past its capacity without reading.
	for i := 0; i < subscriberBufferSize+3; i++ {
		require.NoError(t, queue.Publish(newTestMessage(int64(i))))
	}

	// Only the buffered messages are there; the rest were dropped silently.
	count := 0
	for {
		_, ok := receiveMsgWithTimeout(t, ch, 50*time.Millisecond)
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, subscriberBufferSize, count)
}

func TestWrapperActionRange(t *testing.T) {
	wrapper := NewGoChanInquiryMessageQueueWrapper()

	// Test 1: The create queue exists
	assert.NotNil(t, wrapper.GetInquiryMessageQueue(mq.ActionCreate))

	// Test 2: Out-of-range actions yield nil instead of panicking
	assert.Nil(t, wrapper.GetInquiryMessageQueue(mq.Action(-1)))
	assert.Nil(t, wrapper.GetInquiryMessageQueue(mq.ActionCnt))
}

func TestSubscribeProcessor(t *testing.T) {
	queue := NewChannelInquiryMessageQueue(mq.ActionCreate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan int64, 5)
	mq.SubscribeProcessor(ctx, queue, func(msg mq.InquiryMessage) (int64, bool, error) {
		if msg.ID%2 == 0 {
			return 0, true, nil // skip even ids
		}
		return msg.ID, false, nil
	}, out)

	// The processor subscribes asynchronously; give it a moment.
	time.Sleep(50 * time.Millisecond)

	for i := int64(1); i <= 4; i++ {
		require.NoError(t, queue.Publish(newTestMessage(i)))
	}

	// Test 1: Only odd ids pass the transform
	got, ok := receiveMsgWithTimeout(t, out, time.Second)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got)

	got, ok = receiveMsgWithTimeout(t, out, time.Second)
	assert.True(t, ok)
	assert.Equal(t, int64(3), got)

	// Test 2: Cancelling the context ends the stream
	cancel()
	_, ok = receiveMsgWithTimeout(t, out, time.Second)
	assert.False(t, ok)
}
