package rabbit

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolo/mq/mq"
)

// initQueue connects to the broker named by RABBITMQ_URL. Tests are skipped
// when it is unset so the suite can run without a broker.
func initQueue(t *testing.T) mq.InquiryMessageQueue {
	if os.Getenv("RABBITMQ_URL") == "" {
		t.Skip("RABBITMQ_URL not set, skipping rabbitmq tests")
	}

	conn := NewRabbitConnection(CreateAmqpURL())
	t.Cleanup(func() { conn.Close() })

	queue, err := NewRabbitInquiryMessageQueue(mq.ActionCreate, conn)
	require.NoError(t, err)
	return queue
}

func TestRabbitPublishSubscribe(t *testing.T) {
	queue := initQueue(t)

	id, ch, err := queue.Subscribe()
	require.NoError(t, err)

	msg := mq.InquiryMessage{
		ID:        42,
		Type:      "환불문의",
		Content:   "취소 요청",
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}

	// Test 1: A published message reaches the consumer intact
	require.NoError(t, queue.Publish(msg))

	select {
	case received := <-ch:
		assert.Equal(t, msg.ID, received.ID)
		assert.Equal(t, msg.Type, received.Type)
		assert.Equal(t, msg.Content, received.Content)
		assert.Equal(t, msg.Status, received.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	// Test 2: DeSubscribe closes the stream
	require.NoError(t, queue.DeSubscribe(id))
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after DeSubscribe")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after DeSubscribe")
	}

	// Test 3: DeSubscribe of an unknown id fails
	assert.Error(t, queue.DeSubscribe(id))
}

func TestRabbitWrapper(t *testing.T) {
	if os.Getenv("RABBITMQ_URL") == "" {
		t.Skip("RABBITMQ_URL not set, skipping rabbitmq tests")
	}

	conn := NewRabbitConnection(CreateAmqpURL())
	t.Cleanup(func() { conn.Close() })

	wrapper, err := NewRabbitInquiryMessageQueueWrapper(conn)
	require.NoError(t, err)

	// Test 1: The create queue exists and reports its action
	queue := wrapper.GetInquiryMessageQueue(mq.ActionCreate)
	require.NotNil(t, queue)
	assert.Equal(t, mq.ActionCreate, queue.GetAction())

	// Test 2: Out-of-range actions yield nil
	assert.Nil(t, wrapper.GetInquiryMessageQueue(mq.ActionCnt))
}
