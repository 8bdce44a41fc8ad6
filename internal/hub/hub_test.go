package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

func newTestHub(bufferSize int) *Hub {
	cfg := &config.HubConfig{
		PingInterval:     20 * time.Second,
		HeartbeatTimeout: time.Minute,
		SweepInterval:    10 * time.Second,
		SendBufferSize:   bufferSize,
	}
	return NewHub(cfg, slog.New(slog.DiscardHandler))
}

func testNotification(consumerID uuid.UUID) *entity.Notification {
	return &entity.Notification{
		ID:         uuid.New(),
		ConsumerID: consumerID,
		DealID:     uuid.New(),
		Message:    "New deal on Milk - 50% off at Corner Market!",
		CreatedAt:  time.Now(),
	}
}

func TestHub_PushToConnectedConsumer(t *testing.T) {
	h := newTestHub(4)
	consumerID := uuid.New()
	slot := h.Register(consumerID)

	delivered := h.Push(context.Background(), consumerID, testNotification(consumerID))
	require.True(t, delivered)

	frame := <-slot.Send
	var envelope Envelope
	require.NoError(t, json.Unmarshal(frame, &envelope))
	assert.Equal(t, "new_deal_notification", envelope.Type)
	assert.NotNil(t, envelope.Data)
}

func TestHub_PushWithoutConnection(t *testing.T) {
	h := newTestHub(4)

	delivered := h.Push(context.Background(), uuid.New(), testNotification(uuid.New()))
	assert.False(t, delivered)
}

func TestHub_NewConnectionSupersedesOld(t *testing.T) {
	h := newTestHub(4)
	consumerID := uuid.New()

	first := h.Register(consumerID)
	second := h.Register(consumerID)

	assert.True(t, first.Closed(), "the superseded slot must be closed")
	assert.False(t, second.Closed())
	assert.True(t, h.Connected(consumerID))

	// Frames must land on the new slot only.
	require.True(t, h.Push(context.Background(), consumerID, testNotification(consumerID)))
	select {
	case frame := <-second.Send:
		assert.NotEmpty(t, frame)
	default:
		t.Fatal("expected the frame on the superseding slot")
	}
}

func TestHub_PushFailsClosedOnFullBuffer(t *testing.T) {
	h := newTestHub(1)
	consumerID := uuid.New()
	h.Register(consumerID)

	// First push fills the buffer, second one must tear the slot down.
	require.True(t, h.Push(context.Background(), consumerID, testNotification(consumerID)))
	assert.False(t, h.Push(context.Background(), consumerID, testNotification(consumerID)))
	assert.False(t, h.Connected(consumerID))
}

func TestHub_UnregisterSupersededSlotKeepsCurrent(t *testing.T) {
	h := newTestHub(4)
	consumerID := uuid.New()

	first := h.Register(consumerID)
	h.Register(consumerID)

	h.Unregister(first)
	assert.True(t, h.Connected(consumerID), "unregistering a stale slot must not evict the live one")
}

func TestHub_EvictStaleConnections(t *testing.T) {
	h := newTestHub(4)
	fresh := uuid.New()
	stale := uuid.New()

	freshSlot := h.Register(fresh)
	staleSlot := h.Register(stale)

	now := time.Now()
	freshSlot.touch(now)
	staleSlot.touch(now.Add(-2 * time.Minute))

	h.evictStale(now)

	assert.True(t, h.Connected(fresh))
	assert.False(t, h.Connected(stale))
	assert.True(t, staleSlot.Closed())
}

func TestHub_HeartbeatKeepsSlotAlive(t *testing.T) {
	h := newTestHub(4)
	consumerID := uuid.New()

	slot := h.Register(consumerID)
	slot.touch(time.Now().Add(-2 * time.Minute))
	h.Heartbeat(slot)

	h.evictStale(time.Now())
	assert.True(t, h.Connected(consumerID))
}

func TestHub_StopSweeperClosesSlots(t *testing.T) {
	h := newTestHub(4)
	slot := h.Register(uuid.New())
	h.StartSweeper()

	require.NoError(t, h.StopSweeper(context.Background()))
	assert.True(t, slot.Closed())
	assert.False(t, h.Connected(slot.ConsumerID))
}
