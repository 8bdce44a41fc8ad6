// Package hub tracks live consumer connections and pushes notifications
// to them. Each consumer owns at most one slot; a newer connection
// supersedes the older one.
package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// Envelope is the JSON frame sent to clients.
type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Slot is one consumer's live connection. Outbound frames go through
// Send; the transport layer drains it.
type Slot struct {
	ConsumerID uuid.UUID
	Send       chan []byte

	mu            sync.Mutex
	closed        bool
	lastHeartbeat time.Time
}

// Close marks the slot dead and closes its send channel. Safe to call
// more than once.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.Send)
}

// Closed reports whether the slot has been shut down.
func (s *Slot) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Slot) touch(now time.Time) {
	s.mu.Lock()
	s.lastHeartbeat = now
	s.mu.Unlock()
}

func (s *Slot) staleSince(deadline time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHeartbeat.Before(deadline)
}

// Enqueue offers a frame to the slot without blocking. Used by the
// transport layer for protocol replies; notification pushes go through
// Hub.Push instead.
func (s *Slot) Enqueue(frame []byte) bool {
	return s.trySend(frame)
}

// trySend queues a frame without blocking. A full buffer or a closed
// slot reports failure.
func (s *Slot) trySend(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.Send <- frame:
		return true
	default:
		return false
	}
}

// Hub is the in-process registry of consumer connection slots.
type Hub struct {
	cfg    *config.HubConfig
	logger *slog.Logger

	mu    sync.RWMutex
	slots map[uuid.UUID]*Slot

	stop chan struct{}
	done chan struct{}
}

// NewHub creates a hub. Call StartSweeper to begin heartbeat eviction.
func NewHub(cfg *config.HubConfig, logger *slog.Logger) *Hub {
	return &Hub{
		cfg:    cfg,
		logger: logger,
		slots:  make(map[uuid.UUID]*Slot),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Register claims the consumer's slot for a new connection. Any existing
// slot is closed first, so a stale connection can never shadow a fresh one.
func (h *Hub) Register(consumerID uuid.UUID) *Slot {
	slot := &Slot{
		ConsumerID:    consumerID,
		Send:          make(chan []byte, h.cfg.SendBufferSize),
		lastHeartbeat: time.Now(),
	}

	h.mu.Lock()
	old := h.slots[consumerID]
	h.slots[consumerID] = slot
	h.mu.Unlock()

	if old != nil {
		old.Close()
		h.logger.Debug("superseded connection", slog.String("consumer_id", consumerID.String()))
	}
	return slot
}

// Unregister releases the slot if it is still the consumer's current
// one. A slot that has already been superseded is only closed.
func (h *Hub) Unregister(slot *Slot) {
	h.mu.Lock()
	if h.slots[slot.ConsumerID] == slot {
		delete(h.slots, slot.ConsumerID)
	}
	h.mu.Unlock()
	slot.Close()
}

// Heartbeat records liveness for the slot.
func (h *Hub) Heartbeat(slot *Slot) {
	slot.touch(time.Now())
}

// Connected reports whether the consumer currently holds a live slot.
func (h *Hub) Connected(consumerID uuid.UUID) bool {
	h.mu.RLock()
	slot, ok := h.slots[consumerID]
	h.mu.RUnlock()
	return ok && !slot.Closed()
}

// Push attempts real-time delivery of a notification. It fails closed:
// a slot that cannot take the frame immediately is torn down and the
// push reports false, leaving the stored notification unread.
func (h *Hub) Push(_ context.Context, consumerID uuid.UUID, notification *entity.Notification) bool {
	h.mu.RLock()
	slot, ok := h.slots[consumerID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	frame, err := json.Marshal(Envelope{Type: "new_deal_notification", Data: notification})
	if err != nil {
		h.logger.Error("failed to encode notification frame", slog.Any("error", err))
		return false
	}

	if !slot.trySend(frame) {
		h.logger.Warn("dropping unresponsive connection",
			slog.String("consumer_id", consumerID.String()))
		h.Unregister(slot)
		return false
	}
	return true
}

// StartSweeper runs the heartbeat eviction loop until StopSweeper is
// called.
func (h *Hub) StartSweeper() {
	go h.sweepLoop()
}

// StopSweeper terminates the eviction loop and closes every slot.
func (h *Hub) StopSweeper(ctx context.Context) error {
	close(h.stop)
	select {
	case <-h.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	h.mu.Lock()
	for id, slot := range h.slots {
		delete(h.slots, id)
		slot.Close()
	}
	h.mu.Unlock()
	return nil
}

func (h *Hub) sweepLoop() {
	defer close(h.done)

	ticker := time.NewTicker(h.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case now := <-ticker.C:
			h.evictStale(now)
		}
	}
}

func (h *Hub) evictStale(now time.Time) {
	deadline := now.Add(-h.cfg.HeartbeatTimeout)

	h.mu.Lock()
	var stale []*Slot
	for id, slot := range h.slots {
		if slot.staleSince(deadline) {
			delete(h.slots, id)
			stale = append(stale, slot)
		}
	}
	h.mu.Unlock()

	for _, slot := range stale {
		slot.Close()
		h.logger.Debug("evicted stale connection",
			slog.String("consumer_id", slot.ConsumerID.String()))
	}
}
