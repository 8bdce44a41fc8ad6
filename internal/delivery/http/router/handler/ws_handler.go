package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/hub"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const wsWriteTimeout = 10 * time.Second

// WSHandler upgrades consumer connections and bridges them onto the
// delivery hub.
type WSHandler struct {
	hub            *hub.Hub
	tokenSvc       service.TokenService
	notificationUC usecase.NotificationUsecase
	cfg            *config.Config
	logger         *slog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(h *hub.Hub, tokenSvc service.TokenService, notificationUC usecase.NotificationUsecase, cfg *config.Config, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:            h,
		tokenSvc:       tokenSvc,
		notificationUC: notificationUC,
		cfg:            cfg,
		logger:         logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers cannot set an Authorization header on a
			// WebSocket handshake, so auth rides in a query param and
			// origins are not restricted here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// clientMessage is the inbound frame format.
type clientMessage struct {
	Type           string    `json:"type"`
	NotificationID uuid.UUID `json:"notification_id,omitzero"`
}

// Serve authenticates the handshake and runs the connection until the
// client goes away or a newer connection supersedes it.
func (h *WSHandler) Serve(c echo.Context) error {
	claims, err := h.tokenSvc.ValidateToken(c.QueryParam("token"))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}
	if !slices.Contains(claims.Roles, entity.RoleConsumer.String()) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Only consumers hold notification connections"})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake failure.
		return nil
	}

	slot := h.hub.Register(claims.UserID)
	h.logger.Debug("consumer connected", slog.String("consumer_id", claims.UserID.String()))

	go h.writePump(conn, slot)
	h.readPump(c.Request().Context(), conn, slot)

	h.hub.Unregister(slot)
	_ = conn.Close()
	h.logger.Debug("consumer disconnected", slog.String("consumer_id", claims.UserID.String()))

	return nil
}

// writePump drains the slot onto the socket and keeps the protocol-level
// ping going. It exits when the slot closes, which also wakes readPump
// by closing the connection.
func (h *WSHandler) writePump(conn *websocket.Conn, slot *hub.Slot) {
	ticker := time.NewTicker(h.cfg.Hub.PingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case frame, ok := <-slot.Send:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "superseded"),
					time.Now().Add(wsWriteTimeout))

				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}

// readPump consumes client frames: protocol pongs and JSON pings feed the
// heartbeat, mark_read acknowledges a notification in place.
func (h *WSHandler) readPump(ctx context.Context, conn *websocket.Conn, slot *hub.Slot) {
	readTimeout := h.cfg.Hub.HeartbeatTimeout

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		h.hub.Heartbeat(slot)

		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.hub.Heartbeat(slot)
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "ping":
			if frame, err := json.Marshal(hub.Envelope{Type: "pong"}); err == nil {
				slot.Enqueue(frame)
			}
		case "mark_read":
			if msg.NotificationID == uuid.Nil {
				continue
			}
			if err := h.notificationUC.MarkRead(ctx, slot.ConsumerID, msg.NotificationID); err != nil {
				h.logger.Warn("failed to mark notification read over socket",
					slog.String("notification_id", msg.NotificationID.String()),
					slog.Any("error", err))
			}
		}
	}
}
