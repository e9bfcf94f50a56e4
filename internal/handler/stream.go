package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/osse101/DogDaycare_Go/internal/logger"
	"github.com/osse101/DogDaycare_Go/internal/sse"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleWebsocket streams hub events over a websocket. The first frame is
// the current session snapshot so clients can render without polling.
// @Summary Event stream (websocket)
// @Tags stream
// @Param types query string false "Comma separated event types"
// @Success 101 {string} string "Switching protocols"
// @Router /api/v1/ws [get]
func HandleWebsocket(hub *sse.Hub, sessions sse.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error
			log.Debug(LogMsgWebsocketUpgrade, "error", err)
			return
		}
		defer conn.Close()

		eventTypes := sse.ParseTypes(r)
		client := hub.Register(eventTypes)
		defer hub.Unregister(client.ID)
		log.Info(LogMsgWebsocketConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			log.Info(LogMsgWebsocketClosed, "client_id", client.ID, "dropped", client.Dropped())
		}()

		// The read pump only handles control frames; it ends when the peer goes away
		closed := make(chan struct{})
		conn.SetReadLimit(WSReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(WSPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(WSPongWait))
		})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		write := func(evt sse.Event) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(WSWriteTimeout))
			if err := conn.WriteJSON(evt); err != nil {
				log.Debug(LogMsgWebsocketWrite, "client_id", client.ID, "error", err)
				return false
			}
			return true
		}

		if client.Wants(sse.EventTypeSnapshot) {
			if !write(sse.Event{
				ID:        uuid.New().String(),
				Type:      sse.EventTypeSnapshot,
				Timestamp: time.Now().Unix(),
				Payload:   sessions.Snapshot(),
			}) {
				return
			}
		}

		ping := time.NewTicker(WSPingInterval)
		defer ping.Stop()

		for {
			select {
			case <-closed:
				return
			case <-r.Context().Done():
				return
			case evt, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
						time.Now().Add(WSWriteTimeout))
					return
				}
				if !write(evt) {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WSWriteTimeout)); err != nil {
					log.Debug(LogMsgWebsocketWrite, "client_id", client.ID, "error", err)
					return
				}
			}
		}
	}
}
