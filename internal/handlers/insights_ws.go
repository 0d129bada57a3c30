package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/moodmitra/moodmitra-backend/internal/analytics"
)

var insightsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the HTTP layer already.
		return true
	},
}

// InsightsWebSocket streams the analytics payload to the client: one message
// on connect, then one after every facade mutation, so dashboards update
// without polling.
func (api *API) InsightsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := insightsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := api.Hub.Subscribe()
	defer unsubscribe()

	// Initial snapshot so the client renders immediately.
	payload := analytics.BuildPayload(api.Session.Snapshot(), api.Session.Now())
	if err := conn.WriteJSON(InsightsResponse{Success: true, Data: payload}); err != nil {
		return
	}

	// Writer: forward hub broadcasts to this connection. Closing the
	// connection unblocks the read loop below; unsubscribing closes events
	// and stops this goroutine.
	go func() {
		for msg := range events {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				conn.Close()
				return
			}
		}
	}()

	// Reader: no client messages are expected; the loop only detects close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
