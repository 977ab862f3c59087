// SPDX-License-Identifier: MIT
package stream

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ServeWebsocket upgrades r into a WebSocket connection and registers it
// with h, so it starts receiving broadcast events on the next Run poll.
func (h *Hub) ServeWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("wfc stream: upgrade:", err)
		return
	}
	h.Register(ws)
}
