// SPDX-License-Identifier: MIT
// Package stream broadcasts a Generator's observer events to WebSocket
// clients (§4.8): a Hub owns one upstream observer.Subscription and
// zero-or-more downstream connections, draining the subscription on its
// own goroutine and fanning each event out as JSON, mirroring the
// single-writer-goroutine websocket server shape used elsewhere in the
// corpus.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	"github.com/latticeworks/wfc/observer"
)

const (
	writeWait    = 1 * time.Second
	pollInterval = 20 * time.Millisecond
)

// Hub fans events from one observer.Subscription out to any number of
// registered WebSocket connections. The generator driving sub and the
// Hub's Run goroutine must never be the same goroutine calling
// Generator.Step concurrently with Hub draining (§5 addendum).
type Hub struct {
	sub *observer.Subscription

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns a Hub that will broadcast every event sub yields once Run
// is started.
func NewHub(sub *observer.Subscription) *Hub {
	return &Hub{sub: sub, clients: make(map[*websocket.Conn]struct{})}
}

// Register adds ws to the broadcast set.
func (h *Hub) Register(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes ws from the broadcast set and closes it.
func (h *Hub) Unregister(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// Run drains sub on the calling goroutine until ctx is cancelled, polling
// at pollInterval and broadcasting each event as JSON to every registered
// client. Disconnecting clients are pruned without blocking the drain loop
// for the others.
func (h *Hub) Run(ctx context.Context) {
	ticks := channerics.NewTicker(ctx.Done(), pollInterval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			for _, e := range h.sub.Drain() {
				h.broadcast(e)
			}
		}
	}
}

func (h *Hub) broadcast(e observer.Event) {
	h.mu.Lock()
	targets := make([]*websocket.Conn, 0, len(h.clients))
	for ws := range h.clients {
		targets = append(targets, ws)
	}
	h.mu.Unlock()

	for _, ws := range targets {
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteJSON(e); err != nil {
			h.Unregister(ws)
		}
	}
}
