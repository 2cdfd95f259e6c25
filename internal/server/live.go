package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// event is the message pushed to live subscribers.
type event struct {
	Type string `json:"type"`
}

// hub fans regeneration events out to connected preview clients.
type hub struct {
	logger *log.Logger

	mu   sync.Mutex
	subs map[chan event]struct{}
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		logger: logger,
		subs:   make(map[chan event]struct{}),
	}
}

func (h *hub) subscribe() chan event {
	ch := make(chan event, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) unsubscribe(ch chan event) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// broadcast never blocks: a subscriber with a full buffer misses the event,
// and the next one catches it up.
func (h *hub) broadcast(typ string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- event{Type: typ}:
		default:
		}
	}
}

// ServeHTTP upgrades to WebSocket and pushes events until the client leaves.
func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	ctx := r.Context()
	h.send(ctx, conn, event{Type: "hello"})

	// Drain client messages so pings and close frames are processed.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-ch:
			h.send(ctx, conn, ev)
		case <-readDone:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *hub) send(ctx context.Context, conn *websocket.Conn, ev event) {
	if err := wsjson.Write(ctx, conn, ev); err != nil {
		h.logger.Debug("websocket write failed", "err", err)
	}
}
