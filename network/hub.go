package network

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// viewer is one connected spectator
type viewer struct {
	id   uint32
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub fans frames out to viewers
// Register, unregister and broadcast are serialized through the run goroutine
type Hub struct {
	cfg *Config

	mu      sync.RWMutex
	viewers map[uint32]*viewer
	nextID  atomic.Uint32

	register   chan *viewer
	unregister chan *viewer
	broadcast  chan []byte
	done       chan struct{}
	stopOnce   sync.Once

	sent    atomic.Uint64
	skipped atomic.Uint64
}

func NewHub(cfg *Config) *Hub {
	if cfg.SendQueueSize < 1 {
		cfg.SendQueueSize = 1
	}
	return &Hub{
		cfg:        cfg,
		viewers:    make(map[uint32]*viewer),
		register:   make(chan *viewer),
		unregister: make(chan *viewer),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run processes hub traffic until Stop
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for id, v := range h.viewers {
				delete(h.viewers, id)
				close(v.send)
			}
			h.mu.Unlock()
			return

		case v := <-h.register:
			h.mu.Lock()
			h.viewers[v.id] = v
			h.mu.Unlock()
			log.Printf("spectator %d connected from %s", v.id, v.conn.RemoteAddr())

		case v := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.viewers[v.id]; ok {
				delete(h.viewers, v.id)
				close(v.send)
			}
			h.mu.Unlock()
			log.Printf("spectator %d disconnected", v.id)

		case frame := <-h.broadcast:
			h.mu.RLock()
			for _, v := range h.viewers {
				select {
				case v.send <- frame:
					h.sent.Add(1)
				default:
					// slow viewer, drop this frame for it
					h.skipped.Add(1)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop closes every viewer and ends Run
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Broadcast queues a frame for every viewer; false when the hub is backed up or stopped
func (h *Hub) Broadcast(frame []byte) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.broadcast <- frame:
		return true
	default:
		return false
	}
}

// Count returns the number of connected viewers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Stats returns delivered and skipped per-viewer frame counts
func (h *Hub) Stats() (sent, skipped uint64) {
	return h.sent.Load(), h.skipped.Load()
}

// attach registers a connection and starts its pumps; first is queued before any broadcast
func (h *Hub) attach(conn *websocket.Conn, first func(id uint32) []byte) bool {
	v := &viewer{
		id:   h.nextID.Add(1),
		conn: conn,
		send: make(chan []byte, h.cfg.SendQueueSize),
		hub:  h,
	}
	if first != nil {
		if frame := first(v.id); frame != nil {
			v.send <- frame
		}
	}
	select {
	case h.register <- v:
	case <-h.done:
		return false
	}
	go v.writePump()
	go v.readPump()
	return true
}

func (h *Hub) leave(v *viewer) {
	select {
	case h.unregister <- v:
	case <-h.done:
	}
}

// readPump discards viewer input; it exists to notice closes and answer pings
func (v *viewer) readPump() {
	defer func() {
		v.hub.leave(v)
		v.conn.Close()
	}()

	v.conn.SetReadLimit(512)
	v.conn.SetReadDeadline(time.Now().Add(v.hub.cfg.PongTimeout))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(v.hub.cfg.PongTimeout))
		return nil
	})
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("spectator %d: %v", v.id, err)
			}
			return
		}
	}
}

// writePump sends queued frames and keeps the connection alive
func (v *viewer) writePump() {
	ticker := time.NewTicker(v.hub.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(v.hub.cfg.WriteTimeout))
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(v.hub.cfg.WriteTimeout))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
