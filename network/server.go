package network

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/status"
)

// Source is the run being watched
type Source interface {
	Snapshot() game.Snapshot
	RunID() string
	Seed() uint64
}

// Server exposes the spectator endpoints
//
//	GET /ws            binary websocket: hello, then snapshot and event frames
//	GET /api/snapshot  current snapshot as JSON
//	GET /api/status    metrics registry as JSON
//	GET /health        liveness
type Server struct {
	cfg    *Config
	source Source
	reg    *status.Registry
	hub    *Hub
	router *mux.Router

	upgrader websocket.Upgrader
	http     *http.Server
	listener net.Listener

	frames atomic.Uint64
	seq    atomic.Uint32

	statViewers *atomic.Int64
}

func NewServer(cfg *Config, source Source, reg *status.Registry) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BroadcastEvery < 1 {
		cfg.BroadcastEvery = 1
	}
	s := &Server{
		cfg:         cfg,
		source:      source,
		reg:         reg,
		hub:         NewHub(cfg),
		router:      mux.NewRouter(),
		statViewers: reg.Ints.Get("network.viewers"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.router.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)
	s.router.HandleFunc("/api/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return s
}

// Handler returns the routed handler, for embedding or tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the viewer hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start binds the configured address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.cfg.Addr)
	}
	s.listener = ln
	s.http = &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	core.Go(s.hub.Run)
	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server: %v", err)
		}
	})
	log.Printf("spectator server listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Name identifies the server as a service
func (s *Server) Name() string {
	return "spectator"
}

// Stop shuts down with a bounded grace period
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting viewers and closes existing ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Stop()
	if s.http == nil {
		return nil
	}
	return errors.Wrap(s.http.Shutdown(ctx), "shutdown spectator server")
}

// Publish is called once per tick with that tick's notifications
// Events stream every tick; snapshots every BroadcastEvery ticks
func (s *Server) Publish(events []event.GameEvent) {
	s.statViewers.Store(int64(s.hub.Count()))
	if s.hub.Count() == 0 {
		return
	}
	if len(events) > 0 {
		if frame, err := EncodeEvents(s.seq.Add(1), events); err == nil {
			s.hub.Broadcast(frame)
		}
	}
	if s.frames.Add(1)%uint64(s.cfg.BroadcastEvery) != 0 {
		return
	}
	snap := s.source.Snapshot()
	frame, err := EncodeSnapshot(s.seq.Add(1), &snap)
	if err != nil {
		log.Printf("spectator snapshot: %v", err)
		return
	}
	s.hub.Broadcast(frame)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if s.hub.Count() >= s.cfg.MaxViewers {
		http.Error(w, "too many spectators", http.StatusServiceUnavailable)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator upgrade: %v", err)
		return
	}
	ok := s.hub.attach(conn, func(id uint32) []byte {
		frame, err := Encode(MsgHello, s.seq.Add(1), &Hello{
			RunID:      s.source.RunID(),
			Seed:       s.source.Seed(),
			TickRate:   parameter.TickRate,
			ViewerID:   id,
			Broadcast:  s.cfg.BroadcastEvery,
			ServerTime: time.Now().UnixMilli(),
		})
		if err != nil {
			return nil
		}
		return frame
	})
	if !ok {
		conn.Close()
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.source.Snapshot())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	out := s.reg.Snapshot()
	out["run.seed"] = s.source.Seed()
	out["network.viewers"] = s.hub.Count()
	writeJSON(w, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
