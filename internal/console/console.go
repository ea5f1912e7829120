// Package console serves the developer console: a websocket endpoint
// that evaluates submitted Lua lines against the scripting runtime.
// Development aid; disabled by default in config.
package console

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Evaluator runs one console line and renders its results.
type Evaluator interface {
	Eval(line string) (string, error)
}

// Server is the websocket console server.
type Server struct {
	addr     string
	eval     Evaluator
	upgrader websocket.Upgrader
}

// NewServer creates a console server bound to addr.
func NewServer(addr string, eval Evaluator) *Server {
	return &Server{
		addr: addr,
		eval: eval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local development tool; trust any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/console", s.serveWS)

	srv := &http.Server{Addr: s.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	slog.Info("developer console listening", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveWS upgrades one connection and evaluates lines until it closes.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("console upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	slog.Info("console client connected", "remote", conn.RemoteAddr())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("console read ended", "err", err)
			}
			return
		}

		out, err := s.eval.Eval(string(msg))
		if err != nil {
			out = "error: " + err.Error()
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(out)); err != nil {
			slog.Debug("console write failed", "err", err)
			return
		}
	}
}
