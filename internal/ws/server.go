package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Server hosts the chat endpoint on its own listener. The REST API runs on
// fasthttp, which cannot hand a connection to gorilla's upgrader, so the
// WebSocket surface gets a plain net/http server on its own port.
type Server struct {
	srv *http.Server
}

func NewServer(port int, handler *Handler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", handler)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	slog.Info("starting websocket server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("websocket server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
