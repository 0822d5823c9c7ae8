// Package server exposes the remote view over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padscope/internal/hub"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	poster      hub.Poster
	log         *zap.Logger
	page        []byte
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, poster hub.Poster, addr string, log *zap.Logger) (*Server, error) {
	page, err := minifyPage(statusPage)
	if err != nil {
		return nil, err
	}
	s := &Server{
		hub:         h,
		broadcaster: b,
		poster:      poster,
		log:         log,
		page:        page,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler routes / to the status page and /ws to the websocket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", s.handleStatus)
	return mux
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down http server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
