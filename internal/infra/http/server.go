package http

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	srv *http.Server
}

func New(addr string, exposeMetrics bool) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

// handleHealth — проверка живости для docker/оркестратора.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("decor-bot: ok"))
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
