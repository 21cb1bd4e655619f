// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"wingx/internal/infra/config"
	"wingx/internal/platform/di"
)

// atomicHandler allows swapping the underlying handler at runtime safely.
type atomicHandler struct {
	v atomic.Value // stores http.Handler
}

func newAtomicHandler(initial http.Handler) *atomicHandler {
	ah := &atomicHandler{}
	if initial == nil {
		initial = http.NotFoundHandler()
	}
	ah.v.Store(initial)
	return ah
}

func (h *atomicHandler) Store(next http.Handler) {
	if next == nil {
		return
	}
	h.v.Store(next)
}

func (h *atomicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cur := h.v.Load()
	if cur == nil {
		http.NotFound(w, r)
		return
	}
	cur.(http.Handler).ServeHTTP(w, r)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// Start listening ASAP with a lightweight mux (healthz only); the full
	// router swaps in once DI finishes.
	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	switcher := newAtomicHandler(healthMux)

	// No WriteTimeout: the order status stream holds its response open.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     switcher,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	var containerHolder atomic.Value // stores *di.Container (or nil)
	containerHolder.Store((*di.Container)(nil))

	go func() {
		log.Printf("[boot] listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[boot] server error: %v", err)
		}
	}()

	// Heavy DI init in background; then swap handler to the full router.
	go func() {
		initCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		container, err := di.NewContainer(initCtx, cfg)
		if err != nil {
			log.Printf("[boot] WARN: di init failed: %v (serving /healthz only)", err)
			return
		}
		containerHolder.Store(container)

		switcher.Store(container.Handler)
		log.Printf("[boot] full router active")

		// Hourly exchange rate refresh for the life of the process.
		go container.RateUC.Run(ctx)
	}()

	<-ctx.Done()
	log.Printf("[boot] shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[boot] server shutdown error: %v", err)
	}

	if v := containerHolder.Load(); v != nil {
		if c, ok := v.(*di.Container); ok && c != nil {
			c.Close()
		}
	}
	log.Printf("[boot] bye")
}
