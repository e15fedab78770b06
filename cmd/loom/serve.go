package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/demo"
	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
	"github.com/loom-ui/loom/pkg/host"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live demo page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			logger, err := cfg.logger()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

// upgrader accepts the demo's websocket connections. The demo is served and
// connected from the same origin; cross-origin checks are left to a fronting
// proxy.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := host.NewMetrics(nil, cfg.MetricsNamespace)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", indexHandler(logger))
	r.Get("/ws", wsHandler(logger, metrics))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving demo", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// indexHandler serves the demo page with a one-shot server-side render of
// the initial frame. Live state starts when the page connects to /ws.
func indexHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v *host.View
		v = host.NewView(host.ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
			return demo.Page(v)(ctx)
		}), host.WithLogger(logger))

		frame, err := v.Settle(16)
		if err != nil {
			logger.Error("ssr failed", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		title := v.Title()
		if err := v.Unmount(); err != nil {
			logger.Error("ssr unmount", "err", err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		writePage(w, title, frame.HTML)
	}
}

// clientMsg is an inbound websocket message.
type clientMsg struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// serverMsg is an outbound websocket message.
type serverMsg struct {
	Type  string `json:"type"`
	Seq   uint64 `json:"seq,omitempty"`
	HTML  string `json:"html,omitempty"`
	Title string `json:"title,omitempty"`
}

// wsHandler runs one view per websocket connection. Frames and title
// changes are pushed from the view's event loop, so the connection has a
// single writer; the read loop only queues clicks.
func wsHandler(logger *slog.Logger, metrics *host.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "err", err)
			return
		}
		defer conn.Close()

		send := func(msg serverMsg) {
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("websocket write failed", "err", err)
			}
		}

		var v *host.View
		v = host.NewView(
			host.ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
				return demo.Page(v)(ctx)
			}),
			host.WithLogger(logger),
			host.WithMetrics(metrics),
			host.OnFrame(func(f host.Frame) {
				send(serverMsg{Type: "frame", Seq: f.Seq, HTML: f.HTML})
			}),
			host.OnTitle(func(title string) {
				send(serverMsg{Type: "title", Title: title})
			}),
		)

		logger.Info("session started", "view", v.ID(), "remote", r.RemoteAddr)

		// Read loop: queue clicks onto the view's loop, close the view when
		// the client goes away.
		go func() {
			defer v.Close()
			for {
				var msg clientMsg
				if err := conn.ReadJSON(&msg); err != nil {
					if websocket.IsUnexpectedCloseError(err,
						websocket.CloseGoingAway,
						websocket.CloseNormalClosure) {
						logger.Debug("websocket read failed", "err", err)
					}
					return
				}
				switch msg.Type {
				case "click":
					v.HandleClick(msg.ID)
				default:
					logger.Warn("unknown message type", "type", msg.Type)
				}
			}
		}()

		if err := v.Run(r.Context()); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("session ended with error", "view", v.ID(), "err", err)
			payload, _ := json.Marshal(serverMsg{Type: "error"})
			_ = conn.WriteMessage(websocket.TextMessage, payload)
		}
		logger.Info("session closed", "view", v.ID())
	}
}
