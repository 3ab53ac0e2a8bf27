// Package health serves the service's probe endpoints.
//
// GET /health reports the service together with the document store it
// depends on; /ready, /readyz and /livez are the thin orchestrator
// probes mounted on the root router.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// Handler answers probe requests.
type Handler struct {
	client *mongo.Client
	logger *zap.Logger
}

// NewHandler creates a probe handler over the shared Mongo client.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Response is the full health report returned by Check.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes serves the full report at the mount point plus /ready and /live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints registers the bare probe paths on the root router:
// /ready and /readyz for readiness, /livez for liveness.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check reports the service and the document store. An unreachable store
// degrades the report and the status code rather than erroring.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: "ok", Services: map[string]string{}}

	if err := h.ping(r.Context()); err != nil {
		h.logger.Warn("health: document store unreachable", zap.Error(err))
		resp.Status = "degraded"
		resp.Services["mongodb"] = "unavailable"
	} else {
		resp.Services["mongodb"] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	jsonutil.JSON(w, status, resp)
}

// Ready answers the readiness probe: ready once the store answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.ping(r.Context()); err != nil {
		h.logger.Warn("health: readiness ping failed", zap.Error(err))
		jsonutil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	jsonutil.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Live answers the liveness probe. It never touches the store: a wedged
// database should fail readiness, not trigger a restart loop.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (h *Handler) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.client.Ping(ctx, readpref.Primary())
}
