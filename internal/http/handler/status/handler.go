package status

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Handler reports basic host health so load balancers and operators can
// probe the service.
type Handler struct {
	mux *http.ServeMux
}

type statusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds uint64  `json:"uptimeSeconds"`
	Load1         float64 `json:"load1"`
	Load5         float64 `json:"load5"`
	Load15        float64 `json:"load15"`
	MemoryUsedPct float64 `json:"memoryUsedPct"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	h := &Handler{
		mux: &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /", h.getStatus)

	return h
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := statusResponse{
		Status: "ok",
	}

	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		res.UptimeSeconds = uptime
	} else {
		slog.DebugContext(ctx, "could not read host uptime", slog.Any("error", errors.WithStack(err)))
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		res.Load1 = avg.Load1
		res.Load5 = avg.Load5
		res.Load15 = avg.Load15
	} else {
		slog.DebugContext(ctx, "could not read load average", slog.Any("error", errors.WithStack(err)))
	}

	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		res.MemoryUsedPct = vmem.UsedPercent
	} else {
		slog.DebugContext(ctx, "could not read memory usage", slog.Any("error", errors.WithStack(err)))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode status", slog.Any("error", errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
