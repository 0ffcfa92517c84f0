package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"dexinfo.com/internal/application/usecase"
	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/domain/port"
	"dexinfo.com/internal/icon"
	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
)

// Handler holds HTTP handlers and their dependencies
type Handler struct {
	fetchTransactionsUseCase *usecase.FetchTokenTransactionsUseCase
	validator                port.RequestValidator
	metrics                  *metrics.Metrics
	gatherer                 prometheus.Gatherer
	logger                   logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	fetchTransactionsUseCase *usecase.FetchTokenTransactionsUseCase,
	validator port.RequestValidator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger logger.Logger,
) *Handler {
	return &Handler{
		fetchTransactionsUseCase: fetchTransactionsUseCase,
		validator:                validator,
		metrics:                  m,
		gatherer:                 gatherer,
		logger:                   logger,
	}
}

// HandleTokenTransactions handles GET /tokens/{address}/transactions requests
func (h *Handler) HandleTokenTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := loggerFromContext(ctx, h.logger)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chainID, address, err := h.validator.ValidateTransactionsRequest(r.URL.Query().Get("chain"), r.PathValue("address"))
	if err != nil {
		requestLogger.LogWarning(ctx, "Invalid transactions request", "error", err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.fetchTransactionsUseCase.Execute(ctx, chainID, address)
	if result.Error {
		writeJSON(ctx, w, http.StatusBadGateway, result, requestLogger)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result, requestLogger)

	requestLogger.LogInfo(ctx, "Token transactions served",
		"chain", chainID.String(),
		"address", address,
		"count", len(result.Data))
}

// HandleIcon handles GET /icons/{name}.svg requests
func (h *Handler) HandleIcon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestLogger := loggerFromContext(ctx, h.logger)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name, ok := strings.CutSuffix(r.PathValue("file"), ".svg")
	if !ok || name == "" {
		http.Error(w, "Icon not found", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	props := icon.Props{
		Width:   query.Get("width"),
		Color:   query.Get("color"),
		ViewBox: query.Get("viewBox"),
	}
	if spin := query.Get("spin"); spin != "" {
		parsed, err := strconv.ParseBool(spin)
		if err != nil {
			http.Error(w, "Invalid spin parameter", http.StatusBadRequest)
			return
		}
		props.Spin = parsed
	}

	svg, err := icon.Render(name, props)
	switch {
	case errors.Is(err, entity.ErrUnknownIcon):
		http.Error(w, "Icon not found", http.StatusNotFound)
		return
	case err != nil:
		requestLogger.LogWarning(ctx, "Invalid icon props", "icon", name, "error", err.Error())
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		requestLogger.LogError(ctx, "Failed to write icon response", err)
	}
}

// HandleHealth handles GET /healthz requests
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r.Context(), h.logger))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any, l logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		l.LogError(ctx, "Failed to encode response", err)
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	wrap := func(route string, next http.HandlerFunc) http.HandlerFunc {
		return RequestIDMiddleware(LoggingMiddleware(next, route, h.logger, h.metrics), h.logger)
	}

	mux.HandleFunc("/tokens/{address}/transactions", wrap("/tokens/{address}/transactions", h.HandleTokenTransactions))
	mux.HandleFunc("/icons/{file}", wrap("/icons/{file}", h.HandleIcon))
	mux.HandleFunc("/healthz", h.HandleHealth)
	mux.Handle("/metrics", metrics.Handler(h.gatherer))

	return mux
}
