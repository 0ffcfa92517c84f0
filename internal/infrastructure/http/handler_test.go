package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"dexinfo.com/internal/application/usecase"
	"dexinfo.com/internal/domain/entity"
	"dexinfo.com/internal/infrastructure/logger"
	"dexinfo.com/internal/infrastructure/metrics"
	"dexinfo.com/internal/infrastructure/repository"
	"dexinfo.com/internal/infrastructure/validator"
)

const testToken = "0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82"

// mockSubgraphClient implements port.SubgraphClient
type mockSubgraphClient struct {
	queryFunc func(ctx context.Context, chainID entity.ChainID, query string, vars map[string]any, out any) error
}

func (m *mockSubgraphClient) Query(ctx context.Context, chainID entity.ChainID, query string, vars map[string]any, out any) error {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, chainID, query, vars, out)
	}
	return nil
}

func newTestHandler(client *mockSubgraphClient) *Handler {
	appLogger := logger.NewLogger()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	fetchUseCase := usecase.NewFetchTokenTransactionsUseCase(client, repository.NoopCache{}, appLogger, 10)
	requestValidator := validator.NewChainRequestValidator(
		[]entity.ChainID{entity.ChainIDBSC, entity.ChainIDBSCTestnet},
		entity.ChainIDBSC,
	)

	return NewHandler(fetchUseCase, requestValidator, m, reg, appLogger)
}

func oneOfEach(_ context.Context, _ entity.ChainID, _ string, _ map[string]any, out any) error {
	pair := entity.PairRef{
		Token0: entity.TokenRef{ID: testToken, Symbol: "CAKE"},
		Token1: entity.TokenRef{ID: "0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c", Symbol: "WBNB"},
	}
	resp := out.(*entity.TokenTransactionsResponse)
	*resp = noEvents()
	resp.MintsAs0 = []entity.MintResponse{{ID: "0x1-0", Timestamp: "10", Pair: pair, To: "0xa", Amount0: "1", Amount1: "2", AmountUSD: "3"}}
	resp.BurnsAs1 = []entity.BurnResponse{{ID: "0x2-0", Timestamp: "20", Pair: pair, Sender: "0xb", Amount0: "1", Amount1: "2", AmountUSD: "3"}}
	resp.SwapsAs0 = []entity.SwapResponse{{ID: "0x3-0", Timestamp: "30", Pair: pair, From: "0xc",
		Amount0In: "1", Amount0Out: "0", Amount1In: "0", Amount1Out: "2", AmountUSD: "3"}}
	return nil
}

func noEvents() entity.TokenTransactionsResponse {
	return entity.TokenTransactionsResponse{
		MintsAs0: []entity.MintResponse{},
		MintsAs1: []entity.MintResponse{},
		SwapsAs0: []entity.SwapResponse{},
		SwapsAs1: []entity.SwapResponse{},
		BurnsAs0: []entity.BurnResponse{},
		BurnsAs1: []entity.BurnResponse{},
	}
}

func TestHandler_HandleTokenTransactions(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		queryFunc  func(context.Context, entity.ChainID, string, map[string]any, any) error
		wantStatus int
		wantCount  int
		wantError  bool
	}{
		{
			name:       "valid request",
			method:     http.MethodGet,
			path:       "/tokens/" + testToken + "/transactions",
			queryFunc:  oneOfEach,
			wantStatus: http.StatusOK,
			wantCount:  3,
		},
		{
			name:       "explicit chain",
			method:     http.MethodGet,
			path:       "/tokens/" + testToken + "/transactions?chain=97",
			queryFunc:  oneOfEach,
			wantStatus: http.StatusOK,
			wantCount:  3,
		},
		{
			name:       "wrong HTTP method",
			method:     http.MethodPost,
			path:       "/tokens/" + testToken + "/transactions",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "invalid address",
			method:     http.MethodGet,
			path:       "/tokens/0x123/transactions",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unconfigured chain",
			method:     http.MethodGet,
			path:       "/tokens/" + testToken + "/transactions?chain=1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "subgraph failure",
			method: http.MethodGet,
			path:   "/tokens/" + testToken + "/transactions",
			queryFunc: func(context.Context, entity.ChainID, string, map[string]any, any) error {
				return errors.New("subgraph unavailable")
			},
			wantStatus: http.StatusBadGateway,
			wantError:  true,
		},
		{
			name:   "null subgraph data",
			method: http.MethodGet,
			path:   "/tokens/" + testToken + "/transactions",
			queryFunc: func(context.Context, entity.ChainID, string, map[string]any, any) error {
				return nil
			},
			wantStatus: http.StatusBadGateway,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&mockSubgraphClient{queryFunc: tt.queryFunc})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.SetupRoutes().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Errorf("missing X-Request-ID header")
			}
			if tt.wantStatus != http.StatusOK && tt.wantStatus != http.StatusBadGateway {
				return
			}

			var body entity.TransactionsResult
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %v, want %v", body.Error, tt.wantError)
			}
			if len(body.Data) != tt.wantCount {
				t.Errorf("data length = %v, want %v", len(body.Data), tt.wantCount)
			}
		})
	}
}

func TestHandler_TransactionsResponseShape(t *testing.T) {
	handler := newTestHandler(&mockSubgraphClient{queryFunc: oneOfEach})

	req := httptest.NewRequest(http.MethodGet, "/tokens/"+testToken+"/transactions", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	handler.SetupRoutes().ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %v, want req-42", got)
	}

	var raw struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	swap := raw.Data[2]
	if swap["type"] != "SWAP" || swap["hash"] != "0x3" || swap["token1Symbol"] != "BNB" {
		t.Errorf("unexpected swap record: %v", swap)
	}
	if swap["amountToken0"] != "1" || swap["amountToken1"] != "-2" || swap["timestamp"] != "30" {
		t.Errorf("unexpected swap amounts: %v", swap)
	}
}

func TestHandler_TransactionsDataField(t *testing.T) {
	tests := []struct {
		name      string
		queryFunc func(context.Context, entity.ChainID, string, map[string]any, any) error
		wantBody  string
	}{
		{
			name: "no events",
			queryFunc: func(_ context.Context, _ entity.ChainID, _ string, _ map[string]any, out any) error {
				*out.(*entity.TokenTransactionsResponse) = noEvents()
				return nil
			},
			wantBody: `{"data":[],"error":false}`,
		},
		{
			name: "failure",
			queryFunc: func(context.Context, entity.ChainID, string, map[string]any, any) error {
				return errors.New("subgraph unavailable")
			},
			wantBody: `{"error":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&mockSubgraphClient{queryFunc: tt.queryFunc})

			req := httptest.NewRequest(http.MethodGet, "/tokens/"+testToken+"/transactions", nil)
			w := httptest.NewRecorder()
			handler.SetupRoutes().ServeHTTP(w, req)

			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestHandler_HandleIcon(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "default props",
			method:     http.MethodGet,
			path:       "/icons/earn.svg",
			wantStatus: http.StatusOK,
			wantBody:   `viewBox="0 0 24 24"`,
		},
		{
			name:       "custom props",
			method:     http.MethodGet,
			path:       "/icons/laurel-left.svg?width=48px&color=primary&spin=true",
			wantStatus: http.StatusOK,
			wantBody:   `width="48px"`,
		},
		{
			name:       "unknown icon",
			method:     http.MethodGet,
			path:       "/icons/rocket.svg",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing extension",
			method:     http.MethodGet,
			path:       "/icons/earn",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid color",
			method:     http.MethodGet,
			path:       "/icons/earn.svg?color=%23zzz",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid spin",
			method:     http.MethodGet,
			path:       "/icons/earn.svg?spin=sometimes",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong HTTP method",
			method:     http.MethodDelete,
			path:       "/icons/earn.svg",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&mockSubgraphClient{})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.SetupRoutes().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
					t.Errorf("Content-Type = %v, want image/svg+xml", ct)
				}
				if !strings.Contains(w.Body.String(), tt.wantBody) {
					t.Errorf("body %s does not contain %s", w.Body.String(), tt.wantBody)
				}
			}
		})
	}
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	handler := newTestHandler(&mockSubgraphClient{queryFunc: oneOfEach})
	mux := handler.SetupRoutes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("healthz = %v %s", w.Code, w.Body.String())
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tokens/"+testToken+"/transactions", nil))

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), `dexinfo_http_requests_total{path="/tokens/{address}/transactions",status="200"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", w.Body.String())
	}
}
