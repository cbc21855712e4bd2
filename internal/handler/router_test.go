package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/handler"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/port"
	"github.com/hmalcolm/ynab-bridge-go/internal/service"
	"github.com/hmalcolm/ynab-bridge-go/internal/spill"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// stubStore satisfies port.BudgetStore via the embedded interface;
// only the methods a test exercises are overridden.
type stubStore struct {
	port.BudgetStore
}

func (s stubStore) ListBudgets(_ context.Context, _ bool) ([]domain.Budget, error) {
	return []domain.Budget{{ID: "b-1", Name: "Household"}}, nil
}

func newTestRouter(t *testing.T, jwtSecret string) http.Handler {
	t.Helper()
	metrics := observability.NewMetrics()
	tools := service.NewTools(stubStore{}, spill.NewWriter(t.TempDir()), metrics, zap.NewNop())
	return handler.NewRouter(tools, metrics, zap.NewNop(), jwtSecret)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestToolInvocation(t *testing.T) {
	router := newTestRouter(t, "")

	body := strings.NewReader(`{"response_format": "json"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		InvocationID string `json:"invocation_id"`
		Result       string `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp.InvocationID == "" {
		t.Error("missing invocation_id")
	}
	if !strings.Contains(resp.Result, "Household") {
		t.Errorf("result missing budget name:\n%s", resp.Result)
	}
}

func TestToolInvocation_EmptyBody(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("empty body should use defaults, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestToolInvocation_MalformedBody(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestToolMetricsSnapshot(t *testing.T) {
	router := newTestRouter(t, "")

	invoke := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", strings.NewReader(`{}`))
	router.ServeHTTP(httptest.NewRecorder(), invoke)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var snapshot struct {
		TotalInvocations int64 `json:"total_invocations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if snapshot.TotalInvocations != 1 {
		t.Errorf("total_invocations = %d, want 1", snapshot.TotalInvocations)
	}
}

func TestBearerAuth(t *testing.T) {
	const secret = "test-secret"
	router := newTestRouter(t, secret)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "local",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/tools/ynab_get_budgets", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("health stays open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
