package ynab_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/resilience"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/ynab"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, srv *httptest.Server) *ynab.Client {
	t.Helper()
	return ynab.NewClient(ynab.Options{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Token:      "test-token",
		Breaker:    resilience.NewCircuitBreaker("ynab-test"),
		Resilience: resilience.Config{
			MaxRetries:     2,
			InitialBackoff: time.Millisecond,
			MaxConcurrency: 4,
		},
		Metrics:  observability.NewMetrics(),
		Logger:   zap.NewNop(),
		CacheTTL: time.Minute,
	})
}

func TestListAccounts_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header = %q", got)
		}
		if r.URL.Path != "/v1/budgets/b-1/accounts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"accounts":[
			{"id":"a-1","name":"Checking","type":"checking","on_budget":true,"balance":150000},
			{"id":"a-2","name":"Savings","type":"savings","on_budget":true,"balance":null}
		]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	accounts, err := client.ListAccounts(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("accounts = %d, want 2", len(accounts))
	}
	if accounts[0].Balance == nil || *accounts[0].Balance != 150000 {
		t.Errorf("balance not decoded: %+v", accounts[0])
	}
	if accounts[1].Balance != nil {
		t.Error("null balance must stay nil")
	}
}

func TestErrorEnvelope_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"id":"404","name":"not_found","detail":"Budget not found"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	_, err := client.GetBudget(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error")
	}

	var upstream *domain.ErrUpstream
	if !errors.As(err, &upstream) {
		t.Fatalf("expected ErrUpstream, got %T: %v", err, err)
	}
	if upstream.Status != http.StatusNotFound || upstream.Reason != "Budget not found" {
		t.Errorf("unexpected upstream error: %+v", upstream)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("status failures must not be retried, got %d calls", got)
	}
}

func TestListBudgets_CachesPlainList(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"data":{"budgets":[{"id":"b-1","name":"Household"}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	for i := 0; i < 3; i++ {
		budgets, err := client.ListBudgets(context.Background(), false)
		if err != nil {
			t.Fatalf("ListBudgets: %v", err)
		}
		if len(budgets) != 1 || budgets[0].Name != "Household" {
			t.Fatalf("unexpected budgets: %+v", budgets)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("plain list should be served from cache, got %d upstream calls", got)
	}
}

func TestListBudgets_IncludeAccountsBypassesCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.RawQuery != "include_accounts=true" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"data":{"budgets":[{"id":"b-1","name":"Household","accounts":[{"id":"a-1","name":"Checking"}]}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	for i := 0; i < 2; i++ {
		budgets, err := client.ListBudgets(context.Background(), true)
		if err != nil {
			t.Fatalf("ListBudgets: %v", err)
		}
		if len(budgets[0].Accounts) != 1 {
			t.Fatalf("accounts not decoded: %+v", budgets[0])
		}
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("include_accounts must always fetch, got %d upstream calls", got)
	}
}

func TestUpdateMonthCategory_SendsWrappedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/v1/budgets/b-1/months/2026-03-01/categories/c-1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body struct {
			Category struct {
				Budgeted int64 `json:"budgeted"`
			} `json:"category"`
		}
		if err := jsonDecode(r, &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Category.Budgeted != 100000 {
			t.Errorf("budgeted = %d, want 100000", body.Category.Budgeted)
		}
		w.Write([]byte(`{"data":{"category":{"id":"c-1","category_group_id":"g-1","name":"Groceries","budgeted":100000}}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)

	cat, err := client.UpdateMonthCategory(context.Background(), "b-1", "2026-03-01", "c-1", domain.SaveMonthCategory{Budgeted: 100000})
	if err != nil {
		t.Fatalf("UpdateMonthCategory: %v", err)
	}
	if cat.Budgeted == nil || *cat.Budgeted != 100000 {
		t.Errorf("unexpected category: %+v", cat)
	}
}

func jsonDecode(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
