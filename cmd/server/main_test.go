package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dailypick/internal/metrics"
	"github.com/mmynk/dailypick/internal/middleware"
	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/service"
)

func setupServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	registry, err := service.NewRegistry([]*models.Roster{
		{Name: "standup", Members: []string{"A", "B", "C", "D"}, StartDate: "2026-02-11", PickCount: 2},
	}, "")
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}

	m := metrics.New()
	server := httptest.NewServer(newHandler(registry, time.UTC, m))
	t.Cleanup(server.Close)
	return server, m
}

func TestHealthz(t *testing.T) {
	server, _ := setupServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request ID header on response")
	}
}

func TestGetDayThroughFullStack(t *testing.T) {
	server, _ := setupServer(t)

	client := service.NewSelectionServiceClient(http.DefaultClient, server.URL)
	resp, err := client.GetDay(context.Background(), connect.NewRequest(&service.GetDayRequest{
		Date: "2026-02-12",
	}))
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}

	picks := resp.Msg.Day.Picks
	if len(picks) != 2 || picks[0] != "C" || picks[1] != "D" {
		t.Errorf("expected [C D], got %v", picks)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := setupServer(t)

	client := service.NewSelectionServiceClient(http.DefaultClient, server.URL)
	_, err := client.GetDay(context.Background(), connect.NewRequest(&service.GetDayRequest{
		Date: "not-a-date",
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	want := `dailypick_rpc_requests_total{code="invalid_argument",procedure="/dailypick.v1.SelectionService/GetDay"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %q", want)
	}
}

func TestPlainJSONRequest(t *testing.T) {
	server, _ := setupServer(t)

	req, err := http.NewRequest(http.MethodPost,
		server.URL+service.SelectionServiceGetDayProcedure,
		strings.NewReader(`{"roster":"standup","date":"2026-02-11"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `"picks":["A","B"]`) {
		t.Errorf("unexpected body: %s", body)
	}
}
