package renderer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientValidatesConfig(t *testing.T) {
	if _, err := NewClient(Config{}); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected config invalid error, got %v", err)
	}
	if _, err := NewClient(Config{BaseURL: "https://render.example.com/"}); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestRenderSendsPayloadAndAuth(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, AuthToken: "token-123"})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	pdf, err := client.Render(context.Background(), Payload{
		ProductName: "Orbit Downlight",
		PartCode:    "DL100-A-N",
		TotalPrice:  "65.00",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if gotPath != "/api/v1/render/datasheet" {
		t.Fatalf("unexpected endpoint: %s", gotPath)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %s", gotContentType)
	}
}

func TestRenderRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if _, err := client.Render(context.Background(), Payload{}); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected request failed error, got %v", err)
	}
}

func TestRenderRejectsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if _, err := client.Render(context.Background(), Payload{}); !errors.Is(err, ErrResponseInvalid) {
		t.Fatalf("expected response invalid error, got %v", err)
	}
}
