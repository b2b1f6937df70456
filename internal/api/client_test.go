package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestFetchPlaylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/playlist" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"playlist":["/a.jpg","/b.jpg","/c.jpg"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	images, err := client.FetchPlaylist(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("Expected 3 images, got %d", len(images))
	}
	if images[0] != "/a.jpg" {
		t.Errorf("Expected first image '/a.jpg', got '%s'", images[0])
	}
}

func TestFetchPlaylistBadShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":["/a.jpg"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPlaylist(context.Background())
	if !errors.Is(err, ErrBadShape) {
		t.Errorf("Expected ErrBadShape, got %v", err)
	}
}

func TestFetchPlaylistServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPlaylist(context.Background())
	if err == nil {
		t.Error("Expected error for 500 response, got nil")
	}
}

func TestConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/currency/convert" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("amount") != "39" || q.Get("from") != "USD" || q.Get("to") != "EUR" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"converted":{"amount":35.72}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	converted, err := client.Convert(context.Background(), decimal.NewFromInt(39), "USD", "EUR")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !converted.Equal(decimal.NewFromFloat(35.72)) {
		t.Errorf("Expected converted amount 35.72, got %s", converted)
	}
}

func TestConvertRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":"unsupported currency pair"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Convert(context.Background(), decimal.NewFromInt(10), "USD", "XXX")
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Expected ErrConversionFailed, got %v", err)
	}
}

func TestConvertNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := NewClient(server.URL)
	_, err := client.Convert(context.Background(), decimal.NewFromInt(10), "USD", "EUR")
	if err == nil {
		t.Error("Expected error for unreachable server, got nil")
	}
}
