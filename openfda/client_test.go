package openfda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, timeout: timeout}
}

func TestFetchSuccess(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)

		if got := r.URL.Query().Get("search"); got != "*:*" {
			t.Errorf("Expected search=*:*, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("Expected limit=3, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"description":["a drug"],"openfda":{"brand_name":["Aspirin"]}}]}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, time.Second)
	resp, err := client.Fetch(context.Background(), "*:*", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts.Load())
	}
	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}
	if got := resp.Results[0].Section("description"); len(got) != 1 || got[0] != "a drug" {
		t.Errorf("Unexpected description section: %v", got)
	}
}

func TestFetch404IsEmptySuccess(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := testClient(srv.URL, time.Second)
	resp, err := client.Fetch(context.Background(), `openfda.brand_name:"nosuchdrug"`, 3)
	if err != nil {
		t.Fatalf("404 should not be an error, got %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Expected empty results, got %d", len(resp.Results))
	}
	if attempts.Load() != 1 {
		t.Errorf("404 should not be retried, got %d attempts", attempts.Load())
	}
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL, time.Second)
	resp, err := client.Fetch(context.Background(), "*:*", 1)
	if err != nil {
		t.Fatalf("Expected success on third attempt, got %v", err)
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected exactly 3 attempts, got %d", attempts.Load())
	}
	if resp.Results == nil {
		t.Error("Expected non-nil results")
	}
}

func TestFetchTimeoutsSurfaceAfterBudget(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client := testClient(srv.URL, 50*time.Millisecond)
	_, err := client.Fetch(context.Background(), "*:*", 1)
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts before surfacing, got %d", attempts.Load())
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("Error should mention the attempt budget, got %v", err)
	}
}

func TestFetchUnexpectedStatusRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := testClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "*:*", 1)
	if err == nil {
		t.Fatal("Expected error after retry budget")
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts.Load())
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	if client.url != openFDAURL {
		t.Errorf("Expected default URL %q, got %q", openFDAURL, client.url)
	}
	if client.timeout != requestTimeout {
		t.Errorf("Expected timeout %v, got %v", requestTimeout, client.timeout)
	}
}
