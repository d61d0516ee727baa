package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestGetAttachesCredentialAndParams(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"page":1,"results":[],"total_pages":0}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token", time.Second)
	params := url.Values{}
	params.Set("page", "2")

	body, ok := client.Get(context.Background(), "movie/popular", params)
	if !ok {
		t.Fatal("expected successful fetch")
	}
	if len(body) == 0 {
		t.Error("expected non-empty body")
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
	if gotQuery != "page=2" {
		t.Errorf("expected page param, got %q", gotQuery)
	}
}

func TestGetReportsNon2xxAsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream error", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", time.Second)
	body, ok := client.Get(context.Background(), "movie/popular", nil)
	if ok || body != nil {
		t.Errorf("expected miss on 502, got ok=%v body=%q", ok, body)
	}
}

func TestGetReportsTransportFailureAsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "token", time.Second)
	if _, ok := client.Get(context.Background(), "movie/popular", nil); ok {
		t.Error("expected miss on connection failure")
	}
}

func TestGetHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", 20*time.Millisecond)
	start := time.Now()
	if _, ok := client.Get(context.Background(), "movie/popular", nil); ok {
		t.Error("expected miss on timeout")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}
