package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestPostForm(t *testing.T) {
	var gotForm url.Values
	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = r.PostForm
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	form := url.Values{}
	form.Set("q", "hello world")
	body, status, err := PostForm(context.Background(), ts.URL, map[string]string{"User-Agent": "test-agent"}, form, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("got status %d, want 200", status)
	}
	if string(body) != "ok" {
		t.Fatalf("got body %q, want %q", body, "ok")
	}
	if gotForm.Get("q") != "hello world" {
		t.Fatalf("got form q=%q, want %q", gotForm.Get("q"), "hello world")
	}
	if gotAgent != "test-agent" {
		t.Fatalf("got user agent %q, want %q", gotAgent, "test-agent")
	}
}

func TestPostFormErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	_, status, err := PostForm(context.Background(), ts.URL, nil, url.Values{}, 5)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if status != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", status)
	}
	if !strings.Contains(err.Error(), "http 403") {
		t.Fatalf("expected error to name status, got %q", err.Error())
	}
}
