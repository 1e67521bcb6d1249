package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestServer_ServeHTTPHandler(t *testing.T) {
	t.Parallel()
	srv, err := New("127.0.0.1:0")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	done := make(chan error, 1)
	go func() {
		done <- srv.ServeHTTPHandler(ctx, handler, Options{
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		})
	}()

	resp, err := http.Get("http://" + srv.Addr() + "/")
	if err != nil {
		cancel()
		t.Fatalf("GET returned error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body got: %q, expected: %q", body, "ok")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ServeHTTPHandler got: %v, expected: nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestNew_AddressInUse(t *testing.T) {
	t.Parallel()
	first, err := New("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer first.listener.Close()

	if _, err := New(first.Addr()); err == nil {
		t.Errorf("New on a bound address got: nil error, expected: error")
	}
}
