package clients

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestSendSuccess(t *testing.T) {
	var got messageRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "secret-token", "channel-42")
	if !n.Send("hello there") {
		t.Fatal("Send returned false for a 2xx response")
	}

	if got.Channel != "channel-42" {
		t.Errorf("channel = %q", got.Channel)
	}
	if got.Text != "hello there" {
		t.Errorf("text = %q", got.Text)
	}
	if got.Format != "richtext" {
		t.Errorf("format = %q", got.Format)
	}
	if auth != "Bearer secret-token" {
		t.Errorf("authorization header = %q", auth)
	}
}

func TestSendNonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		n := NewNotifier(server.URL, "t", "c")
		if n.Send("msg") {
			t.Errorf("Send returned true for status %d", status)
		}
		server.Close()
	}
}

func TestSendTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	n := NewNotifier(server.URL, "t", "c")
	if n.Send("msg") {
		t.Error("Send returned true on transport failure")
	}
}

func TestSendPreconditions(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "t", "c")

	if n.Send("") {
		t.Error("Send accepted an empty message")
	}
	if n.Send(strings.Repeat("a", maxMessageSize+1)) {
		t.Error("Send accepted an oversized message")
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("precondition failures made %d network calls", got)
	}

	// At the boundary the call goes through.
	if !n.Send(strings.Repeat("a", maxMessageSize)) {
		t.Error("Send rejected a message exactly at the size limit")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly one call, got %d", got)
	}
}
