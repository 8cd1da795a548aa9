package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

func testMessage() models.EmailMessage {
	return models.EmailMessage{
		To:      "care@example.com",
		From:    "noreply@medicationreminder.app",
		Subject: "Missed Medication Alert - Anna Smith",
		HTML:    "<h2>Missed Medication Alert</h2>",
	}
}

func TestClient_SendPostsPayload(t *testing.T) {
	var got models.EmailMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/send" {
			t.Errorf("path = %s, want /send", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &Client{baseURL: srv.URL, client: srv.Client()}
	if err := c.Send(context.Background(), testMessage()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.To != "care@example.com" || got.Subject == "" {
		t.Errorf("server received %+v", got)
	}
}

func TestClient_SendNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Failed to send email"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{baseURL: srv.URL, client: srv.Client()}
	err := c.Send(context.Background(), testMessage())
	if err == nil {
		t.Fatal("Send succeeded, want error on 502")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q does not carry the status code", err)
	}
}

func TestClient_SendTimeoutIsError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	c := &Client{baseURL: srv.URL, client: &http.Client{Timeout: 50 * time.Millisecond}}
	if err := c.Send(context.Background(), testMessage()); err == nil {
		t.Fatal("Send succeeded, want timeout error")
	}
}
