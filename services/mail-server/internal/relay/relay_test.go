package relay

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

func TestBuildMessage(t *testing.T) {
	msg := models.EmailMessage{
		To:      "caretaker@example.com",
		From:    "noreply@medicationreminder.app",
		Subject: "Missed Medication Alert - Test User",
		HTML:    "<h2>Missed Medication Alert</h2>",
	}

	raw := string(BuildMessage(msg))

	wantLines := []string{
		"From: noreply@medicationreminder.app\r\n",
		"To: caretaker@example.com\r\n",
		"Subject: Missed Medication Alert - Test User\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
	}
	for _, line := range wantLines {
		if !strings.Contains(raw, line) {
			t.Errorf("message missing header line %q", line)
		}
	}

	headerEnd := strings.Index(raw, "\r\n\r\n")
	if headerEnd < 0 {
		t.Fatal("message has no blank line separating headers from body")
	}
	if body := raw[headerEnd+4:]; body != msg.HTML {
		t.Errorf("body = %q, want %q", body, msg.HTML)
	}
}

func TestDeliverDevMode(t *testing.T) {
	r := New("", "", "", "", zap.NewNop())
	if !r.DevMode() {
		t.Fatal("relay with no host should be in dev mode")
	}

	err := r.Deliver(models.EmailMessage{
		To:      "caretaker@example.com",
		From:    "noreply@medicationreminder.app",
		Subject: "Medication Reminder - Test User",
		HTML:    "<p>hello</p>",
	})
	if err != nil {
		t.Fatalf("dev mode delivery should not fail: %v", err)
	}
}
