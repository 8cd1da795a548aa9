package relay

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// Relay delivers email messages over SMTP. When no SMTP host is
// configured it runs in dev mode and only logs the message.
type Relay struct {
	host     string
	port     string
	username string
	password string
	log      *zap.Logger
}

func New(host, port, username, password string, log *zap.Logger) *Relay {
	return &Relay{
		host:     host,
		port:     port,
		username: username,
		password: password,
		log:      log,
	}
}

// DevMode reports whether the relay will log instead of sending.
func (r *Relay) DevMode() bool {
	return r.host == ""
}

func (r *Relay) Deliver(msg models.EmailMessage) error {
	if r.DevMode() {
		r.log.Info("dev mode: email not relayed",
			zap.String("to", msg.To),
			zap.String("from", msg.From),
			zap.String("subject", msg.Subject))
		return nil
	}

	auth := smtp.PlainAuth("", r.username, r.password, r.host)
	addr := r.host + ":" + r.port
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, BuildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", addr, err)
	}
	return nil
}

// BuildMessage renders an RFC 5322 message with an HTML body.
func BuildMessage(msg models.EmailMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
