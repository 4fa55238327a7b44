package smtp

import (
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"github.com/Abotareq/imDb-sub000/internal/datasources"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Mailer delivers templated plain-text email over SMTP.
type Mailer struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	useTLS      bool
	dialTimeout time.Duration
	templates   *template.Template
}

var _ datasources.Notifier = (*Mailer)(nil)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

func NewMailer(cfg Config) (*Mailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing mail templates: %w", err)
	}

	return &Mailer{
		host:        cfg.Host,
		port:        cfg.Port,
		username:    cfg.Username,
		password:    cfg.Password,
		from:        cfg.From,
		useTLS:      cfg.UseTLS,
		dialTimeout: 30 * time.Second,
		templates:   templates,
	}, nil
}

func (m *Mailer) SendEmail(ctx context.Context, to, subject, templateName string, data map[string]string) error {
	var body strings.Builder
	if err := m.templates.ExecuteTemplate(&body, templateName+".tmpl", data); err != nil {
		return fmt.Errorf("rendering mail template [%s]: %w", templateName, err)
	}

	msg := m.buildMessage(to, subject, body.String())
	if err := m.send(ctx, to, msg); err != nil {
		return fmt.Errorf("sending mail to [%s]: %w", to, err)
	}
	return nil
}

func (m *Mailer) buildMessage(to, subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")
	return msg.String()
}

func (m *Mailer) send(ctx context.Context, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	dialer := &net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connecting to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if m.useTLS {
		tlsConfig := &tls.Config{
			ServerName: m.host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starting TLS: %w", err)
		}
	}

	if m.username != "" && m.password != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication: %w", err)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening message body: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}
