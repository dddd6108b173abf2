package mailer

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"time"
)

// Mailer mail-sending capability. Services take this as a constructor
// parameter; sends are best-effort from the caller's perspective.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// Config SMTP settings
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	SenderName string
	Timeout    time.Duration
}

// SMTP Mailer implementation over net/smtp with TLS
type SMTP struct {
	cfg  Config
	auth smtp.Auth
}

// New creates an SMTP mailer
func New(cfg Config) *SMTP {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMTP{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
}

// Send delivers a plain-text message. Port 465 means implicit TLS,
// anything else upgrades via STARTTLS.
func (m *SMTP) Send(recipient, subject, body string) error {
	msg := m.buildMessage(recipient, subject, body)
	address := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if m.cfg.Port == 465 {
		return m.sendImplicitTLS(address, recipient, msg)
	}
	return m.sendSTARTTLS(address, recipient, msg)
}

func (m *SMTP) sendImplicitTLS(address, recipient string, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: m.cfg.Host}

	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: m.cfg.Timeout}, "tcp", address, tlsConfig)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	return m.sendViaClient(client, recipient, msg)
}

func (m *SMTP) sendSTARTTLS(address, recipient string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", address, m.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{ServerName: m.cfg.Host}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	return m.sendViaClient(client, recipient, msg)
}

func (m *SMTP) sendViaClient(client *smtp.Client, recipient string, msg []byte) error {
	if err := client.Auth(m.auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.cfg.Username); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *SMTP) buildMessage(recipient, subject, body string) []byte {
	encodedSubject := mime.QEncoding.Encode("utf-8", subject)
	encodedSender := mime.QEncoding.Encode("utf-8", m.cfg.SenderName)
	date := time.Now().Format(time.RFC1123Z)

	return []byte(fmt.Sprintf(
		"Date: %s\r\n"+
			"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n"+
			"%s",
		date, recipient, encodedSender, m.cfg.Username, encodedSubject, body,
	))
}
