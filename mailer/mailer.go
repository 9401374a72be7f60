package mailer

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer delivers account emails. Delivery is best-effort: callers fire it
// after the triggering write has committed and only log failures.
type Mailer interface {
	SendWelcome(to string, username string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

// NewFromEnv builds a mailer from SMTP_* env vars. Returns nil when SMTP is
// not configured, which disables email without failing startup.
func NewFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	if host == "" || user == "" {
		return nil
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	return &SMTPMailer{
		Host:   host,
		Port:   port,
		User:   user,
		Pass:   os.Getenv("SMTP_PASS"),
		Sender: os.Getenv("SMTP_SENDER"),
	}
}

func (m *SMTPMailer) SendWelcome(to string, username string) error {
	body := fmt.Sprintf(`
<div style="font-family: 'Arial', sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <header style="background-color: #ef4444; padding: 20px; color: #fff;">
    <h1>PropertyPulse</h1>
  </header>
  <main style="padding: 30px;">
    <h2>Hi, %s</h2>
    <h2>Welcome onboard with us!</h2>
    <p>Thank you for registering an account with us. We are excited to have you on board.</p>
    <p>If you have any questions or need assistance, feel free to contact us.</p>
    <p>Best regards,</p>
    <p>PropertyPulse Team</p>
  </main>
</div>`, username)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to PropertyPulse!!")
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)

	// For local dev with simple SMTP or if cert issues arise
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(msg)
}
