package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/shiftwise/timecard-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Mailer defines the interface for sending workflow emails. SendDecision
// reports whether the email actually went out; it returns false with a
// nil error when delivery is skipped because SMTP is not configured.
type Mailer interface {
	SendDecision(to, employeeName, workDate, decision, comment string) (bool, error)
}

type mailerImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewMailer creates a new SMTP mailer instance
func NewMailer(cfg config.SMTPConfig) (Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &mailerImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type decisionEmailData struct {
	EmployeeName string
	WorkDate     string
	Decision     string
	Comment      string
}

// SendDecision sends the approve/reject outcome for one entry to its
// employee. Comment is included only when present (rejections).
func (m *mailerImpl) SendDecision(to, employeeName, workDate, decision, comment string) (bool, error) {
	data := decisionEmailData{
		EmployeeName: employeeName,
		WorkDate:     workDate,
		Decision:     decision,
		Comment:      comment,
	}

	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, "decision.html", data); err != nil {
		return false, fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Your time card entry for %s was %s", workDate, decision)
	return m.sendHTML(to, subject, body.String())
}

func (m *mailerImpl) sendHTML(to, subject, htmlBody string) (bool, error) {
	// Skip sending if SMTP is not configured
	if m.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return false, nil
	}

	from := m.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return true, nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return false, fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
