package email

import (
	"bytes"
	"fmt"
	"html/template"

	"jobportal_backend/internal/config"
	"jobportal_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Delivery failures are logged by
// callers and never fail the triggering operation.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

type SMTPProvider struct {
	cfg config.EmailConfig
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.SMTPHost,
		p.cfg.SMTPPort,
		p.cfg.SMTPUsername,
		p.cfg.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// NoopProvider is used when email is disabled in config. Messages are
// logged at debug level and dropped.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, _ string) error {
	logger.Debug("email disabled, dropping message", "to", to, "subject", subject)
	return nil
}

// NewProvider picks an implementation based on config.
func NewProvider(cfg config.EmailConfig) Provider {
	if !cfg.Enabled {
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

var (
	welcomeTmpl = template.Must(template.New("welcome").Parse(
		`<p>Hi {{.Name}},</p>
<p>Your {{.Role}} account is ready. Welcome aboard!</p>`))

	applicationStatusTmpl = template.Must(template.New("application_status").Parse(
		`<p>Hi {{.Name}},</p>
<p>Your application for <b>{{.JobTitle}}</b> is now <b>{{.Status}}</b>.</p>`))
)

func RenderWelcome(name, role string) (string, error) {
	return render(welcomeTmpl, map[string]string{"Name": name, "Role": role})
}

func RenderApplicationStatus(name, jobTitle, status string) (string, error) {
	return render(applicationStatusTmpl, map[string]string{
		"Name":     name,
		"JobTitle": jobTitle,
		"Status":   status,
	})
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
