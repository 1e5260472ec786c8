package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/config"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/staff"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService sends gate pass alerts to the security desk mailbox.
type EmailService interface {
	SendOverdueAlert(entry staff.StaffEntry, reading staff.TimerReading) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance. A nil service is
// returned when no SMTP host is configured; callers treat that as alerts
// disabled.
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type overdueAlertData struct {
	Name            string
	EmployeeCode    string
	Department      string
	Purpose         string
	AllowedDuration int
	ElapsedMinutes  int
	OverdueMinutes  int
}

// SendOverdueAlert mails the security desk about a gate pass running past its
// allowance.
func (s *emailServiceImpl) SendOverdueAlert(entry staff.StaffEntry, reading staff.TimerReading) error {
	data := overdueAlertData{
		Name:            entry.Name,
		EmployeeCode:    entry.EmployeeCode,
		Department:      entry.Department,
		Purpose:         string(entry.Purpose),
		AllowedDuration: entry.AllowedDuration,
		ElapsedMinutes:  reading.ElapsedMinutes,
		OverdueMinutes:  reading.OverdueMinutes,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "overdue_alert.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Overdue gate pass: %s (%s)", entry.Name, entry.EmployeeCode)
	return s.sendHTML(s.cfg.AlertTo, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
