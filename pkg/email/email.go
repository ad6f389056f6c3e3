package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/go-playground/validator/v10"

	"realty-uae-backend/config"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/pkg/validation"
)

var (
	ErrNotConfigured = errors.New("email service is not configured")
	// ErrInvalidLead is returned for a lead whose contact fields do not validate.
	// The address ends up in the Reply-To header, so it is checked again here.
	ErrInvalidLead = errors.New("lead contact details are invalid")
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService sends advisor notifications via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	send      sendFunc
	validate  *validator.Validate
}

// LeadEmailData holds the data for the lead notification template
type LeadEmailData struct {
	Email         string `validate:"required,lead_email"`
	Mobile        string `validate:"required,uae_mobile"`
	MobileDisplay string
	LineType      string
	Budget        string
	PropertyType  string
	Strategy      string
}

// NewEmailService creates a new email service with the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
		validate:  newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

// leadEmailTemplate is the HTML template for new lead notifications
var leadEmailTemplate = template.Must(template.New("lead").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Investor Lead</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #0f172a; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0f172a; color: #f59e0b; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f8fafc; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #64748b; text-transform: uppercase; font-size: 11px; }
        .value { margin-top: 5px; }
        .strategy { background: white; padding: 15px; border-left: 4px solid #d97706; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #94a3b8; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Investor Lead</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Property Type</div>
                <div class="value">{{.PropertyType}}</div>
            </div>
            <div class="field">
                <div class="label">Investment Budget</div>
                <div class="value">{{.Budget}}</div>
            </div>
            <div class="field">
                <div class="label">Email</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Mobile ({{.LineType}})</div>
                <div class="value"><a href="tel:{{.Mobile}}">{{.MobileDisplay}}</a></div>
            </div>
            <div class="field">
                <div class="label">Strategy sent to the investor</div>
                <div class="strategy">{{.Strategy}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the Realty UAE investment access form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`))

// NotifyLead sends a new lead notification to the advisors' inbox
func (s *EmailService) NotifyLead(_ context.Context, lead domain.LeadData, mobile validation.MobileInfo, strategy string) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	data := LeadEmailData{
		Email:         lead.Email,
		Mobile:        mobile.E164,
		MobileDisplay: mobile.International,
		LineType:      string(mobile.LineType),
		Budget:        string(lead.Budget),
		PropertyType:  string(lead.PropertyType),
		Strategy:      strategy,
	}

	if err := s.validate.Struct(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLead, strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	msg, err := s.buildMessage(data)
	if err != nil {
		return err
	}

	// Setup SMTP authentication
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) buildMessage(data LeadEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := leadEmailTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("New Lead: %s, %s", data.PropertyType, data.Budget)

	// Construct MIME message
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		data.Email,
		subject,
		body.String(),
	)), nil
}

// AdvisorAddress is the inbox advisors reply from
func (s *EmailService) AdvisorAddress() string {
	return s.toEmail
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
