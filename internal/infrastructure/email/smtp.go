package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/domain/notification"
)

// EmailService is the outbound mail channel used by the notification
// dispatcher and the password reset flow.
type EmailService interface {
	SendTicketEventEmail(to string, event notification.TicketEvent) error
	SendPasswordResetEmail(to, token string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	FrontendURL string // base URL for deep links into the web app
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendTicketEventEmail(to string, event notification.TicketEvent) error {
	subject := event.Title()
	ticketURL := fmt.Sprintf("%s/ticket/%s", s.config.FrontendURL, event.TicketCode)

	content := event.Content
	if len(content) > 500 {
		content = content[:500] + "..."
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>From: %s</p>
			<p>%s</p>
			<p>%s</p>
			<p><a href="%s">Open in the helpdesk</a></p>
		</body>
		</html>
	`,
		html.EscapeString(event.Title()),
		html.EscapeString(event.ActorName),
		html.EscapeString(content),
		html.EscapeString(event.Message()),
		ticketURL,
	)

	plainBody := fmt.Sprintf(`%s

From: %s
%s

%s

Open in the helpdesk: %s
`, event.Title(), event.ActorName, content, event.Message(), ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.FrontendURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
