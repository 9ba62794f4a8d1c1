package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/sparkleclean/sparkle/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// SendInvitation sends an invitation email with a temporary password
	SendInvitation(email, name, tempPassword string) error
	// Send relays an operator-composed HTML email
	Send(to, subject, htmlBody string) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config *Config
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config: config,
	}
}

// SendInvitation sends an invitation email with a temporary password
func (m *SMTPMailer) SendInvitation(email, name, tempPassword string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(email); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := "You've been invited to Sparkle Clean"
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Welcome to Sparkle Clean!</h1>
			<p>Hello %s,</p>
			<p>An account has been created for you. Sign in with your email and the temporary password below:</p>
			<h2 style="font-size: 20px; letter-spacing: 2px; background-color: #f5f5f5; padding: 12px; display: inline-block; border-radius: 5px;">%s</h2>
			<p>Please change your password after your first login.</p>
			<p>Thanks,<br>The Sparkle Clean Team</p>
		</body>
	</html>`, name, tempPassword)

	plainBody := fmt.Sprintf(
		"Hello %s,\n\nAn account has been created for you on Sparkle Clean.\n\n"+
			"Sign in with your email and this temporary password: %s\n\n"+
			"Please change your password after your first login.\n\n"+
			"Thanks,\nThe Sparkle Clean Team", name, tempPassword)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	return nil
}

// Send relays an operator-composed HTML email
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Unauthenticated relays (e.g. local port 25) are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendInvitation logs the invitation details to console
func (m *ConsoleMailer) SendInvitation(email, name, tempPassword string) error {
	fmt.Println("==============================================================")
	fmt.Println("                     INVITATION EMAIL                         ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", email)
	fmt.Printf("Subject: You've been invited to Sparkle Clean\n\n")
	fmt.Printf("Hello %s,\n\n", name)
	fmt.Printf("Your temporary password is: %s\n", tempPassword)
	fmt.Println("==============================================================")

	return nil
}

// Send logs the email details to console
func (m *ConsoleMailer) Send(to, subject, htmlBody string) error {
	fmt.Println("==============================================================")
	fmt.Println("                         EMAIL                                ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", to)
	fmt.Printf("Subject: %s\n\n", subject)
	fmt.Println(htmlBody)
	fmt.Println("==============================================================")

	return nil
}
