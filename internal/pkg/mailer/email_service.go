package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEscalationAlert(toEmail, ticketCode, sessionId, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendEscalationAlert(toEmail, ticketCode, sessionId, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Support escalation %s", ticketCode))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A chat was escalated to a human agent</h2>
			<p>Ticket: <strong>%s</strong></p>
			<p>Session: %s</p>
			<p>Last customer message:</p>
			<blockquote style="border-left: 3px solid #007BFF; padding-left: 10px; color: #555;">%s</blockquote>
			<p>Please pick this up from the agent dashboard.</p>
		</div>
	`, ticketCode, sessionId, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert for %s sent to %s\n", ticketCode, toEmail)
	return nil
}
