package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendStatusUpdate(toEmail, requesterName, serviceType, newStatus string, confirmedSchedule *string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendStatusUpdate(toEmail, requesterName, serviceType, newStatus string, confirmedSchedule *string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Update on your %s request", serviceType))

	scheduleLine := ""
	if confirmedSchedule != nil && *confirmedSchedule != "" {
		scheduleLine = fmt.Sprintf("<p>Confirmed schedule: <strong>%s</strong></p>", *confirmedSchedule)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Dear %s,</p>
			<p>Your request for <strong>%s</strong> is now <strong>%s</strong>.</p>
			%s
			<p>For questions, please contact the parish office.</p>
			<p>God bless,<br/>%s</p>
		</div>
	`, requesterName, serviceType, newStatus, scheduleLine, s.senderName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send status update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Status update sent to %s\n", toEmail)
	return nil
}
