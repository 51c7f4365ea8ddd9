// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAppointmentConfirmation(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error
	SendAppointmentReminder(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error
	SendEscalationAlert(toEmail, patientID, reason string, steps []string) error
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

func (s *emailService) SendAppointmentConfirmation(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Appointment Is Confirmed")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Appointment Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your appointment has been booked:</p>
			<ul>
				<li><strong>Doctor:</strong> %s</li>
				<li><strong>Location:</strong> %s</li>
				<li><strong>When:</strong> %s</li>
			</ul>
			<p>Please arrive 15 minutes early and bring a valid ID.</p>
		</div>
	`, patientName, doctorName, hospitalName, scheduledAt)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Appointment confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendAppointmentReminder(toEmail, patientName, doctorName, hospitalName, scheduledAt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reminder: Upcoming Appointment")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Appointment Reminder</h2>
			<p>Hi %s,</p>
			<p>This is a reminder for your upcoming appointment:</p>
			<ul>
				<li><strong>Doctor:</strong> %s</li>
				<li><strong>Location:</strong> %s</li>
				<li><strong>When:</strong> %s</li>
			</ul>
			<p>If you cannot attend, please cancel or reschedule through the app.</p>
		</div>
	`, patientName, doctorName, hospitalName, scheduledAt)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reminder to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Appointment reminder sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendEscalationAlert(toEmail, patientID, reason string, steps []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Escalated Triage Case Requires Review")

	items := make([]string, 0, len(steps))
	for _, step := range steps {
		items = append(items, "<li>"+step+"</li>")
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Case Escalation</h2>
			<p>A triage case for patient <strong>%s</strong> was escalated.</p>
			<p><strong>Reason:</strong> %s</p>
			<ul>%s</ul>
			<p>Please review the case in the clinician dashboard as soon as possible.</p>
		</div>
	`, patientID, reason, strings.Join(items, ""))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert sent to %s\n", toEmail)
	return nil
}
