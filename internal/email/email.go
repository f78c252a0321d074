// Package email delivers transactional mail (magic login codes).
package email

import "log"

type Service interface {
	Send(to, subject, body string) error
}

// ConsoleService writes messages to the process log instead of delivering
// them. Used in development when no Sendgrid key is configured.
type ConsoleService struct {
	From string
}

func (svc ConsoleService) Send(to, subject, body string) error {
	log.Printf("email (console) From: %s To: %s Subject: %s\n%s", svc.From, to, subject, body)
	return nil
}
