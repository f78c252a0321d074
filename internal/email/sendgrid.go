package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendgridService struct {
	key  string
	from *sgmail.Email
}

func NewSendgridService(key, from string) *SendgridService {
	return &SendgridService{
		key:  key,
		from: sgmail.NewEmail("Muzikos mokykla", from),
	}
}

func (svc *SendgridService) Send(to, subject, body string) error {
	msg := sgmail.NewSingleEmail(svc.from, subject, sgmail.NewEmail("", to), body, "")

	res, err := sendgrid.NewSendClient(svc.key).Send(msg)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sending email: status %d body %s", res.StatusCode, res.Body)
	}
	return nil
}
