package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"regexp"

	"aidentify-service/internal/app/contracts"
	"aidentify-service/internal/app/drivers/mailer"
	"aidentify-service/internal/pkg/constvars"
	"aidentify-service/internal/pkg/dto/requests"
	"aidentify-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Queue   string
}

// NewMailerService declares the mail queue and returns the publishing side.
// The report worker owns the consuming side.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	if err := s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message); err != nil {
		return exceptions.ErrQueuePublish(err, s.Queue)
	}

	return nil
}

func (s *mailerService) ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}

// SendHTMLEmail delivers directly over SMTP. Used by the report worker when it
// drains the queue.
func SendHTMLEmail(client *mailer.SMTPClient, to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(constvars.EmailHTMLMessageFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", client.Host, client.Port)
	if err := smtp.SendMail(addr, client.Auth, client.EmailSender, []string{to}, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, client.Host)
	}
	return nil
}
