package reports

import (
	"context"

	mailerdriver "aidentify-service/internal/app/drivers/mailer"
	sharedmailer "aidentify-service/internal/app/services/shared/mailer"
	"aidentify-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mail queue and delivers report emails over SMTP with
// at-least-once semantics.
type Worker struct {
	log     *zap.Logger
	channel *amqp091.Channel
	queue   string
	smtp    *mailerdriver.SMTPClient
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, rabbitMQConnection *amqp091.Connection, queue string, smtpClient *mailerdriver.SMTPClient) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &Worker{
		log:     log,
		channel: channel,
		queue:   queue,
		smtp:    smtpClient,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins consuming the queue. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	w.log.Info("report worker started", zap.String("queue", w.queue))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		_ = w.channel.Close()
	}, nil
}

func (w *Worker) processDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("report worker received malformed payload; dropping",
			zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	if err := sharedmailer.SendHTMLEmail(w.smtp, payload.To, payload.Subject, payload.HTMLBody); err != nil {
		w.log.Error("report email delivery failed; requeued",
			zap.String("to", payload.To),
			zap.Error(err))
		_ = delivery.Nack(false, true)
		return
	}

	w.log.Info("report email delivered",
		zap.String("to", payload.To),
		zap.String("subject", payload.Subject))
	_ = delivery.Ack(false)
}
