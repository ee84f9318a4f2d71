package contracts

import (
	"context"

	"aidentify-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail enqueues a payload for asynchronous delivery.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	ValidateEmail(email string) bool
}
