package mailerqueue

import (
	"context"
	"nutrisurvey-service/internal/pkg/dto/requests"
)

type MailerQueue interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
