package repository

import (
	"context"
	"fmt"

	"profitcalc/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailRepository is responsible for sending emails.
// It's a thin wrapper around AWS SES - it only sends pre-rendered HTML.
// Rendering is handled by the report and email services.
type EmailRepository interface {
	SendEmail(ctx context.Context, to string, subject string, htmlBody string) error
}

type sesClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type emailRepositoryHandler struct {
	sesClient sesClient
	fromEmail string
}

// NewEmailRepository creates a new email repository using AWS SES.
// fromEmail must be a verified SES sender.
func NewEmailRepository(ctx context.Context, region, fromEmail string) (EmailRepository, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &emailRepositoryHandler{
		sesClient: sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

func (h *emailRepositoryHandler) SendEmail(ctx context.Context, to string, subject string, htmlBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(h.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := h.sesClient.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	if result.MessageId != nil {
		logger.FromContext(ctx).Infow("sent email", "messageID", *result.MessageId)
	}

	return nil
}
