package mail

import (
	"context"
	"errors"
	"fmt"

	intconfig "travelapi/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender delivers through AWS SES v2.
type SESSender struct {
	From   string
	client sesAPI
}

// NewSESSender uses static credentials when both keys are set, otherwise the
// default AWS credential chain.
func NewSESSender(ctx context.Context, env intconfig.MailEnv) (*SESSender, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(env.AWSRegion)}
	if env.AWSAccessKey != "" && env.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(env.AWSAccessKey, env.AWSSecretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SESSender{From: env.DefaultSender, client: sesv2.NewFromConfig(cfg)}, nil
}

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if s.client == nil {
		return errors.New("SES client not initialized")
	}
	if msg.From == "" {
		msg.From = s.From
	}
	if msg.From == "" {
		return errors.New("no sender address: set MAIL_DEFAULT_SENDER or MAIL_USERNAME")
	}
	if _, err := s.client.SendEmail(ctx, buildSESInput(msg)); err != nil {
		return fmt.Errorf("SES send: %w", err)
	}
	return nil
}

func buildSESInput(msg Message) *sesv2.SendEmailInput {
	return &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
}
