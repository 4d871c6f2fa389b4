package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"voterkyc/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendKYCVerifiedEmail(ctx context.Context, toEmail, toName string) error {
	voteURL := s.frontendURL + "/votenow"

	subject := "Your identity has been verified"
	htmlBody := buildKYCVerifiedHTML(toName, voteURL)
	textBody := fmt.Sprintf("Hi %s,\n\nYour offline KYC document was verified. You can now cast your vote:\n%s\n\n%s", toName, voteURL, s.fromName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildKYCVerifiedHTML(name, voteURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Identity verified</h2>
  <p>Hi %s,</p>
  <p>Your offline KYC document was verified successfully. You are now eligible to vote.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #138808; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Vote Now</a>
  </p>
  <p style="color: #999; font-size: 12px;">If you did not upload a KYC document, contact the election office.</p>
</body>
</html>`, html.EscapeString(name), voteURL)
}
