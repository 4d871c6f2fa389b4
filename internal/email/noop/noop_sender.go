package noop

import (
	"context"

	"github.com/rs/zerolog/log"

	"voterkyc/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates an EmailSender that only logs what it would send.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendKYCVerifiedEmail(_ context.Context, toEmail, toName string) error {
	log.Info().
		Str("to", toEmail).
		Str("name", toName).
		Str("vote_url", s.frontendURL+"/votenow").
		Msg("noop email: kyc verified")
	return nil
}
