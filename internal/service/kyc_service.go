package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"voterkyc/internal/config"
	"voterkyc/internal/domain"
	"voterkyc/internal/metrics"
	"voterkyc/internal/parser/offlinekyc"
	"voterkyc/internal/port"
)

// KYCPreview is the result of parsing a document without side effects.
type KYCPreview struct {
	Document *offlinekyc.ParsedDocument `json:"document"`
	Summary  offlinekyc.Summary         `json:"summary"`
}

// KYCVerification is returned after a user has been marked verified. The
// photo is never echoed back; the summary only reports whether one exists.
type KYCVerification struct {
	Summary    offlinekyc.Summary `json:"summary"`
	VerifiedAt time.Time          `json:"verified_at"`
}

// KYCService defines the offline KYC contract.
type KYCService interface {
	Preview(ctx context.Context, raw []byte) (*KYCPreview, error)
	Verify(ctx context.Context, userID uuid.UUID, raw []byte) (*KYCVerification, error)
}

type kycService struct {
	parser   port.KYCDocumentParser
	userRepo port.UserRepository
	email    port.EmailSender
	metrics  *metrics.Metrics
	maxBytes int64
	locale   language.Tag
	now      func() time.Time
}

// NewKYCService creates a new KYCService implementation. An unparseable
// date locale falls back to offlinekyc.DefaultLocale.
func NewKYCService(
	parser port.KYCDocumentParser,
	userRepo port.UserRepository,
	email port.EmailSender,
	m *metrics.Metrics,
	cfg config.KYCConfig,
) KYCService {
	locale, err := language.Parse(cfg.DateLocale)
	if err != nil {
		log.Warn().Err(err).Str("locale", cfg.DateLocale).Msg("invalid kyc date locale, using default")
		locale = offlinekyc.DefaultLocale
	}
	return &kycService{
		parser:   parser,
		userRepo: userRepo,
		email:    email,
		metrics:  m,
		maxBytes: cfg.MaxDocumentBytes(),
		locale:   locale,
		now:      time.Now,
	}
}

func (s *kycService) Preview(ctx context.Context, raw []byte) (*KYCPreview, error) {
	doc, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	return &KYCPreview{
		Document: doc,
		Summary:  offlinekyc.SummarizeIn(s.locale, doc),
	}, nil
}

func (s *kycService) Verify(ctx context.Context, userID uuid.UUID, raw []byte) (*KYCVerification, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc, err := s.parse(raw)
	if err != nil {
		return nil, err
	}
	if doc.PersonalDetails == nil || doc.PersonalDetails.Name == nil ||
		strings.TrimSpace(*doc.PersonalDetails.Name) == "" {
		return nil, domain.ErrKYCIncomplete
	}

	verifiedAt := s.now().UTC()
	if err := s.userRepo.MarkKYCVerified(ctx, user.ID, verifiedAt); err != nil {
		return nil, fmt.Errorf("kyc.Verify: %w", err)
	}
	log.Info().
		Str("user_id", user.ID.String()).
		Bool("has_reference_id", doc.ReferenceID != nil).
		Bool("has_photo", doc.HasPhoto()).
		Msg("offline kyc verified")

	if user.Email != "" && s.email != nil {
		if err := s.email.SendKYCVerifiedEmail(ctx, user.Email, user.FullName); err != nil {
			log.Error().Err(err).Str("user_id", user.ID.String()).Msg("sending kyc verified email")
		}
	}

	return &KYCVerification{
		Summary:    offlinekyc.SummarizeIn(s.locale, doc),
		VerifiedAt: verifiedAt,
	}, nil
}

func (s *kycService) parse(raw []byte) (*offlinekyc.ParsedDocument, error) {
	if len(raw) == 0 {
		return nil, domain.ErrKYCDocumentEmpty
	}
	if s.maxBytes > 0 && int64(len(raw)) > s.maxBytes {
		s.metrics.ObserveKYCParse(metrics.OutcomeTooLarge, 0)
		return nil, domain.ErrKYCDocumentTooLarge
	}

	start := time.Now()
	doc, err := s.parser.Parse(raw)
	elapsed := time.Since(start)
	if err != nil {
		var loadErr *offlinekyc.LoaderError
		if errors.As(err, &loadErr) {
			s.metrics.ObserveKYCParse(metrics.OutcomeLoaderError, elapsed)
		} else {
			s.metrics.ObserveKYCParse(metrics.OutcomeMalformed, elapsed)
		}
		log.Debug().Err(err).Msg("offline kyc document rejected")
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedKYCDocument, err)
	}
	s.metrics.ObserveKYCParse(metrics.OutcomeSuccess, elapsed)
	return doc, nil
}
