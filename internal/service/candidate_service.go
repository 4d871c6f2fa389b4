package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voterkyc/internal/config"
	"voterkyc/internal/domain"
	"voterkyc/internal/port"
)

// CandidateInput is the DTO for creating or replacing a candidate.
type CandidateInput struct {
	Name     string `json:"name" binding:"required"`
	Party    string `json:"party" binding:"required"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

// CandidateImageInput is the DTO for candidate image uploads.
type CandidateImageInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// CandidateService defines the ballot management contract.
type CandidateService interface {
	Create(ctx context.Context, input CandidateInput) (*domain.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	// List returns all candidates with uploaded images resolved to
	// presigned URLs.
	List(ctx context.Context) ([]domain.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, input CandidateInput) (*domain.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, input CandidateImageInput) (*domain.Candidate, error)
}

type candidateService struct {
	repo    port.CandidateRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewCandidateService creates a new CandidateService implementation.
func NewCandidateService(
	repo port.CandidateRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) CandidateService {
	return &candidateService{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *candidateService) Create(ctx context.Context, input CandidateInput) (*domain.Candidate, error) {
	c := &domain.Candidate{
		Name:     strings.TrimSpace(input.Name),
		Party:    strings.TrimSpace(input.Party),
		ImageURL: strings.TrimSpace(input.ImageURL),
	}
	if c.Name == "" || c.Party == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *candidateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.resolveImage(ctx, c)
	return c, nil
}

func (s *candidateService) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		s.resolveImage(ctx, &candidates[i])
	}
	return candidates, nil
}

func (s *candidateService) Update(ctx context.Context, id uuid.UUID, input CandidateInput) (*domain.Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(input.Name)
	c.Party = strings.TrimSpace(input.Party)
	c.ImageURL = strings.TrimSpace(input.ImageURL)
	if c.Name == "" || c.Party == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.resolveImage(ctx, c)
	return c, nil
}

func (s *candidateService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if c.ImageKey != "" {
		if err := s.storage.Delete(ctx, c.ImageKey); err != nil {
			log.Warn().Err(err).Str("candidate_id", id.String()).Msg("deleting candidate image")
		}
	}
	return nil
}

func (s *candidateService) UploadImage(ctx context.Context, id uuid.UUID, input CandidateImageInput) (*domain.Candidate, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedImageExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxImageSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the first 512 bytes rather than trusting the extension.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detected, ok := domain.AllowedImageContentTypes[http.DetectContentType(buf[:n])]
	if !ok || detected != fileType {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("candidates/%s/%s.%s", id, uuid.New(), fileType)
	contentType := domain.AllowedImageTypes[fileType]
	log.Info().
		Str("candidate_id", id.String()).
		Str("content_type", contentType).
		Int64("size", input.Header.Size).
		Msg("uploading candidate image")

	err = s.storage.Put(ctx, port.PutObjectInput{
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Error().Err(err).Str("candidate_id", id.String()).Msg("candidate image upload failed")
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.SetImageKey(ctx, id, key); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, err
	}

	if old := c.ImageKey; old != "" {
		if err := s.storage.Delete(ctx, old); err != nil {
			log.Warn().Err(err).Str("key", old).Msg("deleting replaced candidate image")
		}
	}

	c.ImageKey = key
	s.resolveImage(ctx, c)
	return c, nil
}

func (s *candidateService) presignExpiry() time.Duration {
	return time.Duration(s.cfg.PresignExpiry) * time.Second
}

// resolveImage replaces ImageURL with a presigned URL when an uploaded image
// exists. Presign failures keep the stored URL.
func (s *candidateService) resolveImage(ctx context.Context, c *domain.Candidate) {
	if c.ImageKey == "" {
		return
	}
	url, err := s.storage.PresignGet(ctx, c.ImageKey, s.presignExpiry())
	if err != nil {
		log.Warn().Err(err).Str("candidate_id", c.ID.String()).Msg("presigning candidate image")
		return
	}
	c.ImageURL = url
}
