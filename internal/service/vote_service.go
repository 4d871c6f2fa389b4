package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voterkyc/internal/domain"
	"voterkyc/internal/metrics"
	"voterkyc/internal/port"
)

// CastVoteInput is the DTO for casting a vote.
type CastVoteInput struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
}

// VoteService defines the ballot contract.
type VoteService interface {
	Cast(ctx context.Context, userID uuid.UUID, input CastVoteInput) (*domain.Vote, error)
	// HasVoted reports whether the user already holds a vote.
	HasVoted(ctx context.Context, userID uuid.UUID) (bool, error)
	Results(ctx context.Context) ([]domain.CandidateTally, error)
}

type voteService struct {
	voteRepo      port.VoteRepository
	userRepo      port.UserRepository
	candidateRepo port.CandidateRepository
	metrics       *metrics.Metrics
}

// NewVoteService creates a new VoteService implementation.
func NewVoteService(
	voteRepo port.VoteRepository,
	userRepo port.UserRepository,
	candidateRepo port.CandidateRepository,
	m *metrics.Metrics,
) VoteService {
	return &voteService{
		voteRepo:      voteRepo,
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		metrics:       m,
	}
}

func (s *voteService) Cast(ctx context.Context, userID uuid.UUID, input CastVoteInput) (*domain.Vote, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.KYCVerified {
		return nil, domain.ErrKYCRequired
	}

	if _, err := s.candidateRepo.GetByID(ctx, input.CandidateID); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		UserID:      userID,
		CandidateID: input.CandidateID,
	}
	if err := s.voteRepo.Cast(ctx, vote); err != nil {
		return nil, err
	}

	s.metrics.IncrementVotesCast()
	log.Info().Str("user_id", userID.String()).Msg("vote cast")
	return vote, nil
}

func (s *voteService) HasVoted(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := s.voteRepo.GetByUser(ctx, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("vote.HasVoted: %w", err)
}

func (s *voteService) Results(ctx context.Context) ([]domain.CandidateTally, error) {
	return s.voteRepo.Tally(ctx)
}
