package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voterkyc/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	MarkKYCVerified(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// CandidateRepository defines the contract for candidate persistence.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	Update(ctx context.Context, candidate *domain.Candidate) error
	SetImageKey(ctx context.Context, id uuid.UUID, key string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoteRepository defines the contract for ballot persistence.
type VoteRepository interface {
	// Cast stores the vote, returning domain.ErrAlreadyVoted when the user
	// already holds one.
	Cast(ctx context.Context, vote *domain.Vote) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Vote, error)
	Tally(ctx context.Context) ([]domain.CandidateTally, error)
}
