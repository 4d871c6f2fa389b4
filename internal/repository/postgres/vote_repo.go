package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"voterkyc/internal/domain"
	"voterkyc/internal/port"
)

type voteRepo struct {
	db *sqlx.DB
}

// NewVoteRepo creates a new PostgreSQL-backed VoteRepository.
func NewVoteRepo(db *sqlx.DB) port.VoteRepository {
	return &voteRepo{db: db}
}

func (r *voteRepo) Cast(ctx context.Context, v *domain.Vote) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CastAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO votes (id, user_id, candidate_id, cast_at) VALUES ($1, $2, $3, $4)`,
		v.ID, v.UserID, v.CandidateID, v.CastAt)
	if err != nil {
		if isUniqueViolation(err, "votes_user_id_key") {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("voteRepo.Cast: %w", err)
	}
	return nil
}

func (r *voteRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Vote, error) {
	var v domain.Vote
	err := r.db.GetContext(ctx, &v, "SELECT * FROM votes WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("voteRepo.GetByUser: %w", err)
	}
	return &v, nil
}

func (r *voteRepo) Tally(ctx context.Context) ([]domain.CandidateTally, error) {
	tallies := []domain.CandidateTally{}
	err := r.db.SelectContext(ctx, &tallies,
		`SELECT c.id AS candidate_id, c.name, c.party, COUNT(v.id) AS votes
		 FROM candidates c
		 LEFT JOIN votes v ON v.candidate_id = c.id
		 GROUP BY c.id, c.name, c.party
		 ORDER BY votes DESC, c.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("voteRepo.Tally: %w", err)
	}
	return tallies, nil
}
