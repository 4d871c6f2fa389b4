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

type candidateRepo struct {
	db *sqlx.DB
}

// NewCandidateRepo creates a new PostgreSQL-backed CandidateRepository.
func NewCandidateRepo(db *sqlx.DB) port.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO candidates (id, name, party, image_url, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Party, c.ImageURL, c.ImageKey, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("candidateRepo.Create: %w", err)
	}
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.GetContext(ctx, &c, "SELECT * FROM candidates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("candidateRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, "SELECT * FROM candidates ORDER BY created_at ASC"); err != nil {
		return nil, fmt.Errorf("candidateRepo.List: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepo) Update(ctx context.Context, c *domain.Candidate) error {
	c.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE candidates SET name = $1, party = $2, image_url = $3, updated_at = $4 WHERE id = $5`,
		c.Name, c.Party, c.ImageURL, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("candidateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepo) SetImageKey(ctx context.Context, id uuid.UUID, key string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE candidates SET image_key = $1, updated_at = $2 WHERE id = $3`,
		key, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("candidateRepo.SetImageKey: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM candidates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("candidateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}
