package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered voter or administrator.
type User struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Username      string     `db:"username" json:"username"`
	FullName      string     `db:"full_name" json:"full_name"`
	Email         string     `db:"email" json:"email,omitempty"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	Role          UserRole   `db:"role" json:"role"`
	KYCVerified   bool       `db:"kyc_verified" json:"kyc_verified"`
	KYCVerifiedAt *time.Time `db:"kyc_verified_at" json:"kyc_verified_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Candidate is a contestant listed on the ballot.
type Candidate struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Party    string    `db:"party" json:"party"`
	ImageURL string    `db:"image_url" json:"image_url"`
	// ImageKey is the object storage key of an uploaded image. When set it
	// takes precedence over ImageURL, which is then resolved to a presigned URL.
	ImageKey  string    `db:"image_key" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Vote records one voter's ballot. A user holds at most one vote.
type Vote struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	CandidateID uuid.UUID `db:"candidate_id" json:"candidate_id"`
	CastAt      time.Time `db:"cast_at" json:"cast_at"`
}

// CandidateTally is the vote count of one candidate.
type CandidateTally struct {
	CandidateID uuid.UUID `db:"candidate_id" json:"candidate_id"`
	Name        string    `db:"name" json:"name"`
	Party       string    `db:"party" json:"party"`
	Votes       int       `db:"votes" json:"votes"`
}
