package handler

import "github.com/google/uuid"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Ravi Kumar"`
	Username string `json:"username" binding:"required" example:"ravi.kumar"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
	Email    string `json:"email" example:"ravi@example.in"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ravi.kumar"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CandidateRequest represents the create/update candidate request body.
type CandidateRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Party    string `json:"party" binding:"required" example:"Lotus Front"`
	ImageURL string `json:"image_url" example:"https://cdn.example.in/asha.png"`
}

// CastVoteRequest represents the cast vote request body.
type CastVoteRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}
