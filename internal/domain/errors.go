package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidInput        = errors.New("invalid input")
)

// Offline KYC errors.
var (
	ErrMalformedKYCDocument = errors.New("offline kyc document could not be parsed")
	ErrKYCDocumentTooLarge  = errors.New("offline kyc document exceeds maximum allowed size")
	ErrKYCDocumentEmpty     = errors.New("offline kyc document is empty")
	ErrKYCIncomplete        = errors.New("offline kyc document has no personal details")
	ErrKYCRequired          = errors.New("offline kyc verification required")
)

// Ballot errors.
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyVoted      = errors.New("user has already voted")
)
