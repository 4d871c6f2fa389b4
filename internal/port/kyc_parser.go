package port

import "voterkyc/internal/parser/offlinekyc"

// KYCDocumentParser turns raw offline KYC XML into a structured document.
type KYCDocumentParser interface {
	Parse(raw []byte) (*offlinekyc.ParsedDocument, error)
}
