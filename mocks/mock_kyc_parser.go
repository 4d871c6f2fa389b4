package mocks

import (
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/parser/offlinekyc"
)

// MockKYCParser is a mock implementation of port.KYCDocumentParser.
type MockKYCParser struct {
	mock.Mock
}

func (m *MockKYCParser) Parse(raw []byte) (*offlinekyc.ParsedDocument, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offlinekyc.ParsedDocument), args.Error(1)
}
