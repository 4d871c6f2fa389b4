package handler_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"voterkyc/internal/domain"
	"voterkyc/internal/export"
	"voterkyc/internal/handler"
	"voterkyc/internal/service"
	"voterkyc/mocks"
)

func castRequest(t *testing.T, h *handler.VoteHandler, userID uuid.UUID, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuthContext(c, userID, "voter")
	h.Cast(c)
	return w
}

func TestVoteHandler_Cast_Success(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	userID, candidateID := uuid.New(), uuid.New()
	mockSvc.On("Cast", mock.Anything, userID, service.CastVoteInput{CandidateID: candidateID}).
		Return(&domain.Vote{ID: uuid.New(), UserID: userID, CandidateID: candidateID}, nil)

	w := castRequest(t, h, userID, map[string]string{"candidate_id": candidateID.String()})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestVoteHandler_Cast_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"kyc required", domain.ErrKYCRequired, http.StatusForbidden, "KYC_REQUIRED"},
		{"already voted", domain.ErrAlreadyVoted, http.StatusConflict, "ALREADY_VOTED"},
		{"unknown candidate", domain.ErrCandidateNotFound, http.StatusNotFound, "CANDIDATE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mocks.MockVoteService)
			h := handler.NewVoteHandler(mockSvc)
			mockSvc.On("Cast", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := castRequest(t, h, uuid.New(), map[string]string{"candidate_id": uuid.New().String()})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeResponse(t, w).Error.Code)
		})
	}
}

func TestVoteHandler_Cast_MissingCandidate(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	w := castRequest(t, h, uuid.New(), map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Cast", mock.Anything, mock.Anything, mock.Anything)
}

func exportRequest(h *handler.VoteHandler, format string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/results/export?format="+format, http.NoBody)
	h.ExportResults(c)
	return w
}

func TestVoteHandler_ExportResults_CSV(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	tallies := []domain.CandidateTally{{Name: "Asha Rao", Party: "Lotus Front", Votes: 2}}
	mockSvc.On("Results", mock.Anything).Return(tallies, nil)

	w := exportRequest(h, "csv")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "election_results_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, export.BOM, body[:3])

	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Asha Rao", records[1][1])
	assert.Equal(t, "100.00", records[1][4])
}

func TestVoteHandler_ExportResults_XLSX(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	mockSvc.On("Results", mock.Anything).Return([]domain.CandidateTally{{Name: "Asha Rao", Votes: 1}}, nil)

	w := exportRequest(h, "XLSX")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", rows[1][1])
}

func TestVoteHandler_ExportResults_UnknownFormat(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	w := exportRequest(h, "pdf")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Results", mock.Anything)
}

func TestVoteHandler_Results(t *testing.T) {
	mockSvc := new(mocks.MockVoteService)
	h := handler.NewVoteHandler(mockSvc)

	mockSvc.On("Results", mock.Anything).Return([]domain.CandidateTally{{Name: "Asha Rao", Votes: 3}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/results", http.NoBody)
	h.Results(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"votes":3`)
}
