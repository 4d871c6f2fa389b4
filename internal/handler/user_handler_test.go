package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/domain"
	"voterkyc/internal/handler"
	"voterkyc/mocks"
)

func TestUserHandler_Me(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	voteSvc := new(mocks.MockVoteService)
	h := handler.NewUserHandler(userSvc, voteSvc)

	userID := uuid.New()
	user := &domain.User{ID: userID, Username: "ravi", PasswordHash: "$2a$12$hash", KYCVerified: true}
	userSvc.On("GetByID", mock.Anything, userID).Return(user, nil)
	voteSvc.On("HasVoted", mock.Anything, userID).Return(true, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody)
	setAuthContext(c, userID, "voter")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"has_voted":true`)
	assert.Contains(t, w.Body.String(), `"kyc_verified":true`)
	assert.NotContains(t, w.Body.String(), "$2a$12$hash")
}

func TestUserHandler_GetByUsername_NotFound(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc, new(mocks.MockVoteService))

	userSvc.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/users/ghost", http.NoBody)
	c.Params = gin.Params{{Key: "username", Value: "ghost"}}

	h.GetByUsername(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_List_Pagination(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc, new(mocks.MockVoteService))

	userSvc.On("List", mock.Anything, 5, 20).Return([]domain.User{{Username: "a"}}, 6, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/users?offset=5&limit=500", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, 6, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Readiness(t *testing.T) {
	for _, tt := range []struct {
		name   string
		err    error
		status int
	}{
		{"ready", nil, http.StatusOK},
		{"database down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(stubPinger{err: tt.err})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			h.Readiness(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
