package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voterkyc/internal/domain"
	"voterkyc/internal/handler"
	"voterkyc/internal/metrics"
	"voterkyc/internal/router"
	"voterkyc/internal/service"
	"voterkyc/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type fixture struct {
	engine    *gin.Engine
	auth      *mocks.MockAuthService
	candidate *mocks.MockCandidateService
	vote      *mocks.MockVoteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	prev := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = prev })

	f := &fixture{
		auth:      new(mocks.MockAuthService),
		candidate: new(mocks.MockCandidateService),
		vote:      new(mocks.MockVoteService),
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(f.auth),
		KYC:       handler.NewKYCHandler(new(mocks.MockKYCService), 1024),
		Candidate: handler.NewCandidateHandler(f.candidate),
		Vote:      handler.NewVoteHandler(f.vote),
		User:      handler.NewUserHandler(new(mocks.MockUserService), f.vote),
		Health:    handler.NewHealthHandler(okPinger{}),
	}
	f.engine = router.Setup(f.auth, h, m, reg, []string{"https://vote.example.in"})
	return f
}

func (f *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, http.NoBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) withRole(token string, role domain.UserRole) {
	f.auth.On("ValidateToken", token).Return(&service.Claims{UserID: uuid.New(), Username: "u", Role: role}, nil)
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t)
	f.candidate.On("List", mock.Anything).Return([]domain.Candidate{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/candidates", "").Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	f.do(http.MethodGet, "/healthz", "")
	w := f.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "voterkyc_http_requests_total"))
}

func TestRouter_SwaggerDocRegistered(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/kyc/preview")
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/votes", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/kyc/verify", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/v1/admin/results", "").Code)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	f := newFixture(t)
	f.withRole("voter-token", domain.RoleVoter)
	f.withRole("admin-token", domain.RoleAdmin)
	f.vote.On("Results", mock.Anything).Return([]domain.CandidateTally{}, nil)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/admin/results", "voter-token").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/admin/results", "admin-token").Code)
}
