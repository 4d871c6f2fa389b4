package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"voterkyc/internal/config"
	"voterkyc/internal/email/noop"
	"voterkyc/internal/email/ses"
	"voterkyc/internal/handler"
	"voterkyc/internal/logger"
	"voterkyc/internal/metrics"
	"voterkyc/internal/parser/offlinekyc"
	"voterkyc/internal/port"
	"voterkyc/internal/repository/postgres"
	"voterkyc/internal/router"
	"voterkyc/internal/service"
	s3storage "voterkyc/internal/storage/s3"
)

const shutdownTimeout = 10 * time.Second

// @title                       voterkyc API
// @version                     1.0
// @description                 Online voting backend with offline KYC verification.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	candidateRepo := postgres.NewCandidateRepo(db)
	voteRepo := postgres.NewVoteRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	emailSender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	kycSvc := service.NewKYCService(offlinekyc.NewParser(nil), userRepo, emailSender, m, cfg.KYC)
	candidateSvc := service.NewCandidateService(candidateRepo, s3Client, &cfg.S3)
	voteSvc := service.NewVoteService(voteRepo, userRepo, candidateRepo, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := authSvc.EnsureAdmin(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	// Initialize handlers
	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		KYC:       handler.NewKYCHandler(kycSvc, cfg.KYC.MaxDocumentBytes()),
		Candidate: handler.NewCandidateHandler(candidateSvc),
		Vote:      handler.NewVoteHandler(voteSvc),
		User:      handler.NewUserHandler(userSvc, voteSvc),
		Health:    handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(authSvc, h, m, reg, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Port).Str("env", cfg.Server.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch strings.ToLower(cfg.Provider) {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.FrontendURL)
	case "", "noop":
		return noop.NewNoopSender(cfg.FrontendURL), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
