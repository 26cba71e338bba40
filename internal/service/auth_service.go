package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/pkg/logger"
	"dp-ai-be/internal/pkg/mailer"
	"dp-ai-be/internal/repository/memory"
	"dp-ai-be/pkg/events"
	"dp-ai-be/pkg/identity"
	pktNats "dp-ai-be/pkg/nats"
)

// ErrDeliveryFailure marks an OTP email that could not be sent. Login cannot
// proceed without delivery, so this surfaces as a 500 at the boundary.
var ErrDeliveryFailure = errors.New("failed to send otp email")

type IAuthService interface {
	SendOTP(ctx context.Context, req *dto.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

type authService struct {
	otpRepo        *memory.OTPRepository
	sessionRepo    *memory.SessionRepository
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAuthService(
	otpRepo *memory.OTPRepository,
	sessionRepo *memory.SessionRepository,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAuthService {
	return &authService{
		otpRepo:        otpRepo,
		sessionRepo:    sessionRepo,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

// SendOTP issues a fresh code for the email, overwriting any outstanding one,
// then delivers it. Issuance itself never fails on delivery problems; the
// record stays stored so a retried send reuses the flow cleanly.
func (s *authService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) error {
	key, err := identity.Normalize(req.Email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	s.otpRepo.Store(key, code)

	if err := s.emailService.SendOTP(req.Email, code); err != nil {
		s.logger.Error("auth", "otp delivery failed", map[string]interface{}{
			"email": key,
			"error": err.Error(),
		})
		return ErrDeliveryFailure
	}

	s.logger.Info("auth", "otp issued", map[string]interface{}{"email": key})
	return nil
}

// VerifyOTP consumes the outstanding code for the email. The compare-and-delete
// is atomic in the repository, so a code verifies at most once.
func (s *authService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	key, err := identity.Normalize(req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.otpRepo.Consume(key, req.OTP); err != nil {
		return nil, err
	}

	// Login semantics: make sure a session exists for this identity.
	s.sessionRepo.GetOrCreate(key, "")

	s.publishEvent(ctx, "OTP_VERIFIED", map[string]interface{}{"email": key})

	return &dto.VerifyOTPResponse{
		Message: "Logged in",
		Email:   key,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	key, err := identity.Normalize(req.Name)
	if err != nil {
		return nil, err
	}

	sess := s.sessionRepo.GetOrCreate(key, strings.TrimSpace(req.Name))

	s.publishEvent(ctx, "USER_LOGIN", map[string]interface{}{"key": key})

	return &dto.LoginResponse{
		Message: "Logged in",
		Name:    sess.DisplayName,
	}, nil
}

// Logout removes the session record entirely, not just its history.
func (s *authService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	key, err := identity.Normalize(req.Name)
	if err != nil {
		return err
	}

	s.sessionRepo.Delete(key)

	s.publishEvent(ctx, "USER_LOGOUT", map[string]interface{}{"key": key})
	return nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("auth", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
