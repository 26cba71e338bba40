package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dp-ai-be/internal/constant"
	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/repository/memory"
)

type fakeMailer struct {
	sentTo   []string
	sentCode []string
	err      error
}

func (f *fakeMailer) SendOTP(toEmail, otp string) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.sentCode = append(f.sentCode, otp)
	return f.err
}

func newTestAuthService(m *fakeMailer) (IAuthService, *memory.OTPRepository, *memory.SessionRepository) {
	otpRepo := memory.NewOTPRepository(5 * time.Minute)
	sessionRepo := memory.NewSessionRepository(constant.MaxHistory)
	svc := NewAuthService(otpRepo, sessionRepo, m, nil, nopLogger{})
	return svc, otpRepo, sessionRepo
}

func TestSendAndVerifyOTP(t *testing.T) {
	m := &fakeMailer{}
	svc, _, sessionRepo := newTestAuthService(m)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, &dto.SendOTPRequest{Email: " Bob@Example.com "}); err != nil {
		t.Fatalf("SendOTP error: %v", err)
	}
	if len(m.sentCode) != 1 || len(m.sentCode[0]) != 6 {
		t.Fatalf("mailer got %v, want one 6-digit code", m.sentCode)
	}

	res, err := svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "bob@example.com", OTP: m.sentCode[0]})
	if err != nil {
		t.Fatalf("VerifyOTP error: %v", err)
	}
	if res.Email != "bob@example.com" {
		t.Errorf("res.Email = %q, want normalized email", res.Email)
	}

	// Verification doubles as login: the session record now exists.
	if _, ok := sessionRepo.Get("bob@example.com"); !ok {
		t.Error("expected session after successful verify")
	}

	// Single use: replaying the same code fails as not-found.
	_, err = svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "bob@example.com", OTP: m.sentCode[0]})
	if !errors.Is(err, memory.ErrOTPNotFound) {
		t.Errorf("replayed verify = %v, want ErrOTPNotFound", err)
	}
}

func TestSendOTPDeliveryFailure(t *testing.T) {
	m := &fakeMailer{err: errors.New("smtp down")}
	svc, otpRepo, _ := newTestAuthService(m)

	err := svc.SendOTP(context.Background(), &dto.SendOTPRequest{Email: "bob@example.com"})
	if !errors.Is(err, ErrDeliveryFailure) {
		t.Fatalf("SendOTP = %v, want ErrDeliveryFailure", err)
	}

	// Issuance itself did not fail: the record is stored despite the send error.
	if len(m.sentCode) != 1 {
		t.Fatal("mailer should have been attempted once")
	}
	if err := otpRepo.Consume("bob@example.com", m.sentCode[0]); err != nil {
		t.Errorf("stored code should still verify, got %v", err)
	}
}

func TestVerifyOTPMismatch(t *testing.T) {
	m := &fakeMailer{}
	svc, _, _ := newTestAuthService(m)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, &dto.SendOTPRequest{Email: "bob@example.com"}); err != nil {
		t.Fatalf("SendOTP error: %v", err)
	}

	wrong := "000000"
	if wrong == m.sentCode[0] {
		wrong = "000001"
	}
	_, err := svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "bob@example.com", OTP: wrong})
	if !errors.Is(err, memory.ErrOTPMismatch) {
		t.Fatalf("wrong code = %v, want ErrOTPMismatch", err)
	}

	// Mismatch retains the record, so the right code still works.
	if _, err := svc.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: "bob@example.com", OTP: m.sentCode[0]}); err != nil {
		t.Errorf("retry with right code failed: %v", err)
	}
}

func TestLoginLogout(t *testing.T) {
	svc, _, sessionRepo := newTestAuthService(&fakeMailer{})
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Name: " Sam "})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Name != "Sam" {
		t.Errorf("res.Name = %q, want trimmed display name", res.Name)
	}
	if _, ok := sessionRepo.Get("sam"); !ok {
		t.Error("expected session for normalized key")
	}

	if err := svc.Logout(ctx, &dto.LogoutRequest{Name: "SAM"}); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, ok := sessionRepo.Get("sam"); ok {
		t.Error("session should be removed after logout")
	}
}

func TestLoginBlankName(t *testing.T) {
	svc, _, _ := newTestAuthService(&fakeMailer{})
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}
