//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_auth
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bafain/storefront-client/internal/api"
	"github.com/bafain/storefront-client/internal/chat"
	"github.com/bafain/storefront-client/internal/metrics"
	"github.com/bafain/storefront-client/internal/session"
)

// API is the unauthenticated auth surface of the backend.
type API interface {
	Login(ctx context.Context, email, password string) (api.AuthSession, error)
	Register(ctx context.Context, payload api.RegisterPayload) (api.RegisterResponse, error)
	ForgotPassword(ctx context.Context, email string) (api.MessageResponse, error)
	ResetPassword(ctx context.Context, payload api.ResetPasswordPayload) (api.MessageResponse, error)
}

// KV is the durable storage surface logout wipes.
type KV interface {
	ClearExcept(keep ...string)
}

var (
	ErrMissingCredentials = errors.New("email dan kata sandi wajib diisi")
	ErrMissingEmail       = errors.New("email wajib diisi")
	ErrPasswordMismatch   = errors.New("konfirmasi kata sandi tidak cocok")
	ErrMissingResetTokens = errors.New("token reset tidak ditemukan")
	ErrSessionNotStored   = errors.New("login gagal, sesi tidak tersedia")
	ErrPasswordTooShort   = errors.New("kata sandi minimal 8 karakter")
)

const minimumPasswordLength = 8

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// Service owns the session lifecycle: login and registration create it,
// logout and idle expiry destroy it. Other stores register logout hooks so
// local mirrors are torn down with the session.
type Service struct {
	api   API
	creds *session.Store
	kv    KV
	idle  *session.IdleWatcher
	log   *zap.Logger

	onLogout []func()
}

func NewService(apiClient API, creds *session.Store, kv KV, idle *session.IdleWatcher, log *zap.Logger) *Service {
	return &Service{
		api:   apiClient,
		creds: creds,
		kv:    kv,
		idle:  idle,
		log:   log,
	}
}

// OnLogout registers a hook run after the session is destroyed.
func (s *Service) OnLogout(hook func()) {
	s.onLogout = append(s.onLogout, hook)
}

// Touch reports user activity to the idle watcher.
func (s *Service) Touch() {
	if s.idle != nil {
		s.idle.Touch()
	}
}

// Resume re-arms the idle watcher for a session restored from durable
// storage at startup.
func (s *Service) Resume() {
	if s.creds.HasSession() && s.idle != nil {
		s.idle.Start()
	}
}

// Login validates the form client-side, exchanges credentials for a
// session and arms the idle watcher.
func (s *Service) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("auth_login").Inc()
		return err
	}

	s.creds.Save(resp.Session, resp.User)
	if !s.creds.HasSession() {
		return ErrSessionNotStored
	}

	if s.idle != nil {
		s.idle.Start()
	}
	s.log.Info("logged in", zap.String("email", email))
	return nil
}

// Register creates an account. When the backend returns a session the user
// is logged in immediately; otherwise the account awaits confirmation and
// the response message explains it.
func (s *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return "", ErrMissingCredentials
	}
	if len(input.Password) < minimumPasswordLength {
		return "", ErrPasswordTooShort
	}
	if input.ConfirmPassword != "" && input.Password != input.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	resp, err := s.api.Register(ctx, api.RegisterPayload{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("auth_register").Inc()
		return "", err
	}

	if len(resp.Session) > 0 {
		s.creds.Save(resp.Session, resp.User)
		if s.creds.HasSession() && s.idle != nil {
			s.idle.Start()
		}
	}
	return resp.Message, nil
}

// ForgotPassword requests a reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingEmail
	}
	resp, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword completes a reset flow using the tokens from the email
// link.
func (s *Service) ResetPassword(ctx context.Context, accessToken, refreshToken, newPassword string) (string, error) {
	if accessToken == "" || refreshToken == "" {
		return "", ErrMissingResetTokens
	}
	if len(newPassword) < minimumPasswordLength {
		return "", ErrPasswordTooShort
	}
	resp, err := s.api.ResetPassword(ctx, api.ResetPasswordPayload{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		NewPassword:  newPassword,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout destroys the session: the idle watcher stops, credentials are
// cleared, durable state is wiped except the chat transcript (the user
// clears that explicitly), and registered hooks tear down local mirrors.
func (s *Service) Logout() {
	if s.idle != nil {
		s.idle.Stop()
	}
	s.creds.Clear()
	s.kv.ClearExcept(chat.KeyMessages)

	for _, hook := range s.onLogout {
		hook()
	}
	s.log.Info("logged out")
}
