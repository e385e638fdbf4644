package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dkravets/unit-roster/internal"
	userDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/user"
)

const tokenEntropyBytes = 30

// Service is the session manager: it fronts the credential store and owns
// token issue, resolution with lazy expiry, and revocation.
type Service struct {
	users      UserRepository
	sessions   SessionRepository
	hasher     *PasswordHasher
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewService(users UserRepository, sessions SessionRepository, hasher *PasswordHasher, sessionTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		hasher:     hasher,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies the credentials and issues a fresh session. An unknown
// username and a wrong password both come back as ErrInvalidCredentials;
// callers learn nothing about which part failed.
func (s *Service) Login(username, password string) (*SessionInfo, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		s.logger.Error("login: user lookup failed", "error", err)
		return nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	session := &userDatamodel.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(session); err != nil {
		s.logger.Error("login: session insert failed", "error", err)
		return nil, err
	}

	s.logger.Info("session created", "username", user.Username)
	return &SessionInfo{Token: token, Role: user.Role, Username: user.Username}, nil
}

// Resolve maps a bearer token to the caller's identity. Expired sessions
// are removed as a side effect of the failed resolution.
func (s *Service) Resolve(token string) (*internal.Identity, error) {
	session, owner, err := s.sessions.Resolve(token, s.sessionTTL)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
			return nil, err
		}
		s.logger.Error("resolve: session lookup failed", "error", err)
		return nil, err
	}

	role, err := ParseRole(owner.Role)
	if err != nil {
		return nil, fmt.Errorf("session for user %d: %w", owner.ID, err)
	}
	return &internal.Identity{
		Token:    session.Token,
		Username: owner.Username,
		Role:     string(role),
	}, nil
}

// Logout revokes the session. Revoking an unknown token succeeds.
func (s *Service) Logout(token string) error {
	return s.sessions.Delete(token)
}

func generateToken() (string, error) {
	raw := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
