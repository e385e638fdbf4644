package auth

import (
	"errors"
	"fmt"
	"time"

	userDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/user"
)

// Role is the closed set of API roles. Duty roles on personnel records are
// free text and unrelated.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePlanner Role = "planner"
	RoleViewer  Role = "viewer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RolePlanner, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// OneOf reports membership; an empty allowed set admits every role.
func (r Role) OneOf(allowed ...Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// SessionInfo is what a successful login returns to the client.
type SessionInfo struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// UserRepository looks up provisioned users.
type UserRepository interface {
	// GetByUsername returns (nil, nil) when no such user exists so the
	// service can fail closed without distinguishing the cause.
	GetByUsername(username string) (*userDatamodel.User, error)
}

// SessionRepository owns the session rows.
type SessionRepository interface {
	Create(session *userDatamodel.Session) error
	// Resolve joins the session to its user. A session older than ttl is
	// deleted inside the same transaction and ErrSessionExpired returned,
	// so concurrent resolutions of one expired token cannot race the
	// delete.
	Resolve(token string, ttl time.Duration) (*userDatamodel.Session, *userDatamodel.User, error)
	// Delete is idempotent; removing an absent token is not an error.
	Delete(token string) error
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
