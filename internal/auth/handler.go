package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkravets/unit-roster/internal"
	"github.com/dkravets/unit-roster/internal/transport"
	"github.com/dkravets/unit-roster/pkg/logger"
)

type ServiceAPI interface {
	Login(username, password string) (*SessionInfo, error)
	Resolve(token string) (*internal.Identity, error)
	Logout(token string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.Service.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.Logger.Error("login failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, session)
}

// Logout runs behind the auth middleware, so the identity in context is the
// session being revoked.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := internal.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Service.Logout(identity.Token); err != nil {
		h.Logger.Error("logout failed", "error", err, "username", identity.Username)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"detail": "logged out"})
}

// Me never errors: any resolution failure is simply an unauthenticated
// answer.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteJSON(w, http.StatusOK, MeResponse{Authenticated: false})
		return
	}

	identity, err := h.Service.Resolve(token)
	if err != nil {
		h.WriteJSON(w, http.StatusOK, MeResponse{Authenticated: false})
		return
	}

	h.WriteJSON(w, http.StatusOK, MeResponse{
		Authenticated: true,
		Username:      identity.Username,
		Role:          identity.Role,
	})
}

// Middleware resolves the bearer token and stores the identity in context.
// Missing, unknown, and expired tokens are indistinguishable 401s.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		identity, err := h.Service.Resolve(token)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
				h.Logger.Error("auth middleware: resolve failed", "error", err)
			}
			h.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := internal.ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route group on the caller's role. It expects
// Middleware to have run already; an empty role set admits any
// authenticated identity.
func (h *Handler) RequireRoles(allowed ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := internal.IdentityFromContext(r.Context())
			if !ok {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !Role(identity.Role).OneOf(allowed...) {
				h.Logger.Warn("access denied",
					"username", identity.Username,
					"role", identity.Role,
					"path", r.URL.Path)
				h.WriteError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
