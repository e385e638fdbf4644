package auth

import (
	"encoding/base64"
	"log/slog"
	"testing"
	"time"

	userDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockUserRepository struct {
	users map[string]*userDatamodel.User
}

func (m *mockUserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	return m.users[username], nil
}

// mockSessionRepository mirrors the store contract, including the lazy
// delete of expired rows during Resolve.
type mockSessionRepository struct {
	sessions map[string]*userDatamodel.Session
	owners   map[int64]*userDatamodel.User
}

func newMockSessionRepository(owners ...*userDatamodel.User) *mockSessionRepository {
	byID := make(map[int64]*userDatamodel.User)
	for _, owner := range owners {
		byID[owner.ID] = owner
	}
	return &mockSessionRepository{
		sessions: make(map[string]*userDatamodel.Session),
		owners:   byID,
	}
}

func (m *mockSessionRepository) Create(session *userDatamodel.Session) error {
	m.sessions[session.Token] = session
	return nil
}

func (m *mockSessionRepository) Resolve(token string, ttl time.Duration) (*userDatamodel.Session, *userDatamodel.User, error) {
	session, ok := m.sessions[token]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if time.Since(session.CreatedAt) > ttl {
		delete(m.sessions, token)
		return nil, nil, ErrSessionExpired
	}
	return session, m.owners[session.UserID], nil
}

func (m *mockSessionRepository) Delete(token string) error {
	delete(m.sessions, token)
	return nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		users    *mockUserRepository
		sessions *mockSessionRepository
		hasher   *PasswordHasher

		sessionTTL = 720 * time.Minute
	)

	ginkgo.BeforeEach(func() {
		hasher = NewPasswordHasher(1000)
		adminHash, err := hasher.Hash("admin123")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		admin := &userDatamodel.User{ID: 1, Username: "admin", PasswordHash: adminHash, Role: "admin"}
		users = &mockUserRepository{users: map[string]*userDatamodel.User{"admin": admin}}
		sessions = newMockSessionRepository(admin)
		service = NewService(users, sessions, hasher, sessionTTL, slog.Default())
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should issue a session for valid credentials", func() {
			info, err := service.Login("admin", "admin123")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(info.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(info.Role).To(gomega.Equal("admin"))
			gomega.Expect(info.Username).To(gomega.Equal("admin"))
			gomega.Expect(sessions.sessions).To(gomega.HaveKey(info.Token))
		})

		ginkgo.It("should generate url-safe tokens with 30 bytes of entropy", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			raw, err := base64.RawURLEncoding.DecodeString(info.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(raw).To(gomega.HaveLen(30))
		})

		ginkgo.It("should issue distinct tokens for concurrent sessions of one user", func() {
			first, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(first.Token).ToNot(gomega.Equal(second.Token))
			gomega.Expect(sessions.sessions).To(gomega.HaveLen(2))
		})

		ginkgo.It("should fail identically for unknown user and wrong password", func() {
			_, unknownErr := service.Login("nobody", "admin123")
			_, wrongErr := service.Login("admin", "wrong")

			gomega.Expect(unknownErr).To(gomega.Equal(ErrInvalidCredentials))
			gomega.Expect(wrongErr).To(gomega.Equal(ErrInvalidCredentials))
		})
	})

	ginkgo.Describe("Resolve", func() {
		ginkgo.It("should resolve a fresh token to the owner's identity", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			identity, err := service.Resolve(info.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(identity.Username).To(gomega.Equal("admin"))
			gomega.Expect(identity.Role).To(gomega.Equal("admin"))
			gomega.Expect(identity.Token).To(gomega.Equal(info.Token))
		})

		ginkgo.It("should resolve a session one minute inside the TTL", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			sessions.sessions[info.Token].CreatedAt = time.Now().Add(-719 * time.Minute)

			_, err = service.Resolve(info.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should expire and remove a session one minute past the TTL", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			sessions.sessions[info.Token].CreatedAt = time.Now().Add(-721 * time.Minute)

			_, err = service.Resolve(info.Token)
			gomega.Expect(err).To(gomega.Equal(ErrSessionExpired))
			gomega.Expect(sessions.sessions).ToNot(gomega.HaveKey(info.Token))

			_, err = service.Resolve(info.Token)
			gomega.Expect(err).To(gomega.Equal(ErrSessionNotFound))
		})

		ginkgo.It("should report unknown tokens as not found", func() {
			_, err := service.Resolve("no-such-token")
			gomega.Expect(err).To(gomega.Equal(ErrSessionNotFound))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should invalidate the session", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Logout(info.Token)).To(gomega.Succeed())

			_, err = service.Resolve(info.Token)
			gomega.Expect(err).To(gomega.Equal(ErrSessionNotFound))
		})

		ginkgo.It("should succeed for an already-removed token", func() {
			info, err := service.Login("admin", "admin123")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Logout(info.Token)).To(gomega.Succeed())
			gomega.Expect(service.Logout(info.Token)).To(gomega.Succeed())
			gomega.Expect(service.Logout("never-issued")).To(gomega.Succeed())
		})
	})
})
