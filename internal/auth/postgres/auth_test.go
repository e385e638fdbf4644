package postgres_test

import (
	"testing"
	"time"

	"github.com/dkravets/unit-roster/internal/auth"
	authPostgres "github.com/dkravets/unit-roster/internal/auth/postgres"
	userDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

var _ = Describe("Session Repository", func() {
	var (
		db       *gorm.DB
		sessions auth.SessionRepository
		owner    userDatamodel.User

		ttl = 720 * time.Minute
	)

	sessionCount := func() int64 {
		var count int64
		Expect(db.Model(&userDatamodel.Session{}).Count(&count).Error).NotTo(HaveOccurred())
		return count
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Exec("PRAGMA foreign_keys = ON").Error).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{}, &userDatamodel.Session{})
		Expect(err).NotTo(HaveOccurred())

		sessions = authPostgres.NewSessionRepository(db)

		owner = userDatamodel.User{Username: "admin", PasswordHash: "x", Role: "admin"}
		Expect(db.Create(&owner).Error).NotTo(HaveOccurred())
	})

	Describe("Resolve", func() {
		It("should return the session and its owner while the TTL holds", func() {
			Expect(sessions.Create(&userDatamodel.Session{
				Token:     "fresh-token",
				UserID:    owner.ID,
				CreatedAt: time.Now().Add(-719 * time.Minute),
			})).To(Succeed())

			session, user, err := sessions.Resolve("fresh-token", ttl)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Token).To(Equal("fresh-token"))
			Expect(user.Username).To(Equal("admin"))
		})

		It("should remove an expired session from the store, not just reject it", func() {
			Expect(sessions.Create(&userDatamodel.Session{
				Token:     "stale-token",
				UserID:    owner.ID,
				CreatedAt: time.Now().Add(-721 * time.Minute),
			})).To(Succeed())

			_, _, err := sessions.Resolve("stale-token", ttl)
			Expect(err).To(MatchError(auth.ErrSessionExpired))
			Expect(sessionCount()).To(BeZero())

			_, _, err = sessions.Resolve("stale-token", ttl)
			Expect(err).To(MatchError(auth.ErrSessionNotFound))
		})

		It("should only remove the expired row, never its siblings", func() {
			Expect(sessions.Create(&userDatamodel.Session{
				Token:     "stale-token",
				UserID:    owner.ID,
				CreatedAt: time.Now().Add(-2 * time.Duration(ttl)),
			})).To(Succeed())
			Expect(sessions.Create(&userDatamodel.Session{
				Token:     "fresh-token",
				UserID:    owner.ID,
				CreatedAt: time.Now(),
			})).To(Succeed())

			_, _, err := sessions.Resolve("stale-token", ttl)
			Expect(err).To(MatchError(auth.ErrSessionExpired))
			Expect(sessionCount()).To(Equal(int64(1)))

			_, _, err = sessions.Resolve("fresh-token", ttl)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should report unknown tokens as not found", func() {
			_, _, err := sessions.Resolve("never-issued", ttl)
			Expect(err).To(MatchError(auth.ErrSessionNotFound))
		})
	})

	Describe("Delete", func() {
		It("should be idempotent", func() {
			Expect(sessions.Create(&userDatamodel.Session{
				Token:     "token",
				UserID:    owner.ID,
				CreatedAt: time.Now(),
			})).To(Succeed())

			Expect(sessions.Delete("token")).To(Succeed())
			Expect(sessions.Delete("token")).To(Succeed())
			Expect(sessionCount()).To(BeZero())
		})
	})
})
