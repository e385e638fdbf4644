package postgres

import (
	"errors"
	"time"

	"github.com/dkravets/unit-roster/internal/auth"
	userDatamodel "github.com/dkravets/unit-roster/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) auth.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *userDatamodel.Session) error {
	return r.db.Create(session).Error
}

// Resolve runs the lookup, the expiry check, and the possible delete as one
// transaction. The closure returns nil on the expired path so the delete
// commits; ErrSessionExpired is reported afterwards. Two concurrent
// resolutions of the same expired token both fail; whichever commits second
// deletes zero rows, which is fine.
func (r *SessionRepository) Resolve(token string, ttl time.Duration) (*userDatamodel.Session, *userDatamodel.User, error) {
	var session userDatamodel.Session
	var owner userDatamodel.User
	var expired bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("token = ?", token).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auth.ErrSessionNotFound
			}
			return err
		}

		if time.Since(session.CreatedAt) > ttl {
			expired = true
			return tx.Where("token = ?", token).Delete(&userDatamodel.Session{}).Error
		}

		return tx.Where("id = ?", session.UserID).First(&owner).Error
	})
	if err != nil {
		return nil, nil, err
	}
	if expired {
		return nil, nil, auth.ErrSessionExpired
	}
	return &session, &owner, nil
}

func (r *SessionRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&userDatamodel.Session{}).Error
}
