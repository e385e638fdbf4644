package user

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         string `gorm:"column:role;not null"`
}

func (User) TableName() string { return "users" }

// Session is one issued bearer token. The token itself is the primary key;
// a user may hold any number of concurrent sessions. Expiry is derived from
// CreatedAt at resolve time, never stored.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string { return "sessions" }
