package auth

import "time"

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null" json:"-"`
	Username  string    `json:"-"`
	Role      string    `json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

type User struct {
	UserID         string `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex" json:"username"`
	Email          string `gorm:"index" json:"email,omitempty"`
	Password       string `json:"password,omitempty" gorm:"-"`
	HashedPassword string `json:"-"`
	Role           string `gorm:"default:'viewer'" json:"role"`
}

// MagicCode is a one-time login code emailed to an address.
type MagicCode struct {
	Email     string    `gorm:"primaryKey"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (Session) TableName() string   { return "app_auth.sessions" }
func (User) TableName() string      { return "app_auth.users" }
func (MagicCode) TableName() string { return "app_auth.magic_codes" }
