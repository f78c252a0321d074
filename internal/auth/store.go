package auth

import (
	"github.com/MuzikosMokykla/MM-Backend/internal/db"
)

// UserStore looks up registered users.
type UserStore interface {
	FindByUsername(username string) (User, error)
	FindByEmail(email string) (User, error)
}

// SessionStore holds live sessions between login and logout.
type SessionStore interface {
	Create(s Session) error
	Find(id string) (Session, error)
	Delete(id string) error
}

// CodeStore holds pending magic-login codes keyed by email.
type CodeStore interface {
	Save(mc MagicCode) error
	Find(email string) (MagicCode, error)
	Delete(email string) error
}

type GormUserStore struct{}

func (GormUserStore) FindByUsername(username string) (User, error) {
	var user User
	err := db.DB.First(&user, "username = ?", username).Error
	return user, err
}

func (GormUserStore) FindByEmail(email string) (User, error) {
	var user User
	err := db.DB.First(&user, "email = ?", email).Error
	return user, err
}

type GormSessionStore struct{}

func (GormSessionStore) Create(s Session) error {
	return db.DB.Create(&s).Error
}

func (GormSessionStore) Find(id string) (Session, error) {
	var session Session
	err := db.DB.First(&session, "session_id = ?", id).Error
	return session, err
}

func (GormSessionStore) Delete(id string) error {
	return db.DB.Delete(&Session{}, "session_id = ?", id).Error
}

type GormCodeStore struct{}

func (GormCodeStore) Save(mc MagicCode) error {
	// One pending code per address; a resend replaces the old code.
	if err := db.DB.Delete(&MagicCode{}, "email = ?", mc.Email).Error; err != nil {
		return err
	}
	return db.DB.Create(&mc).Error
}

func (GormCodeStore) Find(email string) (MagicCode, error) {
	var mc MagicCode
	err := db.DB.First(&mc, "email = ?", email).Error
	return mc, err
}

func (GormCodeStore) Delete(email string) error {
	return db.DB.Delete(&MagicCode{}, "email = ?", email).Error
}
