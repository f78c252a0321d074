package auth

import (
	"log"

	"github.com/MuzikosMokykla/MM-Backend/internal/config"
	"github.com/MuzikosMokykla/MM-Backend/internal/db"
	"github.com/MuzikosMokykla/MM-Backend/internal/email"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Session{}, &MagicCode{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}

// NewHandler wires the gorm-backed stores and the configured email service.
func NewHandler(cfg config.Config) *Handler {
	var mail email.Service
	if cfg.SendgridKey != "" {
		mail = email.NewSendgridService(cfg.SendgridKey, cfg.EmailFrom)
	} else {
		mail = email.ConsoleService{From: cfg.EmailFrom}
	}

	return &Handler{
		Users:     GormUserStore{},
		Sessions:  GormSessionStore{},
		Codes:     GormCodeStore{},
		Email:     mail,
		DemoLogin: cfg.DemoLogin,
	}
}
