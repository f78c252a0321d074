package school

import (
	"log"

	"github.com/MuzikosMokykla/MM-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "school"); err != nil {
		log.Fatal("Failed to ensure schema school: ", err)
	}

	if err := db.DB.AutoMigrate(&Student{}, &Teacher{}, &Lesson{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}

func NewHandler() *Handler {
	return &Handler{Store: GormStore{}}
}
