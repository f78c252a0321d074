package instruments

import (
	"log"

	"github.com/MuzikosMokykla/MM-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "school"); err != nil {
		log.Fatal("Failed to ensure schema school: ", err)
	}

	if err := db.DB.AutoMigrate(&Instrument{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	// Seed the catalog on first start.
	var count int64
	if err := db.DB.Model(&Instrument{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count instruments: ", err)
	}
	if count == 0 {
		if err := db.DB.Create(&Defaults).Error; err != nil {
			log.Fatal("Failed to seed instruments: ", err)
		}
		log.Printf("Seeded %d instruments", len(Defaults))
	}
}

func NewHandler() *Handler {
	return &Handler{Store: GormStore{}}
}
