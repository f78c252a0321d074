package instruments

import (
	"strings"

	"github.com/MuzikosMokykla/MM-Backend/internal/db"
	"gorm.io/gorm"
)

type Store interface {
	List() ([]Instrument, error)
	// FindByName matches the Lithuanian display name or an alias,
	// case-insensitively. The catalog is small, so it scans in process.
	FindByName(name string) (Instrument, error)
}

type GormStore struct{}

var _ Store = GormStore{}

func (GormStore) List() ([]Instrument, error) {
	var instruments []Instrument
	err := db.DB.Find(&instruments).Error
	return instruments, err
}

func (s GormStore) FindByName(name string) (Instrument, error) {
	instruments, err := s.List()
	if err != nil {
		return Instrument{}, err
	}
	if inst, ok := Match(instruments, name); ok {
		return inst, nil
	}
	return Instrument{}, gorm.ErrRecordNotFound
}

// Match scans a catalog for a display-name or alias match.
func Match(instruments []Instrument, name string) (Instrument, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, inst := range instruments {
		if strings.ToLower(inst.Name) == needle {
			return inst, true
		}
		for _, alias := range inst.Aliases {
			if strings.ToLower(alias) == needle {
				return inst, true
			}
		}
	}
	return Instrument{}, false
}
