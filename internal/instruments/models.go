package instruments

import "github.com/lib/pq"

// Instrument is a catalog row backing the landing-page widgets: the
// guessing game (sound file) and the artist/video lookups (tag, query).
type Instrument struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex" json:"name"`
	Tag       string         `json:"tag"`   // MusicBrainz artist tag
	Query     string         `json:"query"` // YouTube search query
	SoundFile string         `json:"sound_file,omitempty"`
	Aliases   pq.StringArray `gorm:"type:text[]" json:"aliases,omitempty"`
}

func (Instrument) TableName() string { return "school.instruments" }

// Defaults seeds the catalog on first start. Dainavimas carries no sound
// sample, so it never appears in game rounds.
var Defaults = []Instrument{
	{ID: "piano", Name: "Fortepijonas", Tag: "piano", Query: "piano tutorial",
		SoundFile: "/sounds/instruments/piano.mp3", Aliases: pq.StringArray{"pianinas"}},
	{ID: "guitar", Name: "Gitara", Tag: "guitar", Query: "guitar lesson",
		SoundFile: "/sounds/instruments/guitar.mp3"},
	{ID: "violin", Name: "Smuikas", Tag: "violin", Query: "violin tutorial",
		SoundFile: "/sounds/instruments/violin.mp3"},
	{ID: "flute", Name: "Fleita", Tag: "flute", Query: "flute lesson",
		SoundFile: "/sounds/instruments/flute.mp3"},
	{ID: "drums", Name: "Būgnai", Tag: "drums", Query: "drums tutorial",
		SoundFile: "/sounds/instruments/drums.mp3", Aliases: pq.StringArray{"mušamieji"}},
	{ID: "vocal", Name: "Dainavimas", Tag: "vocal", Query: "vocal lesson"},
}
