package config

import (
	"os"
	"strings"
)

// StorageBackend identifies where uploaded lesson videos are kept.
type StorageBackend string

const (
	StorageDisk StorageBackend = "disk"
	StorageB2   StorageBackend = "b2"
)

// Config holds all environment-driven settings for the backend.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigin  string

	// DemoLogin enables the fixed demo credential table as a login
	// fallback. Off unless explicitly requested.
	DemoLogin bool

	UploadDir    string
	VideoStorage StorageBackend

	// Backblaze B2 settings, used only when VideoStorage == StorageB2.
	B2AccountID string
	B2AppKey    string
	B2Bucket    string

	SendgridKey string
	EmailFrom   string

	YouTubeKey string
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - DATABASE_URL: Postgres connection string (required at startup)
//   - CORS_ORIGIN: allowed browser origin (default: http://localhost:3000)
//   - DEMO_LOGIN: "1"/"true" enables the demo credential fallback
//   - UPLOAD_DIR: directory for uploaded videos (default: uploads/videos)
//   - VIDEO_STORAGE: "disk" or "b2" (default: disk)
//   - B2_ACCOUNT_ID, B2_APP_KEY, B2_BUCKET: Backblaze credentials
//   - SENDGRID_API_KEY, EMAIL_FROM: magic-code email delivery
//   - YOUTUBE_API_KEY: enables the YouTube lookup widget
func LoadFromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	origin := strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	if origin == "" {
		origin = "http://localhost:3000"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/videos"
	}

	var storage StorageBackend
	switch strings.ToLower(strings.TrimSpace(os.Getenv("VIDEO_STORAGE"))) {
	case "b2":
		storage = StorageB2
	default:
		storage = StorageDisk
	}

	return Config{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CORSOrigin:   origin,
		DemoLogin:    envBool("DEMO_LOGIN"),
		UploadDir:    uploadDir,
		VideoStorage: storage,
		B2AccountID:  os.Getenv("B2_ACCOUNT_ID"),
		B2AppKey:     os.Getenv("B2_APP_KEY"),
		B2Bucket:     os.Getenv("B2_BUCKET"),
		SendgridKey:  os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
		YouTubeKey:   os.Getenv("YOUTUBE_API_KEY"),
	}
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	}
	return false
}
