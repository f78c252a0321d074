package main

import (
	"context"
	"log"
	"net/http"

	"github.com/MuzikosMokykla/MM-Backend/internal/auth"
	"github.com/MuzikosMokykla/MM-Backend/internal/config"
	"github.com/MuzikosMokykla/MM-Backend/internal/db"
	"github.com/MuzikosMokykla/MM-Backend/internal/instruments"
	"github.com/MuzikosMokykla/MM-Backend/internal/lookup"
	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/MuzikosMokykla/MM-Backend/internal/school"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"github.com/MuzikosMokykla/MM-Backend/internal/videos"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.LoadFromEnv()
	db.Connect(cfg.DatabaseURL)

	auth.Init()
	school.Init()
	instruments.Init()

	authHandler := auth.NewHandler(cfg)
	schoolHandler := school.NewHandler()
	sessionFetcher := auth.SessionInfo{Sessions: authHandler.Sessions}

	var storage videos.BlobStorage
	if cfg.VideoStorage == config.StorageB2 {
		b2s, err := videos.NewB2Storage(context.Background(), cfg.B2AccountID, cfg.B2AppKey, cfg.B2Bucket)
		if err != nil {
			log.Fatal("Failed to set up B2 storage: ", err)
		}
		storage = b2s
	} else {
		storage = videos.DiskStorage{Dir: cfg.UploadDir}
	}
	videoHandler := &videos.Handler{Lessons: school.GormStore{}, Storage: storage}

	lookupHandler := &lookup.Handler{
		Instruments: instruments.GormStore{},
		MusicBrainz: lookup.NewMusicBrainzClient(),
		YouTube:     lookup.NewYouTubeClient(cfg.YouTubeKey),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.Get("/api/health", HealthHandler)

	r.Mount("/api/auth", auth.SetupRoutes(authHandler))
	r.Mount("/api/students", school.SetupStudentRoutes(schoolHandler, sessionFetcher))
	r.Mount("/api/teachers", school.SetupTeacherRoutes(schoolHandler, sessionFetcher))
	r.Mount("/api/lessons", school.SetupLessonRoutes(schoolHandler, sessionFetcher))
	r.Mount("/api/videos", videos.SetupRoutes(videoHandler, sessionFetcher))
	r.Mount("/api/instruments", instruments.SetupRoutes(instruments.NewHandler()))
	r.Mount("/api/lookup", lookup.SetupRoutes(lookupHandler))

	// Disk-stored videos are served statically; B2 serves its own URLs.
	if cfg.VideoStorage == config.StorageDisk {
		fileServer := http.StripPrefix(videos.PublicPrefix+"/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get(videos.PublicPrefix+"/*", fileServer.ServeHTTP)
	}

	log.Println("Server listening on port :" + cfg.Port)
	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
