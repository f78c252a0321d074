package videos

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MuzikosMokykla/MM-Backend/internal/school"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxUploadSize caps accepted video files at 100MB.
const MaxUploadSize = 100 << 20

var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".ogg":  {},
}

// LessonStore is the slice of the school store the video service needs.
type LessonStore interface {
	GetLesson(id string) (school.Lesson, error)
	SetLessonVideoPath(id string, path *string) error
}

type Handler struct {
	Lessons LessonStore
	Storage BlobStorage
}

func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonId")

	lesson, err := h.Lessons.GetLesson(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Pamoka nerasta")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida įkeliant video")
		return
	}

	// Slack over the cap covers multipart framing; the per-file size is
	// still checked exactly below.
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Failas per didelis (iki 100MB)")
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Video failas nebuvo įkeltas")
		return
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		utils.RespondError(w, http.StatusBadRequest, "Failas per didelis (iki 100MB)")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	_, extOK := allowedExtensions[ext]
	if !extOK || !strings.HasPrefix(header.Header.Get("Content-Type"), "video/") {
		utils.RespondError(w, http.StatusBadRequest, "Tik video failai leidžiami (mp4, webm, ogg)")
		return
	}

	// At most one video per lesson: drop the previous file before the
	// reference is overwritten.
	if lesson.VideoPath != nil {
		if err := h.Storage.Remove(r.Context(), path.Base(*lesson.VideoPath)); err != nil {
			log.Printf("removing previous video for lesson %s: %v", lessonID, err)
		}
	}

	name := fmt.Sprintf("video-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	videoPath, err := h.Storage.Save(r.Context(), name, file)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida įkeliant video")
		return
	}

	if err := h.Lessons.SetLessonVideoPath(lessonID, &videoPath); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida įkeliant video")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":   "Video sėkmingai įkeltas",
		"videoPath": videoPath,
		"filename":  name,
	})
}

func (h *Handler) FetchHandler(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.Lessons.GetLesson(chi.URLParam(r, "lessonId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Pamoka nerasta")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant video")
		return
	}

	if lesson.VideoPath == nil {
		utils.RespondError(w, http.StatusNotFound, "Video nerastas šiai pamokai")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"videoPath": *lesson.VideoPath})
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	lessonID := chi.URLParam(r, "lessonId")

	lesson, err := h.Lessons.GetLesson(lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Pamoka nerasta")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida ištrinant video")
		return
	}

	// Best effort on the bytes; the reference is cleared regardless.
	if lesson.VideoPath != nil {
		if err := h.Storage.Remove(r.Context(), path.Base(*lesson.VideoPath)); err != nil {
			log.Printf("removing video for lesson %s: %v", lessonID, err)
		}
	}

	if err := h.Lessons.SetLessonVideoPath(lessonID, nil); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida ištrinant video")
		return
	}

	utils.RespondMessage(w, http.StatusOK, "Video sėkmingai ištrintas")
}
