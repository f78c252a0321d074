package school

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonResponse is a lesson enriched at read time with its referenced
// student and teacher. Dangling references leave the keys absent.
type LessonResponse struct {
	Lesson
	Student *Student `json:"student,omitempty"`
	Teacher *Teacher `json:"teacher,omitempty"`
}

// joinLessons matches lessons against the student and teacher sets fetched
// in the same call. The join is computed per request, never persisted.
func joinLessons(lessons []Lesson, students []Student, teachers []Teacher) []LessonResponse {
	studentsByID := make(map[string]Student, len(students))
	for _, s := range students {
		studentsByID[s.ID] = s
	}
	teachersByID := make(map[string]Teacher, len(teachers))
	for _, t := range teachers {
		teachersByID[t.ID] = t
	}

	enriched := make([]LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		lr := LessonResponse{Lesson: lesson}
		if s, ok := studentsByID[lesson.StudentID]; ok {
			lr.Student = &s
		}
		if t, ok := teachersByID[lesson.TeacherID]; ok {
			lr.Teacher = &t
		}
		enriched = append(enriched, lr)
	}
	return enriched
}

func (h *Handler) fetchJoinSets(w http.ResponseWriter) ([]Student, []Teacher, bool) {
	students, err := h.Store.ListStudents()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant pamokų duomenis")
		return nil, nil, false
	}
	teachers, err := h.Store.ListTeachers()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant pamokų duomenis")
		return nil, nil, false
	}
	return students, teachers, true
}

func (h *Handler) ListLessonsHandler(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.Store.ListLessons()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant pamokų duomenis")
		return
	}

	students, teachers, ok := h.fetchJoinSets(w)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, joinLessons(lessons, students, teachers))
}

func (h *Handler) GetLessonHandler(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.Store.GetLesson(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Pamoka nerasta")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant pamokos duomenis")
		return
	}

	students, teachers, ok := h.fetchJoinSets(w)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, joinLessons([]Lesson{lesson}, students, teachers)[0])
}

func (h *Handler) CreateLessonHandler(w http.ResponseWriter, r *http.Request) {
	var input Lesson
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	if input.StudentID == "" || input.TeacherID == "" || input.Laikas == "" {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	// No referential check against students/teachers: a dangling reference
	// renders with absent join keys at read time.
	lesson := Lesson{
		ID:        uuid.NewString(),
		StudentID: input.StudentID,
		TeacherID: input.TeacherID,
		Laikas:    input.Laikas,
	}
	if err := h.Store.CreateLesson(&lesson); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida kuriant pamoką")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, lesson)
}

func (h *Handler) UpdateLessonHandler(w http.ResponseWriter, r *http.Request) {
	var patch LessonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	if (patch.StudentID != nil && *patch.StudentID == "") ||
		(patch.TeacherID != nil && *patch.TeacherID == "") ||
		(patch.Laikas != nil && *patch.Laikas == "") {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	lesson, err := h.Store.UpdateLesson(chi.URLParam(r, "id"), patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Pamoka nerasta")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida atnaujinant pamoką")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lesson)
}

func (h *Handler) DeleteLessonHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteLesson(chi.URLParam(r, "id")); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida ištrinant pamoką")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Pamoka sėkmingai ištrinta")
}
