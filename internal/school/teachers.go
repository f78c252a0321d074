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

func (h *Handler) ListTeachersHandler(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.Store.ListTeachers()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokytojų duomenis")
		return
	}
	if teachers == nil {
		teachers = []Teacher{}
	}
	utils.RespondJSON(w, http.StatusOK, teachers)
}

func (h *Handler) GetTeacherHandler(w http.ResponseWriter, r *http.Request) {
	teacher, err := h.Store.GetTeacher(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Mokytojas nerastas")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokytojo duomenis")
		return
	}
	utils.RespondJSON(w, http.StatusOK, teacher)
}

// ScheduleHandler returns a teacher's lessons, each enriched with its student.
func (h *Handler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.Store.LessonsByTeacher(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokytojo tvarkaraštį")
		return
	}

	students, err := h.Store.ListStudents()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokytojo tvarkaraštį")
		return
	}

	byID := make(map[string]Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}

	enriched := make([]LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		lr := LessonResponse{Lesson: lesson}
		if s, ok := byID[lesson.StudentID]; ok {
			lr.Student = &s
		}
		enriched = append(enriched, lr)
	}
	utils.RespondJSON(w, http.StatusOK, enriched)
}

func (h *Handler) CreateTeacherHandler(w http.ResponseWriter, r *http.Request) {
	var input Teacher
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	if input.Vardas == "" || input.Specialybe == "" {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	teacher := Teacher{
		ID:         uuid.NewString(),
		Vardas:     input.Vardas,
		Specialybe: input.Specialybe,
	}
	if err := h.Store.CreateTeacher(&teacher); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida kuriant mokytoją")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, teacher)
}

func (h *Handler) UpdateTeacherHandler(w http.ResponseWriter, r *http.Request) {
	var patch TeacherPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	if (patch.Vardas != nil && *patch.Vardas == "") ||
		(patch.Specialybe != nil && *patch.Specialybe == "") {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	teacher, err := h.Store.UpdateTeacher(chi.URLParam(r, "id"), patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Mokytojas nerastas")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida atnaujinant mokytoją")
		return
	}
	utils.RespondJSON(w, http.StatusOK, teacher)
}

func (h *Handler) DeleteTeacherHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteTeacher(chi.URLParam(r, "id")); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida ištrinant mokytoją")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Mokytojas sėkmingai ištrintas")
}
