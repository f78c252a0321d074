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

type Handler struct {
	Store Store
}

func (h *Handler) ListStudentsHandler(w http.ResponseWriter, r *http.Request) {
	students, err := h.Store.ListStudents()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokinių duomenis")
		return
	}
	if students == nil {
		students = []Student{}
	}
	utils.RespondJSON(w, http.StatusOK, students)
}

func (h *Handler) GetStudentHandler(w http.ResponseWriter, r *http.Request) {
	student, err := h.Store.GetStudent(chi.URLParam(r, "id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Mokinys nerastas")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida gaunant mokinio duomenis")
		return
	}
	utils.RespondJSON(w, http.StatusOK, student)
}

func (h *Handler) FilterStudentsHandler(w http.ResponseWriter, r *http.Request) {
	students, err := h.Store.StudentsByInstrument(chi.URLParam(r, "instrument"))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida filtruojant mokinius")
		return
	}
	if students == nil {
		students = []Student{}
	}
	utils.RespondJSON(w, http.StatusOK, students)
}

func (h *Handler) CreateStudentHandler(w http.ResponseWriter, r *http.Request) {
	var input Student
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	if input.Vardas == "" || input.Amzius == 0 || input.Instrumentas == "" {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	student := Student{
		ID:           uuid.NewString(),
		Vardas:       input.Vardas,
		Amzius:       input.Amzius,
		Instrumentas: input.Instrumentas,
	}
	if err := h.Store.CreateStudent(&student); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida kuriant mokinį")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, student)
}

func (h *Handler) UpdateStudentHandler(w http.ResponseWriter, r *http.Request) {
	var patch StudentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Neteisinga užklausa")
		return
	}

	// Fields present in the payload always apply, but required fields can
	// never be cleared to an empty value.
	if (patch.Vardas != nil && *patch.Vardas == "") ||
		(patch.Amzius != nil && *patch.Amzius <= 0) ||
		(patch.Instrumentas != nil && *patch.Instrumentas == "") {
		utils.RespondError(w, http.StatusBadRequest, "Visi laukai privalomi")
		return
	}

	student, err := h.Store.UpdateStudent(chi.URLParam(r, "id"), patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Mokinys nerastas")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida atnaujinant mokinį")
		return
	}
	utils.RespondJSON(w, http.StatusOK, student)
}

func (h *Handler) DeleteStudentHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteStudent(chi.URLParam(r, "id")); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Klaida ištrinant mokinį")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Mokinys sėkmingai ištrintas")
}
