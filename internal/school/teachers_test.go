package school_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MuzikosMokykla/MM-Backend/internal/school"
)

func newTeacherServer(store *fakeStore, role string) http.Handler {
	h := &school.Handler{Store: store}
	return school.SetupTeacherRoutes(h, stubFetcher{role: role})
}

// TestTeachers_CreateUpdateDelete exercises the admin write path end to end
// against the in-memory store.
func TestTeachers_CreateUpdateDelete(t *testing.T) {
	store := newFakeStore()
	srv := newTeacherServer(store, "admin")

	rec := do(t, srv, http.MethodPost, "/", map[string]any{"vardas": "Rasa"}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing specialybė, got %d", rec.Code)
	}

	rec = do(t, srv, http.MethodPost, "/", map[string]any{"vardas": "Rasa", "specialybė": "Gitara"}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[school.Teacher](t, rec)
	if created.ID == "" || created.Vardas != "Rasa" || created.Specialybe != "Gitara" {
		t.Fatalf("unexpected created teacher: %+v", created)
	}

	rec = do(t, srv, http.MethodPut, "/"+created.ID, map[string]any{"specialybė": "Smuikas"}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	updated := decodeJSON[school.Teacher](t, rec)
	if updated.Vardas != "Rasa" || updated.Specialybe != "Smuikas" {
		t.Errorf("expected only specialybė to change, got %+v", updated)
	}

	rec = do(t, srv, http.MethodDelete, "/"+created.ID, nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mokytojas sėkmingai ištrintas") {
		t.Errorf("expected localized message, got: %s", rec.Body.String())
	}

	rec = do(t, srv, http.MethodGet, "/"+created.ID, nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Mokytojas nerastas") {
		t.Errorf("expected localized message, got: %s", rec.Body.String())
	}
}

// TestListTeachers_EmptyIsArray verifies an empty table serializes as [] and
// never null.
func TestListTeachers_EmptyIsArray(t *testing.T) {
	srv := newTeacherServer(newFakeStore(), "viewer")

	rec := do(t, srv, http.MethodGet, "/", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected [], got: %s", rec.Body.String())
	}
}

// TestTeacherSchedule verifies the schedule lists only that teacher's lessons,
// each with its student joined in.
func TestTeacherSchedule(t *testing.T) {
	store := newFakeStore()
	store.students["s1"] = school.Student{ID: "s1", Vardas: "Jonas", Amzius: 10, Instrumentas: "Gitara"}
	store.teachers["t1"] = school.Teacher{ID: "t1", Vardas: "Rasa", Specialybe: "Gitara"}
	store.teachers["t2"] = school.Teacher{ID: "t2", Vardas: "Tomas", Specialybe: "Smuikas"}
	store.lessons["l1"] = school.Lesson{ID: "l1", StudentID: "s1", TeacherID: "t1", Laikas: "Pirmadienis 15:00"}
	store.lessons["l2"] = school.Lesson{ID: "l2", StudentID: "gone", TeacherID: "t1", Laikas: "Antradienis 16:00"}
	store.lessons["l3"] = school.Lesson{ID: "l3", StudentID: "s1", TeacherID: "t2", Laikas: "Trečiadienis 17:00"}
	srv := newTeacherServer(store, "viewer")

	rec := do(t, srv, http.MethodGet, "/t1/schedule", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	got := decodeJSON[[]school.LessonResponse](t, rec)
	if len(got) != 2 {
		t.Fatalf("expected 2 lessons for t1, got %d", len(got))
	}
	for _, lr := range got {
		if lr.TeacherID != "t1" {
			t.Errorf("schedule leaked another teacher's lesson: %+v", lr.Lesson)
		}
		switch lr.ID {
		case "l1":
			if lr.Student == nil || lr.Student.Vardas != "Jonas" {
				t.Errorf("expected joined student on l1, got %+v", lr.Student)
			}
		case "l2":
			if lr.Student != nil {
				t.Errorf("expected no student on dangling reference, got %+v", lr.Student)
			}
		}
	}
}
