package school_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MuzikosMokykla/MM-Backend/internal/middleware"
	"github.com/MuzikosMokykla/MM-Backend/internal/school"
	"github.com/MuzikosMokykla/MM-Backend/internal/utils"
	"gorm.io/gorm"
)

// fakeStore is an in-memory school.Store that counts store accesses so tests
// can assert that rejected requests never reach the database.
type fakeStore struct {
	students map[string]school.Student
	teachers map[string]school.Teacher
	lessons  map[string]school.Lesson

	reads  int
	writes int
}

var _ school.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		students: map[string]school.Student{},
		teachers: map[string]school.Teacher{},
		lessons:  map[string]school.Lesson{},
	}
}

func (f *fakeStore) ListStudents() ([]school.Student, error) {
	f.reads++
	out := make([]school.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) GetStudent(id string) (school.Student, error) {
	f.reads++
	s, ok := f.students[id]
	if !ok {
		return school.Student{}, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeStore) StudentsByInstrument(instrument string) ([]school.Student, error) {
	f.reads++
	out := []school.Student{}
	for _, s := range f.students {
		if s.Instrumentas == instrument {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateStudent(s *school.Student) error {
	f.writes++
	f.students[s.ID] = *s
	return nil
}

func (f *fakeStore) UpdateStudent(id string, patch school.StudentPatch) (school.Student, error) {
	f.writes++
	s, ok := f.students[id]
	if !ok {
		return school.Student{}, gorm.ErrRecordNotFound
	}
	if patch.Vardas != nil {
		s.Vardas = *patch.Vardas
	}
	if patch.Amzius != nil {
		s.Amzius = *patch.Amzius
	}
	if patch.Instrumentas != nil {
		s.Instrumentas = *patch.Instrumentas
	}
	f.students[id] = s
	return s, nil
}

func (f *fakeStore) DeleteStudent(id string) error {
	f.writes++
	delete(f.students, id)
	return nil
}

func (f *fakeStore) ListTeachers() ([]school.Teacher, error) {
	f.reads++
	out := make([]school.Teacher, 0, len(f.teachers))
	for _, t := range f.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) GetTeacher(id string) (school.Teacher, error) {
	f.reads++
	t, ok := f.teachers[id]
	if !ok {
		return school.Teacher{}, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeStore) CreateTeacher(t *school.Teacher) error {
	f.writes++
	f.teachers[t.ID] = *t
	return nil
}

func (f *fakeStore) UpdateTeacher(id string, patch school.TeacherPatch) (school.Teacher, error) {
	f.writes++
	t, ok := f.teachers[id]
	if !ok {
		return school.Teacher{}, gorm.ErrRecordNotFound
	}
	if patch.Vardas != nil {
		t.Vardas = *patch.Vardas
	}
	if patch.Specialybe != nil {
		t.Specialybe = *patch.Specialybe
	}
	f.teachers[id] = t
	return t, nil
}

func (f *fakeStore) DeleteTeacher(id string) error {
	f.writes++
	delete(f.teachers, id)
	return nil
}

func (f *fakeStore) ListLessons() ([]school.Lesson, error) {
	f.reads++
	out := make([]school.Lesson, 0, len(f.lessons))
	for _, l := range f.lessons {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeStore) GetLesson(id string) (school.Lesson, error) {
	f.reads++
	l, ok := f.lessons[id]
	if !ok {
		return school.Lesson{}, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeStore) LessonsByTeacher(teacherID string) ([]school.Lesson, error) {
	f.reads++
	out := []school.Lesson{}
	for _, l := range f.lessons {
		if l.TeacherID == teacherID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateLesson(l *school.Lesson) error {
	f.writes++
	f.lessons[l.ID] = *l
	return nil
}

func (f *fakeStore) UpdateLesson(id string, patch school.LessonPatch) (school.Lesson, error) {
	f.writes++
	l, ok := f.lessons[id]
	if !ok {
		return school.Lesson{}, gorm.ErrRecordNotFound
	}
	if patch.StudentID != nil {
		l.StudentID = *patch.StudentID
	}
	if patch.TeacherID != nil {
		l.TeacherID = *patch.TeacherID
	}
	if patch.Laikas != nil {
		l.Laikas = *patch.Laikas
	}
	f.lessons[id] = l
	return l, nil
}

func (f *fakeStore) DeleteLesson(id string) error {
	f.writes++
	delete(f.lessons, id)
	return nil
}

func (f *fakeStore) SetLessonVideoPath(id string, path *string) error {
	f.writes++
	l, ok := f.lessons[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.VideoPath = path
	f.lessons[id] = l
	return nil
}

// stubFetcher hands out a live session with the given role for any cookie.
type stubFetcher struct {
	role string
}

func (f stubFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return utils.SessionData{
		User:      utils.SessionUser{ID: "user-1", Username: "test", Role: f.role},
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}, nil
}

// do sends a request through the handler, optionally attaching a session
// cookie and a JSON body, and returns the recorded response.
func do(t *testing.T, handler http.Handler, method, target string, body any, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session-id"})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON body: %s", rec.Body.String())
	}
	return v
}
