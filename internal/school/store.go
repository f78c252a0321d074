package school

import (
	"github.com/MuzikosMokykla/MM-Backend/internal/db"
)

// Store is the single typed boundary between the handlers and the database.
// Absent documents surface as gorm.ErrRecordNotFound.
type Store interface {
	ListStudents() ([]Student, error)
	GetStudent(id string) (Student, error)
	StudentsByInstrument(instrument string) ([]Student, error)
	CreateStudent(s *Student) error
	UpdateStudent(id string, patch StudentPatch) (Student, error)
	DeleteStudent(id string) error

	ListTeachers() ([]Teacher, error)
	GetTeacher(id string) (Teacher, error)
	CreateTeacher(t *Teacher) error
	UpdateTeacher(id string, patch TeacherPatch) (Teacher, error)
	DeleteTeacher(id string) error

	ListLessons() ([]Lesson, error)
	GetLesson(id string) (Lesson, error)
	LessonsByTeacher(teacherID string) ([]Lesson, error)
	CreateLesson(l *Lesson) error
	UpdateLesson(id string, patch LessonPatch) (Lesson, error)
	DeleteLesson(id string) error
	SetLessonVideoPath(id string, path *string) error
}

type GormStore struct{}

var _ Store = GormStore{}

func (GormStore) ListStudents() ([]Student, error) {
	var students []Student
	err := db.DB.Find(&students).Error
	return students, err
}

func (GormStore) GetStudent(id string) (Student, error) {
	var student Student
	err := db.DB.First(&student, "id = ?", id).Error
	return student, err
}

func (GormStore) StudentsByInstrument(instrument string) ([]Student, error) {
	var students []Student
	err := db.DB.Find(&students, "instrumentas = ?", instrument).Error
	return students, err
}

func (GormStore) CreateStudent(s *Student) error {
	return db.DB.Create(s).Error
}

func (GormStore) UpdateStudent(id string, patch StudentPatch) (Student, error) {
	var student Student
	if err := db.DB.First(&student, "id = ?", id).Error; err != nil {
		return Student{}, err
	}

	updates := map[string]any{}
	if patch.Vardas != nil {
		updates["vardas"] = *patch.Vardas
	}
	if patch.Amzius != nil {
		updates["amzius"] = *patch.Amzius
	}
	if patch.Instrumentas != nil {
		updates["instrumentas"] = *patch.Instrumentas
	}
	if len(updates) == 0 {
		return student, nil
	}

	if err := db.DB.Model(&student).Updates(updates).Error; err != nil {
		return Student{}, err
	}
	return student, nil
}

func (GormStore) DeleteStudent(id string) error {
	return db.DB.Delete(&Student{}, "id = ?", id).Error
}

func (GormStore) ListTeachers() ([]Teacher, error) {
	var teachers []Teacher
	err := db.DB.Find(&teachers).Error
	return teachers, err
}

func (GormStore) GetTeacher(id string) (Teacher, error) {
	var teacher Teacher
	err := db.DB.First(&teacher, "id = ?", id).Error
	return teacher, err
}

func (GormStore) CreateTeacher(t *Teacher) error {
	return db.DB.Create(t).Error
}

func (GormStore) UpdateTeacher(id string, patch TeacherPatch) (Teacher, error) {
	var teacher Teacher
	if err := db.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return Teacher{}, err
	}

	updates := map[string]any{}
	if patch.Vardas != nil {
		updates["vardas"] = *patch.Vardas
	}
	if patch.Specialybe != nil {
		updates["specialybe"] = *patch.Specialybe
	}
	if len(updates) == 0 {
		return teacher, nil
	}

	if err := db.DB.Model(&teacher).Updates(updates).Error; err != nil {
		return Teacher{}, err
	}
	return teacher, nil
}

func (GormStore) DeleteTeacher(id string) error {
	return db.DB.Delete(&Teacher{}, "id = ?", id).Error
}

func (GormStore) ListLessons() ([]Lesson, error) {
	var lessons []Lesson
	err := db.DB.Find(&lessons).Error
	return lessons, err
}

func (GormStore) GetLesson(id string) (Lesson, error) {
	var lesson Lesson
	err := db.DB.First(&lesson, "id = ?", id).Error
	return lesson, err
}

func (GormStore) LessonsByTeacher(teacherID string) ([]Lesson, error) {
	var lessons []Lesson
	err := db.DB.Find(&lessons, "teacher_id = ?", teacherID).Error
	return lessons, err
}

func (GormStore) CreateLesson(l *Lesson) error {
	return db.DB.Create(l).Error
}

func (GormStore) UpdateLesson(id string, patch LessonPatch) (Lesson, error) {
	var lesson Lesson
	if err := db.DB.First(&lesson, "id = ?", id).Error; err != nil {
		return Lesson{}, err
	}

	updates := map[string]any{}
	if patch.StudentID != nil {
		updates["student_id"] = *patch.StudentID
	}
	if patch.TeacherID != nil {
		updates["teacher_id"] = *patch.TeacherID
	}
	if patch.Laikas != nil {
		updates["laikas"] = *patch.Laikas
	}
	if len(updates) == 0 {
		return lesson, nil
	}

	if err := db.DB.Model(&lesson).Updates(updates).Error; err != nil {
		return Lesson{}, err
	}
	return lesson, nil
}

func (GormStore) DeleteLesson(id string) error {
	return db.DB.Delete(&Lesson{}, "id = ?", id).Error
}

func (GormStore) SetLessonVideoPath(id string, path *string) error {
	var lesson Lesson
	if err := db.DB.First(&lesson, "id = ?", id).Error; err != nil {
		return err
	}
	return db.DB.Model(&lesson).Update("video_path", path).Error
}
