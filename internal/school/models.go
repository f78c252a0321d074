package school

// Field names stay Lithuanian on the wire, matching the admin UI.

type Student struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Vardas       string `gorm:"not null" json:"vardas"`
	Amzius       int    `gorm:"not null" json:"amžius"`
	Instrumentas string `gorm:"not null" json:"instrumentas"`
}

type Teacher struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Vardas     string `gorm:"not null" json:"vardas"`
	Specialybe string `gorm:"not null" json:"specialybė"`
}

type Lesson struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	StudentID string  `gorm:"not null" json:"student_id"`
	TeacherID string  `gorm:"not null" json:"teacher_id"`
	Laikas    string  `gorm:"not null" json:"laikas"`
	VideoPath *string `json:"video_path"`
}

func (Student) TableName() string { return "school.students" }
func (Teacher) TableName() string { return "school.teachers" }
func (Lesson) TableName() string  { return "school.lessons" }

// Patch types use pointers so that an absent JSON field means "do not
// change" while a present field always applies, zero values included.

type StudentPatch struct {
	Vardas       *string `json:"vardas"`
	Amzius       *int    `json:"amžius"`
	Instrumentas *string `json:"instrumentas"`
}

type TeacherPatch struct {
	Vardas     *string `json:"vardas"`
	Specialybe *string `json:"specialybė"`
}

type LessonPatch struct {
	StudentID *string `json:"student_id"`
	TeacherID *string `json:"teacher_id"`
	Laikas    *string `json:"laikas"`
}
