package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/MuzikosMokykla/MM-Backend/internal/auth"
	"github.com/MuzikosMokykla/MM-Backend/internal/config"
	"github.com/MuzikosMokykla/MM-Backend/internal/db"
	"github.com/MuzikosMokykla/MM-Backend/internal/instruments"
	"github.com/MuzikosMokykla/MM-Backend/internal/school"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// CLI flags
var (
	fixturePath = flag.String("fixture", "cmd/seed/fixture.yaml", "Path to the YAML fixture")
	dryRun      = flag.Bool("dry-run", false, "Parse + validate only; no DB writes")
	wipe        = flag.Bool("wipe", false, "Delete existing rows before seeding")
)

// Fixture contract: lessons reference students and teachers by vardas, so
// the fixture stays readable while ids are generated at seed time.

type fixture struct {
	Users []struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Students []struct {
		Vardas       string `yaml:"vardas"`
		Amzius       int    `yaml:"amžius"`
		Instrumentas string `yaml:"instrumentas"`
	} `yaml:"students"`
	Teachers []struct {
		Vardas     string `yaml:"vardas"`
		Specialybe string `yaml:"specialybė"`
	} `yaml:"teachers"`
	Lessons []struct {
		Student string `yaml:"student"`
		Teacher string `yaml:"teacher"`
		Laikas  string `yaml:"laikas"`
	} `yaml:"lessons"`
}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		log.Fatalf("fixture: %v", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("fixture parse: %v", err)
	}

	if err := validate(fx); err != nil {
		log.Fatalf("fixture validation failed: %v", err)
	}

	fmt.Printf("Loaded fixture: %d users, %d students, %d teachers, %d lessons\n",
		len(fx.Users), len(fx.Students), len(fx.Teachers), len(fx.Lessons))

	if *dryRun {
		fmt.Println("Dry run complete. No changes made.")
		return
	}

	cfg := config.LoadFromEnv()
	db.Connect(cfg.DatabaseURL)
	auth.Init()
	school.Init()
	instruments.Init()

	if *wipe {
		for _, model := range []any{&school.Lesson{}, &school.Student{}, &school.Teacher{}, &auth.User{}} {
			if err := db.DB.Where("1 = 1").Delete(model).Error; err != nil {
				log.Fatalf("wipe: %v", err)
			}
		}
		fmt.Println("Wiped existing rows")
	}

	if err := seed(fx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	fmt.Println("Seeding complete")
}

func validate(fx fixture) error {
	for _, u := range fx.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("user %q: username and password are required", u.Username)
		}
		if u.Role != "admin" && u.Role != "viewer" {
			return fmt.Errorf("user %q: role must be admin or viewer", u.Username)
		}
	}
	for _, s := range fx.Students {
		if s.Vardas == "" || s.Amzius == 0 || s.Instrumentas == "" {
			return fmt.Errorf("student %q: all fields are required", s.Vardas)
		}
	}
	for _, t := range fx.Teachers {
		if t.Vardas == "" || t.Specialybe == "" {
			return fmt.Errorf("teacher %q: all fields are required", t.Vardas)
		}
	}
	studentNames := map[string]bool{}
	for _, s := range fx.Students {
		studentNames[s.Vardas] = true
	}
	teacherNames := map[string]bool{}
	for _, t := range fx.Teachers {
		teacherNames[t.Vardas] = true
	}
	for i, l := range fx.Lessons {
		if l.Laikas == "" {
			return fmt.Errorf("lesson %d: laikas is required", i)
		}
		if !studentNames[l.Student] {
			return fmt.Errorf("lesson %d: unknown student %q", i, l.Student)
		}
		if !teacherNames[l.Teacher] {
			return fmt.Errorf("lesson %d: unknown teacher %q", i, l.Teacher)
		}
	}
	return nil
}

func seed(fx fixture) error {
	for _, u := range fx.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", u.Username, err)
		}
		user := auth.User{
			UserID:         uuid.NewString(),
			Username:       u.Username,
			Email:          u.Email,
			HashedPassword: string(hashed),
			Role:           u.Role,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %q: %w", u.Username, err)
		}
	}

	studentIDs := map[string]string{}
	for _, s := range fx.Students {
		student := school.Student{
			ID:           uuid.NewString(),
			Vardas:       s.Vardas,
			Amzius:       s.Amzius,
			Instrumentas: s.Instrumentas,
		}
		if err := db.DB.Create(&student).Error; err != nil {
			return fmt.Errorf("create student %q: %w", s.Vardas, err)
		}
		studentIDs[s.Vardas] = student.ID
	}

	teacherIDs := map[string]string{}
	for _, t := range fx.Teachers {
		teacher := school.Teacher{
			ID:         uuid.NewString(),
			Vardas:     t.Vardas,
			Specialybe: t.Specialybe,
		}
		if err := db.DB.Create(&teacher).Error; err != nil {
			return fmt.Errorf("create teacher %q: %w", t.Vardas, err)
		}
		teacherIDs[t.Vardas] = teacher.ID
	}

	for i, l := range fx.Lessons {
		lesson := school.Lesson{
			ID:        uuid.NewString(),
			StudentID: studentIDs[l.Student],
			TeacherID: teacherIDs[l.Teacher],
			Laikas:    l.Laikas,
		}
		if err := db.DB.Create(&lesson).Error; err != nil {
			return fmt.Errorf("create lesson %d: %w", i, err)
		}
	}
	return nil
}
