package postgres

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type teacherSeed struct {
	TeacherNo string
	Name      string
	Dept      string
}

type courseSeed struct {
	Code      string
	Name      string
	Dept      string
	TeacherNo string
}

type termSeed struct {
	Name      string
	Year      int
	Season    string
	StartDate string
	EndDate   string
}

var termSeeds = []termSeed{
	{Name: "Spring 2025", Year: 2025, Season: "spring", StartDate: "2025-02-20", EndDate: "2025-07-05"},
	{Name: "Fall 2025", Year: 2025, Season: "fall", StartDate: "2025-09-05", EndDate: "2026-01-15"},
}

var teacherSeeds = []teacherSeed{
	{TeacherNo: "T001", Name: "Alice Chen", Dept: "School of Computer Science"},
	{TeacherNo: "T002", Name: "Bob Harris", Dept: "School of Computer Science"},
	{TeacherNo: "T003", Name: "Carol Wang", Dept: "School of Mathematics"},
	{TeacherNo: "T004", Name: "David Osei", Dept: "School of Mathematics"},
	{TeacherNo: "T005", Name: "Elena Petrova", Dept: "School of Physics"},
}

var courseSeeds = []courseSeed{
	{Code: "CS101", Name: "Introduction to Programming", Dept: "School of Computer Science", TeacherNo: "T001"},
	{Code: "CS201", Name: "Data Structures", Dept: "School of Computer Science", TeacherNo: "T001"},
	{Code: "CS301", Name: "Operating Systems", Dept: "School of Computer Science", TeacherNo: "T002"},
	{Code: "MA101", Name: "Calculus I", Dept: "School of Mathematics", TeacherNo: "T003"},
	{Code: "MA210", Name: "Linear Algebra", Dept: "School of Mathematics", TeacherNo: "T004"},
	{Code: "PH101", Name: "Mechanics", Dept: "School of Physics", TeacherNo: "T005"},
}

// SeedDatabase fills an empty database with demo terms, teachers, courses,
// students and randomized reviews. Runs only when the teachers table is
// empty, so restarting with SEED=true is harmless.
func (s *Storage) SeedDatabase(ctx context.Context) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM teachers").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check teachers: %w", err)
	}

	if count > 0 {
		log.Printf("Database already has %d teachers, skipping seed", count)
		return nil
	}

	log.Println("Starting database seeding...")

	termIDs := make(map[string]string)
	for _, t := range termSeeds {
		id, err := s.insertTerm(ctx, t)
		if err != nil {
			return fmt.Errorf("failed to insert term %s: %w", t.Name, err)
		}
		termIDs[t.Season] = id
	}

	teacherIDs := make(map[string]string)
	for _, t := range teacherSeeds {
		id, err := s.insertTeacher(ctx, t)
		if err != nil {
			return fmt.Errorf("failed to insert teacher %s: %w", t.TeacherNo, err)
		}
		teacherIDs[t.TeacherNo] = id
	}

	coursesByTeacher := make(map[string][]string)
	for _, c := range courseSeeds {
		teacherID := teacherIDs[c.TeacherNo]
		courseID, err := s.insertCourse(ctx, c, teacherID)
		if err != nil {
			return fmt.Errorf("failed to insert course %s: %w", c.Code, err)
		}
		coursesByTeacher[teacherID] = append(coursesByTeacher[teacherID], courseID)

		for _, termID := range termIDs {
			if err := s.insertOffering(ctx, courseID, termID); err != nil {
				log.Printf("Failed to insert offering for %s: %v", c.Code, err)
			}
		}
	}

	var studentIDs []string
	for i := 0; i < 20; i++ {
		id, err := s.insertStudent(ctx, fmt.Sprintf("S%d", 1000+i), fmt.Sprintf("Student %d", i+1))
		if err != nil {
			return fmt.Errorf("failed to insert student: %w", err)
		}
		studentIDs = append(studentIDs, id)
	}

	terms := make([]string, 0, len(termIDs))
	for _, id := range termIDs {
		terms = append(terms, id)
	}

	// Each student reviews 1-3 random teachers in a random term. The
	// (student, teacher, term) unique constraint absorbs any collisions.
	reviewsAdded := 0
	allTeachers := make([]string, 0, len(teacherIDs))
	for _, id := range teacherIDs {
		allTeachers = append(allTeachers, id)
	}

	for _, studentID := range studentIDs {
		picks := rand.Perm(len(allTeachers))[:1+rand.Intn(3)]
		for _, p := range picks {
			teacherID := allTeachers[p]
			termID := terms[rand.Intn(len(terms))]

			var courseID *string
			if courses := coursesByTeacher[teacherID]; len(courses) > 0 {
				c := courses[rand.Intn(len(courses))]
				courseID = &c
			}

			inserted, err := s.insertReview(ctx, studentID, teacherID, termID, courseID)
			if err != nil {
				log.Printf("Failed to insert review: %v", err)
				continue
			}
			if inserted {
				reviewsAdded++
			}
		}
	}

	log.Printf("Seeding complete: %d teachers, %d courses, %d students, %d reviews",
		len(teacherIDs), len(courseSeeds), len(studentIDs), reviewsAdded)

	return nil
}

func (s *Storage) insertTerm(ctx context.Context, t termSeed) (string, error) {
	var id string
	query := `INSERT INTO terms (id, name, year, season, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (year, season) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id`
	err := s.pool.QueryRow(ctx, query, uuid.NewString(), t.Name, t.Year, t.Season, t.StartDate, t.EndDate).Scan(&id)
	return id, err
}

func (s *Storage) insertTeacher(ctx context.Context, t teacherSeed) (string, error) {
	var id string
	query := `INSERT INTO teachers (id, teacher_no, name, dept)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (teacher_no) DO UPDATE SET name = EXCLUDED.name, dept = EXCLUDED.dept
	          RETURNING id`
	err := s.pool.QueryRow(ctx, query, uuid.NewString(), t.TeacherNo, t.Name, t.Dept).Scan(&id)
	return id, err
}

func (s *Storage) insertCourse(ctx context.Context, c courseSeed, teacherID string) (string, error) {
	var id string
	query := `INSERT INTO courses (id, code, name, dept, teacher_id)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, teacher_id = EXCLUDED.teacher_id
	          RETURNING id`
	err := s.pool.QueryRow(ctx, query, uuid.NewString(), c.Code, c.Name, c.Dept, teacherID).Scan(&id)
	return id, err
}

func (s *Storage) insertOffering(ctx context.Context, courseID, termID string) error {
	query := `INSERT INTO course_offerings (id, course_id, term_id)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (course_id, term_id) DO NOTHING`
	_, err := s.pool.Exec(ctx, query, uuid.NewString(), courseID, termID)
	return err
}

func (s *Storage) insertStudent(ctx context.Context, studentNo, name string) (string, error) {
	var id string
	query := `INSERT INTO students (id, student_no, name)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (student_no) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id`
	err := s.pool.QueryRow(ctx, query, uuid.NewString(), studentNo, name).Scan(&id)
	return id, err
}

func (s *Storage) insertReview(ctx context.Context, studentID, teacherID, termID string, courseID *string) (bool, error) {
	comment := "Clear explanations, lots of interaction in class."
	if rand.Float64() > 0.5 {
		comment = "Reasonable pace, fair amount of homework."
	}

	query := `INSERT INTO reviews
	          (id, student_id, teacher_id, term_id, course_id, overall, clarity, engagement, fairness, workload, comment, is_anonymous, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12)
	          ON CONFLICT (student_id, teacher_id, term_id) DO NOTHING`
	tag, err := s.pool.Exec(ctx, query,
		uuid.NewString(), studentID, teacherID, termID, courseID,
		randScore(3.5, 5.0), randScore(3.5, 5.0), randScore(3.6, 5.0),
		randScore(3.4, 5.0), randScore(2.5, 4.5),
		comment, time.Now(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// randScore returns a score in [min, max] rounded to one decimal, matching
// the precision of the stored NUMERIC(2,1) columns.
func randScore(min, max float64) float64 {
	v := min + rand.Float64()*(max-min)
	return math.Round(v*10) / 10
}
