package postgres

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS terms (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		year       INT  NOT NULL,
		season     TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date   DATE NOT NULL,
		UNIQUE (year, season)
	);`,

	`CREATE TABLE IF NOT EXISTS teachers (
		id         TEXT PRIMARY KEY,
		teacher_no TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		dept       TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,

	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		student_no TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS courses (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		dept       TEXT,
		teacher_id TEXT NOT NULL REFERENCES teachers (id)
	);`,

	`CREATE TABLE IF NOT EXISTS course_offerings (
		id        TEXT PRIMARY KEY,
		course_id TEXT NOT NULL REFERENCES courses (id),
		term_id   TEXT NOT NULL REFERENCES terms (id),
		UNIQUE (course_id, term_id)
	);`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id           TEXT PRIMARY KEY,
		student_id   TEXT NOT NULL REFERENCES students (id),
		teacher_id   TEXT NOT NULL REFERENCES teachers (id),
		term_id      TEXT REFERENCES terms (id),
		course_id    TEXT REFERENCES courses (id),
		offering_id  TEXT REFERENCES course_offerings (id),
		overall      NUMERIC(2,1) NOT NULL,
		clarity      NUMERIC(2,1) NOT NULL,
		engagement   NUMERIC(2,1) NOT NULL,
		fairness     NUMERIC(2,1) NOT NULL,
		workload     NUMERIC(2,1) NOT NULL,
		comment      TEXT,
		is_anonymous BOOLEAN NOT NULL DEFAULT true,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (student_id, teacher_id, term_id)
	);`,

	`CREATE INDEX IF NOT EXISTS idx_reviews_teacher_id ON reviews (teacher_id);`,

	`CREATE INDEX IF NOT EXISTS idx_teachers_name ON teachers (name, id);`,
}

// Migrate creates the schema if it does not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
