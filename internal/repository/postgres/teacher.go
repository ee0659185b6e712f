package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/fsssb/course-rate/internal/domain"
	"github.com/fsssb/course-rate/internal/utils"

	"github.com/jackc/pgx/v5"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user input so the filter
// stays a literal substring match: a q of "50%" must not match "505".
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

// SearchTeachers returns one page of teachers whose name contains q, plus the
// total count of the filtered set. The ordering is name ascending with id as
// the tiebreaker so repeated calls paginate deterministically; an empty q
// matches every teacher. The total is computed by its own COUNT over the same
// predicate, independent of the window.
func (s *Storage) SearchTeachers(ctx context.Context, q string, page, pageSize int) ([]domain.TeacherRow, int, error) {
	const listQuery = `
		SELECT id, name, dept
		FROM teachers
		WHERE name LIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY name ASC, id ASC
		LIMIT $2 OFFSET $3;
	`

	rows, err := s.pool.Query(ctx, listQuery, escapeLike(q), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	teachers := make([]domain.TeacherRow, 0, pageSize)
	for rows.Next() {
		var t domain.TeacherRow
		if err := rows.Scan(&t.ID, &t.Name, &t.Dept); err != nil {
			return nil, 0, err
		}
		teachers = append(teachers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	const countQuery = `
		SELECT COUNT(*) FROM teachers WHERE name LIKE '%' || $1 || '%' ESCAPE '\';
	`

	var total int
	if err := s.pool.QueryRow(ctx, countQuery, escapeLike(q)).Scan(&total); err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

// ListTeachers is the unpaginated variant behind the ranking endpoint: the
// filtered set capped at take teachers, same deterministic ordering.
func (s *Storage) ListTeachers(ctx context.Context, q string, take int) ([]domain.TeacherRow, error) {
	const query = `
		SELECT id, name, dept
		FROM teachers
		WHERE name LIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY name ASC, id ASC
		LIMIT $2;
	`

	rows, err := s.pool.Query(ctx, query, escapeLike(q), take)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	teachers := make([]domain.TeacherRow, 0, take)
	for rows.Next() {
		var t domain.TeacherRow
		if err := rows.Scan(&t.ID, &t.Name, &t.Dept); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

func (s *Storage) GetTeacherByID(ctx context.Context, id string) (*domain.Teacher, error) {
	const query = `
		SELECT id, teacher_no, name, dept
		FROM teachers WHERE id = $1;
	`

	var t domain.Teacher
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.TeacherNo, &t.Name, &t.Dept,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.ErrTeacherNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}
