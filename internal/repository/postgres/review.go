package postgres

import (
	"context"
	"math"

	"github.com/fsssb/course-rate/internal/domain"

	"github.com/jackc/pgx/v5/pgtype"
)

// AggregateOverall computes, per teacher in teacherIDs, the mean overall
// score and the review count with a single grouped query. Teachers without
// reviews are simply absent from the result map (GROUP BY drops empty
// groups); the merge step supplies their nil/0 defaults. An empty id set
// short-circuits without touching the store.
func (s *Storage) AggregateOverall(ctx context.Context, teacherIDs []string) (map[string]domain.AggregateSummary, error) {
	aggs := make(map[string]domain.AggregateSummary, len(teacherIDs))
	if len(teacherIDs) == 0 {
		return aggs, nil
	}

	const query = `
		SELECT teacher_id, AVG(overall), COUNT(*)
		FROM reviews
		WHERE teacher_id = ANY($1)
		GROUP BY teacher_id;
	`

	rows, err := s.pool.Query(ctx, query, teacherIDs)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var (
			teacherID string
			avg       pgtype.Numeric
			count     int
		)
		if err := rows.Scan(&teacherID, &avg, &count); err != nil {
			return nil, err
		}
		aggs[teacherID] = domain.AggregateSummary{
			TeacherID:   teacherID,
			AvgOverall:  numericToFloat(avg),
			ReviewCount: count,
		}
	}

	return aggs, rows.Err()
}

// AggregateTeacher computes all five dimension averages for one teacher.
// With zero reviews every AVG comes back NULL and count is 0.
func (s *Storage) AggregateTeacher(ctx context.Context, teacherID string) (int, domain.DimensionAverages, error) {
	const query = `
		SELECT COUNT(*), AVG(overall), AVG(clarity), AVG(engagement), AVG(fairness), AVG(workload)
		FROM reviews
		WHERE teacher_id = $1;
	`

	var (
		count                                            int
		overall, clarity, engagement, fairness, workload pgtype.Numeric
	)
	err := s.pool.QueryRow(ctx, query, teacherID).Scan(
		&count, &overall, &clarity, &engagement, &fairness, &workload,
	)
	if err != nil {
		return 0, domain.DimensionAverages{}, err
	}

	avgs := domain.DimensionAverages{
		Overall:    numericToFloat(overall),
		Clarity:    numericToFloat(clarity),
		Engagement: numericToFloat(engagement),
		Fairness:   numericToFloat(fairness),
		Workload:   numericToFloat(workload),
	}

	return count, avgs, nil
}

// numericToFloat converts an exact decimal average to a plain float at the
// serialization boundary. SQL NULL and non-finite values both map to nil,
// which downstream means "no rating".
func numericToFloat(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}

	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return nil
	}
	if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return nil
	}

	return &v.Float64
}
