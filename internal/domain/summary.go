package domain

import "sort"

// AggregateSummary is the per-teacher statistic computed by the grouped
// review query. AvgOverall is nil when the teacher has no reviews.
type AggregateSummary struct {
	TeacherID   string   `json:"teacherId"`
	AvgOverall  *float64 `json:"avgOverall"`
	ReviewCount int      `json:"reviewCount"`
}

type TeacherRating struct {
	TeacherID   string   `json:"teacherId"`
	TeacherName string   `json:"teacherName"`
	Dept        *string  `json:"dept"`
	AvgOverall  *float64 `json:"avgOverall"`
	ReviewCount int      `json:"reviewCount"`
}

type SearchPage struct {
	Items    []TeacherRating `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type DimensionAverages struct {
	Overall    *float64 `json:"overall"`
	Clarity    *float64 `json:"clarity"`
	Engagement *float64 `json:"engagement"`
	Fairness   *float64 `json:"fairness"`
	Workload   *float64 `json:"workload"`
}

type TeacherStats struct {
	Count int               `json:"count"`
	Avg   DimensionAverages `json:"avg"`
}

type TeacherDetail struct {
	Teacher Teacher      `json:"teacher"`
	Stats   TeacherStats `json:"stats"`
}

// MergeSummaries joins aggregates back onto the selected teachers by id.
// The teachers' ordering is authoritative and is preserved exactly; a teacher
// missing from the aggregates gets a nil average and a zero count. Output
// length always equals input length.
func MergeSummaries(teachers []TeacherRow, aggs map[string]AggregateSummary) []TeacherRating {
	items := make([]TeacherRating, 0, len(teachers))
	for _, t := range teachers {
		item := TeacherRating{
			TeacherID:   t.ID,
			TeacherName: t.Name,
			Dept:        t.Dept,
		}
		if a, ok := aggs[t.ID]; ok {
			item.AvgOverall = a.AvgOverall
			item.ReviewCount = a.ReviewCount
		}
		items = append(items, item)
	}
	return items
}

// RankByAverage orders merged items by average rating, highest first.
// Teachers without reviews are dropped from the ranking rather than sorted
// to the bottom; the search surface keeps them with a nil average instead.
func RankByAverage(items []TeacherRating) []TeacherRating {
	ranked := make([]TeacherRating, 0, len(items))
	for _, item := range items {
		if item.ReviewCount == 0 || item.AvgOverall == nil {
			continue
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].AvgOverall > *ranked[j].AvgOverall
	})

	return ranked
}
