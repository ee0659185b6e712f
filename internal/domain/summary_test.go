package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestMergeSummaries_FillsDefaultsForUnratedTeachers(t *testing.T) {
	teachers := []TeacherRow{
		{ID: "A", Name: "Alice"},
		{ID: "B", Name: "Bob"},
	}
	aggs := map[string]AggregateSummary{
		"A": {TeacherID: "A", AvgOverall: ptr(4.5), ReviewCount: 2},
	}

	items := MergeSummaries(teachers, aggs)

	require.Len(t, items, 2)

	assert.Equal(t, "A", items[0].TeacherID)
	assert.Equal(t, "Alice", items[0].TeacherName)
	require.NotNil(t, items[0].AvgOverall)
	assert.Equal(t, 4.5, *items[0].AvgOverall)
	assert.Equal(t, 2, items[0].ReviewCount)

	assert.Equal(t, "B", items[1].TeacherID)
	assert.Nil(t, items[1].AvgOverall)
	assert.Equal(t, 0, items[1].ReviewCount)
}

func TestMergeSummaries_PreservesSelectorOrder(t *testing.T) {
	teachers := []TeacherRow{
		{ID: "t3", Name: "Carol"},
		{ID: "t1", Name: "Dave"},
		{ID: "t2", Name: "Erin"},
	}
	// Aggregates deliberately favor a different order (highest average first);
	// the merge must ignore it.
	aggs := map[string]AggregateSummary{
		"t1": {TeacherID: "t1", AvgOverall: ptr(5.0), ReviewCount: 1},
		"t2": {TeacherID: "t2", AvgOverall: ptr(4.0), ReviewCount: 3},
		"t3": {TeacherID: "t3", AvgOverall: ptr(3.0), ReviewCount: 2},
	}

	items := MergeSummaries(teachers, aggs)

	require.Len(t, items, len(teachers))
	for i, tr := range teachers {
		assert.Equal(t, tr.ID, items[i].TeacherID)
	}
}

func TestMergeSummaries_EmptyInput(t *testing.T) {
	items := MergeSummaries(nil, map[string]AggregateSummary{})

	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestMergeSummaries_CarriesDept(t *testing.T) {
	dept := "School of Mathematics"
	teachers := []TeacherRow{
		{ID: "t1", Name: "Carol", Dept: &dept},
		{ID: "t2", Name: "Dave"},
	}

	items := MergeSummaries(teachers, nil)

	require.Len(t, items, 2)
	require.NotNil(t, items[0].Dept)
	assert.Equal(t, dept, *items[0].Dept)
	assert.Nil(t, items[1].Dept)
}

func TestRankByAverage_SortsDescendingAndDropsUnrated(t *testing.T) {
	items := []TeacherRating{
		{TeacherID: "A", AvgOverall: ptr(4.5), ReviewCount: 2},
		{TeacherID: "B", AvgOverall: nil, ReviewCount: 0},
		{TeacherID: "C", AvgOverall: ptr(4.9), ReviewCount: 1},
		{TeacherID: "D", AvgOverall: ptr(3.2), ReviewCount: 7},
	}

	ranked := RankByAverage(items)

	require.Len(t, ranked, 3)
	assert.Equal(t, "C", ranked[0].TeacherID)
	assert.Equal(t, "A", ranked[1].TeacherID)
	assert.Equal(t, "D", ranked[2].TeacherID)
	for _, r := range ranked {
		assert.NotZero(t, r.ReviewCount)
	}
}

func TestRankByAverage_StableForTies(t *testing.T) {
	items := []TeacherRating{
		{TeacherID: "A", AvgOverall: ptr(4.0), ReviewCount: 1},
		{TeacherID: "B", AvgOverall: ptr(4.0), ReviewCount: 2},
		{TeacherID: "C", AvgOverall: ptr(4.0), ReviewCount: 3},
	}

	ranked := RankByAverage(items)

	require.Len(t, ranked, 3)
	assert.Equal(t, "A", ranked[0].TeacherID)
	assert.Equal(t, "B", ranked[1].TeacherID)
	assert.Equal(t, "C", ranked[2].TeacherID)
}

func TestRankByAverage_Empty(t *testing.T) {
	assert.Empty(t, RankByAverage(nil))
	assert.Empty(t, RankByAverage([]TeacherRating{{TeacherID: "A", ReviewCount: 0}}))
}
