package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fsssb/course-rate/internal/domain"
	"github.com/fsssb/course-rate/internal/utils"

	"github.com/labstack/echo/v4"
)

// Store is the read surface the teacher endpoints need. *postgres.Storage
// implements it; tests swap in a stub.
type Store interface {
	SearchTeachers(ctx context.Context, q string, page, pageSize int) ([]domain.TeacherRow, int, error)
	ListTeachers(ctx context.Context, q string, take int) ([]domain.TeacherRow, error)
	AggregateOverall(ctx context.Context, teacherIDs []string) (map[string]domain.AggregateSummary, error)
	GetTeacherByID(ctx context.Context, id string) (*domain.Teacher, error)
	AggregateTeacher(ctx context.Context, teacherID string) (int, domain.DimensionAverages, error)
}

func SetupTeacherRoutes(e *echo.Echo, storage Store) {
	e.GET("/api/teachers/search", SearchTeachers(storage))
	e.GET("/api/teachers/ratings", RankTeachers(storage))
	e.GET("/api/teachers/:teacherId", GetTeacherByID(storage))
}

// SearchTeachers godoc
// @Summary Search teachers with rating summaries
// @Description Paginated substring search on teacher name; each hit carries its average overall score and review count
// @Tags teachers
// @Accept json
// @Produce json
// @Param q query string false "Substring to match against teacher names"
// @Param page query int false "Page number, floored to 1 (default 1)"
// @Param pageSize query int false "Page size, clamped to [1,50] (default 10)"
// @Success 200 {object} domain.SearchPage
// @Failure 500 {object} map[string]string
// @Router /teachers/search [get]
func SearchTeachers(storage Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		q := strings.TrimSpace(c.QueryParam("q"))
		page := utils.PageParam(c.QueryParam("page"))
		pageSize := utils.PageSizeParam(c.QueryParam("pageSize"))

		teachers, total, err := storage.SearchTeachers(ctx, q, page, pageSize)
		if err != nil {
			c.Logger().Errorf("teacher search failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		aggs, err := storage.AggregateOverall(ctx, teacherIDs(teachers))
		if err != nil {
			c.Logger().Errorf("rating aggregation failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		return c.JSON(http.StatusOK, domain.SearchPage{
			Items:    domain.MergeSummaries(teachers, aggs),
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// RankTeachers godoc
// @Summary Rank teachers by average rating
// @Description Teachers ordered by average overall score descending; teachers without reviews are not ranked
// @Tags teachers
// @Accept json
// @Produce json
// @Param q query string false "Substring to match against teacher names"
// @Param take query int false "Cap on the number of teachers considered (default 50)"
// @Success 200 {array} domain.TeacherRating
// @Failure 500 {object} map[string]string
// @Router /teachers/ratings [get]
func RankTeachers(storage Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		q := strings.TrimSpace(c.QueryParam("q"))
		take := utils.TakeParam(c.QueryParam("take"))

		teachers, err := storage.ListTeachers(ctx, q, take)
		if err != nil {
			c.Logger().Errorf("teacher listing failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		aggs, err := storage.AggregateOverall(ctx, teacherIDs(teachers))
		if err != nil {
			c.Logger().Errorf("rating aggregation failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		ranked := domain.RankByAverage(domain.MergeSummaries(teachers, aggs))
		return c.JSON(http.StatusOK, ranked)
	}
}

// GetTeacherByID godoc
// @Summary Get one teacher with full rating stats
// @Description Teacher profile plus review count and the average of all five rating dimensions
// @Tags teachers
// @Accept json
// @Produce json
// @Param teacherId path string true "Teacher ID"
// @Success 200 {object} domain.TeacherDetail
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teachers/{teacherId} [get]
func GetTeacherByID(storage Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id := c.Param("teacherId")

		teacher, err := storage.GetTeacherByID(ctx, id)
		if errors.Is(err, utils.ErrTeacherNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
		}
		if err != nil {
			c.Logger().Errorf("teacher lookup failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		count, avgs, err := storage.AggregateTeacher(ctx, id)
		if err != nil {
			c.Logger().Errorf("teacher stats failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal_error"})
		}

		return c.JSON(http.StatusOK, domain.TeacherDetail{
			Teacher: *teacher,
			Stats: domain.TeacherStats{
				Count: count,
				Avg:   avgs,
			},
		})
	}
}

func teacherIDs(teachers []domain.TeacherRow) []string {
	ids := make([]string, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
	}
	return ids
}
