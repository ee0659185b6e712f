package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/fsssb/course-rate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage connects to the database named by TEST_DATABASE_URL and
// makes sure the schema and fixture data are in place. Tests using it are
// skipped when the variable is unset.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	storage, err := NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	require.NoError(t, storage.Migrate(ctx))
	require.NoError(t, storage.SeedDatabase(ctx))

	return storage
}

func collectPages(t *testing.T, s *Storage, q string, pageSize int) []domain.TeacherRow {
	t.Helper()

	ctx := context.Background()
	var all []domain.TeacherRow
	for page := 1; ; page++ {
		items, _, err := s.SearchTeachers(ctx, q, page, pageSize)
		require.NoError(t, err)
		if len(items) == 0 {
			return all
		}
		all = append(all, items...)
	}
}

func TestSearchTeachers_WindowArithmetic(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	_, total, err := storage.SearchTeachers(ctx, "", 1, 1)
	require.NoError(t, err)
	require.Positive(t, total)

	for _, pageSize := range []int{1, 2, total, total + 3} {
		lastPage := total/pageSize + 2
		for page := 1; page <= lastPage; page++ {
			items, gotTotal, err := storage.SearchTeachers(ctx, "", page, pageSize)
			require.NoError(t, err)

			assert.Equal(t, total, gotTotal, "total must not depend on page=%d pageSize=%d", page, pageSize)
			want := min(pageSize, max(0, total-(page-1)*pageSize))
			assert.Len(t, items, want, "window size for page=%d pageSize=%d", page, pageSize)
		}
	}
}

func TestSearchTeachers_PagesTileTheFilteredSet(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	_, total, err := storage.SearchTeachers(ctx, "", 1, 1)
	require.NoError(t, err)

	whole, gotTotal, err := storage.SearchTeachers(ctx, "", 1, max(total, 1))
	require.NoError(t, err)
	require.Equal(t, total, gotTotal)

	for _, pageSize := range []int{1, 2, 3} {
		assert.Equal(t, whole, collectPages(t, storage, "", pageSize), "pageSize=%d", pageSize)
	}
}

func TestSearchTeachers_Idempotent(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	first, firstTotal, err := storage.SearchTeachers(ctx, "a", 1, 3)
	require.NoError(t, err)

	second, secondTotal, err := storage.SearchTeachers(ctx, "a", 1, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

func TestSearchTeachers_EmptyQueryMatchesEveryTeacher(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	_, total, err := storage.SearchTeachers(ctx, "", 1, 1)
	require.NoError(t, err)

	listed, err := storage.ListTeachers(ctx, "", total+1)
	require.NoError(t, err)

	assert.Len(t, listed, total)
}

func TestSearchTeachers_MetacharactersMatchLiterally(t *testing.T) {
	storage := setupTestStorage(t)
	ctx := context.Background()

	for _, q := range []string{"%", "_", `\`} {
		items, total, err := storage.SearchTeachers(ctx, q, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, items, "q=%q", q)
		assert.Zero(t, total, "q=%q", q)
	}
}
