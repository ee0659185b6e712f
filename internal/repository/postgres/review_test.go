package postgres

import (
	"math"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToFloat(t *testing.T) {
	avg := pgtype.Numeric{Int: big.NewInt(45), Exp: -1, Valid: true}

	got := numericToFloat(avg)

	require.NotNil(t, got)
	assert.Equal(t, 4.5, *got)
}

func TestNumericToFloat_Null(t *testing.T) {
	assert.Nil(t, numericToFloat(pgtype.Numeric{}))
}

func TestNumericToFloat_NaN(t *testing.T) {
	assert.Nil(t, numericToFloat(pgtype.Numeric{NaN: true, Valid: true}))
}

func TestNumericToFloat_Infinity(t *testing.T) {
	assert.Nil(t, numericToFloat(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}))
	assert.Nil(t, numericToFloat(pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}))
}

func TestRandScore_OneDecimalWithinRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := randScore(3.5, 5.0)
		assert.GreaterOrEqual(t, v, 3.5)
		assert.LessOrEqual(t, v, 5.0)
		assert.InDelta(t, math.Round(v*10), v*10, 1e-9)
	}
}
