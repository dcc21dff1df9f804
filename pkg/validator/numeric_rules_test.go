package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskapi/pkg/validator"
)

func TestInt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	valid := map[string]int64{
		"0":     0,
		"42":    42,
		"-7":    -7,
		" 100 ": 100,
	}
	for raw, want := range valid {
		got, err := validator.Int(ctx, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "1.5", "ten", "99999999999999999999", "0x10"} {
		_, err := validator.Int(ctx, raw)
		f, ok := validator.AsFailure(err)
		require.True(t, ok, raw)
		assert.Equal(t, validator.CodeInteger, f.Code)
		assert.Equal(t, []any{raw}, f.Args)
	}
}

func TestPositive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.NoError(t, validator.Positive(ctx, int64(1)))
	assert.NoError(t, validator.Positive(ctx, 0.5))

	for _, v := range []int64{0, -1} {
		err := validator.Positive(ctx, v)
		f, ok := validator.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, validator.CodePositive, f.Code)
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	check := validator.Between[int64](1, 100)
	assert.NoError(t, check(ctx, 1))
	assert.NoError(t, check(ctx, 100))

	err := check(ctx, 101)
	f, ok := validator.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, validator.CodeOutOfRange, f.Code)
	assert.Equal(t, []any{int64(101), int64(1), int64(100)}, f.Args)
}
