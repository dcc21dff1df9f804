package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskapi/pkg/validator"
)

func TestNotEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("trims valid input", func(t *testing.T) {
		v, err := validator.NotEmpty(ctx, "  Buy milk \n")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", v)
	})

	t.Run("rejects blank input", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := validator.NotEmpty(ctx, raw)
			f, ok := validator.AsFailure(err)
			require.True(t, ok, "input %q", raw)
			assert.Equal(t, validator.CodeEmpty, f.Code)
			assert.Equal(t, []any{raw}, f.Args)
		}
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	v, err := validator.String(context.Background(), "  as is ")
	require.NoError(t, err)
	assert.Equal(t, "  as is ", v)
}

func TestLengthChecks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("max length counts runes", func(t *testing.T) {
		assert.NoError(t, validator.MaxLength(3)(ctx, "héé"))

		err := validator.MaxLength(3)(ctx, "héél")
		f, ok := validator.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, validator.CodeTooLong, f.Code)
		assert.Equal(t, []any{"héél", 3}, f.Args)
	})

	t.Run("max bytes counts bytes", func(t *testing.T) {
		assert.NoError(t, validator.MaxBytes(4)(ctx, "жж"))

		err := validator.MaxBytes(4)(ctx, "жжж")
		f, ok := validator.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, validator.CodeTooManyBytes, f.Code)
		assert.Equal(t, []any{6, 4}, f.Args)
	})

	t.Run("min length", func(t *testing.T) {
		assert.NoError(t, validator.MinLength(8)(ctx, "password"))

		err := validator.MinLength(8)(ctx, "short")
		f, ok := validator.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, validator.CodeTooShort, f.Code)
	})

	t.Run("combined with not empty", func(t *testing.T) {
		rule := validator.Chain(validator.NotEmpty, validator.MaxLength(5))
		v, err := rule(ctx, "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})
}
