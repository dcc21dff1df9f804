package sanitizer_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// countingRule always succeeds and records how often it ran.
func countingRule(calls *atomic.Int32) validator.Rule[string] {
	return func(_ context.Context, raw string) (string, error) {
		calls.Add(1)
		return raw, nil
	}
}

func TestSanitize_RequiredMissing(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32

	_, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Body("title", nil, countingRule(&calls)).Required(),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, sanitizer.ErrInvalidRequest)
	assert.Zero(t, calls.Load(), "rule must not run for a missing required field")

	fieldErrs := sanitizer.ExtractFieldErrors(err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "title", fieldErrs[0].Field)
	assert.Equal(t, sanitizer.OriginBody, fieldErrs[0].Origin)
	assert.Equal(t, validator.CodeRequired, fieldErrs[0].Code)
	assert.Equal(t, []any{"title"}, fieldErrs[0].Args)
}

func TestSanitize_OptionalMissing(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32

	c, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Query("limit", nil, countingRule(&calls)),
	)

	require.NoError(t, err)
	assert.Zero(t, calls.Load(), "rule must not run for a missing optional field")
	assert.True(t, c.Has("limit"))
	assert.False(t, c.Value("limit").IsPresent())
	assert.Equal(t, "50", sanitizer.GetOr(c, "limit", "50"))
	assert.False(t, c.AnyFieldHasValue())
}

func TestSanitize_EmptyStringIsPresent(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32

	c, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Body("description", sanitizer.Ptr(""), countingRule(&calls)),
	)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, c.Value("description").IsPresent())
	assert.Equal(t, "", sanitizer.Get[string](c, "description"))
}

func TestSanitize_TypedNilIsAbsent(t *testing.T) {
	t.Parallel()

	var (
		nilPointer validator.Rule[*uuid.UUID] = func(context.Context, string) (*uuid.UUID, error) { return nil, nil }
		nilSlice   validator.Rule[[]string]   = func(context.Context, string) ([]string, error) { return nil, nil }
		emptySlice validator.Rule[[]string]   = func(context.Context, string) ([]string, error) { return []string{}, nil }
	)

	c, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Body("project_id", sanitizer.Ptr("x"), nilPointer),
		sanitizer.Body("labels", sanitizer.Ptr("x"), nilSlice),
	)
	require.NoError(t, err)
	assert.False(t, c.Value("project_id").IsPresent())
	assert.False(t, c.Value("labels").IsPresent())
	assert.False(t, c.AnyFieldHasValue())
	assert.Nil(t, sanitizer.Get[*uuid.UUID](c, "project_id"))

	c, err = sanitizer.Sanitize(context.Background(),
		sanitizer.Body("labels", sanitizer.Ptr(""), emptySlice),
	)
	require.NoError(t, err)
	assert.True(t, c.Value("labels").IsPresent())
	assert.Equal(t, []string{}, sanitizer.Get[[]string](c, "labels"))
}

func TestSanitize_TwoOfFiveInvalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	projectID := uuid.New()

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("title", sanitizer.Ptr("   "), validator.NotEmpty).Required(),
		sanitizer.Body("description", sanitizer.Ptr("details"), validator.String),
		sanitizer.Body("project_id", sanitizer.Ptr("not-a-uuid"), validator.UUID),
		sanitizer.Body("completed", sanitizer.Ptr("true"), validator.Bool),
		sanitizer.Body("owner_id", sanitizer.Ptr(projectID.String()), validator.UUID),
	)

	require.Error(t, err)
	assert.Zero(t, c.Len(), "a failed call returns no collection")

	var invalid *sanitizer.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Errors, 2)
	assert.Equal(t, []string{validator.CodeEmpty, validator.CodeUUID}, invalid.Codes())
	assert.Equal(t, "title", invalid.Errors[0].Field)
	assert.Equal(t, "project_id", invalid.Errors[1].Field)
	assert.Equal(t, []any{"not-a-uuid"}, invalid.Errors[1].Args)
	assert.True(t, invalid.Has("title"))
	assert.False(t, invalid.Has("description"))

	// the three valid fields would have produced values
	valid, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("description", sanitizer.Ptr("details"), validator.String),
		sanitizer.Body("completed", sanitizer.Ptr("true"), validator.Bool),
		sanitizer.Body("owner_id", sanitizer.Ptr(projectID.String()), validator.UUID),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, valid.Len())
	assert.Equal(t, projectID, sanitizer.Get[uuid.UUID](valid, "owner_id"))
}

func TestSanitize_EverySpecAccountedFor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inputs := []*string{
		sanitizer.Ptr("1"), nil, sanitizer.Ptr("x"), sanitizer.Ptr("-3"), sanitizer.Ptr("7"), nil,
	}
	build := func() []sanitizer.Spec {
		specs := make([]sanitizer.Spec, len(inputs))
		for i, raw := range inputs {
			f := sanitizer.Query(string(rune('a'+i)), raw, validator.Chain(validator.Int, validator.Positive[int64]))
			if i%2 == 1 {
				f = f.Required()
			}
			specs[i] = f
		}
		return specs
	}

	for range 3 {
		_, err := sanitizer.Sanitize(ctx, build()...)
		fieldErrs := sanitizer.ExtractFieldErrors(err)
		// b: required missing, c: not an int, d: not positive, f: required missing
		require.Len(t, fieldErrs, 4)
		fields := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			fields[i] = fe.Field
		}
		assert.Equal(t, []string{"b", "c", "d", "f"}, fields, "failure order must follow input order")
	}

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Query("a", sanitizer.Ptr("1"), validator.Int),
		sanitizer.Query("b", nil, validator.Int),
		sanitizer.Query("c", sanitizer.Ptr("3"), validator.Int),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"a", "b", "c"}, c.Keys())
}

func TestSanitize_OutputKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("tag_ids", sanitizer.Ptr(""), validator.UUIDList).As("tags"),
	)
	require.NoError(t, err)
	assert.True(t, c.Has("tags"))
	assert.False(t, c.Has("tag_ids"))

	_, err = sanitizer.Sanitize(ctx,
		sanitizer.Body("tag_ids", sanitizer.Ptr("bad"), validator.UUIDList).As("tags"),
	)
	fieldErrs := sanitizer.ExtractFieldErrors(err)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "tag_ids", fieldErrs[0].Field, "errors report the logical name")
}

func TestSanitize_FaultPropagates(t *testing.T) {
	t.Parallel()
	errDown := errors.New("repository unavailable")
	var calls atomic.Int32

	failing := func(context.Context, string) (string, error) { return "", errDown }

	_, err := sanitizer.Sanitize(context.Background(),
		sanitizer.Body("title", nil, validator.NotEmpty).Required(),
		sanitizer.Body("project_id", sanitizer.Ptr("x"), failing),
		sanitizer.Body("other", sanitizer.Ptr("y"), countingRule(&calls)),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
	assert.False(t, sanitizer.IsInvalidRequest(err), "faults are not aggregated")
	assert.Contains(t, err.Error(), `"project_id"`)
	assert.Zero(t, calls.Load())
}

func TestSanitize_NoFields(t *testing.T) {
	t.Parallel()

	_, err := sanitizer.Sanitize(context.Background())
	assert.ErrorIs(t, err, sanitizer.ErrNoFields)
}

func TestSanitizeOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		v, err := sanitizer.SanitizeOne(ctx, sanitizer.Header("X-Timezone-Offset", sanitizer.Ptr("+02:00"), validator.TimezoneOffset))
		require.NoError(t, err)
		assert.True(t, v.IsPresent())
	})

	t.Run("failure has aggregated shape", func(t *testing.T) {
		_, err := sanitizer.SanitizeOne(ctx, sanitizer.Header("X-Timezone-Offset", sanitizer.Ptr("Mars/Olympus"), validator.TimezoneOffset))
		var invalid *sanitizer.InvalidRequestError
		require.ErrorAs(t, err, &invalid)
		require.Len(t, invalid.Errors, 1)
		assert.Equal(t, sanitizer.OriginHeader, invalid.Errors[0].Origin)
		assert.Equal(t, validator.CodeTimezoneOffset, invalid.Errors[0].Code)
	})

	t.Run("renamed key", func(t *testing.T) {
		v, err := sanitizer.SanitizeOne(ctx, sanitizer.Path("id", sanitizer.Ptr("7"), validator.Int).As("task_id"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), sanitizer.As[int64](v))
	})

	t.Run("typed form", func(t *testing.T) {
		id := uuid.New()
		got, err := sanitizer.One(ctx, sanitizer.Path("id", sanitizer.Ptr(id.String()), validator.UUID).Required())
		require.NoError(t, err)
		assert.Equal(t, id, got)

		_, err = sanitizer.One(ctx, sanitizer.Path("id", nil, validator.UUID).Required())
		assert.ErrorIs(t, err, sanitizer.ErrInvalidRequest)
	})
}

func TestInvalidRequestError_Message(t *testing.T) {
	t.Parallel()

	err := &sanitizer.InvalidRequestError{Errors: []sanitizer.FieldError{
		{Field: "title", Origin: sanitizer.OriginBody, Code: validator.CodeEmpty},
		{Field: "limit", Origin: sanitizer.OriginQuery, Code: validator.CodePositive},
	}}
	assert.Equal(t, "invalid request: title (body): validation.is_empty; limit (query): validation.is_positive", err.Error())
	assert.Equal(t, "invalid request", (&sanitizer.InvalidRequestError{}).Error())
}

func TestOrigin_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "body", sanitizer.OriginBody.String())
	assert.Equal(t, "header", sanitizer.OriginHeader.String())
	assert.Equal(t, "query", sanitizer.OriginQuery.String())
	assert.Equal(t, "path", sanitizer.OriginPath.String())
	assert.Equal(t, "unknown", sanitizer.Origin(42).String())
}
